package trigo

import (
	"math"

	"github.com/bytearena/tankarena/common/utils/vector"
)

// Two directions are aligned when the dot product of their unit vectors exceeds this value.
const AlignmentThreshold = 0.95

// IsAligned reports whether a and b point the same way. A null vector is never aligned.
func IsAligned(a vector.Vector2, b vector.Vector2) bool {
	return a.Unit().Dot(b.Unit()) > AlignmentThreshold
}

// ClosestPointOnSegment returns the point of [segmentStart, segmentStart+segmentDelta]
// closest to p, and its fraction along the segment.
func ClosestPointOnSegment(p vector.Vector2, segmentStart vector.Vector2, segmentDelta vector.Vector2) (vector.Vector2, float64) {
	lenSq := segmentDelta.MagSq()
	if lenSq == 0 {
		return segmentStart, 0
	}

	s := p.Sub(segmentStart).Dot(segmentDelta) / lenSq
	s = math.Max(0, math.Min(1, s))

	return segmentStart.Add(segmentDelta.Scale(s)), s
}

// IntersectCircleCapsule reports whether a circle of radius radiusB, swept from
// segmentStart along segmentDelta, comes within radiusA+radiusB of centerA at any
// point of the sweep (not only at its end points).
func IntersectCircleCapsule(centerA vector.Vector2, radiusA float64, segmentStart vector.Vector2, segmentDelta vector.Vector2, radiusB float64) bool {
	closest, _ := ClosestPointOnSegment(centerA, segmentStart, segmentDelta)
	reach := radiusA + radiusB
	return closest.DistanceSq(centerA) <= reach*reach
}

// SweptCircleTimeOfImpact returns the fraction of the sweep (0 to 1) at which the moving
// circle first touches the static one; 0 when they already overlap at the start.
func SweptCircleTimeOfImpact(centerA vector.Vector2, radiusA float64, segmentStart vector.Vector2, segmentDelta vector.Vector2, radiusB float64) (float64, bool) {

	reach := radiusA + radiusB
	local := segmentStart.Sub(centerA)

	c := local.MagSq() - reach*reach
	if c <= 0 {
		return 0, true
	}

	a := segmentDelta.MagSq()
	if a == 0 {
		return 0, false
	}

	b := 2 * local.Dot(segmentDelta)
	if b >= 0 {
		// moving away from (or tangent to) the circle
		return 0, false
	}

	delta := b*b - (4 * a * c)
	if delta < 0 {
		return 0, false
	}

	s := (-b - math.Sqrt(delta)) / (2 * a)
	if s < 0 || s > 1 {
		return 0, false
	}

	return s, true
}

// TrajectoryBoundingBox returns the axis-aligned box enclosing a circle of the given
// radius swept from start to end, as (bottom left corner, dimensions).
func TrajectoryBoundingBox(start vector.Vector2, end vector.Vector2, radius float64) (vector.Vector2, vector.Vector2) {
	sx, sy := start.Get()
	ex, ey := end.Get()

	minX := math.Min(sx, ex) - radius
	minY := math.Min(sy, ey) - radius
	maxX := math.Max(sx, ex) + radius
	maxY := math.Max(sy, ey) + radius

	return vector.MakeVector2(minX, minY), vector.MakeVector2(maxX-minX, maxY-minY)
}

func FullCircleAngleToSignedHalfCircleAngle(rad float64) float64 {
	rad = math.Mod(rad, 2*math.Pi)

	if rad > math.Pi { // 180° en radians
		rad -= math.Pi * 2 // 360° en radian
	} else if rad <= -math.Pi {
		rad += math.Pi * 2 // 360° en radian
	}

	return rad
}

// SignedAngleBetween returns the rotation (in ]-Pi, Pi]) taking direction from onto direction to.
func SignedAngleBetween(from vector.Vector2, to vector.Vector2) float64 {
	return FullCircleAngleToSignedHalfCircleAngle(to.Angle() - from.Angle())
}
