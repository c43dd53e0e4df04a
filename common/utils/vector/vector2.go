package vector

import (
	"encoding/json"
	"math"
	"strconv"

	"github.com/ByteArena/box2d"
	"github.com/bytearena/tankarena/common/utils/number"
)

// Vector2 is an immutable 2D float pair; every operation returns a new value.
type Vector2 struct {
	x float64
	y float64
}

func MakeVector2(x float64, y float64) Vector2 {
	return Vector2{x, y}
}

// Returns a null vector2
func MakeNullVector2() Vector2 {
	return MakeVector2(0, 0)
}

// Returns the unit vector pointing at the given angle (radians, counter-clockwise from +x)
func MakeVector2FromAngle(radians float64) Vector2 {
	return MakeVector2(math.Cos(radians), math.Sin(radians))
}

func (v Vector2) Get() (float64, float64) {
	return v.x, v.y
}

func (v Vector2) GetX() float64 {
	return v.x
}

func (v Vector2) GetY() float64 {
	return v.y
}

var floatformat = byte('f')

// MarshalJSON writes the shortest representation that parses back to the same floats.
func (v Vector2) MarshalJSON() ([]byte, error) {
	b := []byte{'['}
	b = strconv.AppendFloat(b, v.x, floatformat, -1, 64)
	b = append(b, byte(','))
	b = strconv.AppendFloat(b, v.y, floatformat, -1, 64)
	return append(b, byte(']')), nil
}

func (v *Vector2) UnmarshalJSON(b []byte) error {
	var floats [2]float64
	if err := json.Unmarshal(b, &floats); err != nil {
		return err
	}

	v.x, v.y = floats[0], floats[1]
	return nil
}

func (a Vector2) Add(b Vector2) Vector2 {
	a.x += b.x
	a.y += b.y
	return a
}

func (a Vector2) Sub(b Vector2) Vector2 {
	a.x -= b.x
	a.y -= b.y
	return a
}

func (a Vector2) Scale(scale float64) Vector2 {
	a.x *= scale
	a.y *= scale
	return a
}

func (a Vector2) DivScalar(f float64) Vector2 {
	a.x /= f
	a.y /= f
	return a
}

func (a Vector2) Mag() float64 {
	return math.Hypot(a.x, a.y)
}

func (a Vector2) MagSq() float64 {
	return (a.x*a.x + a.y*a.y)
}

func (a Vector2) SetMag(mag float64) Vector2 {
	return a.Normalize().Scale(mag)
}

// Normalize returns the unit vector of a, or exactly the null vector when a has no length.
func (a Vector2) Normalize() Vector2 {
	mag := a.Mag()
	if mag == 0 || math.IsInf(mag, 0) || math.IsNaN(mag) {
		return MakeNullVector2()
	}
	return a.DivScalar(mag)
}

func (a Vector2) Unit() Vector2 {
	return a.Normalize()
}

func (a Vector2) Limit(max float64) Vector2 {

	mSq := a.MagSq()

	if mSq > max*max {
		return a.Normalize().Scale(max)
	}

	return a
}

// Angle is measured counter-clockwise from +x, in ]-Pi, Pi]
func (a Vector2) Angle() float64 {
	if a.x == 0 && a.y == 0 {
		return 0
	}

	return math.Atan2(a.y, a.x)
}

func (a Vector2) Cross(v Vector2) float64 {
	return a.x*v.y - a.y*v.x
}

func (a Vector2) Dot(v Vector2) float64 {
	return a.x*v.x + a.y*v.y
}

func (a Vector2) Distance(b Vector2) float64 {
	return b.Sub(a).Mag()
}

func (a Vector2) DistanceSq(b Vector2) float64 {
	return b.Sub(a).MagSq()
}

func (a Vector2) ManhattanDistance(b Vector2) float64 {
	return math.Abs(a.x-b.x) + math.Abs(a.y-b.y)
}

func (a Vector2) IsNull() bool {
	return number.IsZero(a.x) && number.IsZero(a.y)
}

func (a Vector2) Equals(b Vector2) bool {
	return b.Sub(a).IsNull()
}

func (a Vector2) String() string {
	return "<Vector2(" + number.FloatToStr(a.x, 5) + ", " + number.FloatToStr(a.y, 5) + ")>"
}

func (a Vector2) ToFloatArray() [2]float64 {
	return [2]float64{a.GetX(), a.GetY()}
}

func (a Vector2) ToB2Vec2() box2d.B2Vec2 {
	return box2d.MakeB2Vec2(a.GetX(), a.GetY())
}

func FromB2Vec2(v box2d.B2Vec2) Vector2 {
	return MakeVector2(v.X, v.Y)
}
