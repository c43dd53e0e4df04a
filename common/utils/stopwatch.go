package utils

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

type stopwatchLap struct {
	start time.Time
	total time.Duration
	count int
	order int
}

// Stopwatch accumulates wall time per label; laps may be started and stopped repeatedly.
type Stopwatch struct {
	name string
	laps map[string]*stopwatchLap
}

func MakeStopwatch(name string) *Stopwatch {
	return &Stopwatch{
		name: name,
		laps: make(map[string]*stopwatchLap),
	}
}

func (s *Stopwatch) Start(label string) {
	lap, ok := s.laps[label]
	if !ok {
		lap = &stopwatchLap{order: len(s.laps)}
		s.laps[label] = lap
	}

	lap.start = time.Now()
}

func (s *Stopwatch) Stop(label string) time.Duration {
	lap, ok := s.laps[label]
	if !ok || lap.start.IsZero() {
		return 0
	}

	elapsed := time.Since(lap.start)
	lap.total += elapsed
	lap.count++
	lap.start = time.Time{}

	return elapsed
}

func (s *Stopwatch) Get(label string) time.Duration {
	if lap, ok := s.laps[label]; ok {
		return lap.total
	}

	return 0
}

func (s *Stopwatch) String() string {
	labels := make([]string, 0, len(s.laps))
	for label := range s.laps {
		labels = append(labels, label)
	}

	sort.Slice(labels, func(i, j int) bool {
		return s.laps[labels[i]].order < s.laps[labels[j]].order
	})

	var b strings.Builder
	b.WriteString(s.name)
	for _, label := range labels {
		lap := s.laps[label]
		fmt.Fprintf(&b, "\n  %-24s %10s (x%d)", label, lap.total, lap.count)
	}

	return b.String()
}
