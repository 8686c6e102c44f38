// Package trail keeps the sliding window of segments drawn by the player and
// detects when the newest segment closes a loop over the oldest one.
package trail

import (
	"github.com/lixenwraith/boxes/geom"
	"github.com/lixenwraith/boxes/parameter"
)

// Outcome reports what Extend did to the trail
type Outcome uint8

const (
	// Extended moved the newest segment's endpoint
	Extended Outcome = iota
	// Branched appended a new segment after an axis change
	Branched
	// Overlength reset the trail because the newest segment grew past the maximum length
	Overlength
)

// String returns human-readable outcome name
func (o Outcome) String() string {
	switch o {
	case Branched:
		return "Branched"
	case Overlength:
		return "Overlength"
	default:
		return "Extended"
	}
}

// Stroke is a segment as presented to renderers
type Stroke struct {
	geom.Segment
	Warning bool // Newest segment close to the overlength reset
}

// Trail is an ordered sequence of segments, oldest first
// Always holds at least one segment
type Trail struct {
	segments    []geom.Segment
	maxLength   float64
	warnLength  float64
	maxSegments int
}

// Option configures a Trail
type Option func(*Trail)

// WithMaxLength sets the overlength threshold; the warning threshold follows at the same ratio
func WithMaxLength(length float64) Option {
	return func(t *Trail) {
		t.maxLength = length
		t.warnLength = length * parameter.TrailWarnRatio
	}
}

// WithMaxSegments sets the sliding window size
func WithMaxSegments(n int) Option {
	return func(t *Trail) {
		t.maxSegments = n
	}
}

// New creates a trail holding one zero-length segment at anchor
func New(anchor geom.Point, opts ...Option) *Trail {
	t := &Trail{
		maxLength:   parameter.TrailMaxLength,
		warnLength:  parameter.TrailWarnLength,
		maxSegments: parameter.TrailMaxSegments,
	}
	for _, opt := range opts {
		opt(t)
	}
	if t.maxSegments < 1 {
		t.maxSegments = 1
	}
	t.segments = make([]geom.Segment, 0, t.maxSegments+1)
	t.Reset(anchor)
	return t
}

// Reset replaces every segment with a single zero-length segment at anchor
func (t *Trail) Reset(anchor geom.Point) {
	t.segments = append(t.segments[:0], geom.Seg(anchor, anchor))
}

// Extend applies one frame of player movement
// cur and prev are the player's positions after and before the frame's step
func (t *Trail) Extend(cur, prev geom.Point, axisChanged bool) Outcome {
	last := &t.segments[len(t.segments)-1]

	if last.Len() > t.maxLength {
		t.Reset(cur)
		return Overlength
	}

	outcome := Extended
	if axisChanged {
		t.segments = append(t.segments, geom.Seg(prev, cur))
		outcome = Branched
	} else {
		last.To = cur
	}

	for len(t.segments) > t.maxSegments {
		t.segments = t.segments[1:]
	}
	return outcome
}

// ClosesLoop tests the newest segment against the oldest once the window is full
// On a hit, returns the bounding box of both segments' endpoints
// Only first against last is tested; loops that never reach that pairing decay out of the window
func (t *Trail) ClosesLoop() (geom.Box, bool) {
	if len(t.segments) < t.maxSegments {
		return geom.Box{}, false
	}

	first := t.segments[0]
	last := t.segments[len(t.segments)-1]
	if !last.Intersects(first) {
		return geom.Box{}, false
	}

	return geom.BoundsOf(first.From, first.To, last.From, last.To), true
}

// Len returns the number of segments
func (t *Trail) Len() int {
	return len(t.segments)
}

// Last returns the newest segment
func (t *Trail) Last() geom.Segment {
	return t.segments[len(t.segments)-1]
}

// Segments returns a copy of the segments, oldest first
func (t *Trail) Segments() []geom.Segment {
	out := make([]geom.Segment, len(t.segments))
	copy(out, t.segments)
	return out
}

// Strokes returns the segments flagged for rendering
// Only the newest segment can carry the warning flag
func (t *Trail) Strokes() []Stroke {
	out := make([]Stroke, len(t.segments))
	lastIdx := len(t.segments) - 1
	for i, seg := range t.segments {
		out[i] = Stroke{
			Segment: seg,
			Warning: i == lastIdx && seg.Len() >= t.warnLength,
		}
	}
	return out
}

// MaxLength returns the overlength threshold
func (t *Trail) MaxLength() float64 {
	return t.maxLength
}
