package ui

import "math"

const wheelEpsilon = 1e-6

// ViewerState holds the navigation and zoom state driven by input. It has no
// dependency on a live window so it can be stepped in tests.
type ViewerState struct {
	// ZoomPercent is the normalized zoom control in [0,1].
	ZoomPercent float64

	index   int
	changed bool
}

// NewViewerState returns a state at the first image. The first frame with
// images reports a change so the window title gets set.
func NewViewerState(zoomPercent float64) *ViewerState {
	return &ViewerState{
		ZoomPercent: clamp(zoomPercent, 0, 1),
		changed:     true,
	}
}

// Index returns the selected index.
func (s *ViewerState) Index() int {
	return s.index
}

// Navigate moves the selection by delta, wrapping around count images.
// A positive delta moves forward, a negative delta moves backward.
func (s *ViewerState) Navigate(delta, count int) {
	if count <= 0 {
		s.index = 0
		return
	}
	if delta != 0 {
		s.changed = true
	}
	s.index = Wrap(s.index+delta, count)
}

// ApplyWheel nudges the zoom percent by one ZoomStep per wheel unit and
// reports whether the camera needs recomputing.
func (s *ViewerState) ApplyWheel(wheelY float64) bool {
	if math.Abs(wheelY) <= wheelEpsilon {
		return false
	}
	s.ZoomPercent = clamp(s.ZoomPercent+wheelY*ZoomStep, 0, 1)
	return true
}

// TakeChanged reports whether the selection changed since the last call and
// clears the flag.
func (s *ViewerState) TakeChanged() bool {
	c := s.changed
	s.changed = false
	return c
}

// Wrap maps i into [0, count). The formula `(a % n + n) % n` handles negative
// numbers correctly for modular arithmetic.
func Wrap(i, count int) int {
	if count <= 0 {
		return 0
	}
	return (i%count + count) % count
}
