package ui

// ScrollState provides reusable vertical scroll tracking with smooth animation.
// Embed this struct in screens that need scrollable content.
type ScrollState struct {
	ScrollY       float64
	TargetScrollY float64
	// MaxScrollY bounds TargetScrollY; zero means the content fits.
	MaxScrollY float64
}

// HandleMouseWheel updates the target scroll position from mouse wheel input.
func (s *ScrollState) HandleMouseWheel() {
	_, wy := MouseWheelDelta()
	if wy != 0 {
		s.ScrollBy(-wy * ScrollWheelSpeed)
	}
}

// ScrollBy moves the target by dy, clamped to [0, MaxScrollY].
func (s *ScrollState) ScrollBy(dy float64) {
	s.TargetScrollY += dy
	s.clamp()
}

// SetContentHeight sets the scroll range for content of height h shown in
// a viewport of height view.
func (s *ScrollState) SetContentHeight(h, view float64) {
	s.MaxScrollY = h - view
	if s.MaxScrollY < 0 {
		s.MaxScrollY = 0
	}
	s.clamp()
}

func (s *ScrollState) clamp() {
	if s.TargetScrollY > s.MaxScrollY {
		s.TargetScrollY = s.MaxScrollY
	}
	if s.TargetScrollY < 0 {
		s.TargetScrollY = 0
	}
}

// Animate performs smooth scroll interpolation. Call this once per frame.
func (s *ScrollState) Animate() {
	s.ScrollY = Lerp(s.ScrollY, s.TargetScrollY, ScrollAnimSpeed)
}

// Reset sets scroll position back to top.
func (s *ScrollState) Reset() {
	s.ScrollY = 0
	s.TargetScrollY = 0
}
