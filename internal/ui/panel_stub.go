//go:build !ebiten

package ui

// Panel is a no-op placeholder used when the ebiten build tag is absent.
type Panel struct{}

// NewPanel constructs a stub panel.
func NewPanel(int) *Panel { return &Panel{} }

// Width is zero in headless builds.
func (p *Panel) Width() int { return 0 }

// MinHeight is zero in headless builds.
func (p *Panel) MinHeight() int { return 0 }

// Update never reports a command in headless builds.
func (p *Panel) Update(int) Command { return CommandNone }

// Draw is a no-op placeholder.
func (p *Panel) Draw(any, int, int, Status) {}
