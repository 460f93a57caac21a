// Package event defines the input events produced by the windowing thread
// and the bounded queue that carries them to the simulation loop.
package event

// Kind identifies the variant of an Event.
type Kind int

const (
	KindWindowMoved Kind = iota
	KindWindowResized
	KindWindowClosed
	KindWindowRefreshed
	KindFocusChanged
	KindIconifyChanged
	KindFramebufferResized
	KindMouseButton
	KindCursorMoved
	KindCursorEntered
	KindScroll
	KindKey
	KindChar
	KindCharMods
)

// Event is one input occurrence. Each variant carries only primitive fields.
type Event interface {
	Kind() Kind
}

// WindowMoved reports the latest window position.
type WindowMoved struct {
	X, Y int
}

// WindowResized reports the latest window size in screen coordinates.
type WindowResized struct {
	Width, Height int
}

// WindowClosed requests shutdown of the simulation loop.
type WindowClosed struct{}

// WindowRefreshed asks for a redraw.
type WindowRefreshed struct{}

// FocusChanged reports input focus gain or loss.
type FocusChanged struct {
	Focused bool
}

// IconifyChanged reports minimize or restore.
type IconifyChanged struct {
	Iconified bool
}

// FramebufferResized reports the latest framebuffer size in pixels.
type FramebufferResized struct {
	Width, Height int
}

// MouseButton reports a button press or release.
type MouseButton struct {
	Button  int
	Pressed bool
}

// CursorMoved reports an absolute cursor position.
type CursorMoved struct {
	X, Y float64
}

// CursorEntered reports the cursor entering or leaving the window.
type CursorEntered struct {
	Entered bool
}

// Scroll reports wheel movement.
type Scroll struct {
	XOffset, YOffset float64
}

// Key reports a key press or release.
type Key struct {
	Code    int
	Pressed bool
	Mods    int
}

// Char reports a typed character.
type Char struct {
	Codepoint rune
}

// CharMods reports a typed character with modifier state.
type CharMods struct {
	Codepoint rune
	Mods      int
}

func (WindowMoved) Kind() Kind        { return KindWindowMoved }
func (WindowResized) Kind() Kind      { return KindWindowResized }
func (WindowClosed) Kind() Kind       { return KindWindowClosed }
func (WindowRefreshed) Kind() Kind    { return KindWindowRefreshed }
func (FocusChanged) Kind() Kind       { return KindFocusChanged }
func (IconifyChanged) Kind() Kind     { return KindIconifyChanged }
func (FramebufferResized) Kind() Kind { return KindFramebufferResized }
func (MouseButton) Kind() Kind        { return KindMouseButton }
func (CursorMoved) Kind() Kind        { return KindCursorMoved }
func (CursorEntered) Kind() Kind      { return KindCursorEntered }
func (Scroll) Kind() Kind             { return KindScroll }
func (Key) Kind() Kind                { return KindKey }
func (Char) Kind() Kind               { return KindChar }
func (CharMods) Kind() Kind           { return KindCharMods }

// coalesces reports whether a kind represents current state rather than a
// discrete occurrence. A pending event of such a kind is overwritten instead
// of appended.
func coalesces(k Kind) bool {
	switch k {
	case KindWindowMoved, KindWindowResized:
		return true
	}
	return false
}
