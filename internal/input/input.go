package input

// Key represents a keyboard key.
type Key int32

// Only defining keys used by the board
//
// These are our own values, mapped to ebiten keys in the non-headless
// build, so that ebiten isn't included as a package for headless builds
const (
	KeyUnknown Key = iota
	KeyO
	KeyEnter
	KeyR
	KeyZ
	KeyBackspace
)

// IsKeyJustPressed is true only on the frame the key went down
func IsKeyJustPressed(key Key) bool {
	return isKeyJustPressed(key)
}

// MouseButton represents a mouse button (left, right or middle)
type MouseButton int32

// Define all mouse buttons as there are only 3.
//
// We indirectly use ebiten constants so that ebiten isn't included
// as a package for headless builds
const (
	MouseButtonLeft   = MouseButton(0)
	MouseButtonRight  = MouseButton(1)
	MouseButtonMiddle = MouseButton(2)
)

func IsMouseButtonPressed(mouseButton MouseButton) bool {
	return isMouseButtonPressed(mouseButton)
}

// MousePosition returns the mouse/cursor position
//
// For headless builds, this always returns (0,0)
func MousePosition() (int, int) {
	x, y := mousePosition()
	return x, y
}

type TouchID int

func TouchIDs() []TouchID {
	return touchIDs()
}

func TouchPosition(touchID TouchID) (int, int) {
	x, y := touchPosition(touchID)
	return x, y
}

// Pointer is the primary pointer: the left mouse button, or the first
// touch on touch screens. id is 0 for the mouse, otherwise it changes with
// each new touch.
func Pointer() (pressed bool, id, x, y int) {
	if ids := TouchIDs(); len(ids) > 0 {
		x, y := TouchPosition(ids[0])
		return true, int(ids[0]) + 1, x, y
	}
	x, y = MousePosition()
	return IsMouseButtonPressed(MouseButtonLeft), 0, x, y
}
