package gb

// References:
//   https://gbdev.io/pandocs/Joypad_Input.html

type button int

// Joypad bit assignments of Poll, 1 means pressed.
// bit    7    6  5    4     3      2      1 0
// button Down Up Left Right Start Select B A
const (
	ButtonA button = iota
	ButtonB
	ButtonSelect
	ButtonStart
	ButtonRight
	ButtonLeft
	ButtonUp
	ButtonDown
)

// Joypad holds the host side button state and serves it as the bus Input.
type Joypad struct {
	buttons [8]bool
}

func NewJoypad() *Joypad {
	return &Joypad{}
}

// Set replaces the button state and reports whether a button went down.
func (j *Joypad) Set(buttons [8]bool) bool {
	pressed := false
	for i, b := range buttons {
		if b && !j.buttons[i] {
			pressed = true
		}
	}
	j.buttons = buttons
	return pressed
}

// Poll implements Input.
func (j *Joypad) Poll() byte {
	var x byte
	for i, b := range j.buttons {
		if b {
			x |= 1 << i
		}
	}
	return x
}
