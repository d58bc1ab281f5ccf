package calculator

// KeyEvent is a keyboard event forwarded by the host UI.
type KeyEvent struct {
	Key string `json:"key"`
	// FromTextInput is set when the event originated in a text-entry field.
	// Such events belong to that field and never reach the calculator.
	FromTextInput bool `json:"fromTextInput,omitempty"`
}

// TokenForKey maps a keyboard key to a calculator token.
func TokenForKey(key string) (Token, bool) {
	if t := Token(key); t.IsDigit() {
		return t, true
	}

	switch key {
	case ".":
		return Point, true
	case "+":
		return Add, true
	case "-":
		return Subtract, true
	case "*":
		return Multiply, true
	case "/":
		return Divide, true
	case "Enter", "=":
		return Solve, true
	case "Escape", "c", "C":
		return Clear, true
	case "Backspace":
		return Backspace, true
	}
	return "", false
}

// HandleKey applies a key event and reports whether it was consumed.
func (m *Machine) HandleKey(ev KeyEvent) bool {
	if ev.FromTextInput {
		return false
	}
	t, ok := TokenForKey(ev.Key)
	if !ok {
		return false
	}
	m.Press(t)
	return true
}
