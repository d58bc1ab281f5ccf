package calculator

import (
	"fmt"
	"strings"
)

// Token is one discrete calculator input.
type Token string

const (
	Add       Token = "+"
	Subtract  Token = "-"
	Multiply  Token = "×"
	Divide    Token = "÷"
	Point     Token = "."
	Backspace Token = "Backspace"
	Clear     Token = "C"
	Solve     Token = "="
)

// Digit returns the token for a single decimal digit.
func Digit(d int) Token {
	if d < 0 || d > 9 {
		panic(fmt.Sprintf("calculator: digit out of range: %d", d))
	}
	return Token(rune('0' + d))
}

// IsDigit reports whether t is one of 0-9.
func (t Token) IsDigit() bool {
	return len(t) == 1 && t[0] >= '0' && t[0] <= '9'
}

// IsOperator reports whether t is one of the four binary operators.
func (t Token) IsOperator() bool {
	switch t {
	case Add, Subtract, Multiply, Divide:
		return true
	}
	return false
}

// canonical returns the evaluation symbol for an operator token.
func (t Token) canonical() string {
	switch t {
	case Multiply:
		return "*"
	case Divide:
		return "/"
	}
	return string(t)
}

var tokenNames = map[string]Token{
	"add":       Add,
	"plus":      Add,
	"subtract":  Subtract,
	"minus":     Subtract,
	"multiply":  Multiply,
	"times":     Multiply,
	"*":         Multiply,
	"divide":    Divide,
	"/":         Divide,
	"point":     Point,
	"decimal":   Point,
	"backspace": Backspace,
	"clear":     Clear,
	"c":         Clear,
	"solve":     Solve,
	"equals":    Solve,
}

// ParseToken accepts a token symbol (as shown on the keypad) or its name.
func ParseToken(s string) (Token, error) {
	t := Token(s)
	switch {
	case t.IsDigit(), t.IsOperator(), t == Point, t == Backspace, t == Clear, t == Solve:
		return t, nil
	}
	if tok, ok := tokenNames[strings.ToLower(strings.TrimSpace(s))]; ok {
		return tok, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownToken, s)
}

// State is the coarse calculator state.
type State string

const (
	StateIdle         State = "idle"
	StateAccumulating State = "accumulating"
	StateSolved       State = "solved"
	StateErrored      State = "errored"
)

// Snapshot is the externally visible calculator state.
type Snapshot struct {
	Display    string `json:"display"`
	Expression string `json:"expression"`
	State      State  `json:"state"`
	// Reason explains a failed solve. It is empty unless State is errored.
	Reason string `json:"reason,omitempty"`
}
