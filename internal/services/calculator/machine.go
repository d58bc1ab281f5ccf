package calculator

import (
	"strings"
	"unicode/utf8"
)

const (
	// MaxExpressionLength caps the expression. Input that would grow it
	// further is ignored.
	MaxExpressionLength = 64

	// NeutralZero is shown while nothing has been entered.
	NeutralZero = "0"
	// ErrorMarker is shown after a failed solve.
	ErrorMarker = "Error"
)

// Machine builds an arithmetic expression from tokens and solves it.
// display uses keypad symbols; expression holds the same text with
// canonical operators. A Machine is not safe for concurrent use.
type Machine struct {
	display    string
	expression string
	solved     bool
	lastErr    error
}

// New returns a machine in the idle state.
func New() *Machine {
	return &Machine{display: NeutralZero}
}

// FromSnapshot rebuilds a machine from a previously returned snapshot.
// The display must be the keypad form of the expression, or the neutral
// zero or error marker over an empty expression.
func FromSnapshot(s Snapshot) (*Machine, error) {
	if s.Display == "" && s.Expression == "" {
		return New(), nil
	}
	if len(s.Expression) > maxEvaluateLength {
		return nil, ErrInvalidSnapshot
	}
	for i := 0; i < len(s.Expression); i++ {
		if !isNumberByte(s.Expression[i]) && !isOperatorByte(s.Expression[i]) {
			return nil, ErrInvalidSnapshot
		}
	}
	for _, operand := range strings.FieldsFunc(s.Expression, isOperatorRune) {
		if strings.Count(operand, ".") > 1 {
			return nil, ErrInvalidSnapshot
		}
	}

	switch {
	case s.Expression == "":
		if s.Display != NeutralZero && s.Display != ErrorMarker {
			return nil, ErrInvalidSnapshot
		}
	case s.Display != KeypadForm(s.Expression):
		return nil, ErrInvalidSnapshot
	}

	return &Machine{
		display:    s.Display,
		expression: s.Expression,
		solved:     s.State == StateSolved && s.Expression != "",
	}, nil
}

// Display returns the text shown to the user.
func (m *Machine) Display() string { return m.display }

// Expression returns the canonical expression accumulated so far.
func (m *Machine) Expression() string { return m.expression }

// Err returns the reason for the last failed solve, if the machine is errored.
func (m *Machine) Err() error {
	if m.display != ErrorMarker {
		return nil
	}
	return m.lastErr
}

// State derives the coarse state from the current fields.
func (m *Machine) State() State {
	switch {
	case m.display == ErrorMarker:
		return StateErrored
	case m.solved:
		return StateSolved
	case m.display == NeutralZero && m.expression == "":
		return StateIdle
	default:
		return StateAccumulating
	}
}

// Snapshot returns a copy of the visible state.
func (m *Machine) Snapshot() Snapshot {
	snap := Snapshot{
		Display:    m.display,
		Expression: m.expression,
		State:      m.State(),
	}
	if err := m.Err(); err != nil {
		snap.Reason = err.Error()
	}
	return snap
}

// Press applies a single token.
func (m *Machine) Press(t Token) {
	if t != Solve {
		m.solved = false
	}

	switch {
	case t == Clear:
		m.reset()
	case t == Backspace:
		m.backspace()
	case t == Point:
		m.point()
	case t == Solve:
		m.solve()
	case t.IsDigit():
		m.digit(t)
	case t.IsOperator():
		m.operator(t)
	}
}

// PressAll applies tokens in order.
func (m *Machine) PressAll(tokens ...Token) {
	for _, t := range tokens {
		m.Press(t)
	}
}

func (m *Machine) reset() {
	m.display = NeutralZero
	m.expression = ""
	m.solved = false
	m.lastErr = nil
}

func (m *Machine) backspace() {
	if m.display == ErrorMarker {
		m.reset()
		return
	}
	if m.display == NeutralZero && m.expression == "" {
		return
	}

	if m.expression != "" {
		m.expression = m.expression[:len(m.expression)-1]
	}
	if utf8.RuneCountInString(m.display) <= 1 {
		m.display = NeutralZero
	} else {
		_, size := utf8.DecodeLastRuneInString(m.display)
		m.display = m.display[:len(m.display)-size]
	}
	if m.display == NeutralZero {
		m.expression = ""
	}
}

// lastOperand returns the text after the final operator in expr.
func lastOperand(expr string) string {
	if i := strings.LastIndexAny(expr, "+-*/"); i >= 0 {
		return expr[i+1:]
	}
	return expr
}

// room reports whether n more bytes fit in the expression.
func (m *Machine) room(n int) bool {
	return len(m.expression)+n <= MaxExpressionLength
}

func (m *Machine) point() {
	if m.display == ErrorMarker {
		m.reset()
	}

	operand := lastOperand(m.expression)
	if strings.Contains(operand, ".") {
		return
	}

	if operand == "" {
		if !m.room(2) {
			return
		}
		if m.expression == "" {
			m.display = "0."
			m.expression = "0."
			return
		}
		m.display += "0."
		m.expression += "0."
		return
	}
	if !m.room(1) {
		return
	}
	m.display += "."
	m.expression += "."
}

func (m *Machine) digit(t Token) {
	if m.display == NeutralZero || m.display == ErrorMarker {
		m.display = string(t)
		m.expression = string(t)
		m.lastErr = nil
		return
	}
	if !m.room(1) {
		return
	}
	m.display += string(t)
	m.expression += string(t)
}

func (m *Machine) operator(t Token) {
	if m.display == ErrorMarker {
		m.reset()
	}
	if m.expression == "" {
		m.expression = m.display
	}
	if !m.room(1) {
		return
	}
	m.display += string(t)
	m.expression += t.canonical()
}

func (m *Machine) solve() {
	result, err := Evaluate(m.expression)
	if err != nil {
		m.display = ErrorMarker
		m.expression = ""
		m.solved = false
		m.lastErr = err
		return
	}

	text := FormatResult(result)
	m.display = text
	m.expression = text
	m.solved = true
	m.lastErr = nil
}
