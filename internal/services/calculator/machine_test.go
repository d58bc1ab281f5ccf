package calculator

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func press(tokens ...Token) *Machine {
	m := New()
	m.PressAll(tokens...)
	return m
}

func TestMachine_Sequences(t *testing.T) {
	tests := []struct {
		name       string
		tokens     []Token
		display    string
		expression string
		state      State
	}{
		{
			name:       "left to right chain",
			tokens:     []Token{"2", Add, "3", Multiply, "4", Solve},
			display:    "20",
			expression: "20",
			state:      StateSolved,
		},
		{
			name:       "division by zero",
			tokens:     []Token{"5", Divide, "0", Solve},
			display:    ErrorMarker,
			expression: "",
			state:      StateErrored,
		},
		{
			name:       "leading point",
			tokens:     []Token{Point, "5"},
			display:    "0.5",
			expression: "0.5",
			state:      StateAccumulating,
		},
		{
			name:       "display keeps keypad symbols",
			tokens:     []Token{"8", Divide, "2", Multiply, "3"},
			display:    "8÷2×3",
			expression: "8/2*3",
			state:      StateAccumulating,
		},
		{
			name:       "operator on neutral zero",
			tokens:     []Token{Add, "4", Solve},
			display:    "4",
			expression: "4",
			state:      StateSolved,
		},
		{
			name:       "solve with nothing entered",
			tokens:     []Token{Solve},
			display:    ErrorMarker,
			expression: "",
			state:      StateErrored,
		},
		{
			name:       "trailing operator",
			tokens:     []Token{"7", Add, Solve},
			display:    ErrorMarker,
			expression: "",
			state:      StateErrored,
		},
		{
			name:       "chained after solve",
			tokens:     []Token{"9", Subtract, "4", Solve, Multiply, "3", Solve},
			display:    "15",
			expression: "15",
			state:      StateSolved,
		},
		{
			name:       "digit after solve appends",
			tokens:     []Token{"1", Add, "1", Solve, "0"},
			display:    "20",
			expression: "20",
			state:      StateAccumulating,
		},
		{
			name:       "negative result chains",
			tokens:     []Token{"2", Subtract, "7", Solve, Add, "3", Solve},
			display:    "-2",
			expression: "-2",
			state:      StateSolved,
		},
		{
			name:       "fractional result",
			tokens:     []Token{"1", Divide, "4", Solve},
			display:    "0.25",
			expression: "0.25",
			state:      StateSolved,
		},
		{
			name:       "repeating fraction rounded",
			tokens:     []Token{"2", Divide, "3", Solve},
			display:    "0.66666667",
			expression: "0.66666667",
			state:      StateSolved,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := press(tt.tokens...)
			assert.Equal(t, tt.display, m.Display())
			assert.Equal(t, tt.expression, m.Expression())
			assert.Equal(t, tt.state, m.State())
		})
	}
}

func TestMachine_ClearFromAnyState(t *testing.T) {
	starts := map[string][]Token{
		"idle":         nil,
		"accumulating": {"1", Add, "2"},
		"solved":       {"1", Add, "2", Solve},
		"errored":      {"1", Divide, "0", Solve},
	}

	for name, tokens := range starts {
		t.Run(name, func(t *testing.T) {
			m := press(tokens...)
			m.Press(Clear)
			assert.Equal(t, Snapshot{Display: NeutralZero, Expression: "", State: StateIdle}, m.Snapshot())

			m.Press(Clear)
			assert.Equal(t, StateIdle, m.State())
			assert.NoError(t, m.Err())
		})
	}
}

func TestMachine_DecimalPoint(t *testing.T) {
	t.Run("second point in operand ignored", func(t *testing.T) {
		m := press("1", Point, "5", Point, "2")
		assert.Equal(t, "1.52", m.Display())
		assert.Equal(t, "1.52", m.Expression())
	})

	t.Run("point allowed again after operator", func(t *testing.T) {
		m := press("1", Point, "5", Add, Point, "5")
		assert.Equal(t, "1.5+0.5", m.Display())
		assert.Equal(t, "1.5+0.5", m.Expression())

		m.Press(Solve)
		assert.Equal(t, "2", m.Display())
	})

	t.Run("point after fractional result ignored", func(t *testing.T) {
		m := press("1", Divide, "4", Solve, Point)
		assert.Equal(t, "0.25", m.Display())
	})

	t.Run("point after error starts fresh", func(t *testing.T) {
		m := press("1", Divide, "0", Solve, Point, "3")
		assert.Equal(t, "0.3", m.Display())
		assert.Equal(t, "0.3", m.Expression())
	})

	t.Run("every operand has at most one point", func(t *testing.T) {
		m := press(Point, Point, "1", Point, Multiply, "2", Point, Point, "5", Point)
		assert.Equal(t, "0.1×2.5", m.Display())
		for _, operand := range []string{"0.1", "2.5"} {
			assert.Contains(t, m.Expression(), operand)
		}
	})
}

func TestMachine_Backspace(t *testing.T) {
	t.Run("removes last character", func(t *testing.T) {
		m := press("1", "2", Add, "3", Backspace)
		assert.Equal(t, "12+", m.Display())
		assert.Equal(t, "12+", m.Expression())
	})

	t.Run("removes multibyte operator", func(t *testing.T) {
		m := press("6", Multiply, Backspace)
		assert.Equal(t, "6", m.Display())
		assert.Equal(t, "6", m.Expression())
	})

	t.Run("single character returns to idle", func(t *testing.T) {
		m := press("7", Backspace)
		assert.Equal(t, StateIdle, m.State())
	})

	t.Run("no-op on neutral zero", func(t *testing.T) {
		m := press(Backspace, Backspace)
		assert.Equal(t, Snapshot{Display: NeutralZero, State: StateIdle}, m.Snapshot())
	})

	t.Run("errored resets", func(t *testing.T) {
		m := press("1", Divide, "0", Solve, Backspace)
		assert.Equal(t, StateIdle, m.State())
	})

	t.Run("digit after erasing the only digit replaces zero", func(t *testing.T) {
		m := press("5", Backspace, "8")
		assert.Equal(t, "8", m.Display())
		assert.Equal(t, "8", m.Expression())
	})
}

func TestMachine_ErrorRecovery(t *testing.T) {
	m := press("9", Divide, "0", Solve)
	require.Equal(t, StateErrored, m.State())
	assert.True(t, errors.Is(m.Err(), ErrDivisionByZero))

	m.Press("4")
	assert.Equal(t, "4", m.Display())
	assert.Equal(t, "4", m.Expression())
	assert.NoError(t, m.Err())

	m = press("9", Divide, "0", Solve, Add, "2", Solve)
	assert.Equal(t, "2", m.Display())
}

func TestMachine_SolvedFlagClearedByInput(t *testing.T) {
	m := press("3", Add, "4", Solve)
	require.Equal(t, StateSolved, m.State())

	m.Press(Multiply)
	assert.Equal(t, StateAccumulating, m.State())
	assert.Equal(t, "7×", m.Display())
}

func TestFromSnapshot(t *testing.T) {
	t.Run("round trip continues", func(t *testing.T) {
		orig := press("1", "2", Add, "3")
		m, err := FromSnapshot(orig.Snapshot())
		require.NoError(t, err)

		m.Press(Solve)
		assert.Equal(t, "15", m.Display())
	})

	t.Run("empty snapshot is idle", func(t *testing.T) {
		m, err := FromSnapshot(Snapshot{})
		require.NoError(t, err)
		assert.Equal(t, StateIdle, m.State())
	})

	t.Run("solved state survives", func(t *testing.T) {
		m, err := FromSnapshot(press("2", Add, "2", Solve).Snapshot())
		require.NoError(t, err)
		assert.Equal(t, StateSolved, m.State())
	})

	t.Run("keypad symbols match canonical operators", func(t *testing.T) {
		m, err := FromSnapshot(Snapshot{Display: "5÷2×-1.5", Expression: "5/2*-1.5"})
		require.NoError(t, err)
		m.Press(Solve)
		assert.Equal(t, "-3.75", m.Display())
	})

	invalid := []Snapshot{
		{Expression: "1+2"},
		{Display: "1+2", Expression: "1+alert(1)"},
		{Display: ErrorMarker, Expression: "5"},
		{Display: "1.2.3", Expression: "1.2.3"},
		{Display: "4+1..5", Expression: "4+1..5"},
		{Display: "hello", Expression: "5"},
		{Display: "5*2", Expression: "5*2"},
		{Display: "7", Expression: ""},
		{Display: "0", Expression: strings.Repeat("9", maxEvaluateLength+1)},
	}
	for _, s := range invalid {
		_, err := FromSnapshot(s)
		assert.ErrorIs(t, err, ErrInvalidSnapshot, "snapshot %+v", s)
	}
}

func TestMachine_ExpressionIsBounded(t *testing.T) {
	m := press("9")
	for i := 0; i < 10*MaxExpressionLength; i++ {
		m.PressAll(Multiply, "9", Point)
	}
	assert.LessOrEqual(t, len(m.Expression()), MaxExpressionLength)
	assert.Equal(t, KeypadForm(m.Expression()), m.Display())

	m.Press(Backspace)
	m.Press(Solve)
	assert.NotEqual(t, StateErrored, m.State(), "reason: %v", m.Err())
	assert.LessOrEqual(t, len(m.Expression()), maxEvaluateLength)

	m.PressAll("1", Add, "1")
	_, err := FromSnapshot(m.Snapshot())
	assert.NoError(t, err)
}
