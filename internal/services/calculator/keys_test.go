package calculator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenForKey(t *testing.T) {
	tests := []struct {
		key  string
		want Token
		ok   bool
	}{
		{"5", "5", true},
		{"*", Multiply, true},
		{"/", Divide, true},
		{"Enter", Solve, true},
		{"=", Solve, true},
		{"Escape", Clear, true},
		{"c", Clear, true},
		{"Backspace", Backspace, true},
		{".", Point, true},
		{"x", "", false},
		{"Tab", "", false},
	}

	for _, tt := range tests {
		got, ok := TokenForKey(tt.key)
		assert.Equal(t, tt.ok, ok, tt.key)
		assert.Equal(t, tt.want, got, tt.key)
	}
}

func TestHandleKey(t *testing.T) {
	m := New()
	for _, k := range []string{"1", "2", "*", "3", "Enter"} {
		assert.True(t, m.HandleKey(KeyEvent{Key: k}))
	}
	assert.Equal(t, "36", m.Display())

	t.Run("text input events are not consumed", func(t *testing.T) {
		m := New()
		assert.False(t, m.HandleKey(KeyEvent{Key: "7", FromTextInput: true}))
		assert.False(t, m.HandleKey(KeyEvent{Key: "Escape", FromTextInput: true}))
		assert.Equal(t, StateIdle, m.State())
	})

	t.Run("unmapped keys ignored", func(t *testing.T) {
		m := press("4")
		assert.False(t, m.HandleKey(KeyEvent{Key: "ArrowLeft"}))
		assert.Equal(t, "4", m.Display())
	})
}

func TestKeypadLayout(t *testing.T) {
	seen := map[Token]bool{}
	for _, row := range Keypad {
		for _, b := range row {
			assert.NotEmpty(t, b.Tooltip)
			seen[b.Token] = true
		}
	}
	for d := 0; d <= 9; d++ {
		assert.True(t, seen[Digit(d)], "digit %d missing", d)
	}
	for _, tok := range []Token{Add, Subtract, Multiply, Divide, Point, Clear, Solve} {
		assert.True(t, seen[tok], "token %q missing", tok)
	}
	last := Keypad[len(Keypad)-1]
	assert.Equal(t, Solve, last[len(last)-1].Token)
}
