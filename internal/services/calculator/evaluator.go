package calculator

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	// resultPrecision is the number of fractional digits kept in a solved result.
	resultPrecision = 8
	// divisionPrecision bounds intermediate quotients during a fold.
	divisionPrecision = 16
	// maxEvaluateLength leaves room for a solved result seeding the next
	// expression.
	maxEvaluateLength = 2 * MaxExpressionLength
)

var (
	displaySymbols = strings.NewReplacer("×", "*", "÷", "/")
	keypadSymbols  = strings.NewReplacer("*", "×", "/", "÷")
)

// Canonicalize maps display operator symbols to their evaluation form.
func Canonicalize(expr string) string {
	return displaySymbols.Replace(expr)
}

// KeypadForm maps a canonical expression to the text shown on the display.
func KeypadForm(expr string) string {
	return keypadSymbols.Replace(expr)
}

func isOperatorByte(c byte) bool {
	return c == '+' || c == '-' || c == '*' || c == '/'
}

func isOperatorRune(r rune) bool {
	return r < 0x80 && isOperatorByte(byte(r))
}

func isNumberByte(c byte) bool {
	return (c >= '0' && c <= '9') || c == '.'
}

// Evaluate folds expr strictly left to right: "2+3*4" is (2+3)*4.
// Each operand may carry a single leading sign, so "5*-2" and a seeded
// negative result like "-5+3" are accepted.
func Evaluate(expr string) (decimal.Decimal, error) {
	clean := Canonicalize(expr)
	if clean == "" {
		return decimal.Zero, fmt.Errorf("%w: empty expression", ErrMalformedExpression)
	}
	if len(clean) > maxEvaluateLength {
		return decimal.Zero, fmt.Errorf("%w: longer than %d characters", ErrMalformedExpression, maxEvaluateLength)
	}
	for i := 0; i < len(clean); i++ {
		if !isNumberByte(clean[i]) && !isOperatorByte(clean[i]) {
			return decimal.Zero, fmt.Errorf("%w: unexpected character %q", ErrMalformedExpression, clean[i])
		}
	}

	operands, operators, err := tokenize(clean)
	if err != nil {
		return decimal.Zero, err
	}

	acc := operands[0]
	for i, op := range operators {
		rhs := operands[i+1]
		switch op {
		case '+':
			acc = acc.Add(rhs)
		case '-':
			acc = acc.Sub(rhs)
		case '*':
			acc = acc.Mul(rhs)
		case '/':
			if rhs.IsZero() {
				return decimal.Zero, ErrDivisionByZero
			}
			acc = acc.DivRound(rhs, divisionPrecision)
		}
	}
	return acc, nil
}

// tokenize splits a canonical expression into operands and the binary
// operators between them. len(operands) == len(operators)+1 on success.
func tokenize(s string) ([]decimal.Decimal, []byte, error) {
	var (
		operands  []decimal.Decimal
		operators []byte
	)

	i := 0
	for {
		start := i
		if i < len(s) && (s[i] == '+' || s[i] == '-') {
			i++
		}
		numStart := i
		for i < len(s) && isNumberByte(s[i]) {
			i++
		}
		d, err := parseOperand(s[start:i], s[numStart:i])
		if err != nil {
			return nil, nil, err
		}
		operands = append(operands, d)

		if i == len(s) {
			return operands, operators, nil
		}
		operators = append(operators, s[i])
		i++
		if i == len(s) {
			return nil, nil, fmt.Errorf("%w: trailing operator %q", ErrMalformedExpression, s[i-1])
		}
	}
}

func parseOperand(raw, number string) (decimal.Decimal, error) {
	if strings.Count(number, ".") > 1 || strings.Trim(number, ".") == "" {
		return decimal.Zero, fmt.Errorf("%w: bad operand %q", ErrMalformedExpression, raw)
	}

	normalized := strings.TrimSuffix(number, ".")
	if strings.HasPrefix(normalized, ".") {
		normalized = "0" + normalized
	}
	d, err := decimal.NewFromString(normalized)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: bad operand %q", ErrMalformedExpression, raw)
	}
	if strings.HasPrefix(raw, "-") {
		d = d.Neg()
	}
	return d, nil
}

// FormatResult renders a solved value. Integral values have no fractional
// part; other values are rounded to resultPrecision digits with trailing
// zeros removed.
func FormatResult(d decimal.Decimal) string {
	if d.IsInteger() {
		return d.String()
	}
	return d.Round(resultPrecision).String()
}
