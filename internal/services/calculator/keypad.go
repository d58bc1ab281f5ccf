package calculator

// Button is one keypad button.
type Button struct {
	Label   string `json:"label"`
	Token   Token  `json:"token"`
	Tooltip string `json:"tooltip"`
}

// Keypad is the button layout, row by row, with the solve button last.
var Keypad = [][]Button{
	{button("7"), button("8"), button("9"), {Label: "÷", Token: Divide, Tooltip: "Divide [/]"}},
	{button("4"), button("5"), button("6"), {Label: "×", Token: Multiply, Tooltip: "Multiply [*]"}},
	{button("1"), button("2"), button("3"), {Label: "-", Token: Subtract, Tooltip: "Subtract [-]"}},
	{{Label: "C", Token: Clear, Tooltip: "Clear [Esc]"}, button("0"), {Label: ".", Token: Point, Tooltip: "Decimal [.]"}, {Label: "+", Token: Add, Tooltip: "Add [+]"}},
	{{Label: "EXECUTE SOLVE", Token: Solve, Tooltip: "Solve [Enter]"}},
}

func button(digit string) Button {
	return Button{Label: digit, Token: Token(digit), Tooltip: digit}
}
