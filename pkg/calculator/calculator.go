// Package calculator implements the arithmetic behind the calculator menu.
package calculator

import (
	"math"
	"strconv"
	"strings"

	"github.com/agentstation/mobileapp/pkg/errors"
)

var (
	// ErrDivisionByZero is returned by Division when the divisor is zero.
	ErrDivisionByZero = errors.New("division by zero")
	// ErrNegativeSquareRoot is returned by SquareRoot for negative operands.
	ErrNegativeSquareRoot = errors.New("square root of negative number")
)

// Operation identifies a calculator operation.
type Operation int

// Operation constants, in menu order.
const (
	Addition Operation = iota + 1
	Subtraction
	Multiplication
	Division
	Power
	SquareRoot
)

// Operations lists every operation in menu order.
var Operations = []Operation{Addition, Subtraction, Multiplication, Division, Power, SquareRoot}

// String returns the name written to the calculation history.
func (o Operation) String() string {
	switch o {
	case Addition:
		return "Addition"
	case Subtraction:
		return "Subtraction"
	case Multiplication:
		return "Multiplication"
	case Division:
		return "Division"
	case Power:
		return "Power"
	case SquareRoot:
		return "Square Root"
	}
	return "Unknown"
}

// Symbol returns the short operator shown in the menu.
func (o Operation) Symbol() string {
	switch o {
	case Addition:
		return "+"
	case Subtraction:
		return "-"
	case Multiplication:
		return "*"
	case Division:
		return "/"
	case Power:
		return "x^y"
	case SquareRoot:
		return "√x"
	}
	return "?"
}

// Unary reports whether the operation takes a single operand.
func (o Operation) Unary() bool {
	return o == SquareRoot
}

// IsValid checks if the operation is known.
func (o Operation) IsValid() bool {
	return o >= Addition && o <= SquareRoot
}

// Apply evaluates the operation. The second operand is ignored for unary
// operations.
func (o Operation) Apply(x, y float64) (float64, error) {
	switch o {
	case Addition:
		return x + y, nil
	case Subtraction:
		return x - y, nil
	case Multiplication:
		return x * y, nil
	case Division:
		if y == 0 {
			return 0, ErrDivisionByZero
		}
		return x / y, nil
	case Power:
		return math.Pow(x, y), nil
	case SquareRoot:
		if x < 0 {
			return 0, ErrNegativeSquareRoot
		}
		return math.Sqrt(x), nil
	}
	return 0, errors.NewValidationError("operation", int(o), "unknown operation")
}

// ParseOperand parses a user-entered number.
func ParseOperand(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, errors.WrapValidation("operand", err)
	}
	return v, nil
}

// FormatNumber renders a float the way the history file records it: whole
// values keep a trailing ".0".
func FormatNumber(v float64) string {
	switch {
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	case math.IsNaN(v):
		return "nan"
	}
	if abs := math.Abs(v); abs != 0 && (abs < 1e-4 || abs >= 1e16) {
		return strconv.FormatFloat(v, 'e', -1, 64)
	}
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// ResultText renders the outcome of Apply for display and history.
func ResultText(result float64, err error) string {
	switch {
	case err == nil:
		return FormatNumber(result)
	case errors.Is(err, ErrDivisionByZero):
		return "Error! Division by zero."
	case errors.Is(err, ErrNegativeSquareRoot):
		return "Error! Square root of negative number."
	}
	return "Error! " + err.Error()
}
