package calculator_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/mobileapp/pkg/calculator"
	"github.com/agentstation/mobileapp/pkg/errors"
)

func TestApply(t *testing.T) {
	tests := []struct {
		op   calculator.Operation
		x, y float64
		want float64
	}{
		{calculator.Addition, 2, 3, 5},
		{calculator.Subtraction, 2, 3, -1},
		{calculator.Multiplication, 2.5, 4, 10},
		{calculator.Division, 7, 2, 3.5},
		{calculator.Power, 2, 10, 1024},
		{calculator.SquareRoot, 81, 0, 9},
	}
	for _, tt := range tests {
		t.Run(tt.op.String(), func(t *testing.T) {
			got, err := tt.op.Apply(tt.x, tt.y)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestApplyErrors(t *testing.T) {
	_, err := calculator.Division.Apply(1, 0)
	assert.ErrorIs(t, err, calculator.ErrDivisionByZero)
	assert.Equal(t, "Error! Division by zero.", calculator.ResultText(0, err))

	_, err = calculator.SquareRoot.Apply(-4, 0)
	assert.ErrorIs(t, err, calculator.ErrNegativeSquareRoot)
	assert.Equal(t, "Error! Square root of negative number.", calculator.ResultText(0, err))

	_, err = calculator.Operation(99).Apply(1, 1)
	assert.True(t, errors.IsValidationError(err))
}

func TestOperationNames(t *testing.T) {
	names := make([]string, 0, len(calculator.Operations))
	for _, op := range calculator.Operations {
		assert.True(t, op.IsValid())
		names = append(names, op.String())
	}
	assert.Equal(t, []string{"Addition", "Subtraction", "Multiplication", "Division", "Power", "Square Root"}, names)
	assert.True(t, calculator.SquareRoot.Unary())
	assert.False(t, calculator.Power.Unary())
	assert.False(t, calculator.Operation(0).IsValid())
}

func TestFormatNumber(t *testing.T) {
	a, b := 0.1, 0.2
	tests := []struct {
		in   float64
		want string
	}{
		{5, "5.0"},
		{-1, "-1.0"},
		{3.5, "3.5"},
		{a + b, "0.30000000000000004"},
		{1e6, "1000000.0"},
		{1e21, "1e+21"},
		{math.Inf(1), "inf"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, calculator.FormatNumber(tt.in))
	}

	sum, err := calculator.Addition.Apply(0.1, 0.2)
	require.NoError(t, err)
	assert.Equal(t, "0.30000000000000004", calculator.FormatNumber(sum))
}

func TestParseOperand(t *testing.T) {
	v, err := calculator.ParseOperand(" 4.25 ")
	require.NoError(t, err)
	assert.Equal(t, 4.25, v)

	_, err = calculator.ParseOperand("four")
	assert.True(t, errors.IsValidationError(err))
	assert.Contains(t, err.Error(), "operand")
}
