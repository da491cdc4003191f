package operation

import "errors"

var (
	ErrDivisionByZero   = errors.New("cannot divide by zero")
	ErrUnknownOperation = errors.New("unsupported operation")
	ErrInvalidOperand   = errors.New("invalid operand")
	ErrMissingOperation = errors.New("operation is required")
)

// Operation is the interface for binary arithmetic operations.
// Each operation carries its display symbol and a pure compute function.
type Operation interface {
	// Symbol returns the mathematical symbol for this operation (e.g. "+")
	Symbol() string

	// Compute applies the operation to the two operands
	Compute(a, b float64) (float64, error)
}

type addition struct{}

func (addition) Symbol() string { return "+" }

func (addition) Compute(a, b float64) (float64, error) {
	return a + b, nil
}

type subtraction struct{}

func (subtraction) Symbol() string { return "-" }

func (subtraction) Compute(a, b float64) (float64, error) {
	return a - b, nil
}

type multiplication struct{}

func (multiplication) Symbol() string { return "*" }

func (multiplication) Compute(a, b float64) (float64, error) {
	return a * b, nil
}

type division struct{}

func (division) Symbol() string { return "/" }

func (division) Compute(a, b float64) (float64, error) {
	if b == 0 {
		return 0, ErrDivisionByZero
	}
	return a / b, nil
}

// Shared instances. Operations carry no state, so one value per kind is
// reused across all registry aliases for the whole process lifetime.
var (
	Addition       Operation = addition{}
	Subtraction    Operation = subtraction{}
	Multiplication Operation = multiplication{}
	Division       Operation = division{}
)
