package calculation

import (
	"fmt"
	"math"
	"strconv"

	"github.com/mohamedkhairy/termcalc/internal/operation"
)

// Calculation pairs two operands with an operation. The result is computed
// lazily on first access and cached for the lifetime of the value.
type Calculation struct {
	OperandA float64
	OperandB float64
	Op       operation.Operation

	result   float64
	computed bool
}

// New creates a Calculation without computing its result.
// Operands must be finite numbers and the operation must be non-nil; these
// checks protect programmatic callers, the REPL validates user input before
// it gets here.
func New(a, b float64, op operation.Operation) (*Calculation, error) {
	if math.IsNaN(a) || math.IsInf(a, 0) {
		return nil, fmt.Errorf("%w: first operand is %s", operation.ErrInvalidOperand, FormatFloat(a))
	}
	if math.IsNaN(b) || math.IsInf(b, 0) {
		return nil, fmt.Errorf("%w: second operand is %s", operation.ErrInvalidOperand, FormatFloat(b))
	}
	if op == nil {
		return nil, operation.ErrMissingOperation
	}
	return &Calculation{OperandA: a, OperandB: b, Op: op}, nil
}

// Result computes the calculation on first call and returns the cached value
// on every later call. A division by zero surfaces here, not at construction.
func (c *Calculation) Result() (float64, error) {
	if !c.computed {
		value, err := c.Op.Compute(c.OperandA, c.OperandB)
		if err != nil {
			return 0, err
		}
		c.result = value
		c.computed = true
	}
	return c.result, nil
}

// String renders the calculation as "a <symbol> b = result", forcing
// computation. A failed computation renders its error in place of the result.
func (c *Calculation) String() string {
	result, err := c.Result()
	if err != nil {
		return fmt.Sprintf("%s %s %s = %v",
			FormatFloat(c.OperandA), c.Op.Symbol(), FormatFloat(c.OperandB), err)
	}
	return fmt.Sprintf("%s %s %s = %s",
		FormatFloat(c.OperandA), c.Op.Symbol(), FormatFloat(c.OperandB), FormatFloat(result))
}

// FormatFloat renders a float for the interactive protocol: integral values
// keep one decimal place ("8.0"), everything else uses the shortest form
// that round-trips.
func FormatFloat(f float64) string {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
	if f == math.Trunc(f) && math.Abs(f) < 1e15 {
		return strconv.FormatFloat(f, 'f', 1, 64)
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}
