package repl

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/mohamedkhairy/termcalc/internal/operation"
)

// commands is the fixed set of special commands the REPL recognizes.
var commands = map[string]struct{}{
	"help":    {},
	"history": {},
	"clear":   {},
	"exit":    {},
	"quit":    {},
}

// ParseNumber parses text as a floating-point literal. Infinities and NaN
// are rejected even though float64 can represent them; they are not valid
// user-entered numbers. Errors quote the original text.
func ParseNumber(text string) (float64, error) {
	value, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil {
		return 0, fmt.Errorf("'%s' is not a valid number", text)
	}
	if math.IsInf(value, 0) || math.IsNaN(value) {
		return 0, fmt.Errorf("'%s' is not a valid number", text)
	}
	return value, nil
}

// IsKnownOperation reports whether text is a registered operation alias,
// case-insensitively after trimming whitespace.
func IsKnownOperation(text string) bool {
	return operation.IsKnown(text)
}

// IsKnownCommand reports whether text is a special command,
// case-insensitively after trimming whitespace.
func IsKnownCommand(text string) bool {
	_, ok := commands[strings.ToLower(strings.TrimSpace(text))]
	return ok
}
