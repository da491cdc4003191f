package operation

import (
	"fmt"
	"sort"
	"strings"
)

// aliases maps every accepted spelling to its shared operation instance.
// Multiple aliases are synonyms for the same operation, not distinct
// operations.
var aliases = map[string]Operation{
	"+":              Addition,
	"add":            Addition,
	"addition":       Addition,
	"-":              Subtraction,
	"sub":            Subtraction,
	"subtract":       Subtraction,
	"subtraction":    Subtraction,
	"*":              Multiplication,
	"mul":            Multiplication,
	"multiply":       Multiplication,
	"multiplication": Multiplication,
	"/":              Division,
	"div":            Division,
	"divide":         Division,
	"division":       Division,
}

// normalize trims surrounding whitespace and lower-cases an alias.
func normalize(alias string) string {
	return strings.ToLower(strings.TrimSpace(alias))
}

// Lookup resolves an operation by alias. The alias is matched
// case-insensitively after trimming whitespace. Unknown aliases return
// ErrUnknownOperation.
func Lookup(alias string) (Operation, error) {
	op, ok := aliases[normalize(alias)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownOperation, alias)
	}
	return op, nil
}

// IsKnown reports whether the alias resolves to an operation.
func IsKnown(alias string) bool {
	_, ok := aliases[normalize(alias)]
	return ok
}

// Aliases returns every accepted alias in sorted order.
func Aliases() []string {
	names := make([]string, 0, len(aliases))
	for name := range aliases {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
