package repl

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/mohamedkhairy/termcalc/internal/calculation"
	"github.com/mohamedkhairy/termcalc/internal/history"
	"github.com/mohamedkhairy/termcalc/internal/operation"
	"github.com/mohamedkhairy/termcalc/pkg/logger"
)

// Calculator drives the read-parse-compute-print loop. It owns the session
// history and reads from / writes to the injected streams, so a whole
// session can be scripted in tests.
type Calculator struct {
	prompt  string
	in      io.Reader
	out     io.Writer
	history *history.History
	running bool
}

// New creates a calculator bound to the given streams.
func New(prompt string, in io.Reader, out io.Writer) *Calculator {
	return &Calculator{
		prompt:  prompt,
		in:      in,
		out:     out,
		history: history.New(),
	}
}

// History returns the session history.
func (c *Calculator) History() *history.History {
	return c.history
}

// Running reports whether the loop is active.
func (c *Calculator) Running() bool {
	return c.running
}

// Run starts the REPL and blocks until the user exits, input ends, or the
// context is canceled. All three paths print the farewell and return nil;
// user-driven termination is not an error.
func (c *Calculator) Run(ctx context.Context) error {
	c.running = true
	c.printWelcome()

	logger.Info("calculator session started")

	lines := make(chan string)
	readErr := make(chan error, 1)
	go func() {
		scanner := bufio.NewScanner(c.in)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
		readErr <- scanner.Err()
		close(lines)
	}()

	for c.running {
		fmt.Fprintf(c.out, "\n%s", c.prompt)

		select {
		case <-ctx.Done():
			// Interrupt: same graceful farewell as end-of-input.
			fmt.Fprintln(c.out, "\n\nGoodbye!")
			c.running = false
		case line, ok := <-lines:
			if !ok {
				fmt.Fprintln(c.out, "\n\nGoodbye!")
				c.running = false
				if err := <-readErr; err != nil {
					logger.Warn("input stream closed with error", logger.ErrorField(err))
				}
				break
			}
			c.handleLine(line)
		}
	}

	logger.Info("calculator session stopped",
		logger.Int("calculations", c.history.Count()),
	)
	return nil
}

// handleLine processes one line of input. It never lets an error escape:
// everything short of an exit command keeps the loop alive.
func (c *Calculator) handleLine(line string) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("unexpected error while handling input",
				logger.String("input", line),
				logger.String("panic", fmt.Sprintf("%v", r)),
			)
			logger.InputErrorsTotal.WithLabelValues("internal").Inc()
			fmt.Fprintf(c.out, "Unexpected error: %v\n", r)
			fmt.Fprintln(c.out, "Please try again or type 'help' for assistance.")
		}
	}()

	line = strings.TrimSpace(line)
	if line == "" {
		return
	}

	fields := strings.Fields(line)
	if IsKnownCommand(fields[0]) {
		c.handleCommand(strings.ToLower(fields[0]))
		return
	}

	c.handleCalculation(fields)
}

func (c *Calculator) handleCommand(command string) {
	logger.CommandsTotal.WithLabelValues(command).Inc()
	logger.Debug("dispatching command", logger.String("command", command))

	switch command {
	case "exit", "quit":
		fmt.Fprintln(c.out, "Goodbye!")
		c.running = false
	case "help":
		c.printHelp()
	case "history":
		c.printHistory()
	case "clear":
		c.history.Clear()
		logger.HistorySize.Set(0)
		fmt.Fprintln(c.out, "Calculation history cleared.")
	}
}

func (c *Calculator) handleCalculation(fields []string) {
	if len(fields) != 3 {
		c.reportInputError("format", "Please provide exactly three parts: number operation number")
		return
	}

	operandA, err := ParseNumber(fields[0])
	if err != nil {
		c.reportInputError("number", err.Error())
		return
	}
	operandB, err := ParseNumber(fields[2])
	if err != nil {
		c.reportInputError("number", err.Error())
		return
	}

	op, err := operation.Lookup(fields[1])
	if err != nil {
		c.reportInputError("operator", fmt.Sprintf("Unsupported operation: %s. Available: %s",
			fields[1], strings.Join(operation.Aliases(), ", ")))
		return
	}

	calc, err := calculation.New(operandA, operandB, op)
	if err != nil {
		// Unreachable from validated user input; protects against
		// future programmatic callers.
		c.reportInputError("construction", err.Error())
		return
	}

	// Force computation now so a math error discards the calculation
	// before it reaches history.
	result, err := calc.Result()
	if err != nil {
		if errors.Is(err, operation.ErrDivisionByZero) {
			logger.InputErrorsTotal.WithLabelValues("math").Inc()
			fmt.Fprintf(c.out, "Math error: %v\n", err)
			return
		}
		c.reportInputError("compute", err.Error())
		return
	}

	if err := c.history.Append(calc); err != nil {
		c.reportInputError("internal", err.Error())
		return
	}
	logger.HistorySize.Set(float64(c.history.Count()))
	logger.CalculationsTotal.WithLabelValues(op.Symbol()).Inc()
	logger.Debug("calculation recorded",
		logger.Float64("operand_a", operandA),
		logger.Float64("operand_b", operandB),
		logger.String("operation", op.Symbol()),
		logger.Float64("result", result),
	)

	fmt.Fprintf(c.out, "Result: %s\n", calc)
}

// reportInputError prints a recoverable input error with usage guidance.
func (c *Calculator) reportInputError(reason, message string) {
	logger.InputErrorsTotal.WithLabelValues(reason).Inc()
	fmt.Fprintf(c.out, "Input error: %s\n", message)
	fmt.Fprintln(c.out, "Please use format: <number> <operation> <number>")
	fmt.Fprintln(c.out, "Example: 5 + 3")
}

func (c *Calculator) printWelcome() {
	rule := strings.Repeat("=", 50)
	fmt.Fprintln(c.out, rule)
	fmt.Fprintln(c.out, "   Professional Calculator Application")
	fmt.Fprintln(c.out, rule)
	fmt.Fprintln(c.out, "Type 'help' for instructions, 'exit' to quit")
	fmt.Fprintln(c.out, "Supported operations: +, -, *, /")
	fmt.Fprintln(c.out, "Example: 5 + 3 or add 5 3")
}

func (c *Calculator) printHelp() {
	rule := strings.Repeat("=", 40)
	fmt.Fprintln(c.out)
	fmt.Fprintln(c.out, rule)
	fmt.Fprintln(c.out, "CALCULATOR HELP")
	fmt.Fprintln(c.out, rule)
	fmt.Fprintln(c.out, "Usage:")
	fmt.Fprintln(c.out, "  <number> <operation> <number>")
	fmt.Fprintln(c.out, "  Example: 5 + 3, 10.5 * 2")
	fmt.Fprintln(c.out)
	fmt.Fprintln(c.out, "Supported Operations:")
	fmt.Fprintln(c.out, "  Addition: +, add, addition")
	fmt.Fprintln(c.out, "  Subtraction: -, sub, subtract, subtraction")
	fmt.Fprintln(c.out, "  Multiplication: *, mul, multiply, multiplication")
	fmt.Fprintln(c.out, "  Division: /, div, divide, division")
	fmt.Fprintln(c.out)
	fmt.Fprintln(c.out, "Special Commands:")
	fmt.Fprintln(c.out, "  help     - Show this help message")
	fmt.Fprintln(c.out, "  history  - Show calculation history")
	fmt.Fprintln(c.out, "  clear    - Clear calculation history")
	fmt.Fprintln(c.out, "  exit     - Exit the calculator")
	fmt.Fprintln(c.out, rule)
}

func (c *Calculator) printHistory() {
	if c.history.IsEmpty() {
		fmt.Fprintln(c.out, "No calculations in history.")
		return
	}

	rule := strings.Repeat("=", 30)
	fmt.Fprintln(c.out)
	fmt.Fprintln(c.out, rule)
	fmt.Fprintln(c.out, "CALCULATION HISTORY")
	fmt.Fprintln(c.out, rule)
	for i, calc := range c.history.List() {
		fmt.Fprintf(c.out, "%2d. %s\n", i+1, calc)
	}
	fmt.Fprintln(c.out, rule)
}
