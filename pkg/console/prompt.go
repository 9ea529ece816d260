package console

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// readLine returns the next input line without its line terminator. A final
// line without a newline is returned before io.EOF.
func (c *Console) readLine() (string, error) {
	line, err := c.reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// prompt prints label and returns the answer without surrounding whitespace.
func (c *Console) prompt(label string) (string, error) {
	fmt.Fprint(c.writer, label)
	line, err := c.readLine()
	return strings.TrimSpace(line), err
}

// promptInt asks until the operator types a non-negative whole number.
func (c *Console) promptInt(label string) (int, error) {
	for {
		input, err := c.prompt(label)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(strings.TrimSpace(input))
		switch {
		case err != nil:
			c.fail("Please enter a whole number.")
		case n < 0:
			c.fail("Value must not be negative.")
		default:
			return n, nil
		}
	}
}

// promptFloat asks until the operator types a non-negative finite number.
func (c *Console) promptFloat(label string) (float64, error) {
	for {
		input, err := c.prompt(label)
		if err != nil {
			return 0, err
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(input), 64)
		switch {
		case err != nil, math.IsNaN(f), math.IsInf(f, 0):
			c.fail("Please enter a number.")
		case f < 0:
			c.fail("Value must not be negative.")
		default:
			return f, nil
		}
	}
}
