package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Interactive prompts.
const (
	promptCount    = "Enter the amount of equations you want to solve: "
	promptEquation = "Enter a valid system of equations: "
)

var (
	// ErrInvalidCount indicates that the equation count is not a positive integer.
	ErrInvalidCount = errors.New("cli: equation count must be a positive integer")

	// ErrInputClosed indicates that input ended before every equation was read.
	ErrInputClosed = errors.New("cli: input ended early")
)

// ReadEquations prompts on out for an equation count, then for that many
// equations, reading one trimmed line per answer from in.
func ReadEquations(ctx context.Context, in io.Reader, out io.Writer) ([]string, error) {
	sc := bufio.NewScanner(in)

	fmt.Fprintln(out, promptCount)
	line, err := readLine(ctx, sc)
	if err != nil {
		return nil, err
	}
	n, err := strconv.Atoi(line)
	if err != nil || n < 1 {
		return nil, fmt.Errorf("%q: %w", line, ErrInvalidCount)
	}

	lines := make([]string, 0, n)
	for i := 0; i < n; i++ {
		fmt.Fprintln(out, promptEquation)
		if line, err = readLine(ctx, sc); err != nil {
			return nil, fmt.Errorf("equation %d of %d: %w", i+1, n, err)
		}
		lines = append(lines, line)
	}

	return lines, nil
}

// readLine returns the next trimmed line, ErrInputClosed at EOF, or the
// context error once ctx is done.
func readLine(ctx context.Context, sc *bufio.Scanner) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return "", err
		}
		return "", ErrInputClosed
	}

	return strings.TrimSpace(sc.Text()), nil
}
