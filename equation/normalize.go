package equation

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// Warning reasons (stable strings; tests match on them).
const (
	reasonDanglingSign   = "sign without operand"
	reasonUnexpectedChar = "unexpected character"
	reasonMissingOp      = "missing operator between terms"
	reasonRepeatedSign   = "repeated sign folded"
	reasonNoTerms        = "expression has no terms"
)

// Normalize parses raw into its canonical coefficient form.
//
// Implementation:
//   - Stage 1: strip whitespace and pick the constant side of "=".
//   - Stage 2: tokenize the expression side in one pass.
//   - Stage 3: collect terms: sign* number? identifier?; numeric terms fold
//     into the constant with flipped sign, variable terms upsert into a
//     name→coefficient map with a separate insertion order.
//
// Behavior highlights:
//   - "x" has coefficient 1 and "-x" has -1; "+x" is the same as "x".
//   - "2x + 3x" accumulates to a single 5x entry.
//   - "2x + 3 = 7" yields 2x = 4.
//   - Without a numeric side, "2x = 3y + 1" yields 2x - 3y = 1.
//
// Errors:
//   - ErrEmptyEquation, ErrMultipleEquals (plain, wrapped with the input).
//   - *ParseError wrapping ErrMalformedNumber, ErrNaNInf or, under WithStrict,
//     ErrAmbiguousTerm.
//
// Complexity: Time O(n), Memory O(n) for n = len(raw).
func Normalize(raw string, opts ...Option) (*Normalized, error) {
	o := gatherOptions(opts...)

	stripped := stripSpace(raw)
	if stripped == "" {
		return nil, ErrEmptyEquation
	}

	expr, base, constant, err := selectSides(raw, stripped)
	if err != nil {
		return nil, err
	}

	c := &collector{
		raw:      raw,
		opts:     o,
		base:     base,
		coefs:    make(map[string]float64),
		constant: constant,
	}
	if err = c.collect(tokenize(expr)); err != nil {
		return nil, err
	}

	eq := c.result()
	o.logger.Debug("equation normalized", "raw", raw, "canonical", eq.String())

	return eq, nil
}

// MustNormalize is like Normalize but panics on error. Intended for tests
// and package-level fixtures with literal input.
func MustNormalize(raw string, opts ...Option) *Normalized {
	eq, err := Normalize(raw, opts...)
	if err != nil {
		panic(err)
	}

	return eq
}

// stripSpace removes every Unicode whitespace rune.
func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

// selectSides splits stripped on "=" and returns the expression to tokenize,
// its offset inside stripped, and the initial constant.
// Left is checked before right; with no numeric side the whole line is the
// expression and the constant starts at 0.
func selectSides(raw, stripped string) (expr string, base int, constant float64, err error) {
	switch strings.Count(stripped, "=") {
	case 0:
		return stripped, 0, 0, nil
	case 1:
	default:
		return "", 0, 0, fmt.Errorf("Normalize %q: %w", raw, ErrMultipleEquals)
	}

	left, right, _ := strings.Cut(stripped, "=")

	v, ok, err := bareNumber(raw, left, 0)
	if err != nil {
		return "", 0, 0, err
	}
	if ok {
		return right, len(left) + 1, v, nil
	}

	v, ok, err = bareNumber(raw, right, len(left)+1)
	if err != nil {
		return "", 0, 0, err
	}
	if ok {
		return left, 0, v, nil
	}

	return stripped, 0, 0, nil
}

// bareNumber reports whether side is a plain decimal literal with an optional
// sign, using the same digits-and-dots grammar as a coefficient. Forms that
// strconv alone would accept ("inf", "1e5", "0x1p4") are not bare numbers.
func bareNumber(raw, side string, off int) (float64, bool, error) {
	digits := strings.TrimLeft(side, "+-")
	if len(side)-len(digits) > 1 || digits == "" || strings.TrimFunc(digits, isNumberRune) != "" {
		return 0, false, nil
	}

	v, err := strconv.ParseFloat(side, 64)
	switch {
	case err == nil:
		return v, true, nil
	case errors.Is(err, strconv.ErrRange):
		return 0, false, &ParseError{Equation: raw, Segment: side, Offset: off, Err: ErrNaNInf}
	default:
		return 0, false, nil
	}
}

// parseNumber converts an explicit coefficient to float64.
func parseNumber(text string) (float64, error) {
	v, err := strconv.ParseFloat(text, 64)
	if err == nil {
		return v, nil
	}
	if errors.Is(err, strconv.ErrRange) {
		return 0, ErrNaNInf
	}

	return 0, ErrMalformedNumber
}

// collector accumulates terms of one equation.
type collector struct {
	raw      string
	opts     Options
	base     int                // offset of the expression inside the stripped input
	order    []string           // insertion order of variables
	coefs    map[string]float64 // accumulated coefficient per variable
	constant float64
	warnings []Warning
}

// collect walks the token stream one segment at a time. A segment runs from
// its leading signs up to (not including) the next sign or "=". An expression
// that yields no variable is reported with reasonNoTerms.
func (c *collector) collect(toks []token) error {
	var (
		i, start   int
		side       = 1.0 // becomes -1 right of "=" in the two-sided fallback
		sign       float64
		signs      int
		num, ident *token
		invalid    bool
		extra      bool
		err        error
	)
	for i < len(toks) {
		start = i
		sign, signs = 1, 0
		num, ident = nil, nil
		invalid, extra = false, false

		for i < len(toks) && toks[i].kind == tokSign {
			if toks[i].negative() {
				sign = -sign
			}
			signs++
			i++
		}
		if i < len(toks) && toks[i].kind == tokNumber {
			num = &toks[i]
			i++
		}
		if i < len(toks) && toks[i].kind == tokIdent {
			ident = &toks[i]
			i++
		}
		for i < len(toks) && toks[i].kind != tokSign && toks[i].kind != tokEquals {
			if toks[i].kind == tokInvalid {
				invalid = true
			} else {
				extra = true
			}
			i++
		}

		if start < i {
			seg, off := c.segment(toks[start:i])
			switch {
			case invalid:
				err = c.warn(seg, off, reasonUnexpectedChar)
			case extra:
				err = c.warn(seg, off, reasonMissingOp)
			case num == nil && ident == nil:
				err = c.warn(seg, off, reasonDanglingSign)
			default:
				if signs > 1 {
					if err = c.warn(seg, off, reasonRepeatedSign); err != nil {
						return err
					}
				}
				err = c.add(seg, off, sign*side, num, ident)
			}
			if err != nil {
				return err
			}
		}

		if i < len(toks) && toks[i].kind == tokEquals {
			side = -1
			i++
		}
	}
	if len(c.order) == 0 {
		return c.warn("", c.base, reasonNoTerms)
	}

	return nil
}

// add folds one classified term: numbers move to the constant side with the
// opposite sign, variables upsert into the coefficient map.
func (c *collector) add(seg string, off int, sign float64, num, ident *token) error {
	value := 1.0 // implicit coefficient
	if num != nil {
		v, err := parseNumber(num.text)
		if err != nil {
			return &ParseError{Equation: c.raw, Segment: seg, Offset: off, Err: err}
		}
		value = v
	}
	value *= sign

	if ident == nil {
		c.constant -= value
		return nil
	}
	if _, seen := c.coefs[ident.text]; !seen {
		c.order = append(c.order, ident.text)
	}
	c.coefs[ident.text] += value

	return nil
}

// warn records a soft failure, or returns it as an error under WithStrict.
func (c *collector) warn(seg string, off int, reason string) error {
	if c.opts.strict {
		return &ParseError{
			Equation: c.raw,
			Segment:  seg,
			Offset:   off,
			Err:      fmt.Errorf("%w: %s", ErrAmbiguousTerm, reason),
		}
	}
	c.warnings = append(c.warnings, Warning{Segment: seg, Offset: off, Reason: reason})
	c.opts.logger.Warn("equation term not understood",
		"equation", c.raw, "segment", seg, "offset", off, "reason", reason)

	return nil
}

// segment joins the token texts and returns the absolute offset of the first one.
func (c *collector) segment(toks []token) (string, int) {
	var sb strings.Builder
	for _, t := range toks {
		sb.WriteString(t.text)
	}

	return sb.String(), c.base + toks[0].off
}

// result materializes the collected terms in insertion order.
func (c *collector) result() *Normalized {
	eq := &Normalized{
		Raw:          c.raw,
		Variables:    make([]string, len(c.order)),
		Coefficients: make([]float64, len(c.order)),
		Constant:     c.constant,
		Warnings:     c.warnings,
	}
	copy(eq.Variables, c.order)
	for i, name := range c.order {
		eq.Coefficients[i] = c.coefs[name]
	}

	return eq
}
