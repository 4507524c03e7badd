package equation

import (
	"unicode"
	"unicode/utf8"
)

// tokenKind classifies a lexeme of the whitespace-free expression.
type tokenKind int

const (
	tokSign    tokenKind = iota // '+' or '-'
	tokNumber                   // run of ASCII digits and '.'
	tokIdent                    // letter followed by letters, digits or '_'
	tokEquals                   // '=' (only reachable in the two-sided fallback)
	tokInvalid                  // any other rune
)

// token is one lexeme. off is the byte offset in the scanned string.
type token struct {
	kind tokenKind
	text string
	off  int
}

// negative reports whether a sign token is '-'.
func (t token) negative() bool { return t.kind == tokSign && t.text == "-" }

// tokenize splits expr into a flat token stream in one left-to-right pass.
// expr must already be free of whitespace.
// Complexity: Time O(len(expr)), Memory O(len(expr)).
func tokenize(expr string) []token {
	toks := make([]token, 0, len(expr)/2+1)
	var (
		i, start int
		r        rune
		size     int
	)
	for i < len(expr) {
		start = i
		r, size = utf8.DecodeRuneInString(expr[i:])
		switch {
		case r == '+' || r == '-':
			i += size
			toks = append(toks, token{kind: tokSign, text: expr[start:i], off: start})
		case r == '=':
			i += size
			toks = append(toks, token{kind: tokEquals, text: expr[start:i], off: start})
		case isNumberRune(r):
			for i < len(expr) && isNumberRune(rune(expr[i])) {
				i++
			}
			toks = append(toks, token{kind: tokNumber, text: expr[start:i], off: start})
		case unicode.IsLetter(r):
			i += size
			for i < len(expr) {
				r, size = utf8.DecodeRuneInString(expr[i:])
				if !isIdentRune(r) {
					break
				}
				i += size
			}
			toks = append(toks, token{kind: tokIdent, text: expr[start:i], off: start})
		default:
			i += size
			toks = append(toks, token{kind: tokInvalid, text: expr[start:i], off: start})
		}
	}

	return toks
}

// isNumberRune accepts the characters of an explicit coefficient.
func isNumberRune(r rune) bool { return (r >= '0' && r <= '9') || r == '.' }

// isIdentRune accepts the characters after the first letter of a variable.
func isIdentRune(r rune) bool { return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) }
