// SPDX-License-Identifier: MIT

package calculus

import (
	"fmt"
	"unicode"
	"unicode/utf8"
)

// tokenType is the kind of a lexical token.
type tokenType int

const (
	tokEOF tokenType = iota
	tokNumber
	tokIdent
	tokPlus
	tokMinus
	tokStar
	tokSlash
	tokCaret // "^" or "**"
	tokLParen
	tokRParen
)

// token is one lexeme with its byte offset in the source.
type token struct {
	typ  tokenType
	text string
	pos  int
}

// lex splits src into tokens, always terminated by tokEOF.
func lex(src string) ([]token, error) {
	var toks []token
	for i := 0; i < len(src); {
		r, size := utf8.DecodeRuneInString(src[i:])
		switch {
		case unicode.IsSpace(r):
			i += size
		case r >= '0' && r <= '9' || r == '.':
			start := i
			dot := false
			for i < len(src) && (src[i] >= '0' && src[i] <= '9' || src[i] == '.') {
				if src[i] == '.' {
					if dot {
						return nil, fmt.Errorf("%w: malformed number at %d", ErrParse, start)
					}
					dot = true
				}
				i++
			}
			if src[start:i] == "." {
				return nil, fmt.Errorf("%w: stray '.' at %d", ErrParse, start)
			}
			toks = append(toks, token{tokNumber, src[start:i], start})
		case unicode.IsLetter(r) || r == '_':
			start := i
			for i < len(src) {
				r, size = utf8.DecodeRuneInString(src[i:])
				if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' {
					break
				}
				i += size
			}
			toks = append(toks, token{tokIdent, src[start:i], start})
		case r == '*' && i+1 < len(src) && src[i+1] == '*':
			toks = append(toks, token{tokCaret, "**", i})
			i += 2
		default:
			typ, ok := punct[r]
			if !ok {
				return nil, fmt.Errorf("%w: unexpected %q at %d", ErrParse, r, i)
			}
			toks = append(toks, token{typ, string(r), i})
			i += size
		}
	}

	return append(toks, token{tokEOF, "", len(src)}), nil
}

var punct = map[rune]tokenType{
	'+': tokPlus,
	'-': tokMinus,
	'*': tokStar,
	'/': tokSlash,
	'^': tokCaret,
	'(': tokLParen,
	')': tokRParen,
}
