package engine

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

type tokenKind uint8

const (
	tokEOF tokenKind = iota
	tokIdent
	tokNumber
	tokString
	tokColon
	tokDash
	tokComma
	tokSemi
	tokSlash
)

func (k tokenKind) String() string {
	switch k {
	case tokEOF:
		return "end of expression"
	case tokIdent:
		return "word"
	case tokNumber:
		return "number"
	case tokString:
		return "comment"
	case tokColon:
		return `":"`
	case tokDash:
		return `"-"`
	case tokComma:
		return `","`
	case tokSemi:
		return `";"`
	case tokSlash:
		return `"/"`
	}
	return "token"
}

type token struct {
	kind   tokenKind
	text   string // identifier, digits, or comment body
	offset int    // byte offset of the token's first character
}

// lex splits an expression into tokens. Quoted comment bodies are
// NFC-normalized so that annotations compare bytewise regardless of how
// the input was composed.
func lex(expr string) ([]token, *ParseError) {
	var toks []token
	i := 0
	for i < len(expr) {
		c := expr[i]
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			i++
		case c == ':':
			toks = append(toks, token{tokColon, ":", i})
			i++
		case c == '-':
			toks = append(toks, token{tokDash, "-", i})
			i++
		case c == ',':
			toks = append(toks, token{tokComma, ",", i})
			i++
		case c == ';':
			toks = append(toks, token{tokSemi, ";", i})
			i++
		case c == '/':
			toks = append(toks, token{tokSlash, "/", i})
			i++
		case c == '"':
			end := strings.IndexByte(expr[i+1:], '"')
			if end < 0 {
				return nil, errAt(expr, i, "unterminated comment")
			}
			body := expr[i+1 : i+1+end]
			toks = append(toks, token{tokString, norm.NFC.String(body), i})
			i += end + 2
		case c >= '0' && c <= '9':
			start := i
			for i < len(expr) && expr[i] >= '0' && expr[i] <= '9' {
				i++
			}
			toks = append(toks, token{tokNumber, expr[start:i], start})
		case isWordByte(c):
			start := i
			for i < len(expr) && isWordByte(expr[i]) {
				i++
			}
			toks = append(toks, token{tokIdent, expr[start:i], start})
		default:
			r := []rune(expr[i:])[0]
			if unicode.IsPrint(r) {
				return nil, errAt(expr, i, "unexpected character %q", r)
			}
			return nil, errAt(expr, i, "unexpected character")
		}
	}
	toks = append(toks, token{tokEOF, "", len(expr)})
	return toks, nil
}

func isWordByte(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}
