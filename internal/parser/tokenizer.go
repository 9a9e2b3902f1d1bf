package parser

import (
	"strings"
	"unicode"
)

type parseState int

const (
	stateOutside parseState = iota
	stateSingleQuote
	stateDoubleQuote
)

// escapes maps the character after a backslash to its replacement. Any other
// character keeps the backslash.
var escapes = map[rune]string{
	'n':  "\n",
	't':  "\t",
	'r':  "\r",
	'\\': "\\",
	'"':  "\"",
	'\'': "'",
}

type tokenBuffer struct {
	builder strings.Builder
	// started is set once a token has begun, even if it is still empty (""), so
	// empty quoted spans survive as tokens.
	started bool
}

func (tb *tokenBuffer) appendRune(r rune) {
	tb.builder.WriteRune(r)
	tb.started = true
}

func (tb *tokenBuffer) appendString(s string) {
	tb.builder.WriteString(s)
	tb.started = true
}

func (tb *tokenBuffer) flushIfStarted(tokens []string) []string {
	if !tb.started {
		return tokens
	}
	tokens = append(tokens, tb.builder.String())
	tb.builder.Reset()
	tb.started = false
	return tokens
}

// Tokenize splits raw into tokens. Whitespace separates tokens outside quotes;
// single and double quotes group text; backslash escapes work everywhere. It never
// fails: an unterminated quote runs to the end of the input.
func Tokenize(raw string) []string {
	runes := []rune(strings.TrimSpace(raw))
	tokens := []string{}
	buf := &tokenBuffer{}
	state := stateOutside

	for i := 0; i < len(runes); i++ {
		ch := runes[i]

		if ch == '\\' {
			if i+1 == len(runes) {
				buf.appendRune(ch)
				continue
			}
			i++
			next := runes[i]
			if replacement, ok := escapes[next]; ok {
				buf.appendString(replacement)
			} else {
				buf.appendRune('\\')
				buf.appendRune(next)
			}
			continue
		}

		switch state {
		case stateOutside:
			switch {
			case unicode.IsSpace(ch):
				tokens = buf.flushIfStarted(tokens)
			case ch == '\'':
				state = stateSingleQuote
				buf.started = true
			case ch == '"':
				state = stateDoubleQuote
				buf.started = true
			default:
				buf.appendRune(ch)
			}

		case stateSingleQuote:
			if ch == '\'' {
				state = stateOutside
			} else {
				buf.appendRune(ch)
			}

		case stateDoubleQuote:
			if ch == '"' {
				state = stateOutside
			} else {
				buf.appendRune(ch)
			}
		}
	}

	return buf.flushIfStarted(tokens)
}
