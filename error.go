package mjson

import "fmt"

// LexError signifies input that could not be split into tokens.
type LexError struct {
	want string
	got  string
	err  error
}

func (e *LexError) Error() string {
	msg := "expected " + e.want
	if e.got != "" {
		msg += fmt.Sprintf(", read %q", e.got)
	}
	if e.err != nil {
		msg += ": " + e.err.Error()
	}
	return msg
}

func (e *LexError) Unwrap() error { return e.err }

func errUnexpectedChar(c rune) error {
	return &LexError{want: "a token start", got: string(c)}
}

func errLiteral(want, got string) error {
	return &LexError{want: "literal " + want, got: got}
}

func errNumber(got string, err error) error {
	return &LexError{want: "a number", got: got, err: err}
}

func errEscape(c rune) error {
	return &LexError{want: `one of '"', '\', '/', 'b', 'f', 'n', 'r', 't', 'u' after '\'`, got: string(c)}
}

func errEscapeEOF() error {
	return &LexError{want: `a character after '\'`}
}

func errUnicodeEscape(got string, err error) error {
	return &LexError{want: "four hex digits after '\\u'", got: got, err: err}
}

func errSurrogate() error {
	return &LexError{want: "a complete UTF-16 surrogate pair"}
}

func errUnterminatedString() error {
	return &LexError{want: `a closing '"'`}
}

// ParseError signifies a token stream that does not form a valid value.
type ParseError struct {
	want string
	got  *Token
}

func (e *ParseError) Error() string {
	if e.got == nil {
		return "expected " + e.want + ", but no token is available"
	}
	return fmt.Sprintf("expected %s, got %s", e.want, e.got)
}

func errNoToken() error {
	return &ParseError{want: "a token"}
}

func errToken(want string, got Token) error {
	return &ParseError{want: want, got: &got}
}
