package mjson

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf16"
	"unicode/utf8"
)

// Lexer splits JSON text into a flat sequence of tokens.
// It reads the input one code point at a time with a single
// code point of lookahead and is meant to be used once per document.
type Lexer struct {
	src string
	pos int
}

// NewLexer returns a Lexer over src.
func NewLexer(src string) *Lexer {
	return &Lexer{src: src}
}

func (l *Lexer) peek() (rune, bool) {
	if l.pos >= len(l.src) {
		return 0, false
	}
	c, _ := utf8.DecodeRuneInString(l.src[l.pos:])
	return c, true
}

func (l *Lexer) next() (rune, bool) {
	if l.pos >= len(l.src) {
		return 0, false
	}
	c, n := utf8.DecodeRuneInString(l.src[l.pos:])
	l.pos += n
	return c, true
}

// Tokenize consumes the whole input and returns its tokens in order,
// with whitespace tokens filtered out. The first invalid input stops
// the scan and is returned as a *LexError.
func (l *Lexer) Tokenize() ([]Token, error) {
	var tokens []Token
	for {
		tok, ok, err := l.scan()
		if err != nil {
			return nil, err
		}
		if !ok {
			return tokens, nil
		}
		if tok.Kind == KindWhitespace {
			continue
		}
		tokens = append(tokens, tok)
	}
}

// scan reads one token. It reports ok=false on end of input.
func (l *Lexer) scan() (Token, bool, error) {
	c, ok := l.peek()
	if !ok {
		return Token{}, false, nil
	}
	switch {
	case unicode.IsSpace(c):
		l.next()
		return Token{Kind: KindWhitespace}, true, nil
	case c == '{':
		l.next()
		return Token{Kind: KindLeftBrace}, true, nil
	case c == '}':
		l.next()
		return Token{Kind: KindRightBrace}, true, nil
	case c == '[':
		l.next()
		return Token{Kind: KindLeftBracket}, true, nil
	case c == ']':
		l.next()
		return Token{Kind: KindRightBracket}, true, nil
	case c == ',':
		l.next()
		return Token{Kind: KindComma}, true, nil
	case c == ':':
		l.next()
		return Token{Kind: KindColon}, true, nil
	case c == '"':
		l.next()
		tok, err := l.scanString()
		return tok, err == nil, err
	case isNumberStart(c):
		tok, err := l.scanNumber()
		return tok, err == nil, err
	case c == 't':
		return l.scanLiteral(strTrue, Token{Kind: KindBool, Flag: true})
	case c == 'f':
		return l.scanLiteral(strFalse, Token{Kind: KindBool})
	case c == 'n':
		return l.scanLiteral(strNull, Token{Kind: KindNull})
	default:
		return Token{}, false, errUnexpectedChar(c)
	}
}

// scanLiteral reads exactly len(want) code points and compares them
// against want. A short read counts as a mismatch.
func (l *Lexer) scanLiteral(want string, tok Token) (Token, bool, error) {
	var b strings.Builder
	for i := 0; i < utf8.RuneCountInString(want); i++ {
		c, ok := l.next()
		if !ok {
			break
		}
		b.WriteRune(c)
	}
	if got := b.String(); got != want {
		return Token{}, false, errLiteral(want, got)
	}
	return tok, true, nil
}

// isNumberStart reports whether c opens a number token.
func isNumberStart(c rune) bool {
	switch c {
	case '+', '-', '.':
		return true
	}
	return unicode.IsDigit(c)
}

// isNumberChar reports membership in the extended numeric character
// class. The class is deliberately wider than the JSON number grammar;
// strconv.ParseFloat is the correctness boundary.
func isNumberChar(c rune) bool {
	switch c {
	case 'e', 'E':
		return true
	}
	return isNumberStart(c)
}

func (l *Lexer) scanNumber() (Token, error) {
	var b strings.Builder
	for {
		c, ok := l.peek()
		if !ok || !isNumberChar(c) {
			break
		}
		l.next()
		b.WriteRune(c)
	}
	num, err := strconv.ParseFloat(b.String(), 64)
	if err != nil {
		return Token{}, errNumber(b.String(), err)
	}
	return Token{Kind: KindNumber, Num: num}, nil
}

// scanString reads up to the closing quote. The opening quote has
// already been consumed by the caller.
//
// Escapes in `"\/bfnrt` pass through as a literal backslash plus the
// escape character; only `\uXXXX` sequences are decoded. Consecutive
// `\u` code units collect in a side buffer so that surrogate pairs
// combine into a single code point, and the buffer is flushed before
// any other character reaches the result.
func (l *Lexer) scanString() (Token, error) {
	var (
		b     strings.Builder
		units []uint16
	)
	for {
		c, ok := l.next()
		if !ok {
			return Token{}, errUnterminatedString()
		}
		switch c {
		case '\\':
			e, ok := l.next()
			if !ok {
				return Token{}, errEscapeEOF()
			}
			switch e {
			case '"', '\\', '/', 'b', 'f', 'n', 'r', 't':
				if err := flushUTF16(&b, &units); err != nil {
					return Token{}, err
				}
				b.WriteByte('\\')
				b.WriteRune(e)
			case 'u':
				u, err := l.scanCodeUnit()
				if err != nil {
					return Token{}, err
				}
				units = append(units, u)
			default:
				return Token{}, errEscape(e)
			}
		case '"':
			if err := flushUTF16(&b, &units); err != nil {
				return Token{}, err
			}
			return Token{Kind: KindString, Str: b.String()}, nil
		default:
			if err := flushUTF16(&b, &units); err != nil {
				return Token{}, err
			}
			b.WriteRune(c)
		}
	}
}

// scanCodeUnit reads the four hex digits of a `\u` escape into a
// UTF-16 code unit. Non-hex characters in the run are discarded
// before parsing, so the error surfaces from strconv.
func (l *Lexer) scanCodeUnit() (uint16, error) {
	var b strings.Builder
	for i := 0; i < 4; i++ {
		c, ok := l.next()
		if ok && isHexDigit(c) {
			b.WriteRune(c)
		}
	}
	u, err := strconv.ParseUint(b.String(), 16, 16)
	if err != nil {
		return 0, errUnicodeEscape(b.String(), err)
	}
	return uint16(u), nil
}

func isHexDigit(c rune) bool {
	return '0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F'
}

// flushUTF16 decodes any buffered code units and appends them to b.
// It is a no-op on an empty buffer and fails on an unpaired or
// invalid surrogate.
func flushUTF16(b *strings.Builder, units *[]uint16) error {
	buf := *units
	if len(buf) == 0 {
		return nil
	}
	for i := 0; i < len(buf); i++ {
		c := rune(buf[i])
		if utf16.IsSurrogate(c) {
			if i+1 >= len(buf) {
				return errSurrogate()
			}
			c = utf16.DecodeRune(c, rune(buf[i+1]))
			if c == utf8.RuneError {
				return errSurrogate()
			}
			i++
		}
		b.WriteRune(c)
	}
	*units = buf[:0]
	return nil
}
