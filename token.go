package mjson

import "strconv"

// Kind identifies the lexical class of a Token.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindString
	KindNumber
	KindBool
	KindNull
	KindWhitespace
	KindLeftBrace
	KindRightBrace
	KindLeftBracket
	KindRightBracket
	KindComma
	KindColon
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "String"
	case KindNumber:
		return "Number"
	case KindBool:
		return "Bool"
	case KindNull:
		return "Null"
	case KindWhitespace:
		return "Whitespace"
	case KindLeftBrace:
		return "LeftBrace"
	case KindRightBrace:
		return "RightBrace"
	case KindLeftBracket:
		return "LeftBracket"
	case KindRightBracket:
		return "RightBracket"
	case KindComma:
		return "Comma"
	case KindColon:
		return "Colon"
	default:
		return "InvalidToken"
	}
}

// Token is a single lexical unit produced by the Lexer.
// Str, Num and Flag carry the payload for string, number and
// boolean tokens respectively; punctuation and null carry none.
type Token struct {
	Kind Kind
	Str  string
	Num  float64
	Flag bool
}

// String renders the token the way it appears in JSON text.
func (t Token) String() string {
	switch t.Kind {
	case KindString:
		return strconv.Quote(t.Str)
	case KindNumber:
		return strconv.FormatFloat(t.Num, 'g', -1, 64)
	case KindBool:
		return strconv.FormatBool(t.Flag)
	case KindNull:
		return strNull
	case KindWhitespace:
		return " "
	case KindLeftBrace:
		return "'{'"
	case KindRightBrace:
		return "'}'"
	case KindLeftBracket:
		return "'['"
	case KindRightBracket:
		return "']'"
	case KindComma:
		return "','"
	case KindColon:
		return "':'"
	default:
		return "InvalidToken"
	}
}

const (
	strTrue  = "true"
	strFalse = "false"
	strNull  = "null"
)
