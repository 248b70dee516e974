package mjson

// Parser builds a Value tree from a token sequence by recursive
// descent. The cursor is a single forward index with one token of
// lookahead; recursion depth follows the nesting depth of the input
// and carries no explicit limit.
type Parser struct {
	tokens []Token
	index  int
}

// NewParser returns a Parser over tokens.
func NewParser(tokens []Token) *Parser {
	return &Parser{tokens: tokens}
}

func (p *Parser) peek() (Token, error) {
	if p.index >= len(p.tokens) {
		return Token{}, errNoToken()
	}
	return p.tokens[p.index], nil
}

func (p *Parser) next() (Token, error) {
	tok, err := p.peek()
	if err != nil {
		return Token{}, err
	}
	p.index++
	return tok, nil
}

// Remaining returns the number of unconsumed tokens. Parse consumes
// exactly the tokens of one value, so callers that require a whole
// document check Remaining() == 0 afterwards.
func (p *Parser) Remaining() int {
	return len(p.tokens) - p.index
}

// Parse consumes one JSON value starting at the cursor and returns
// its tree. It calls itself for nested arrays and objects.
func (p *Parser) Parse() (Value, error) {
	tok, err := p.peek()
	if err != nil {
		return nil, err
	}
	switch tok.Kind {
	case KindLeftBrace:
		return p.parseObject()
	case KindLeftBracket:
		return p.parseArray()
	case KindString:
		p.index++
		return String(tok.Str), nil
	case KindNumber:
		p.index++
		return Number(tok.Num), nil
	case KindBool:
		p.index++
		return Bool(tok.Flag), nil
	case KindNull:
		p.index++
		return Null{}, nil
	default:
		return nil, errToken("'{', '[', a string, a number, a bool or null", tok)
	}
}

func (p *Parser) parseObject() (Value, error) {
	tok, err := p.next()
	if err != nil {
		return nil, err
	}
	if tok.Kind != KindLeftBrace {
		return nil, errToken("'{'", tok)
	}

	obj := Object{}

	tok, err = p.peek()
	if err != nil {
		return nil, err
	}
	if tok.Kind == KindRightBrace {
		p.index++
		return obj, nil
	}

	for {
		key, err := p.next()
		if err != nil {
			return nil, err
		}
		sep, err := p.next()
		if err != nil {
			return nil, err
		}
		if key.Kind != KindString || sep.Kind != KindColon {
			if key.Kind != KindString {
				return nil, errToken("a string key", key)
			}
			return nil, errToken("':' after an object key", sep)
		}

		value, err := p.Parse()
		if err != nil {
			return nil, err
		}
		// Duplicate keys overwrite, last occurrence wins.
		obj.Set(key.Str, value)

		tok, err = p.next()
		if err != nil {
			return nil, err
		}
		switch tok.Kind {
		case KindRightBrace:
			return obj, nil
		case KindComma:
		default:
			return nil, errToken("',' or '}'", tok)
		}
	}
}

func (p *Parser) parseArray() (Value, error) {
	tok, err := p.next()
	if err != nil {
		return nil, err
	}
	if tok.Kind != KindLeftBracket {
		return nil, errToken("'['", tok)
	}

	array := Array{}

	tok, err = p.peek()
	if err != nil {
		return nil, err
	}
	if tok.Kind == KindRightBracket {
		p.index++
		return array, nil
	}

	for {
		value, err := p.Parse()
		if err != nil {
			return nil, err
		}
		array = append(array, value)

		tok, err = p.next()
		if err != nil {
			return nil, err
		}
		switch tok.Kind {
		case KindRightBracket:
			return array, nil
		case KindComma:
		default:
			return nil, errToken("',' or ']'", tok)
		}
	}
}
