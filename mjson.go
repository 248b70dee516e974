// Package mjson decodes JSON text into a tree of Value nodes.
// Decoding runs in two strictly sequential stages: a Lexer splits the
// input into a flat token sequence, and a Parser builds the value
// tree from those tokens by recursive descent. Both are short-lived,
// used once per document, and share no state beyond their own cursor.
package mjson

// Parse decodes a whole JSON document. It fails if the input cannot
// be tokenized, does not form a valid value, or has tokens left over
// after the root value.
func Parse(src string) (Value, error) {
	tokens, err := NewLexer(src).Tokenize()
	if err != nil {
		return nil, err
	}
	p := NewParser(tokens)
	value, err := p.Parse()
	if err != nil {
		return nil, err
	}
	if p.Remaining() > 0 {
		tok, _ := p.peek()
		return nil, errToken("end of input after the root value", tok)
	}
	return value, nil
}
