package starlarkmjson

// ValueError wraps a decode failure raised by parse.
type ValueError struct {
	err error
}

func newValueError(err error) error {
	return &ValueError{err: err}
}

func (e *ValueError) Error() string {
	return "ValueError: " + e.err.Error()
}

func (e *ValueError) Unwrap() error {
	return e.err
}

// TypeError signifies a value that has no Starlark representation.
type TypeError string

func (e TypeError) Error() string {
	return "TypeError: " + string(e)
}
