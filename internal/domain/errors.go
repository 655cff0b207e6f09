package domain

import "errors"

// ErrInvalidInput matches every InputError through errors.Is.
var ErrInvalidInput = errors.New("invalid input")

// ErrorKind tells which user-supplied value was rejected.
type ErrorKind int

const (
	InvalidVertex ErrorKind = iota + 1
	InvalidCategory
)

func (k ErrorKind) String() string {
	switch k {
	case InvalidVertex:
		return "invalid_vertex"
	case InvalidCategory:
		return "invalid_category"
	default:
		return "unknown"
	}
}

// InputError is a recoverable validation failure reported at the boundary
// (console or HTTP) instead of aborting the program.
type InputError struct {
	Kind    ErrorKind
	Message string
}

var inputMessages = map[ErrorKind]string{
	InvalidVertex:   "invalid input: location does not exist",
	InvalidCategory: "invalid input: unknown transport category",
}

func NewInputError(kind ErrorKind) *InputError {
	msg, ok := inputMessages[kind]
	if !ok {
		msg = ErrInvalidInput.Error()
	}
	return &InputError{Kind: kind, Message: msg}
}

func (e *InputError) Error() string { return e.Message }

func (e *InputError) Is(target error) bool { return target == ErrInvalidInput }

// AsInputError unwraps err into an InputError when it carries one.
func AsInputError(err error) (*InputError, bool) {
	var ie *InputError
	if errors.As(err, &ie) {
		return ie, true
	}
	return nil, false
}
