package service

// Kind classifies a service failure so the controllers can map it to an HTTP
// status at the boundary without inspecting error strings.
type Kind int

const (
	KindInternal Kind = iota
	KindNotFound
	KindValidation
	KindUpstream
)

// Error is the only error type services return to controllers. Err keeps the
// underlying cause for server-side logging; Message is what the caller may
// see.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

func Validation(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

func Upstream(message string, err error) *Error {
	return &Error{Kind: KindUpstream, Message: message, Err: err}
}

func Internal(err error) *Error {
	return &Error{Kind: KindInternal, Message: "Oops! Something went wrong", Err: err}
}

// AsError pulls the *Error out of err, defaulting to internal for anything a
// service failed to classify.
func AsError(err error) *Error {
	if serr, ok := err.(*Error); ok {
		return serr
	}
	return Internal(err)
}
