package oerror

import "fmt"

// SimError is returned by fpsim when loading or validating simulation inputs fails.
type SimError struct {
	Op  string
	Err error
	msg string
}

// New returns a SimError carrying a formatted message.
func New(format string, args ...any) *SimError {
	return &SimError{msg: fmt.Sprintf(format, args...)}
}

// Wrap returns a SimError describing the operation that failed with err. Wrap returns nil if err is nil.
func Wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	return &SimError{Op: op, Err: err}
}

func (e *SimError) Error() string {
	switch {
	case e.Err != nil && e.Op != "":
		return "fpsim: " + e.Op + ": " + e.Err.Error()
	case e.Err != nil:
		return "fpsim: " + e.Err.Error()
	}
	return "fpsim: " + e.msg
}

func (e *SimError) Unwrap() error {
	return e.Err
}
