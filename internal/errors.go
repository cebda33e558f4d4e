package internal

import "fmt"

// BaseError is a sentinel that constructor errors wrap
type BaseError string

func (e BaseError) Error() string {
	return string(e)
}

// ErrMissingParam is wrapped when a constructor is handed a nil config or dependency
const ErrMissingParam BaseError = "missing parameter"

// ParamError names the parameter a constructor rejected
type ParamError struct {
	Err   error
	Param string
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("%v: %s", e.Err, e.Param)
}

func (e *ParamError) Unwrap() error {
	return e.Err
}

// NewMissingParamError reports that param was nil or empty
func NewMissingParamError(param string) error {
	return &ParamError{
		Err:   ErrMissingParam,
		Param: param,
	}
}
