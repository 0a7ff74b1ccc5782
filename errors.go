package b76

import (
	"errors"

	"github.com/zeebo/errs"
)

// Error is the class of b76 errors.
var Error = errs.Class("b76")

// Code is the numeric failure code of a request. The zero Code is success.
type Code uint8

// Failure codes.
const (
	OK Code = iota
	WrongSelectorLength
	UnknownSelector
	WrongLengthOfArguments

	// ShortOutput is reported by hosts whose output buffer cannot hold the
	// response. Compute never returns it.
	ShortOutput
)

func (c Code) Error() string {
	switch c {
	case OK:
		return "ok"
	case WrongSelectorLength:
		return "wrong selector length"
	case UnknownSelector:
		return "unknown selector"
	case WrongLengthOfArguments:
		return "wrong length of arguments"
	case ShortOutput:
		return "short output"
	}

	return "unknown code"
}

// CodeOf returns the failure code carried by err. A nil err is OK. ok is false
// if err carries no Code.
func CodeOf(err error) (c Code, ok bool) {
	if err == nil {
		return OK, true
	}

	if errors.As(err, &c) {
		return c, true
	}

	return OK, false
}
