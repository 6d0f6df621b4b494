package lightshow

import "errors"

// Error is a status code returned by controllers and presets. The codes are
// bit flags, so a caller may test membership with Has rather than equality.
type Error uint16

const (
	NoError             Error = 0x0000
	NoLEDStripConnected Error = 0x0001
	ShowIndexOutOfRange Error = 0x0002
	ShowUndefined       Error = 0x0004
	LEDIndexOutOfRange  Error = 0x0008
)

func (e Error) Error() string {
	return Describe(e)
}

// Has reports whether every bit of flag is set in e.
func (e Error) Has(flag Error) bool {
	return e&flag == flag
}

// Describe maps a status code to a human readable string. Codes outside the
// known set, combined flags included, are described as "Unknown error".
func Describe(e Error) string {
	switch e {
	case NoError:
		return "No Error"
	case NoLEDStripConnected:
		return "An LED Strip has not been connected to the show"
	case ShowIndexOutOfRange:
		return "The show referenced by index does not exist"
	case ShowUndefined:
		return "The show referenced by index exists, but is not defined"
	case LEDIndexOutOfRange:
		return "The LED referenced by index does not exist"
	}
	return "Unknown error"
}

// Code extracts the status code carried by err. A nil error is NoError. An
// error without a code in its chain came from a driver below the controller
// and is reported as NoLEDStripConnected.
func Code(err error) Error {
	if err == nil {
		return NoError
	}
	var e Error
	if errors.As(err, &e) {
		return e
	}
	return NoLEDStripConnected
}
