package errs

import "fmt"

// BusyError rejects a submission while the session still has a reply in flight.
type BusyError struct {
	message string
}

func (v *BusyError) Error() string {
	return v.message
}

func BusyErrorf(format string, args ...any) *BusyError {
	return &BusyError{
		message: fmt.Sprintf(format, args...),
	}
}

var _ error = &BusyError{}
