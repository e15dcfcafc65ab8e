package caller

import (
	"errors"
	"fmt"
)

// Error kinds. Match with errors.Is.
var (
	ErrConnection = errors.New("connection error")
	ErrTransport  = errors.New("transport error")
)

// ConnectionError is returned when the endpoint cannot be reached.
type ConnectionError struct {
	URL string
	Err error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("connect %s: %v", e.URL, e.Err)
}

func (e *ConnectionError) Unwrap() error { return e.Err }

// Is makes errors.Is(err, ErrConnection) hold.
func (e *ConnectionError) Is(target error) bool { return target == ErrConnection }

// TransportError is returned when a call fails on the network or protocol
// level. Application errors are never reported this way.
type TransportError struct {
	Subject string
	Err     error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("call %s: %v", e.Subject, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// Is makes errors.Is(err, ErrTransport) hold.
func (e *TransportError) Is(target error) bool { return target == ErrTransport }
