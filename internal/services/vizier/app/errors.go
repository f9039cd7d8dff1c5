package server

import "fmt"

// ConfigurationError reports that the servicer or its store could not be
// built, before any network resource was acquired.
type ConfigurationError struct {
	Err error
}

// Error implements the error interface.
func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configure vizier servicer: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *ConfigurationError) Unwrap() error { return e.Err }

// BindError reports that the endpoint could not be bound. No server is left
// running when a BindError is returned.
type BindError struct {
	Endpoint string
	Err      error
}

// Error implements the error interface.
func (e *BindError) Error() string {
	return fmt.Sprintf("bind %s: %v", e.Endpoint, e.Err)
}

// Unwrap returns the underlying error.
func (e *BindError) Unwrap() error { return e.Err }

// TransportStartError reports that the server started serving but its own
// stub could not reach it. The server is stopped before the error is returned.
type TransportStartError struct {
	Endpoint string
	Err      error
}

// Error implements the error interface.
func (e *TransportStartError) Error() string {
	return fmt.Sprintf("connect stub to %s: %v", e.Endpoint, e.Err)
}

// Unwrap returns the underlying error.
func (e *TransportStartError) Unwrap() error { return e.Err }
