package internal

import "fmt"

// StorageError represents errors accessing the client storage database
type StorageError struct {
	Path string
	Op   string // "open", "get", "set", "remove"
	Err  error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage error: %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// TransportError represents a failed exchange with the backend: the request
// could not be sent, the status was not 2xx, or the body could not be decoded.
type TransportError struct {
	Endpoint   string // "/chat", "/run_code"
	StatusCode int    // 0 when no response was received
	Message    string // backend-provided error text, if any
	Err        error
}

func (e *TransportError) Error() string {
	switch {
	case e.StatusCode != 0 && e.Message != "":
		return fmt.Sprintf("transport error: POST %s: status %d: %s", e.Endpoint, e.StatusCode, e.Message)
	case e.StatusCode != 0 && e.Err == nil:
		return fmt.Sprintf("transport error: POST %s: status %d", e.Endpoint, e.StatusCode)
	case e.StatusCode != 0:
		return fmt.Sprintf("transport error: POST %s: status %d: %v", e.Endpoint, e.StatusCode, e.Err)
	default:
		return fmt.Sprintf("transport error: POST %s: %v", e.Endpoint, e.Err)
	}
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// ExportError represents errors during transcript export
type ExportError struct {
	Format string
	Path   string
	Err    error
}

func (e *ExportError) Error() string {
	return fmt.Sprintf("export error [%s] %s: %v", e.Format, e.Path, e.Err)
}

func (e *ExportError) Unwrap() error {
	return e.Err
}
