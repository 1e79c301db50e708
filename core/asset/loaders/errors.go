package loaders

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when the transport reports a missing resource.
var ErrNotFound = errors.New("Resource not found")

// StatusError reports a non-2xx response other than 404.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("Unexpected HTTP Status Code: %d", e.Code)
}

// FileError wraps any failure of a file loader with the URL being loaded.
type FileError struct {
	URL string
	Err error
}

func (e *FileError) Error() string {
	return e.Err.Error() + " while loading file " + e.URL
}

func (e *FileError) Unwrap() error { return e.Err }

// LoadError reports that an image or media resource could not be loaded.
type LoadError struct {
	Kind string
	URL  string
	Err  error
}

func (e *LoadError) Error() string {
	return "Error while loading " + e.Kind + " at " + e.URL
}

func (e *LoadError) Unwrap() error { return e.Err }

// statusErr maps a transport status to ErrNotFound, a StatusError or nil.
func statusErr(status int) error {
	switch {
	case status == 404:
		return ErrNotFound
	case status < 200 || status > 299:
		return &StatusError{Code: status}
	}
	return nil
}
