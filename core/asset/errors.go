package asset

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidRequest is returned when a single request is nil or empty.
	ErrInvalidRequest = errors.New("you must specify a URL or descriptor of the asset to load")

	// ErrMissingInput is returned when a batch call receives neither a list nor a keyed group.
	ErrMissingInput = errors.New("you must specify an array of assets or object group to load")

	// ErrInvalidProgressCallback is returned when a progress option carries nothing callable.
	ErrInvalidProgressCallback = errors.New("the progress option of All() and Any() must be a function or a channel")

	// ErrMissingURL is returned when a loader must be resolved but the request has no URL.
	ErrMissingURL = errors.New("when loading an asset, you must specify a URL or descriptor of the asset to load")

	// ErrMissingExtension is the sentinel behind MissingExtensionError.
	ErrMissingExtension = errors.New("no extension found for input URL")

	// ErrUnknownType is the sentinel behind UnknownTypeError.
	ErrUnknownType = errors.New("could not find an asset loader by key")

	// ErrUnknownExtension is the sentinel behind UnknownExtensionError.
	ErrUnknownExtension = errors.New("could not infer an asset loader from the file type")

	// ErrDuplicateKey is returned by Register when the key is already taken.
	ErrDuplicateKey = errors.New("asset loader key already registered")
)

// MissingExtensionError reports a URL with no extension and no explicit type.
type MissingExtensionError struct {
	URL string
}

func (e *MissingExtensionError) Error() string {
	return fmt.Sprintf("no extension found for input URL %q, try to specify a { type } such as \"image\" or \"text\"", e.URL)
}

func (e *MissingExtensionError) Unwrap() error { return ErrMissingExtension }

// UnknownTypeError reports an explicit type that no descriptor is registered under.
type UnknownTypeError struct {
	Type string
}

func (e *UnknownTypeError) Error() string {
	return fmt.Sprintf("could not find an asset loader by the key %q", e.Type)
}

func (e *UnknownTypeError) Unwrap() error { return ErrUnknownType }

// UnknownExtensionError reports an inferred extension that no descriptor matches.
type UnknownExtensionError struct {
	Extension string
}

func (e *UnknownExtensionError) Error() string {
	return fmt.Sprintf("could not infer an asset loader from the file type %q, try specifying { type } such as \"image\" or \"text\"", e.Extension)
}

func (e *UnknownExtensionError) Unwrap() error { return ErrUnknownExtension }

// IsResolutionError reports whether err came from request validation or loader
// resolution rather than from a loader capability.
func IsResolutionError(err error) bool {
	for _, target := range []error{
		ErrInvalidRequest,
		ErrMissingInput,
		ErrInvalidProgressCallback,
		ErrMissingURL,
		ErrMissingExtension,
		ErrUnknownType,
		ErrUnknownExtension,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
