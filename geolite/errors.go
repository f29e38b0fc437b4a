package geolite

import (
	"errors"
	"fmt"
)

var (
	// ErrLicenseKeyRequired is returned if a run is attempted without
	// a license key. It is checked before any network activity.
	ErrLicenseKeyRequired = errors.New("license key is required")

	// ErrNoLastModified is returned if a HEAD response carries no
	// usable Last-Modified header so staleness cannot be determined.
	ErrNoLastModified = errors.New("response has no valid last-modified header")
)

// RequestFailedError is returned when an endpoint responds with
// a non-2xx status after redirect resolution.
type RequestFailedError struct {
	URL        string
	StatusCode int
	Status     string
}

func (e *RequestFailedError) Error() string {
	return fmt.Sprintf("request to %s has failed: %s", e.URL, e.Status)
}
