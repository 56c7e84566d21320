package source

import "fmt"

// FetchError reports a failure to retrieve a document.
type FetchError struct {
	URL    string
	Status int
	Err    error
}

func (e *FetchError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("fetch %s: unexpected status %d", e.URL, e.Status)
	}
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// AuthError reports a failed login against a remote host.
type AuthError struct {
	URL    string
	Status int
	Err    error
}

func (e *AuthError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("authentication against %s failed with status %d", e.URL, e.Status)
	}
	return fmt.Sprintf("authentication against %s failed: %v", e.URL, e.Err)
}

func (e *AuthError) Unwrap() error {
	return e.Err
}
