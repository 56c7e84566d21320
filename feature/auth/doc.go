// Package auth implements the credential session feature.
//
// It exposes login, logout and session introspection endpoints. A login
// form-POSTs the supplied credentials to the target host, captures the
// returned cookies and stores them as a session with an expiry. Other
// features reference the session by its id to fetch protected
// documents.
package auth
