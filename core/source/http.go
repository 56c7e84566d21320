package source

import (
	"context"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"xml-compare-api/core/session"
)

// HTTPSource fetches documents over HTTP(S) and performs form-based
// login against remote hosts.
type HTTPSource struct {
	client     *http.Client
	sessionTTL time.Duration
}

// NewHTTPSource creates an HTTP source with connection-level timeouts
// taken from the fetch configuration. Sessions created by Authenticate
// carry the given time-to-live.
func NewHTTPSource(cfg Config, sessionTTL time.Duration) *HTTPSource {
	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 30
	}
	timeoutDuration := time.Duration(timeout) * time.Second

	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   timeoutDuration, // Connection setup timeout
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          100,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   timeoutDuration,
		ExpectContinueTimeout: 1 * time.Second,
		ResponseHeaderTimeout: timeoutDuration, // Wait for first response byte timeout
	}

	return &HTTPSource{
		client:     &http.Client{Transport: transport},
		sessionTTL: sessionTTL,
	}
}

// Fetch downloads the document at rawURL. When a session is given its
// cookies are replayed on the request. Non-2xx responses become a
// *FetchError carrying the status code.
func (s *HTTPSource) Fetch(ctx context.Context, rawURL string, sess *session.Session) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", &FetchError{URL: rawURL, Err: err}
	}

	if sess != nil {
		for _, cookie := range sess.Cookies {
			req.Header.Add("Cookie", cookie)
		}
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return "", &FetchError{URL: rawURL, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &FetchError{URL: rawURL, Status: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &FetchError{URL: rawURL, Err: err}
	}
	return string(body), nil
}

// Authenticate form-POSTs the credentials to loginURL and builds a
// session from every Set-Cookie header of a successful response.
func (s *HTTPSource) Authenticate(ctx context.Context, loginURL, username, password string) (session.Session, error) {
	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, loginURL, strings.NewReader(form.Encode()))
	if err != nil {
		return session.Session{}, &AuthError{URL: loginURL, Err: err}
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.client.Do(req)
	if err != nil {
		return session.Session{}, &AuthError{URL: loginURL, Err: err}
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return session.Session{}, &AuthError{URL: loginURL, Status: resp.StatusCode}
	}

	cookies := resp.Header.Values("Set-Cookie")
	return session.New(loginURL, cookies, s.sessionTTL), nil
}
