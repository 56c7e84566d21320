package source

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"xml-compare-api/core/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPSource_Fetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/test.xml":
			_, _ = w.Write([]byte("<test>content</test>"))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	src := NewHTTPSource(Config{TimeoutSeconds: 5}, time.Hour)

	t.Run("Success", func(t *testing.T) {
		content, err := src.Fetch(context.Background(), srv.URL+"/test.xml", nil)
		require.NoError(t, err)
		assert.Equal(t, "<test>content</test>", content)
	})

	t.Run("NotFound", func(t *testing.T) {
		_, err := src.Fetch(context.Background(), srv.URL+"/missing.xml", nil)
		require.Error(t, err)
		var fetchErr *FetchError
		require.ErrorAs(t, err, &fetchErr)
		assert.Equal(t, http.StatusNotFound, fetchErr.Status)
	})

	t.Run("ConnectionRefused", func(t *testing.T) {
		_, err := src.Fetch(context.Background(), "http://127.0.0.1:1/doc.xml", nil)
		var fetchErr *FetchError
		assert.ErrorAs(t, err, &fetchErr)
	})
}

func TestHTTPSource_FetchReplaysSessionCookies(t *testing.T) {
	var gotCookies []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotCookies = r.Header.Values("Cookie")
		_, _ = w.Write([]byte("<a/>"))
	}))
	defer srv.Close()

	src := NewHTTPSource(Config{}, time.Hour)
	sess := session.New(srv.URL, []string{"session=abc123; HttpOnly", "theme=dark"}, time.Hour)

	_, err := src.Fetch(context.Background(), srv.URL, &sess)
	require.NoError(t, err)
	assert.Equal(t, []string{"session=abc123; HttpOnly", "theme=dark"}, gotCookies)
}

func TestHTTPSource_Authenticate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		if r.Method != http.MethodPost || r.FormValue("username") != "test" || r.FormValue("password") != "password" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Header().Add("Set-Cookie", "session=abc123; HttpOnly")
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	src := NewHTTPSource(Config{TimeoutSeconds: 5}, time.Hour)

	t.Run("Success", func(t *testing.T) {
		sess, err := src.Authenticate(context.Background(), srv.URL+"/login", "test", "password")
		require.NoError(t, err)
		assert.NotEmpty(t, sess.ID)
		assert.Equal(t, []string{"session=abc123; HttpOnly"}, sess.Cookies)
		assert.False(t, sess.Expired())
		assert.WithinDuration(t, time.Now().Add(time.Hour), sess.ExpiresAt, time.Minute)
	})

	t.Run("BadCredentials", func(t *testing.T) {
		_, err := src.Authenticate(context.Background(), srv.URL+"/login", "test", "wrong")
		require.Error(t, err)
		var authErr *AuthError
		require.ErrorAs(t, err, &authErr)
		assert.Equal(t, http.StatusUnauthorized, authErr.Status)
	})
}
