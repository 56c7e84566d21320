package source

import (
	"context"
	"io"
	"strings"

	"xml-compare-api/core/session"
	"xml-compare-api/core/storage"

	"github.com/minio/minio-go/v7"
)

// StoreScheme prefixes URLs that resolve against the service's own
// reference document bucket instead of a remote host.
const StoreScheme = "store://"

// StoreSource resolves store://<object> URLs against object storage.
type StoreSource struct {
	client storage.Client
	bucket string
}

// NewStoreSource creates a source reading from the given bucket.
func NewStoreSource(client storage.Client, bucket string) *StoreSource {
	return &StoreSource{client: client, bucket: bucket}
}

// Fetch reads the object named by rawURL. Sessions are ignored: the
// bucket is reached with the service's own storage credentials.
func (s *StoreSource) Fetch(ctx context.Context, rawURL string, _ *session.Session) (string, error) {
	objectName := strings.TrimPrefix(rawURL, StoreScheme)

	obj, err := s.client.GetObject(ctx, s.bucket, objectName, minio.GetObjectOptions{})
	if err != nil {
		return "", &FetchError{URL: rawURL, Err: err}
	}
	defer obj.Close()

	content, err := io.ReadAll(obj)
	if err != nil {
		return "", &FetchError{URL: rawURL, Err: err}
	}
	return string(content), nil
}
