package documents

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"xml-compare-api/core/storage"
	"xml-compare-api/core/validate"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// Info describes one stored document.
type Info struct {
	// Name is the object name in the bucket.
	Name string `json:"name"`
	// Size is the object size in bytes.
	Size int64 `json:"size"`
	// LastModified is the last modification timestamp.
	LastModified time.Time `json:"last_modified"`
}

// Service manages XML documents in object storage.
type Service struct {
	client storage.Client
	bucket string
	logger *zap.Logger
}

// NewService creates a new documents service.
func NewService(client storage.Client, bucket string, logger *zap.Logger) *Service {
	return &Service{
		client: client,
		bucket: bucket,
		logger: logger,
	}
}

// EnsureBucket creates the bucket when it does not exist yet.
func (s *Service) EnsureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if exists {
		return nil
	}

	if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("failed to create bucket %s: %w", s.bucket, err)
	}
	s.logger.Info("Created document bucket", zap.String("bucket", s.bucket))
	return nil
}

// Upload stores an XML document under name.
func (s *Service) Upload(ctx context.Context, name, content string) error {
	if err := validateName(name); err != nil {
		return err
	}
	if err := validate.XMLContent(content); err != nil {
		return err
	}

	reader := strings.NewReader(content)
	opts := minio.PutObjectOptions{ContentType: "application/xml"}
	if _, err := s.client.PutObject(ctx, s.bucket, name, reader, int64(len(content)), opts); err != nil {
		return fmt.Errorf("failed to store document %s: %w", name, err)
	}

	s.logger.Info("Document stored",
		zap.String("name", name),
		zap.Int("size", len(content)))
	return nil
}

// Get returns the raw text of a stored document.
func (s *Service) Get(ctx context.Context, name string) (string, error) {
	if err := validateName(name); err != nil {
		return "", err
	}

	obj, err := s.client.GetObject(ctx, s.bucket, name, minio.GetObjectOptions{})
	if err != nil {
		return "", fmt.Errorf("failed to fetch document %s: %w", name, err)
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		return "", fmt.Errorf("failed to read document %s: %w", name, err)
	}
	return string(data), nil
}

// List returns all stored documents.
func (s *Service) List(ctx context.Context) ([]Info, error) {
	opts := minio.ListObjectsOptions{Recursive: true}

	infos := []Info{}
	for obj := range s.client.ListObjects(ctx, s.bucket, opts) {
		if obj.Err != nil {
			return nil, fmt.Errorf("failed to list documents: %w", obj.Err)
		}
		infos = append(infos, Info{
			Name:         obj.Key,
			Size:         obj.Size,
			LastModified: obj.LastModified,
		})
	}
	return infos, nil
}

// Delete removes a stored document.
func (s *Service) Delete(ctx context.Context, name string) error {
	if err := validateName(name); err != nil {
		return err
	}

	if err := s.client.RemoveObject(ctx, s.bucket, name, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("failed to delete document %s: %w", name, err)
	}
	s.logger.Info("Document deleted", zap.String("name", name))
	return nil
}

func validateName(name string) error {
	if name == "" {
		return &validate.ValidationError{Message: "Document name cannot be empty"}
	}
	if strings.Contains(name, "..") {
		return &validate.ValidationError{Message: "Invalid document name: " + name}
	}
	return nil
}
