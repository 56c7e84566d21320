package documents

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"xml-compare-api/core/storage/mocks"
	"xml-compare-api/core/validate"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testBucket = "documents"

func TestService_Upload(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		client := new(mocks.Client)
		content := `<root><child>hey</child></root>`
		client.On("PutObject", mock.Anything, testBucket, "ref.xml", mock.Anything, int64(len(content)), mock.Anything).
			Return(minio.UploadInfo{}, nil)

		svc := NewService(client, testBucket, zap.NewNop())
		err := svc.Upload(context.Background(), "ref.xml", content)
		require.NoError(t, err)
		client.AssertExpectations(t)
	})

	t.Run("Rejects Non-XML Content", func(t *testing.T) {
		client := new(mocks.Client)
		svc := NewService(client, testBucket, zap.NewNop())

		err := svc.Upload(context.Background(), "ref.xml", "not xml at all")
		var validationErr *validate.ValidationError
		require.ErrorAs(t, err, &validationErr)
		client.AssertNotCalled(t, "PutObject")
	})

	t.Run("Rejects Bad Name", func(t *testing.T) {
		client := new(mocks.Client)
		svc := NewService(client, testBucket, zap.NewNop())

		var validationErr *validate.ValidationError
		require.ErrorAs(t, svc.Upload(context.Background(), "", "<a/>"), &validationErr)
		require.ErrorAs(t, svc.Upload(context.Background(), "../escape.xml", "<a/>"), &validationErr)
	})
}

func TestService_Get(t *testing.T) {
	client := new(mocks.Client)
	client.On("GetObject", mock.Anything, testBucket, "ref.xml", mock.Anything).
		Return(io.NopCloser(strings.NewReader("<root/>")), nil)

	svc := NewService(client, testBucket, zap.NewNop())
	text, err := svc.Get(context.Background(), "ref.xml")
	require.NoError(t, err)
	assert.Equal(t, "<root/>", text)
}

func TestService_List(t *testing.T) {
	now := time.Now()
	ch := make(chan minio.ObjectInfo, 2)
	ch <- minio.ObjectInfo{Key: "a.xml", Size: 10, LastModified: now}
	ch <- minio.ObjectInfo{Key: "b.xml", Size: 20, LastModified: now}
	close(ch)

	client := new(mocks.Client)
	client.On("ListObjects", mock.Anything, testBucket, mock.Anything).
		Return((<-chan minio.ObjectInfo)(ch))

	svc := NewService(client, testBucket, zap.NewNop())
	infos, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, infos, 2)
	assert.Equal(t, "a.xml", infos[0].Name)
	assert.Equal(t, int64(20), infos[1].Size)
}

func TestService_ListError(t *testing.T) {
	ch := make(chan minio.ObjectInfo, 1)
	ch <- minio.ObjectInfo{Err: assert.AnError}
	close(ch)

	client := new(mocks.Client)
	client.On("ListObjects", mock.Anything, testBucket, mock.Anything).
		Return((<-chan minio.ObjectInfo)(ch))

	svc := NewService(client, testBucket, zap.NewNop())
	_, err := svc.List(context.Background())
	assert.Error(t, err)
}

func TestService_Delete(t *testing.T) {
	client := new(mocks.Client)
	client.On("RemoveObject", mock.Anything, testBucket, "ref.xml", mock.Anything).Return(nil)

	svc := NewService(client, testBucket, zap.NewNop())
	require.NoError(t, svc.Delete(context.Background(), "ref.xml"))
	client.AssertExpectations(t)
}

func TestService_EnsureBucket(t *testing.T) {
	t.Run("Already Exists", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, testBucket).Return(true, nil)

		svc := NewService(client, testBucket, zap.NewNop())
		require.NoError(t, svc.EnsureBucket(context.Background()))
		client.AssertNotCalled(t, "MakeBucket")
	})

	t.Run("Creates Missing Bucket", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, testBucket).Return(false, nil)
		client.On("MakeBucket", mock.Anything, testBucket, mock.Anything).Return(nil)

		svc := NewService(client, testBucket, zap.NewNop())
		require.NoError(t, svc.EnsureBucket(context.Background()))
		client.AssertExpectations(t)
	})
}
