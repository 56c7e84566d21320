package documents

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"xml-compare-api/core/storage/mocks"

	"github.com/gofiber/fiber/v2"
	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestApp(client *mocks.Client) *fiber.App {
	app := fiber.New()
	NewHandler(NewService(client, testBucket, zap.NewNop())).RegisterRoutes(app)
	return app
}

func TestHandleUpload(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("PutObject", mock.Anything, testBucket, "ref.xml", mock.Anything, mock.Anything, mock.Anything).
			Return(minio.UploadInfo{}, nil)
		app := newTestApp(client)

		req := httptest.NewRequest(http.MethodPut, "/documents/ref.xml", strings.NewReader("<root/>"))
		req.Header.Set("Content-Type", "application/xml")
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var body map[string]string
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "store://ref.xml", body["url"])
	})

	t.Run("Invalid Content", func(t *testing.T) {
		app := newTestApp(new(mocks.Client))

		req := httptest.NewRequest(http.MethodPut, "/documents/ref.xml", strings.NewReader("nope"))
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestHandleGet(t *testing.T) {
	client := new(mocks.Client)
	client.On("GetObject", mock.Anything, testBucket, "ref.xml", mock.Anything).
		Return(io.NopCloser(strings.NewReader("<root/>")), nil)
	app := newTestApp(client)

	req := httptest.NewRequest(http.MethodGet, "/documents/ref.xml", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/xml", resp.Header.Get("Content-Type"))

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "<root/>", string(body))
}

func TestHandleList(t *testing.T) {
	ch := make(chan minio.ObjectInfo, 1)
	ch <- minio.ObjectInfo{Key: "a.xml", Size: 7}
	close(ch)

	client := new(mocks.Client)
	client.On("ListObjects", mock.Anything, testBucket, mock.Anything).
		Return((<-chan minio.ObjectInfo)(ch))
	app := newTestApp(client)

	req := httptest.NewRequest(http.MethodGet, "/documents/", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var infos []Info
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&infos))
	require.Len(t, infos, 1)
	assert.Equal(t, "a.xml", infos[0].Name)
}

func TestHandleDelete(t *testing.T) {
	client := new(mocks.Client)
	client.On("RemoveObject", mock.Anything, testBucket, "ref.xml", mock.Anything).Return(nil)
	app := newTestApp(client)

	req := httptest.NewRequest(http.MethodDelete, "/documents/ref.xml", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	client.AssertExpectations(t)
}
