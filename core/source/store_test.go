package source

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"xml-compare-api/core/storage/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestStoreSource_Fetch(t *testing.T) {
	mockClient := new(mocks.Client)
	mockClient.On("GetObject", mock.Anything, "documents", "ref.xml", mock.Anything).
		Return(io.NopCloser(bytes.NewBufferString("<ref>1</ref>")), nil)

	src := NewStoreSource(mockClient, "documents")
	content, err := src.Fetch(context.Background(), "store://ref.xml", nil)

	require.NoError(t, err)
	assert.Equal(t, "<ref>1</ref>", content)
	mockClient.AssertExpectations(t)
}

func TestStoreSource_FetchError(t *testing.T) {
	mockClient := new(mocks.Client)
	mockClient.On("GetObject", mock.Anything, "documents", "missing.xml", mock.Anything).
		Return(nil, errors.New("object not found"))

	src := NewStoreSource(mockClient, "documents")
	_, err := src.Fetch(context.Background(), "store://missing.xml", nil)

	var fetchErr *FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, "store://missing.xml", fetchErr.URL)
}

func TestResolver_RoutesByScheme(t *testing.T) {
	mockClient := new(mocks.Client)
	mockClient.On("GetObject", mock.Anything, "documents", "a.xml", mock.Anything).
		Return(io.NopCloser(bytes.NewBufferString("<a/>")), nil)

	resolver := NewResolver(NewHTTPSource(Config{}, 0), NewStoreSource(mockClient, "documents"))

	content, err := resolver.Fetch(context.Background(), "store://a.xml", nil)
	require.NoError(t, err)
	assert.Equal(t, "<a/>", content)
}

func TestResolver_StoreSchemeWithoutStore(t *testing.T) {
	resolver := NewResolver(NewHTTPSource(Config{}, 0), nil)

	_, err := resolver.Fetch(context.Background(), "store://a.xml", nil)
	var fetchErr *FetchError
	require.ErrorAs(t, err, &fetchErr)
}
