package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestXMLContent(t *testing.T) {
	tests := []struct {
		name    string
		xml     string
		wantErr bool
	}{
		{"valid", "<root/>", false},
		{"leading whitespace", "  \n<root/>", false},
		{"empty", "", true},
		{"whitespace only", "   \t\n", true},
		{"not xml", "just text", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := XMLContent(tt.xml)
			if tt.wantErr {
				require.Error(t, err)
				var vErr *ValidationError
				assert.ErrorAs(t, err, &vErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestURL(t *testing.T) {
	assert.NoError(t, URL("http://example.com/a.xml"))
	assert.NoError(t, URL("https://example.com/a.xml"))
	assert.NoError(t, URL("store://ref.xml"))
	assert.Error(t, URL("ftp://example.com/a.xml"))
	assert.Error(t, URL("example.com/a.xml"))
}

func TestLoginURL(t *testing.T) {
	assert.NoError(t, LoginURL("https://example.com/login"))
	assert.Error(t, LoginURL("store://ref.xml"))
	assert.Error(t, LoginURL("invalid-url"))
}
