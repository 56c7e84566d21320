package xmldiff

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPathIgnored(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		patterns []string
		want     bool
	}{
		{name: "exact match", path: "/root/child", patterns: []string{"/root/child"}, want: true},
		{name: "exact mismatch", path: "/root/child", patterns: []string{"/root/other"}, want: false},
		{name: "wildcard matches descendant", path: "/root/child/grandchild", patterns: []string{"/root/*"}, want: true},
		{name: "wildcard matches child", path: "/root/child", patterns: []string{"/root/*"}, want: true},
		{name: "wildcard other subtree", path: "/other/child", patterns: []string{"/root/*"}, want: false},
		{name: "prefix matches descendant", path: "/root/child/grandchild", patterns: []string{"/root/"}, want: true},
		{name: "prefix matches the prefix parent itself", path: "/root", patterns: []string{"/root/"}, want: true},
		{name: "prefix other subtree", path: "/other", patterns: []string{"/root/"}, want: false},
		{name: "second pattern wins", path: "/b", patterns: []string{"/a", "/b"}, want: true},
		{name: "no patterns", path: "/root", patterns: nil, want: false},
		{name: "interior star is not a wildcard", path: "/root/x/child", patterns: []string{"/root/*/child"}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PathIgnored(tt.path, tt.patterns))
		})
	}
}

func TestPropertyIgnored(t *testing.T) {
	assert.True(t, PropertyIgnored("date", []string{"id", "date"}))
	assert.False(t, PropertyIgnored("date", []string{"Date"}))
	assert.False(t, PropertyIgnored("date", nil))
}
