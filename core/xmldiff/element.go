package xmldiff

import (
	"fmt"
	"sort"
	"strings"
)

// Element is a single flattened XML element.
type Element struct {
	// Name is the element's tag name.
	Name string `json:"name"`

	// Attributes maps attribute keys to values. Keys are unique and
	// unordered.
	Attributes map[string]string `json:"attributes"`

	// Content is the trimmed text content, or nil if the element has
	// none. When an element carries multiple text runs, only the last
	// one observed is retained.
	Content *string `json:"content,omitempty"`
}

// Document maps structural paths to the element found at that path.
// It is built once per comparison and never persisted.
type Document map[string]Element

// String returns a debug rendering of the element with attributes in
// key order, used as the expected/actual payload of element-level diffs.
func (e Element) String() string {
	var b strings.Builder
	b.WriteString(e.Name)
	b.WriteString("{")

	keys := make([]string, 0, len(e.Attributes))
	for k := range e.Attributes {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for i, k := range keys {
		if i > 0 {
			b.WriteString(" ")
		}
		fmt.Fprintf(&b, "%s=%q", k, e.Attributes[k])
	}

	if e.Content != nil {
		if len(keys) > 0 {
			b.WriteString(" ")
		}
		fmt.Fprintf(&b, "content=%q", *e.Content)
	}
	b.WriteString("}")
	return b.String()
}
