package xmldiff

import (
	"encoding/xml"
	"errors"
	"io"
	"strings"
)

// ParseError reports a lexical error from the underlying XML tokenizer.
// Flattening does not attempt recovery: the first tokenizer error
// aborts the whole document with no partial result.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return "xml parse error: " + e.Err.Error()
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Flatten parses an XML document into its path-keyed element map.
//
// The tokenizer's start/text/end events are consumed against a stack of
// open paths. Text runs are trimmed; whitespace-only runs are dropped.
// Attribute and tag names are matched on their local part only
// (namespace-aware comparison is out of scope).
func Flatten(text string) (Document, error) {
	dec := xml.NewDecoder(strings.NewReader(text))

	doc := make(Document)
	var stack []string
	current := ""

	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, &ParseError{Err: err}
		}

		switch t := tok.(type) {
		case xml.StartElement:
			name := t.Name.Local
			path := current + "/" + name

			attrs := make(map[string]string, len(t.Attr))
			for _, a := range t.Attr {
				attrs[a.Name.Local] = a.Value
			}

			// Later siblings with the same tag overwrite earlier ones.
			doc[path] = Element{Name: name, Attributes: attrs}
			stack = append(stack, path)
			current = path

		case xml.CharData:
			trimmed := strings.TrimSpace(string(t))
			if trimmed == "" || len(stack) == 0 {
				continue
			}
			top := stack[len(stack)-1]
			el := doc[top]
			el.Content = &trimmed
			doc[top] = el

		case xml.EndElement:
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
			if len(stack) > 0 {
				current = stack[len(stack)-1]
			} else {
				current = ""
			}
		}
	}

	return doc, nil
}
