// Package validate performs pre-parse request validation.
//
// The checks are deliberately shallow: they reject obviously unusable
// input (empty bodies, payloads that cannot be XML, URLs with an
// unsupported scheme) before any parsing or network work is spent on
// it. Real well-formedness errors are the tokenizer's job.
package validate

import "strings"

// ValidationError reports input rejected before parsing.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// XMLContent rejects empty or non-XML-looking document text.
func XMLContent(xml string) error {
	trimmed := strings.TrimSpace(xml)
	if trimmed == "" {
		return &ValidationError{Message: "XML content cannot be empty"}
	}
	if !strings.HasPrefix(trimmed, "<") {
		return &ValidationError{Message: "Invalid XML format"}
	}
	return nil
}

// URL rejects document URLs outside the supported schemes.
func URL(raw string) error {
	if strings.HasPrefix(raw, "http://") || strings.HasPrefix(raw, "https://") || strings.HasPrefix(raw, "store://") {
		return nil
	}
	return &ValidationError{Message: "Invalid URL: " + raw}
}

// LoginURL rejects login targets that are not plain HTTP(S) hosts.
func LoginURL(raw string) error {
	if strings.HasPrefix(raw, "http://") || strings.HasPrefix(raw, "https://") {
		return nil
	}
	return &ValidationError{Message: "Invalid URL: " + raw}
}
