// Package documents implements the reference-document store feature.
//
// It keeps XML documents in the configured object storage bucket so
// comparisons can target them through store:// URLs instead of
// re-uploading the same reference payload with every request. The
// feature is only enabled when object storage is configured.
package documents
