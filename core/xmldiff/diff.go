package xmldiff

import (
	"encoding/json"
	"fmt"
)

// Kind classifies a single difference between two documents.
type Kind int

const (
	// ElementMissing marks an element present in the first document only.
	ElementMissing Kind = iota
	// ElementExtra marks an element present in the second document only.
	ElementExtra
	// AttributeDifferent marks an attribute that differs, is missing from
	// the second document, or exists only in the second document.
	AttributeDifferent
	// ContentDifferent marks diverging text content.
	ContentDifferent
	// StructureDifferent is the fallback for elements that are
	// non-identical for any reason not covered by the kinds above.
	StructureDifferent
)

var kindNames = [...]string{
	ElementMissing:     "ElementMissing",
	ElementExtra:       "ElementExtra",
	AttributeDifferent: "AttributeDifferent",
	ContentDifferent:   "ContentDifferent",
	StructureDifferent: "StructureDifferent",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// MarshalJSON encodes the kind under its wire name.
func (k Kind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

// UnmarshalJSON decodes a wire name back into a Kind.
func (k *Kind) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	for i, name := range kindNames {
		if name == s {
			*k = Kind(i)
			return nil
		}
	}
	return fmt.Errorf("unknown diff kind %q", s)
}

// Diff describes one difference found at a structural path.
type Diff struct {
	// Path is the structural path the difference was found at.
	Path string `json:"path"`

	// Kind classifies the difference.
	Kind Kind `json:"kind"`

	// Expected is the first document's value, absent for extra
	// elements/attributes.
	Expected *string `json:"expected,omitempty"`

	// Actual is the second document's value, absent for missing
	// elements/attributes.
	Actual *string `json:"actual,omitempty"`

	// Message is a human-readable description of the difference.
	Message string `json:"message"`
}

// Result is the outcome of comparing two flattened documents.
type Result struct {
	// Matched is true iff no diffs were found.
	Matched bool `json:"matched"`

	// MatchRatio is MatchedElements / TotalElements, in [0, 1].
	// Two empty documents have a ratio of 1.0.
	MatchRatio float64 `json:"match_ratio"`

	// Diffs lists every difference found, ordered by path.
	Diffs []Diff `json:"diffs"`

	// TotalElements is the larger of the two documents' element counts.
	// This is an approximation, not the cardinality of the path union.
	TotalElements int `json:"total_elements"`

	// MatchedElements counts elements of the first document that
	// produced no diff, including ignored ones.
	MatchedElements int `json:"matched_elements"`
}
