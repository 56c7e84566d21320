package xmldiff

import (
	"fmt"
	"sort"
)

// Compare diffs two flattened documents under the given ignore rules.
//
// Elements excluded by an ignore path pattern or whose tag name is an
// ignored property are treated as matched without being compared.
// Every remaining element reports all applicable diffs: content plus
// one AttributeDifferent per differing, missing or extra attribute.
func Compare(doc1, doc2 Document, ignorePaths, ignoreProperties []string) Result {
	diffs := make([]Diff, 0)
	matchedElements := 0
	totalElements := len(doc1)
	if len(doc2) > totalElements {
		totalElements = len(doc2)
	}

	for _, path := range sortedPaths(doc1) {
		element1 := doc1[path]

		if PathIgnored(path, ignorePaths) || PropertyIgnored(element1.Name, ignoreProperties) {
			matchedElements++
			continue
		}

		element2, ok := doc2[path]
		if !ok {
			diffs = append(diffs, Diff{
				Path:     path,
				Kind:     ElementMissing,
				Expected: strptr(element1.String()),
				Message:  "Element missing in second XML",
			})
			continue
		}

		elementDiffs := compareElements(path, element1, element2, ignoreProperties)
		if len(elementDiffs) == 0 {
			matchedElements++
		} else {
			diffs = append(diffs, elementDiffs...)
		}
	}

	for _, path := range sortedPaths(doc2) {
		if _, ok := doc1[path]; !ok {
			element2 := doc2[path]
			diffs = append(diffs, Diff{
				Path:    path,
				Kind:    ElementExtra,
				Actual:  strptr(element2.String()),
				Message: "Extra element in second XML",
			})
		}
	}

	matchRatio := 1.0
	if totalElements > 0 {
		matchRatio = float64(matchedElements) / float64(totalElements)
	}

	return Result{
		Matched:         len(diffs) == 0,
		MatchRatio:      matchRatio,
		Diffs:           diffs,
		TotalElements:   totalElements,
		MatchedElements: matchedElements,
	}
}

// compareElements diffs two elements found at the same path.
func compareElements(path string, element1, element2 Element, ignoreProperties []string) []Diff {
	var diffs []Diff

	if !contentEqual(element1.Content, element2.Content) {
		diffs = append(diffs, Diff{
			Path:     path,
			Kind:     ContentDifferent,
			Expected: element1.Content,
			Actual:   element2.Content,
			Message:  "Content differs",
		})
	}

	for _, key := range sortedKeys(element1.Attributes) {
		if PropertyIgnored(key, ignoreProperties) {
			continue
		}
		value1 := element1.Attributes[key]
		value2, ok := element2.Attributes[key]
		switch {
		case !ok:
			diffs = append(diffs, Diff{
				Path:     path,
				Kind:     AttributeDifferent,
				Expected: strptr(fmt.Sprintf("%s=%s", key, value1)),
				Message:  fmt.Sprintf("Attribute '%s' missing in second XML", key),
			})
		case value1 != value2:
			diffs = append(diffs, Diff{
				Path:     path,
				Kind:     AttributeDifferent,
				Expected: strptr(fmt.Sprintf("%s=%s", key, value1)),
				Actual:   strptr(fmt.Sprintf("%s=%s", key, value2)),
				Message:  fmt.Sprintf("Attribute '%s' differs", key),
			})
		}
	}

	for _, key := range sortedKeys(element2.Attributes) {
		if PropertyIgnored(key, ignoreProperties) {
			continue
		}
		if _, ok := element1.Attributes[key]; !ok {
			diffs = append(diffs, Diff{
				Path:    path,
				Kind:    AttributeDifferent,
				Actual:  strptr(fmt.Sprintf("%s=%s", key, element2.Attributes[key])),
				Message: fmt.Sprintf("Extra attribute '%s' in second XML", key),
			})
		}
	}

	// Tag names normally agree because the path encodes them; anything
	// else left non-identical falls back to a single structure diff.
	if len(diffs) == 0 && element1.Name != element2.Name {
		diffs = append(diffs, Diff{
			Path:     path,
			Kind:     StructureDifferent,
			Expected: strptr(element1.String()),
			Actual:   strptr(element2.String()),
			Message:  "Element structure differs",
		})
	}

	return diffs
}

func contentEqual(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func sortedPaths(doc Document) []string {
	paths := make([]string, 0, len(doc))
	for path := range doc {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func strptr(s string) *string {
	return &s
}
