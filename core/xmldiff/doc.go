// Package xmldiff implements structural comparison of XML documents.
//
// A document is flattened into a map from structural path to element,
// where a path is the slash-delimited chain of ancestor tag names
// (e.g. "/root/child"). Two flattened documents are then compared
// element by element, producing a typed diff list and a match ratio.
//
// # Flattening
//
// Flatten consumes the token stream of a document (start, character
// data, end) while maintaining a stack of open paths. Paths carry no
// sibling index: siblings sharing a tag name collide on the same path
// and the later sibling's record overwrites the earlier one. This is a
// documented property of the model, not a defect to be compensated for
// downstream.
//
// # Ignore rules
//
// Comparison accepts two independent rule lists:
//
//   - Path patterns: exact ("/root/child"), wildcard-suffix ("/root/*")
//     or prefix ("/root/"). A matching element is excluded from diffing
//     but still counts as matched.
//   - Property names: matched against attribute keys (excluding that
//     attribute) and against element tag names (excluding the whole
//     element, content included).
//
// # Diff policy
//
// Every applicable diff is reported per element: a content difference
// plus one AttributeDifferent per differing, missing or extra
// attribute. The match ratio is matchedElements divided by the larger
// of the two documents' element counts (1.0 for two empty documents).
package xmldiff
