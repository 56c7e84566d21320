package compare

import "xml-compare-api/core/xmldiff"

// CompareRequest carries an inline document pair and its ignore rules.
type CompareRequest struct {
	// XML1 is the expected document.
	XML1 string `json:"xml1"`
	// XML2 is the actual document.
	XML2 string `json:"xml2"`
	// IgnorePaths lists path patterns excluded from comparison.
	IgnorePaths []string `json:"ignore_paths,omitempty"`
	// IgnoreProperties lists attribute keys or tag names excluded from comparison.
	IgnoreProperties []string `json:"ignore_properties,omitempty"`
}

// Credentials carries inline login details for a URL comparison.
type Credentials struct {
	// LoginURL is the login form target.
	LoginURL string `json:"login_url"`
	// Username is the account name.
	Username string `json:"username"`
	// Password is the account password.
	Password string `json:"password"`
}

// URLCompareRequest carries a URL-sourced document pair.
//
// Protected documents are fetched with the cookies of an existing
// session (SessionID) or of a session created on the fly from inline
// Credentials. Both may be omitted for public documents.
type URLCompareRequest struct {
	// URL1 locates the expected document (http, https or store scheme).
	URL1 string `json:"url1"`
	// URL2 locates the actual document.
	URL2 string `json:"url2"`
	// IgnorePaths lists path patterns excluded from comparison.
	IgnorePaths []string `json:"ignore_paths,omitempty"`
	// IgnoreProperties lists attribute keys or tag names excluded from comparison.
	IgnoreProperties []string `json:"ignore_properties,omitempty"`
	// SessionID references a stored session.
	SessionID string `json:"session_id,omitempty"`
	// Credentials authenticates on the fly when no session is referenced.
	Credentials *Credentials `json:"credentials,omitempty"`
}

// BatchRequest is an ordered sequence of inline comparisons.
type BatchRequest struct {
	Comparisons []CompareRequest `json:"comparisons"`
}

// BatchURLRequest is an ordered sequence of URL comparisons.
type BatchURLRequest struct {
	Comparisons []URLCompareRequest `json:"comparisons"`
}

// BatchResult aggregates the outcomes of one batch, one result per
// request in submission order.
type BatchResult struct {
	// Results holds one entry per request; failed items carry a
	// zero-value placeholder.
	Results []xmldiff.Result `json:"results"`
	// Total is the number of requests in the batch.
	Total int `json:"total"`
	// Successful counts items that produced a real comparison result.
	Successful int `json:"successful"`
	// Failed counts items replaced by a placeholder.
	Failed int `json:"failed"`
}
