// Package compare implements the XML comparison feature.
//
// It exposes single and batch comparison endpoints for inline XML
// payloads and for URL-sourced document pairs. Inline batches run
// synchronously in submission order. URL batches fan out through a
// bounded worker group, fetch both documents (replaying session
// cookies where a session is referenced), and rejoin the results in
// submission order. A failing item never aborts its batch: it is
// replaced by a zero-value placeholder result and counted as failed.
//
// When a history database is configured, every completed comparison is
// recorded and the most recent runs can be listed.
package compare
