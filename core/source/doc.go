// Package source resolves document URLs to raw XML text.
//
// Two backends exist:
//
//   - HTTPSource fetches http:// and https:// URLs, replaying the
//     cookies of an optional credential session, and performs form-based
//     login against remote hosts.
//   - StoreSource resolves store://<object> URLs against the service's
//     own object storage bucket, where reference documents uploaded via
//     the documents feature live.
//
// The Resolver routes a URL to the right backend by scheme. Fetch and
// authentication failures surface as *FetchError and *AuthError so
// handlers can map them to HTTP statuses.
//
// No retries are performed and no per-request deadline is applied
// beyond the transport's connection-level timeouts.
package source
