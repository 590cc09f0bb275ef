// Package http implements the web front end of the query client.
//
// It serves the query page and the HTML partials that the page swaps into
// its results, answer and citations regions, plus health, version and
// Prometheus endpoints. Request tracing, access logging, compression and
// metrics are handled by middleware before requests reach the handlers.
//
// The frontend keeps no display state between requests: every partial is
// produced by a fresh query client, and all backend or user text is escaped
// on the way into markup.
package http
