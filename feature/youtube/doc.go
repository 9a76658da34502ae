// Package youtube discovers channels through the synchronous YouTube Data
// API v3: a keyword search surfaces channel ids (the discovery phase) and
// the channels endpoint delivers details in batches (the enrichment
// phase). Statistics arrive as strings and are parsed defensively; the
// thumbnail fallback chain is high, then medium, then default.
package youtube
