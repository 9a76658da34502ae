// Package directory exposes the persisted catalogs over a small read-only
// HTTP API.
//
// It serves the per-platform catalog files, the unified master catalog and
// (when the ledger is enabled) the recent run history. The feature never
// writes: the fetch and unify commands remain the only writers.
//
// # HTTP Endpoints
//
//   - GET /catalogs/:platform : one platform catalog (youtube, instagram, tiktok)
//   - GET /influencers        : the unified master catalog
//   - GET /runs               : recent pipeline runs (requires the ledger)
package directory
