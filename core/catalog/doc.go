// Package catalog defines the canonical influencer record, the catalog
// container persisted per platform, and the file-backed store.
//
// # Canonical Record
//
// Every provider-specific raw record is translated (by the feature
// packages) into one Influencer value. The record id is a deterministic
// function of (platform, identity key), so re-fetching the same account
// always produces the same id and rediscoveries can safely overwrite.
//
// Platform-specific fields live in nilable extension structs
// (YouTubeExtra, InstagramExtra, TikTokExtra); exactly one of them is set
// per record.
//
// # Catalog Files
//
// A catalog is persisted as a JSON object:
//
//	{"generated_at": "...", "count": N, "influencers": [...]}
//
// The influencer list is kept in ranking order (descending followers),
// not insertion order. Writes are atomic: the store writes to a temp file
// in the target directory and renames it into place, so a crash mid-write
// cannot truncate a previously valid catalog.
package catalog
