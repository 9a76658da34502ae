// Package reconcile implements the incremental per-platform pipeline: it
// turns a sequence of discovery units into one refreshed, filtered, ranked
// catalog while avoiding redundant expensive lookups.
//
// # Architecture
//
// The engine is generic over a Source, which encapsulates all
// provider-specific logic:
//
//  1. Source.Discover surfaces candidate identity keys for one discovery
//     unit (a hashtag or search keyword). One-phase providers attach the
//     fully canonicalized record to each discovery; two-phase providers
//     return keys only.
//  2. The engine computes newInUnit = candidates − existing −
//     alreadyFoundThisRun, so accounts already in the loaded catalog (or
//     found earlier in the same run) are never processed twice.
//  3. Keys without an inline record are sent to Source.Enrich in fixed-size
//     batches. This is the cost-avoidance contract: previously known
//     accounts are never re-enriched.
//  4. New records are merged over the existing catalog (new data wins on
//     key collision; accounts not rediscovered pass through unchanged),
//     the follower-range filter is applied, and the result is ranked and
//     persisted atomically.
//
// # Failure Policy
//
// A recoverable job failure (see apify.IsRecoverable) in a discovery unit
// or an enrichment batch contributes zero records, logs a warning, and the
// run continues. Everything else (transport failures after retry, store
// I/O) aborts the run.
package reconcile
