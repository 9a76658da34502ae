// Package apify implements the client for the asynchronous scraping-job
// protocol shared by the Apify actors used for discovery and enrichment.
//
// # Job Lifecycle
//
// RunActor drives one job through its full state machine:
//
//	SUBMITTED -> POLLING -> {SUCCEEDED | FAILED | ABORTED | TIMED-OUT}
//
// Submission and result fetching fail fatally on transport errors (after a
// bounded retry of transient failures), because they indicate bad
// credentials or a malformed request. A terminal FAILED/ABORTED/TIMED-OUT
// status, or exhausting the configured poll attempts, is a *recovered*
// failure: RunActor returns a RunError (or ErrPollTimeout) that callers
// downgrade to a warning, and the affected discovery unit simply yields
// zero records.
//
// # Poll Policy
//
// Polling is a cooperative blocking wait: the client sleeps for the fixed
// interval between status checks and does no other work. The interval and
// attempt bound live in PollPolicy, derived from configuration rather than
// inlined in control flow.
package apify
