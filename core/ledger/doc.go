// Package ledger records one row per pipeline run (fetch or unify) in a
// relational database: how many accounts were discovered, how many were
// genuinely new, how many survived the filters, and whether the run
// succeeded.
//
// The ledger is optional. When disabled the pipeline runs exactly the
// same; when enabled it gives operators a cheap history of what each
// scheduled run paid for. SQLite is the default driver for the
// single-binary deployment; MySQL is supported for shared setups.
package ledger
