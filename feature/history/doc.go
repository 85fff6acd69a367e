// Package history keeps the reconcile journal.
//
// Every reconcile call, committed or rolled back, is stored as a Record in
// the reconcile_records table. Repository implements reconcile.Recorder so
// the Reconciler writes the journal itself; a failed write is logged and
// never changes the outcome of the reconcile.
//
// The journal lives in the database configured under `database`: MySQL in
// production, SQLite for local runs.
package history
