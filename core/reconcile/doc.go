// Package reconcile updates an already-imported Container to a newer version
// of the same source file.
//
// The pipeline keeps unaffected elements intact and guarantees the Container
// is either fully updated or left untouched, whatever the exit path.
//
// # Architecture
//
// The reconcile system consists of four components:
//
// 1. Differ: Diff pairs the leaf elements of the current and incoming
// containers by name (never by position) and partitions the union of names
// into added, removed and matched.
//
// 2. Gate: Confirm approves a non-trivial diff through an injected Confirmer.
// Pure source swaps are accepted without asking.
//
// 3. Applier: Apply swaps sources of matched elements, drops removed ones
// and inserts added ones, on a private working copy.
//
// 4. Guard: Reconciler drives the stages Validating, Importing, Diffing,
// Confirming and Applying inside a container.Tx, committing the working copy
// in one step or rolling everything back.
//
// # Concurrency
//
// One reconciliation may be in flight per container; a second request fails
// fast with a Busy error. Different containers reconcile independently. The
// confirmation gate is the only stage that may wait on a human; nothing can
// interleave between an accepted confirmation and the commit.
//
// # Usage Example
//
//	session := container.NewSession()
//	imp := importer.NewManifestImporter(importer.NewFSSource(""))
//	r := reconcile.New(session, imp, reconcile.StaticConfirmer{Accept: true},
//	    reconcile.WithLogger(logger))
//
//	c, err := r.Load(ctx, "/shots/sh010/bg.v001.yaml")
//	outcome, err := r.Reconcile(ctx, c.ID, "/shots/sh010/bg.v002.yaml")
package reconcile
