// Package container holds the structural model being reconciled and the
// authoring session that owns it.
//
// A Container is an ordered sequence of named Elements. An Element is either
// a Leaf (a named reference to an external resource) or a SubContainer marker;
// the Kind is a closed set handled with exhaustive switches.
//
// # Session
//
// Session is the explicit replacement for a host's implicit "active document":
// it owns every Container of one authoring session and serializes mutation
// per container id. Begin acquires an exclusive ownership token and hands out
// a Tx holding a private working copy. Commit swaps that copy in as one step;
// Rollback discards it. A second Begin on the same id while a Tx is open
// fails fast with a Busy error.
//
//	tx, err := session.Begin(ctx, id)
//	if err != nil {
//	    return err
//	}
//	defer tx.Rollback()
//	work := tx.Working()
//	// ... edit work ...
//	return tx.Commit()
package container
