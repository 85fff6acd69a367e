// Package errors defines the error taxonomy shared by the reconciliation
// pipeline.
//
// Every failure of a reconcile call is reported as an *Error carrying a Kind.
// Kinds are recoverable from the caller's point of view: none of them leaves
// a Container partially edited.
//
// # Kinds
//
//   - IdentityMismatch: the candidate file is not the same kind of asset
//   - VersionMismatch: different asset, or the version is already loaded
//   - ImportError: the importer could not produce a staging container
//   - ApplyError: a single element could not be applied; Name identifies it
//   - Busy: another reconciliation holds the container
//   - Rejected: the change was declined at the confirmation gate
//   - NotFound: the container id is unknown to the session
//
// # Usage
//
//	if errors.Is(err, errors.ErrBusy) {
//	    // retry later
//	}
//	switch errors.KindOf(err) {
//	case errors.KindRejected:
//	}
package errors
