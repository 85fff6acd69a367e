// Package reconcile exposes the containers of the running session over HTTP.
//
// # HTTP Endpoints
//
//   - GET /containers : Lists loaded containers.
//   - GET /containers/:id : Returns one container with its elements.
//   - POST /containers : Imports a versioned file as a new container.
//   - POST /containers/:id/plan : Diffs the container against a newer version without changing it.
//   - POST /containers/:id/reconcile : Updates the container to a newer version.
//   - GET /containers/:id/history : Lists journal records (supports ?limit=).
//
// A reconcile request carries its confirmation up front: `confirm: true`
// accepts additions and removals, anything else rejects them with 409 and
// the diff that would have been applied. Pure source swaps never need it.
//
// # Error Mapping
//
//   - identity_mismatch, version_mismatch: 422
//   - not_found: 404
//   - busy, rejected: 409
//   - import_error: 502
//   - apply_error: 500
package reconcile
