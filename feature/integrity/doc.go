// Package integrity reports on the health of the asset library bucket and
// of the reconcile journal.
//
// Structure checks that the manifests/ and sources/ folders exist and can
// create them. Sources lists every manifest version per asset and flags
// unversioned file names, which a reconcile would refuse. Journal compares
// the journal table with the columns history.Record expects.
//
// Routes live under /integrity; GET /integrity runs every check.
package integrity
