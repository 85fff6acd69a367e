// Package asset parses and compares versioned asset identities.
//
// A versioned source file follows the grammar <name>.<version>.<extension>,
// optionally preceded by a directory. Two paths designate the same asset when
// their base name and extension are equal; the version token is what a
// reconciliation moves forward.
//
// Validate is the gate run before any import: it is a pure function over the
// two path strings and never touches the filesystem.
package asset
