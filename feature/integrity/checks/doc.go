// Package checks holds the individual asset library integrity checks.
package checks
