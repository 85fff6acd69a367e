// Package storage talks to the S3-compatible bucket holding the asset
// library.
//
// Client narrows minio to the calls this service makes; mocks.Client is its
// testify double. ListKeys drains a recursive listing, HasPrefix probes a
// folder with a single key and PutMarker writes the empty .keep object the
// structure fix relies on.
package storage
