// Package server holds the HTTP server configuration.
//
// The Config struct defines the HTTP port, the API key and the timeouts
// applied to shutdown and to reconcile requests. It is embedded by
// core/config and consumed by the start command.
package server
