// Package middleware contains HTTP middleware for the Fiber application.
//
// # Components
//
//   - auth: API key validation (X-API-Key) protecting the container routes.
//   - rayid: a unique Request ID (RayID) for every incoming request, stored
//     in the context and echoed in the X-Ray-ID response header for tracing.
//
// These components are registered globally in the start command.
package middleware
