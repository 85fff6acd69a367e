// Package logger builds the zap loggers used by the commands and the HTTP
// server.
//
// Level "debug" selects zap's development preset; any other level the
// production preset. Format "console" gives colored human output, "json"
// (the default) structured lines with level, time and message keys.
//
// WithRayID adds the ray id set by the rayid middleware, so the log lines of
// a request and of the reconcile it triggers share one correlation key:
//
//	l := logger.WithRayID(log, c)
//	l.Warn("Container request refused", zap.Error(err))
package logger
