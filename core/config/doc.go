// Package config loads the reconciler configuration.
//
// Values come from the environment, after an optional .env file has been
// applied with godotenv. Every key has the form SECTION_KEY (for example
// IMPORTER_CACHE_TTL_SECONDS or RECONCILE_PLACEMENT) and falls back to the
// `default` tag of its struct field. Sections: server, storage, log,
// database, importer and reconcile.
package config
