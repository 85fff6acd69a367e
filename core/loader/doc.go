// Package loader registers the HTTP features of the server.
//
// A Feature names itself, reports whether its dependencies are present and
// registers its routes. The start command registers every feature with a
// Manager; LoadAll skips disabled ones, so the integrity routes disappear
// when no storage client exists without the command knowing about it.
package loader
