// Package importer turns a versioned source file into a staging Container.
//
// The reconciliation core treats importing as opaque: it only needs the
// Importer interface. This package provides the manifest importer used by the
// service and the CLI, plus a caching decorator.
//
// # Manifests
//
// A manifest lists the elements of one version of a composite asset:
//
//	name: sh010_bg
//	elements:
//	  - name: sky
//	    source: layers/sky.png
//	  - name: fx
//	    kind: container
//
// Relative sources resolve against the manifest's directory. JSON manifests
// are accepted as well since JSON is a subset of YAML.
//
// # Sources
//
// Manifests are read through a Source: FSSource wraps an afero filesystem,
// StorageSource reads objects from the configured bucket.
//
// # Caching
//
// CachedImporter keeps parsed manifests for a TTL and collapses concurrent
// imports of the same path with singleflight. Every call still receives its
// own deep copy, so staging containers are never shared between calls.
package importer
