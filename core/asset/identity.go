package asset

import (
	"fmt"
	"strings"

	"asset-reconciler/core/errors"
)

// Identity is the (base name, version, extension) triple of a versioned file.
type Identity struct {
	BaseName  string `json:"base_name"`
	Version   string `json:"version"`
	Extension string `json:"extension"`
}

// String renders the identity back into its file name form.
func (i Identity) String() string {
	return i.BaseName + "." + i.Version + "." + i.Extension
}

// SameAsset reports whether both identities designate the same logical asset.
func (i Identity) SameAsset(other Identity) bool {
	return i.BaseName == other.BaseName && i.Extension == other.Extension
}

// Parse extracts the identity from a path. The directory part is optional and
// may use either slash style. The base name may itself contain dots: only the
// last two dots split version and extension.
func Parse(path string) (Identity, error) {
	file := path
	if idx := strings.LastIndexAny(path, `/\`); idx >= 0 {
		file = path[idx+1:]
	}

	extDot := strings.LastIndex(file, ".")
	if extDot <= 0 || extDot == len(file)-1 {
		return Identity{}, fmt.Errorf("%q does not match <name>.<version>.<extension>", path)
	}
	verDot := strings.LastIndex(file[:extDot], ".")
	if verDot <= 0 || verDot == extDot-1 {
		return Identity{}, fmt.Errorf("%q does not match <name>.<version>.<extension>", path)
	}

	return Identity{
		BaseName:  file[:verDot],
		Version:   file[verDot+1 : extDot],
		Extension: file[extDot+1:],
	}, nil
}

// Validate checks that candidatePath is a newer version of the asset loaded
// from currentPath.
//
// It returns an IdentityMismatch error when either path is not a versioned
// file or the extensions differ, and a VersionMismatch error when the base
// names differ or the candidate carries the version already loaded.
func Validate(currentPath, candidatePath string) error {
	current, err := Parse(currentPath)
	if err != nil {
		return errors.IdentityMismatch("current asset path is not versioned: %v", err)
	}
	candidate, err := Parse(candidatePath)
	if err != nil {
		return errors.IdentityMismatch("wrong file type selected: %v", err)
	}

	if current.Extension != candidate.Extension {
		return errors.IdentityMismatch("wrong file selected (incorrect extension): expected .%s, got .%s",
			current.Extension, candidate.Extension)
	}
	if current.BaseName != candidate.BaseName {
		return errors.VersionMismatch("wrong file selected (incorrect asset / version): expected %s, got %s",
			current.BaseName, candidate.BaseName)
	}
	if current.Version == candidate.Version {
		return errors.VersionMismatch("version %s of %s is already loaded", current.Version, current.BaseName)
	}

	return nil
}
