package errors

import (
	"os"
	"strings"
)

// ValidateSearchDir checks that dir names an existing directory.
// Both the missing and the not-a-directory case yield ErrCodeInvalidArgument.
func ValidateSearchDir(dir string) error {
	if strings.TrimSpace(dir) == "" {
		return New(ErrCodeInvalidArgument, "search directory cannot be empty")
	}

	info, err := os.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return New(ErrCodeInvalidArgument, "search directory does not exist: %s", dir)
		}
		return Wrap(ErrCodeInvalidArgument, err, "cannot access search directory %s", dir)
	}
	if !info.IsDir() {
		return New(ErrCodeInvalidArgument, "not a directory: %s", dir)
	}
	return nil
}

// ValidateOutputPath checks that path can be used as an append target.
// The file does not need to exist, but the path must not name a directory.
func ValidateOutputPath(path string) error {
	if strings.TrimSpace(path) == "" {
		return New(ErrCodeInvalidArgument, "output path cannot be empty")
	}
	if strings.ContainsRune(path, '\x00') {
		return New(ErrCodeInvalidArgument, "output path contains invalid characters")
	}

	info, err := os.Stat(path)
	if err == nil && info.IsDir() {
		return New(ErrCodeInvalidArgument, "output path is a directory: %s", path)
	}
	return nil
}
