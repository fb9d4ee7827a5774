package scan

import (
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/jarindex/pkg/errors"
)

// File suffixes recognised by the two passes.
const (
	POMSuffix = ".pom"
	JarSuffix = ".jar"
)

// MissingPolicy decides what happens to a jar whose base name has no pom.
type MissingPolicy string

const (
	// MissingSkip reports the jar as a failure and emits nothing for it.
	MissingSkip MissingPolicy = "skip"
	// MissingEmpty emits the jar's classes with empty coordinate fields.
	MissingEmpty MissingPolicy = "empty"
)

// ParseMissingPolicy converts a flag or config value into a MissingPolicy.
func ParseMissingPolicy(s string) (MissingPolicy, error) {
	switch p := MissingPolicy(strings.ToLower(strings.TrimSpace(s))); p {
	case MissingSkip, MissingEmpty:
		return p, nil
	}
	return "", errors.New(errors.ErrCodeInvalidArgument, "unknown missing-coordinate policy %q (want skip or empty)", s)
}

// Options configures a scan.
type Options struct {
	Logger  *log.Logger   // Progress and failure logging (default: discard)
	Missing MissingPolicy // Missing-coordinate policy (default: MissingSkip)
}

// WithDefaults returns a copy of Options with zero values replaced by defaults.
func (o Options) WithDefaults() Options {
	opts := o
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Missing == "" {
		opts.Missing = MissingSkip
	}
	return opts
}

// BaseName strips suffix from a filename. Names without the suffix are
// returned unchanged.
func BaseName(name, suffix string) string {
	return strings.TrimSuffix(name, suffix)
}
