package sink

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/matzehuels/jarindex/pkg/errors"
)

// Record is one emitted line: a coordinate triple plus a class name.
type Record struct {
	GroupID    string
	ArtifactID string
	Version    string
	ClassName  string
}

// Format renders the record as a tab-separated line terminated by eol.
func (r Record) Format(eol LineEnding) string {
	return strings.Join([]string{r.GroupID, r.ArtifactID, r.Version, r.ClassName}, "\t") + eol.Terminator()
}

// LineEnding selects the line terminator written after each record.
type LineEnding string

// Supported line endings.
const (
	CRLF   LineEnding = "crlf"
	LF     LineEnding = "lf"
	Native LineEnding = "native"
)

// LineEndings lists the accepted values in display order.
var LineEndings = []LineEnding{CRLF, LF, Native}

// Terminator returns the byte sequence for the line ending. Native resolves
// to "\r\n" on Windows and "\n" elsewhere; unknown values fall back to Native.
func (e LineEnding) Terminator() string {
	switch e {
	case CRLF:
		return "\r\n"
	case LF:
		return "\n"
	}
	if runtime.GOOS == "windows" {
		return "\r\n"
	}
	return "\n"
}

// ParseLineEnding converts a flag or config value into a LineEnding.
// Matching is case-insensitive.
func ParseLineEnding(s string) (LineEnding, error) {
	e := LineEnding(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range LineEndings {
		if e == known {
			return e, nil
		}
	}
	return "", errors.New(errors.ErrCodeInvalidArgument, "unknown line ending %q (want one of %s)", s, fmt.Sprint(LineEndings))
}
