// Package archive lists the top-level classes contained in a jar.
//
// Only the zip central directory is consulted; entry contents, the manifest
// and class bytecode are never read.
package archive

import (
	"strings"

	"github.com/klauspost/compress/zip"

	"github.com/matzehuels/jarindex/pkg/errors"
)

const (
	classSuffix     = ".class"
	nestedSeparator = "$"
)

// Jar is an open jar archive. Close must be called to release the handle.
type Jar struct {
	path string
	zr   *zip.ReadCloser
}

// Open opens the jar at path. Failures carry [errors.ErrCodeArchiveOpen].
func Open(path string) (*Jar, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeArchiveOpen, err, "open %s", path)
	}
	return &Jar{path: path, zr: zr}, nil
}

// Path returns the filesystem path the jar was opened from.
func (j *Jar) Path() string { return j.path }

// ClassNames returns the fully-qualified names of the top-level classes in
// the jar, in archive order.
func (j *Jar) ClassNames() []string {
	var names []string
	for _, f := range j.zr.File {
		if f.FileInfo().IsDir() {
			continue
		}
		if name, ok := ClassName(f.Name); ok {
			names = append(names, name)
		}
	}
	return names
}

// Close releases the underlying file handle.
func (j *Jar) Close() error {
	return j.zr.Close()
}

// ClassName converts an archive entry name such as "com/foo/Bar.class" to
// "com.foo.Bar". It reports false for directory entries, non-class entries
// and nested classes (any name containing '$').
func ClassName(entry string) (string, bool) {
	if strings.HasSuffix(entry, "/") {
		return "", false
	}
	if !strings.HasSuffix(entry, classSuffix) {
		return "", false
	}
	if strings.Contains(entry, nestedSeparator) {
		return "", false
	}
	name := strings.TrimSuffix(entry, classSuffix)
	return strings.ReplaceAll(name, "/", "."), true
}

// ListClasses opens the jar at path, lists its top-level classes and closes
// it again.
func ListClasses(path string) ([]string, error) {
	j, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer j.Close()
	return j.ClassNames(), nil
}
