package archive

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/klauspost/compress/zip"

	"github.com/matzehuels/jarindex/pkg/errors"
)

func writeJar(t *testing.T, path string, entries ...string) {
	t.Helper()
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	zw := zip.NewWriter(f)
	for _, name := range entries {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatal(err)
		}
		if strings.HasSuffix(name, "/") {
			continue
		}
		if _, err := w.Write([]byte("\xca\xfe\xba\xbe")); err != nil {
			t.Fatal(err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestClassName(t *testing.T) {
	tests := []struct {
		entry  string
		want   string
		wantOK bool
	}{
		{"com/foo/Bar.class", "com.foo.Bar", true},
		{"Top.class", "Top", true},
		{"a/b/c/d/e/Deep.class", "a.b.c.d.e.Deep", true},
		{"com/foo/Bar$Inner.class", "", false},
		{"com/foo/Bar$1.class", "", false},
		{"com/foo/Bar$Inner$Deeper.class", "", false},
		{"com/$gen/Bar.class", "", false},
		{"com/foo/", "", false},
		{"com/foo.class/", "", false},
		{"META-INF/MANIFEST.MF", "", false},
		{"com/foo/Bar.java", "", false},
		{"com/foo/Bar.classic", "", false},
		{"module-info.class", "module-info", true},
	}

	for _, tt := range tests {
		t.Run(tt.entry, func(t *testing.T) {
			got, ok := ClassName(tt.entry)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("ClassName(%q) = %q, %v; want %q, %v", tt.entry, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestListClasses(t *testing.T) {
	path := filepath.Join(t.TempDir(), "foo-1.0.jar")
	writeJar(t, path,
		"META-INF/MANIFEST.MF",
		"a/",
		"a/B.class",
		"a/B$1.class",
		"a/c/D.class",
		"a/c/D$Inner.class",
		"resources/app.properties",
	)

	got, err := ListClasses(path)
	if err != nil {
		t.Fatalf("ListClasses() error: %v", err)
	}

	want := []string{"a.B", "a.c.D"}
	if !slices.Equal(got, want) {
		t.Errorf("ListClasses() = %v, want %v", got, want)
	}
}

func TestListClassesPreservesArchiveOrder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "order.jar")
	writeJar(t, path, "z/Z.class", "a/A.class", "m/M.class")

	got, err := ListClasses(path)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"z.Z", "a.A", "m.M"}
	if !slices.Equal(got, want) {
		t.Errorf("ListClasses() = %v, want %v", got, want)
	}
}

func TestListClassesEmptyJar(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.jar")
	writeJar(t, path)

	got, err := ListClasses(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Errorf("ListClasses() = %v, want none", got)
	}
}

func TestOpenErrors(t *testing.T) {
	dir := t.TempDir()
	notZip := filepath.Join(dir, "broken.jar")
	if err := os.WriteFile(notZip, []byte("definitely not a zip"), 0644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		path string
	}{
		{"not a zip", notZip},
		{"missing", filepath.Join(dir, "missing.jar")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Open(tt.path)
			if err == nil {
				t.Fatal("Open() error = nil, want error")
			}
			if !errors.Is(err, errors.ErrCodeArchiveOpen) {
				t.Errorf("error code = %q, want %q", errors.GetCode(err), errors.ErrCodeArchiveOpen)
			}
		})
	}
}

func TestJarPathAndClose(t *testing.T) {
	path := filepath.Join(t.TempDir(), "x.jar")
	writeJar(t, path, "X.class")

	j, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	if j.Path() != path {
		t.Errorf("Path() = %q, want %q", j.Path(), path)
	}
	if err := j.Close(); err != nil {
		t.Errorf("Close() error: %v", err)
	}
}
