package scan

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/matzehuels/jarindex/pkg/errors"
)

// visitFunc handles one matching file. A non-nil error stops the walk.
type visitFunc func(path, name string) error

// walk visits, depth first, every regular file under dir whose name ends in
// suffix. Directories that cannot be read are recorded in rep and skipped.
func walk(ctx context.Context, dir, suffix string, rep *Report, visit visitFunc) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		rep.fail(ctx, dir, errors.Wrap(errors.ErrCodeDirectoryRead, err, "read directory %s", dir))
		// ReadDir returns whatever it read before failing.
	}

	for _, e := range entries {
		if err := ctx.Err(); err != nil {
			return err
		}

		path := filepath.Join(dir, e.Name())
		switch {
		case e.IsDir():
			if err := walk(ctx, path, suffix, rep, visit); err != nil {
				return err
			}
		case !strings.HasSuffix(e.Name(), suffix):
			continue
		case e.Type().IsRegular():
			if err := visit(path, e.Name()); err != nil {
				return err
			}
		case e.Type()&os.ModeSymlink != 0:
			info, err := os.Stat(path)
			if err != nil || !info.Mode().IsRegular() {
				continue
			}
			if err := visit(path, e.Name()); err != nil {
				return err
			}
		}
	}
	return nil
}
