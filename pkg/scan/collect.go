package scan

import (
	"context"
	"os"
	"time"

	"github.com/matzehuels/jarindex/pkg/errors"
	"github.com/matzehuels/jarindex/pkg/maven"
	"github.com/matzehuels/jarindex/pkg/observability"
)

// Collect walks root and builds a coordinate table from every *.pom file.
// Poms that cannot be read or parsed are recorded in the report and
// skipped. The returned error is non-nil only if ctx is cancelled.
func Collect(ctx context.Context, root string, opts Options) (*maven.Table, *Report, error) {
	opts = opts.WithDefaults()
	rep := newReport(root, opts.Logger.Warn)
	table, err := collect(ctx, root, opts, rep)
	rep.finish()
	return table, rep, err
}

func collect(ctx context.Context, root string, opts Options, rep *Report) (*maven.Table, error) {
	hooks := observability.Scan()
	hooks.OnPassStart(ctx, "collect", root)
	start := time.Now()

	b := maven.NewTableBuilder()
	seen := 0
	err := walk(ctx, root, POMSuffix, rep, func(path, name string) error {
		seen++
		c, err := readPOM(path)
		if err != nil {
			rep.fail(ctx, path, err)
			return nil
		}

		key := BaseName(name, POMSuffix)
		if b.Put(key, c) {
			opts.Logger.Debug("pom replaces earlier entry", "key", key, "path", path)
		}
		rep.POMs++
		opts.Logger.Debug("parsed pom", "path", path, "coordinate", c.String())
		hooks.OnPOMParsed(ctx, path, key)
		return nil
	})

	hooks.OnPassComplete(ctx, "collect", seen, time.Since(start))
	return b.Build(), err
}

func readPOM(path string) (maven.Coordinate, error) {
	f, err := os.Open(path)
	if err != nil {
		return maven.Coordinate{}, errors.Wrap(errors.ErrCodeFileRead, err, "open %s", path)
	}
	defer f.Close()

	return maven.ParseCoordinate(f)
}
