package scan

import (
	"context"
	"time"

	"github.com/matzehuels/jarindex/pkg/archive"
	"github.com/matzehuels/jarindex/pkg/errors"
	"github.com/matzehuels/jarindex/pkg/maven"
	"github.com/matzehuels/jarindex/pkg/observability"
	"github.com/matzehuels/jarindex/pkg/sink"
)

// List walks root, lists the top-level classes of every *.jar file and
// writes one record per class to out, using table to attribute each jar to
// the coordinate stored under its base name.
//
// Jars that cannot be opened, and jars without coordinates under
// [MissingSkip], are recorded in the report and skipped. The returned error
// is non-nil if ctx is cancelled or out fails.
func List(ctx context.Context, root string, table *maven.Table, out sink.Sink, opts Options) (*Report, error) {
	opts = opts.WithDefaults()
	rep := newReport(root, opts.Logger.Warn)
	err := list(ctx, root, table, out, opts, rep)
	rep.finish()
	return rep, err
}

func list(ctx context.Context, root string, table *maven.Table, out sink.Sink, opts Options, rep *Report) error {
	hooks := observability.Scan()
	hooks.OnPassStart(ctx, "list", root)
	start := time.Now()

	seen := 0
	err := walk(ctx, root, JarSuffix, rep, func(path, name string) error {
		seen++
		n, err := listJar(ctx, path, BaseName(name, JarSuffix), table, out, opts, rep)
		if err != nil {
			if errors.GetCode(err).Fatal() {
				return err
			}
			rep.fail(ctx, path, err)
			return nil
		}
		hooks.OnJarListed(ctx, path, n)
		return nil
	})

	hooks.OnPassComplete(ctx, "list", seen, time.Since(start))
	return err
}

// listJar emits the records of a single jar and returns how many were written.
func listJar(ctx context.Context, path, key string, table *maven.Table, out sink.Sink, opts Options, rep *Report) (int, error) {
	j, err := archive.Open(path)
	if err != nil {
		return 0, err
	}
	defer j.Close()
	rep.Jars++

	classes := j.ClassNames()
	if len(classes) == 0 {
		opts.Logger.Debug("jar has no top-level classes", "path", path)
		return 0, nil
	}

	c, ok := table.Lookup(key)
	if !ok {
		rep.Unmatched++
		if opts.Missing == MissingSkip {
			return 0, errors.New(errors.ErrCodeMissingCoord, "no pom named %s%s for %d classes", key, POMSuffix, len(classes))
		}
		opts.Logger.Debug("jar has no pom, emitting empty coordinates", "path", path)
	}

	for _, cls := range classes {
		r := sink.Record{
			GroupID:    c.GroupID,
			ArtifactID: c.ArtifactID,
			Version:    c.Version,
			ClassName:  cls,
		}
		if err := out.Write(r); err != nil {
			return 0, errors.Wrap(errors.ErrCodeOutputWrite, err, "write records for %s", path)
		}
		rep.Records++
	}
	opts.Logger.Debug("listed jar", "path", path, "classes", len(classes))
	return len(classes), nil
}
