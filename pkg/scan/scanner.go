package scan

import (
	"context"

	"github.com/matzehuels/jarindex/pkg/sink"
)

// Scanner runs the collector pass followed by the lister pass.
type Scanner struct {
	opts Options
}

// New returns a Scanner with opts applied over the defaults.
func New(opts Options) *Scanner {
	return &Scanner{opts: opts.WithDefaults()}
}

// Run scans root, writes every record to out and returns the combined
// report. The coordinate table is fully built before the first jar is
// opened and is not modified afterwards.
func (s *Scanner) Run(ctx context.Context, root string, out sink.Sink) (*Report, error) {
	rep := newReport(root, s.opts.Logger.Warn)
	defer rep.finish()

	table, err := collect(ctx, root, s.opts, rep)
	if err != nil {
		return rep, err
	}
	s.opts.Logger.Info("Collected coordinates", "poms", table.Len())

	if err := list(ctx, root, table, out, s.opts, rep); err != nil {
		return rep, err
	}
	return rep, nil
}
