package cli

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/matzehuels/jarindex/pkg/errors"
	"github.com/matzehuels/jarindex/pkg/observability"
	"github.com/matzehuels/jarindex/pkg/scan"
	"github.com/matzehuels/jarindex/pkg/sink"
)

// scanOpts holds the command-line flags for the scan.
type scanOpts struct {
	verbose    bool   // debug logging
	configPath string // explicit config file
	missing    string // missing-coordinate policy
	eol        string // line ending override
	report     string // JSON report path

	config fileConfig // loaded in PersistentPreRunE
}

// settings is the resolved configuration for one run.
type settings struct {
	missing scan.MissingPolicy
	eol     sink.LineEnding
	report  string
}

// resolve merges flags, config file and defaults. Flags win only when they
// were set explicitly.
func (o *scanOpts) resolve(cmd *cobra.Command, toFile bool) (settings, error) {
	var s settings

	missing := o.missing
	if !cmd.Flags().Changed("missing") && o.config.Missing != "" {
		missing = o.config.Missing
	}
	policy, err := scan.ParseMissingPolicy(missing)
	if err != nil {
		return s, err
	}
	s.missing = policy

	eol := o.eol
	if eol == "" {
		if toFile {
			eol = valueOr(o.config.FileEOL, string(sink.CRLF))
		} else {
			eol = valueOr(o.config.StdoutEOL, string(sink.Native))
		}
	}
	if s.eol, err = sink.ParseLineEnding(eol); err != nil {
		return s, err
	}

	s.report = o.report
	if s.report == "" {
		s.report = o.config.Report
	}
	return s, nil
}

// scanArgs accepts a search directory and an optional output file, and
// reports the usage line when the directory is missing.
func scanArgs(cmd *cobra.Command, args []string) error {
	switch {
	case len(args) == 0:
		return errors.New(errors.ErrCodeInvalidArgument, "missing search directory\nUsage: %s", cmd.UseLine())
	case len(args) > 2:
		return errors.New(errors.ErrCodeInvalidArgument, "too many arguments (%d)\nUsage: %s", len(args), cmd.UseLine())
	}
	return nil
}

// runScan validates the arguments, opens the output target and runs both
// passes. Per-file failures are logged but do not fail the command.
func runScan(cmd *cobra.Command, opts *scanOpts, args []string) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	root := args[0]
	if err := errors.ValidateSearchDir(root); err != nil {
		return err
	}
	var outPath string
	if len(args) == 2 {
		outPath = args[1]
		if err := errors.ValidateOutputPath(outPath); err != nil {
			return err
		}
	}

	s, err := opts.resolve(cmd, outPath != "")
	if err != nil {
		return err
	}

	var w *sink.Writer
	if outPath != "" {
		if w, err = sink.OpenAppend(outPath, s.eol); err != nil {
			return err
		}
	} else {
		w = sink.NewWriter(cmd.OutOrStdout(), s.eol)
	}
	defer w.Close()

	stopSpinner := func() {}
	if outPath != "" && isatty.IsTerminal(os.Stderr.Fd()) {
		spin := newSpinnerWithContext(ctx, os.Stderr, "Scanning "+root)
		observability.SetScanHooks(newSpinnerHooks(spin))
		spin.Start()
		stopSpinner = func() {
			spin.Stop()
			observability.Reset()
		}
	}

	logger.Debug("Starting scan", "root", root, "output", valueOr(outPath, "stdout"), "missing", s.missing, "eol", s.eol)
	prog := newProgress(logger)

	rep, err := scan.New(scan.Options{Logger: logger, Missing: s.missing}).Run(ctx, root, w)
	stopSpinner()
	if err != nil {
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Indexed %d classes from %d jars", rep.Records, rep.Jars))

	if !rep.OK() {
		for code, n := range rep.CountByCode() {
			logger.Warn("Skipped files", "code", code, "count", n)
		}
	}

	if s.report != "" {
		if err := scan.ExportJSON(rep, s.report); err != nil {
			logger.Error("Write report failed", "path", s.report, "err", err)
		} else {
			logger.Info("Wrote report", "path", s.report, "run", rep.RunID)
		}
	}

	if outPath != "" {
		printSummary(cmd.OutOrStdout(), rep, outPath)
	}
	return nil
}
