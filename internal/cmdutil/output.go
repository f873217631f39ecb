package cmdutil

import (
	"errors"
	"fmt"
	"io"

	"github.com/dustin/go-humanize"

	oerrors "github.com/quandora/grunt-umd-wrapper/internal/errors"
	"github.com/quandora/grunt-umd-wrapper/internal/output"
	"github.com/quandora/grunt-umd-wrapper/internal/pipeline"
)

// Summary counts processed files by status.
type Summary struct {
	Wrapped   int
	Unchanged int
	Stale     int
	Failed    int
	Skipped   int
	Bytes     int64
}

// Summarize counts results. failed is the number of job errors.
func Summarize(results []*pipeline.Result, failed int) Summary {
	s := Summary{Failed: failed}
	for _, r := range results {
		if r == nil {
			s.Skipped++
			continue
		}
		s.Bytes += r.Bytes
		switch r.Status {
		case pipeline.StatusWrapped:
			s.Wrapped++
		case pipeline.StatusUnchanged:
			s.Unchanged++
		case pipeline.StatusStale:
			s.Stale++
		}
	}
	s.Skipped -= failed
	if s.Skipped < 0 {
		s.Skipped = 0
	}
	return s
}

// String renders the summary line.
func (s Summary) String() string {
	msg := output.Pluralize(s.Wrapped, "file", "files") + " wrapped"
	if s.Unchanged > 0 {
		msg += fmt.Sprintf(", %d unchanged", s.Unchanged)
	}
	if s.Stale > 0 {
		msg += fmt.Sprintf(", %d stale", s.Stale)
	}
	if s.Failed > 0 {
		msg += fmt.Sprintf(", %d failed", s.Failed)
	}
	if s.Skipped > 0 {
		msg += fmt.Sprintf(", %d skipped", s.Skipped)
	}
	if s.Bytes > 0 {
		msg += fmt.Sprintf(" (%s)", humanize.Bytes(uint64(s.Bytes)))
	}
	return msg
}

// WriteResults logs one line per processed file, grouped by target logger.
func WriteResults(results []*pipeline.Result) {
	for _, r := range results {
		if r == nil {
			continue
		}
		log := output.Logger()
		if r.Job.Target != "" {
			log = output.TargetLogger(r.Job.Target)
		}
		log.Info(output.FormatFileLine(r.Job.Dest, r.Status, r.Bytes))
	}
}

// WriteDiffs prints the diff of every stale result to w.
func WriteDiffs(w io.Writer, results []*pipeline.Result) {
	for _, r := range pipeline.Stale(results) {
		fmt.Fprintf(w, "%s %s\n", output.StyleDim.Render("---"), output.StyleNoun.Render(r.Job.Dest))
		fmt.Fprint(w, r.Diff)
		if r.Diff != "" && r.Diff[len(r.Diff)-1] != '\n' {
			fmt.Fprintln(w)
		}
	}
}

// PrintErrors logs every error joined in err and returns how many there were.
func PrintErrors(err error) int {
	if err == nil {
		return 0
	}
	errs := []error{err}
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		if _, single := err.(*oerrors.ReadError); !single {
			errs = joined.Unwrap()
		}
	}
	for _, e := range errs {
		output.Error(e.Error())
	}
	return len(errs)
}

// ExitErrorFor wraps err with the exit code its sentinel maps to.
func ExitErrorFor(err error, printed bool) error {
	if err == nil {
		return nil
	}
	var exitErr *oerrors.ExitError
	if errors.As(err, &exitErr) {
		return err
	}
	return &oerrors.ExitError{Err: err, Code: oerrors.ExitCodeFromError(err), Printed: printed}
}

// StaleError reports destinations that differ from rendered output.
func StaleError(stale []*pipeline.Result) error {
	if len(stale) == 0 {
		return nil
	}
	return oerrors.NewValidationError(
		fmt.Sprintf("%s out of date", output.Pluralize(len(stale), "file is", "files are")),
		"",
		"Run without --check to rewrite them.",
	)
}
