package batch

import (
	"context"
	"runtime"

	"github.com/pkg/errors"
	"github.com/pseudomuto/hqlfmt/pkg/format"
	"github.com/pseudomuto/hqlfmt/pkg/parser"
	"golang.org/x/sync/errgroup"
)

type (
	// Job is a single input to format.
	Job struct {
		// Name identifies the input in error messages (usually a file path).
		Name string
		// Text is the raw query text.
		Text string
		// Style is the layout used for this job.
		Style format.Style
		// Script formats Text as a sequence of semicolon separated queries
		// instead of a single query.
		Script bool
	}

	// Result is the outcome of a Job.
	Result struct {
		Job Job
		// Output is the formatted text. Empty when Err is set.
		Output string
		// Err is the formatting error, if any.
		Err error
		// ErrorOffset is the byte offset of the failure within Job.Text, or
		// parser.EndOfInput. Only meaningful when Err is set.
		ErrorOffset int
		// Selection is the document region the job came from. Only set by
		// Selections.
		Selection Selection
	}

	// Runner formats jobs concurrently.
	Runner struct {
		workers int
	}
)

// NewRunner creates a Runner that formats at most workers jobs at a time.
// A value below one uses GOMAXPROCS.
func NewRunner(workers int) *Runner {
	if workers < 1 {
		workers = runtime.GOMAXPROCS(0)
	}

	return &Runner{workers: workers}
}

// Workers returns the maximum number of jobs formatted at once.
func (r *Runner) Workers() int {
	return r.workers
}

// Run formats every job and returns their results in job order. A job that
// fails to format does not stop the others; its error is reported on its
// Result. The returned error is only set when ctx is cancelled before all
// jobs ran.
func (r *Runner) Run(ctx context.Context, jobs []Job) ([]Result, error) {
	results := make([]Result, len(jobs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)

	for i, job := range jobs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			results[i] = formatJob(job)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, errors.Wrap(err, "batch cancelled")
	}

	return results, nil
}

func formatJob(job Job) Result {
	var (
		out string
		err error
	)

	if job.Script {
		out, err = format.Script(job.Name, job.Text, job.Style)
	} else {
		out, err = format.String(job.Text, job.Style)
	}

	result := Result{Job: job, Output: out, Err: err}
	if err != nil {
		result.Output = ""
		result.ErrorOffset = parser.EndOfInput

		var fmtErr parser.Error
		if errors.As(err, &fmtErr) {
			result.ErrorOffset = fmtErr.Offset()
		}
	}

	return result
}

// Changed reports whether the job formatted successfully to something other
// than its input.
func (r Result) Changed() bool {
	return r.Err == nil && r.Output != r.Job.Text
}
