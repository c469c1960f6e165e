// Package batch formats many inputs concurrently without letting one failing
// input affect the others.
//
// A Runner formats a slice of Jobs on a bounded pool of goroutines and
// returns one Result per job, in job order. Formatting errors are recorded on
// the job's Result; only cancellation of the context aborts a run.
//
// Selections covers editor-style use: every non-empty selection of a document
// (or the whole document when nothing is selected) is formatted as its own
// query, error offsets are mapped back into document coordinates, and Apply
// splices the successful results into the document.
//
// Example:
//
//	runner := batch.NewRunner(4)
//	results, err := runner.Run(ctx, []batch.Job{
//		{Name: "a.sql", Text: "select 1", Style: format.Pretty},
//		{Name: "b.sql", Text: "select", Style: format.Pretty},
//	})
//	// results[0].Output == "SELECT\n\t1"
//	// results[1].Err wraps a *parser.ParseError
package batch
