package batch

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/pkg/errors"
	"github.com/pseudomuto/hqlfmt/pkg/format"
	"github.com/pseudomuto/hqlfmt/pkg/parser"
)

// Selection is a byte range [Start, End) of a document.
type Selection struct {
	Start int
	End   int
}

// Empty reports whether the selection covers no text.
func (s Selection) Empty() bool {
	return s.Start == s.End
}

func (s Selection) String() string {
	return fmt.Sprintf("%d-%d", s.Start, s.End)
}

// Selections formats the non-empty selections of doc with a Runner using
// GOMAXPROCS workers. See Runner.Selections.
func Selections(ctx context.Context, doc string, selections []Selection, style format.Style) ([]Result, error) {
	return NewRunner(0).Selections(ctx, doc, selections, style)
}

// Selections formats every non-empty selection of doc as an independent
// query. When no selection covers any text, the whole document is formatted
// instead. The ErrorOffset of a failed result is mapped into document
// coordinates: the end of input maps to the end of its selection.
//
// Selections must lie within doc and must not overlap.
func (r *Runner) Selections(ctx context.Context, doc string, selections []Selection, style format.Style) ([]Result, error) {
	regions := make([]Selection, 0, len(selections))
	for _, sel := range selections {
		if sel.Start < 0 || sel.End < sel.Start || sel.End > len(doc) {
			return nil, errors.Errorf("selection %s out of range", sel)
		}

		if !sel.Empty() {
			regions = append(regions, sel)
		}
	}

	if len(regions) == 0 {
		regions = append(regions, Selection{Start: 0, End: len(doc)})
	}

	if err := checkOverlap(regions); err != nil {
		return nil, err
	}

	jobs := make([]Job, len(regions))
	for i, sel := range regions {
		jobs[i] = Job{
			Name:  fmt.Sprintf("selection %s", sel),
			Text:  doc[sel.Start:sel.End],
			Style: style,
		}
	}

	results, err := r.Run(ctx, jobs)
	if err != nil {
		return nil, err
	}

	for i := range results {
		sel := regions[i]
		results[i].Selection = sel

		if results[i].Err == nil {
			continue
		}

		if results[i].ErrorOffset == parser.EndOfInput {
			results[i].ErrorOffset = sel.End
		} else {
			results[i].ErrorOffset += sel.Start
		}
	}

	return results, nil
}

// Apply replaces the selection of every successful result with its output.
// Failed results leave their selection untouched.
func Apply(doc string, results []Result) string {
	ordered := slices.Clone(results)
	slices.SortFunc(ordered, func(a, b Result) int {
		return b.Selection.Start - a.Selection.Start
	})

	for _, res := range ordered {
		if res.Err != nil {
			continue
		}

		doc = doc[:res.Selection.Start] + res.Output + doc[res.Selection.End:]
	}

	return doc
}

func checkOverlap(regions []Selection) error {
	sorted := slices.Clone(regions)
	slices.SortFunc(sorted, func(a, b Selection) int {
		return a.Start - b.Start
	})

	for i := 1; i < len(sorted); i++ {
		if sorted[i].Start < sorted[i-1].End {
			return errors.Errorf("selections %s and %s overlap", sorted[i-1], sorted[i])
		}
	}

	return nil
}

// Excerpt returns the line of doc containing offset with a caret under the
// offset, for error reporting.
func Excerpt(doc string, offset int) string {
	if offset < 0 || offset > len(doc) {
		offset = len(doc)
	}

	start := strings.LastIndexByte(doc[:offset], '\n') + 1
	end := len(doc)
	if i := strings.IndexByte(doc[offset:], '\n'); i >= 0 {
		end = offset + i
	}

	line := doc[start:end]
	pad := strings.Map(func(r rune) rune {
		if r == '\t' {
			return '\t'
		}
		return ' '
	}, doc[start:offset])

	return line + "\n" + pad + "^"
}
