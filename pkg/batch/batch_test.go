package batch_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/pkg/errors"
	. "github.com/pseudomuto/hqlfmt/pkg/batch"
	"github.com/pseudomuto/hqlfmt/pkg/format"
	"github.com/pseudomuto/hqlfmt/pkg/parser"
	"github.com/stretchr/testify/require"
)

func TestNewRunner(t *testing.T) {
	require.Equal(t, 3, NewRunner(3).Workers())
	require.Positive(t, NewRunner(0).Workers())
}

func TestRunner_Run(t *testing.T) {
	jobs := []Job{
		{Name: "ok", Text: "select 1", Style: format.Pretty},
		{Name: "bad", Text: "select from", Style: format.Pretty},
		{Name: "minified", Text: "select a\nfrom t", Style: format.Minify},
		{Name: "script", Text: "select a; select b", Style: format.Minify, Script: true},
		{Name: "eof", Text: "select a from", Style: format.Pretty},
		{Name: "unchanged", Text: "SELECT a FROM t", Style: format.Minify},
	}

	results, err := NewRunner(2).Run(context.Background(), jobs)
	require.NoError(t, err)
	require.Len(t, results, len(jobs))

	for i, res := range results {
		require.Equal(t, jobs[i].Name, res.Job.Name)
	}

	require.NoError(t, results[0].Err)
	require.Equal(t, "SELECT\n\t1", results[0].Output)
	require.True(t, results[0].Changed())

	require.Error(t, results[1].Err)
	require.Empty(t, results[1].Output)
	require.Equal(t, 7, results[1].ErrorOffset)
	require.False(t, results[1].Changed())

	var parseErr *parser.ParseError
	require.True(t, errors.As(results[1].Err, &parseErr))

	require.Equal(t, "SELECT a FROM t", results[2].Output)
	require.Equal(t, "SELECT a; SELECT b", results[3].Output)
	require.Equal(t, parser.EndOfInput, results[4].ErrorOffset)
	require.False(t, results[5].Changed())
}

func TestRunner_RunManyJobs(t *testing.T) {
	jobs := make([]Job, 100)
	for i := range jobs {
		jobs[i] = Job{Text: fmt.Sprintf("select c%d from t", i), Style: format.Minify}
	}

	results, err := NewRunner(4).Run(context.Background(), jobs)
	require.NoError(t, err)

	for i, res := range results {
		require.NoError(t, res.Err)
		require.Equal(t, fmt.Sprintf("SELECT c%d FROM t", i), res.Output)
	}
}

func TestRunner_RunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewRunner(1).Run(ctx, []Job{{Text: "select 1", Style: format.Pretty}})
	require.ErrorIs(t, err, context.Canceled)
}

func TestSelections(t *testing.T) {
	doc := "select a from t;\nselect from u;\nselect b"

	t.Run("each selection is independent", func(t *testing.T) {
		selections := []Selection{
			{Start: 0, End: 15},
			{Start: 17, End: 30},
			{Start: 32, End: 40},
		}

		results, err := Selections(context.Background(), doc, selections, format.Minify)
		require.NoError(t, err)
		require.Len(t, results, 3)

		require.NoError(t, results[0].Err)
		require.Equal(t, "SELECT a FROM t", results[0].Output)

		require.Error(t, results[1].Err)
		require.Equal(t, 24, results[1].ErrorOffset)

		require.NoError(t, results[2].Err)
		require.Equal(t, selections[2], results[2].Selection)

		require.Equal(t, "SELECT a FROM t;\nselect from u;\nSELECT b", Apply(doc, results))
	})

	t.Run("empty selections format the whole document", func(t *testing.T) {
		results, err := Selections(context.Background(), "select a\nfrom t", []Selection{{Start: 3, End: 3}}, format.Pretty)
		require.NoError(t, err)
		require.Len(t, results, 1)
		require.Equal(t, Selection{Start: 0, End: 15}, results[0].Selection)
		require.Equal(t, "SELECT\n\ta\nFROM t", Apply("select a\nfrom t", results))
	})

	t.Run("end of input maps to the selection end", func(t *testing.T) {
		results, err := Selections(context.Background(), "x; select a from", []Selection{{Start: 3, End: 16}}, format.Pretty)
		require.NoError(t, err)
		require.Equal(t, 16, results[0].ErrorOffset)
	})

	t.Run("out of range", func(t *testing.T) {
		_, err := Selections(context.Background(), "select 1", []Selection{{Start: 0, End: 20}}, format.Pretty)
		require.EqualError(t, err, "selection 0-20 out of range")
	})

	t.Run("overlap", func(t *testing.T) {
		_, err := Selections(context.Background(), doc, []Selection{{Start: 5, End: 10}, {Start: 0, End: 6}}, format.Pretty)
		require.EqualError(t, err, "selections 0-6 and 5-10 overlap")
	})
}

func TestExcerpt(t *testing.T) {
	doc := "select a\n\tfrom 'x"
	require.Equal(t, "\tfrom 'x\n\t     ^", Excerpt(doc, 15))
	require.Equal(t, "\tfrom 'x\n\t       ^", Excerpt(doc, -1))
	require.Equal(t, "select a\n^", Excerpt(doc, 0))
}
