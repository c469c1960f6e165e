package parser_test

import (
	"testing"

	. "github.com/pseudomuto/hqlfmt/pkg/parser"
	"github.com/stretchr/testify/require"
)

func parseStatement(t *testing.T, input string) Statement {
	t.Helper()

	query, err := ParseString(input)
	require.NoError(t, err)

	sub, ok := query.Body.(*Subquery)
	require.True(t, ok, "expected a statement, got %T", query.Body)
	return sub.Statement
}

func parseSelect(t *testing.T, input string) *Select {
	t.Helper()

	sel, ok := parseStatement(t, input).(*Select)
	require.True(t, ok)
	return sel
}

func TestSelect_Clauses(t *testing.T) {
	sel := parseSelect(t, "select distinct a, b from t where x group by y order by z desc limit 10")

	require.NotNil(t, sel.Modifier)
	require.Equal(t, DISTINCT, sel.Modifier.Kind)
	require.Len(t, sel.Columns.Items, 2)
	require.Len(t, sel.Columns.Commas, 1)

	var keywords []Kind
	for _, clause := range sel.Clauses {
		switch c := clause.(type) {
		case *KeywordClause:
			keywords = append(keywords, c.Keyword.Kind)
		case *ByClause:
			require.Equal(t, BY, c.By.Kind)
			keywords = append(keywords, c.Keyword.Kind)
		default:
			t.Fatalf("unexpected clause %T", clause)
		}
	}
	require.Equal(t, []Kind{FROM, WHERE, GROUP, ORDER, LIMIT}, keywords)
}

func TestSelect_RepeatedAndReorderedClauses(t *testing.T) {
	sel := parseSelect(t, "select a where x limit 1 where y from t")
	require.Len(t, sel.Clauses, 4)

	kinds := make([]Kind, 0, len(sel.Clauses))
	for _, clause := range sel.Clauses {
		kinds = append(kinds, clause.(*KeywordClause).Keyword.Kind)
	}
	require.Equal(t, []Kind{WHERE, LIMIT, WHERE, FROM}, kinds)
}

func TestSelect_AllByClauses(t *testing.T) {
	sel := parseSelect(t, "select a cluster by a distribute by b sort by c partition by d having e option f")
	require.Len(t, sel.Clauses, 6)
	require.Equal(t, CLUSTER, sel.Clauses[0].(*ByClause).Keyword.Kind)
	require.Equal(t, DISTRIBUTE, sel.Clauses[1].(*ByClause).Keyword.Kind)
	require.Equal(t, SORT, sel.Clauses[2].(*ByClause).Keyword.Kind)
	require.Equal(t, PARTITION, sel.Clauses[3].(*ByClause).Keyword.Kind)
	require.Equal(t, HAVING, sel.Clauses[4].(*KeywordClause).Keyword.Kind)
	require.Equal(t, OPTION, sel.Clauses[5].(*KeywordClause).Keyword.Kind)
}

func TestSelect_Joins(t *testing.T) {
	sel := parseSelect(t, "select * from a inner left join b on a.x = b.x join c cross join d")
	require.Len(t, sel.Clauses, 4)

	first := sel.Clauses[1].(*JoinClause)
	require.Len(t, first.Prefixes, 2)
	require.Equal(t, INNER, first.Prefixes[0].Kind)
	require.Equal(t, LEFT, first.Prefixes[1].Kind)
	require.NotNil(t, first.On)
	require.Len(t, first.Condition.Items, 1)

	second := sel.Clauses[2].(*JoinClause)
	require.Empty(t, second.Prefixes)
	require.Nil(t, second.On)
	require.Nil(t, second.Condition)

	third := sel.Clauses[3].(*JoinClause)
	require.Equal(t, CROSS, third.Prefixes[0].Kind)
}

func TestCombine(t *testing.T) {
	stmt := parseStatement(t, "select a union all select b except select c")

	outer, ok := stmt.(*Combine)
	require.True(t, ok)
	require.Len(t, outer.Operator, 1)
	require.Equal(t, EXCEPT, outer.Operator[0].Kind)
	require.IsType(t, &Select{}, outer.Right)

	inner, ok := outer.Left.(*Combine)
	require.True(t, ok)
	require.Len(t, inner.Operator, 2)
	require.Equal(t, UNION, inner.Operator[0].Kind)
	require.Equal(t, ALL, inner.Operator[1].Kind)
	require.IsType(t, &Select{}, inner.Left)
	require.IsType(t, &Select{}, inner.Right)
}

func TestGrouped(t *testing.T) {
	stmt := parseStatement(t, "(select a from t) union distinct (select b from u)")

	combine, ok := stmt.(*Combine)
	require.True(t, ok)
	require.Equal(t, DISTINCT, combine.Operator[1].Kind)

	left, ok := combine.Left.(*Grouped)
	require.True(t, ok)
	require.IsType(t, &Select{}, left.Statement)
	require.IsType(t, &Grouped{}, combine.Right)
}

func TestSubqueryInFrom(t *testing.T) {
	sel := parseSelect(t, "select a from (select a from t) x")

	from := sel.Clauses[0].(*KeywordClause)
	adj, ok := from.Body.Items[0].(*Adjacent)
	require.True(t, ok)
	require.Len(t, adj.Items, 2)

	sub, ok := adj.Items[0].(*Subquery)
	require.True(t, ok)
	require.IsType(t, &Grouped{}, sub.Statement)
	require.IsType(t, &Ident{}, adj.Items[1])
}
