// Package parser tokenizes and parses queries written in a Hive-like SQL
// dialect into an immutable tree.
//
// The dialect is keyword light: identifiers and numbers share a single token
// class (labels), reserved words are matched case-insensitively, and the
// expression grammar has no operator precedence. An expression is a flat
// chain where each term is joined to the rest of the chain by whatever token
// follows it, so every binary form nests to the right.
//
// Key features:
//   - participle lexer and struct grammar, with byte offsets, lines and columns
//   - comments attached to the token that precedes them
//   - SELECT blocks with clauses in any order, joins, UNION/EXCEPT
//   - CASE, OVER windows, bracket lists, templates and point access
//   - typed errors (LexError, ParseError) carrying the failure offset
//
// Basic usage:
//
//	query, err := parser.ParseString(`
//	    select a, count(*) as n
//	    from t
//	    group by a
//	`)
//	if err != nil {
//		var perr parser.Error
//		if errors.As(err, &perr) {
//			fmt.Println("failed at offset", perr.Offset())
//		}
//	}
//
//	// Parse a file holding several queries
//	script, err := parser.ParseScript("reports.hql", text)
//
// The tree is rendered back to text by the format package.
package parser
