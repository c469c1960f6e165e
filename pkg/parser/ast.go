package parser

type (
	// Script is a sequence of queries. Every query except the last one is
	// terminated by at least one semicolon.
	Script struct {
		Queries []*Query
	}

	// Query is a single parsed query: the comments found before its first
	// token, its body and any terminating semicolons.
	Query struct {
		Leading    []Comment
		Body       Expr
		Semicolons []Token
	}

	// Statement is a Select, a Combine or a Grouped statement.
	Statement interface {
		statementNode()
	}

	// Select is a SELECT block followed by its clauses in source order.
	Select struct {
		Keyword  Token
		Modifier *Token // DISTINCT or ALL
		Columns  *List
		Clauses  []Clause
	}

	// Combine joins two statements with UNION [ALL|DISTINCT] or EXCEPT.
	// Operator holds one or two keyword tokens.
	Combine struct {
		Left     Statement
		Operator []Token
		Right    Statement
	}

	// Grouped is a parenthesized statement.
	Grouped struct {
		Open      Token
		Statement Statement
		Close     Token
	}

	// Clause is a KeywordClause, a ByClause or a JoinClause.
	Clause interface {
		clauseNode()
	}

	// KeywordClause is FROM, WHERE, LIMIT, HAVING or OPTION followed by an
	// expression list.
	KeywordClause struct {
		Keyword Token
		Body    *List
	}

	// ByClause is GROUP, ORDER, CLUSTER, DISTRIBUTE, SORT or PARTITION
	// followed by BY and an expression list.
	ByClause struct {
		Keyword Token
		By      Token
		Body    *List
	}

	// JoinClause is zero or more prefixes (INNER, LEFT, ...), JOIN, the join
	// target and an optional ON condition.
	JoinClause struct {
		Prefixes  []Token
		Join      Token
		Target    *List
		On        *Token
		Condition *List
	}

	// List is a non-empty comma separated expression list. Commas holds the
	// separators, one less than Items.
	List struct {
		Items  []Expr
		Commas []Token
	}

	// Expr is any expression node.
	Expr interface {
		exprNode()
	}

	// Ident is a label: an identifier or a number.
	Ident struct{ Token Token }

	// String is a quoted string in any of the three quoting styles.
	String struct{ Token Token }

	// Template is an opaque #...# placeholder.
	Template struct{ Token Token }

	// KeywordValue is a keyword or operator symbol used as a value, such as
	// NULL, DESC or the "*" of count(*).
	KeywordValue struct{ Token Token }

	// CaseWhen is a CASE expression with at least one WHEN branch.
	CaseWhen struct {
		Case     Token
		Branches []*WhenBranch
		Else     *ElseBranch
		End      Token
	}

	WhenBranch struct {
		When      Token
		Condition Expr
		Then      Token
		Result    Expr
	}

	ElseBranch struct {
		Else   Token
		Result Expr
	}

	// Subquery is a statement used as an expression.
	Subquery struct {
		Statement Statement
	}

	// Over is a window specification: OVER ( by-clauses ).
	Over struct {
		Over    Token
		Open    Token
		Clauses []*ByClause
		Close   Token
	}

	// BracketList is an array literal or index. Body is nil for "[]".
	BracketList struct {
		Open  Token
		Body  *List
		Close Token
	}

	// Parenthesized is a parenthesized expression list. Body is nil for
	// "()". Numeric is set when every token inside consists only of digits,
	// arithmetic and comparison characters and no comment is attached to
	// them.
	Parenthesized struct {
		Open    Token
		Body    *List
		Close   Token
		Numeric bool
	}

	// MemberAccess is a POINT joined chain such as db.table.
	MemberAccess struct {
		Left  Expr
		Point Token
		Right Expr
	}

	// Prefix is NOT (or ! and ~) or BETWEEN applied to the rest of the chain.
	Prefix struct {
		Operator Token
		Inner    Expr
	}

	// Infix joins two expressions with a comparison, a symbol, AS, IS, IN or
	// WITH.
	Infix struct {
		Left     Expr
		Operator Token
		Right    Expr
	}

	// Bool joins two expressions with AND or OR.
	Bool struct {
		Left     Expr
		Operator Token
		Right    Expr
	}

	// Adjacent is a sequence of juxtaposed expressions, such as a function
	// call name(args) or an index expr[i].
	Adjacent struct {
		Items []Expr
	}
)

func (*Select) statementNode()  {}
func (*Combine) statementNode() {}
func (*Grouped) statementNode() {}

func (*KeywordClause) clauseNode() {}
func (*ByClause) clauseNode()      {}
func (*JoinClause) clauseNode()    {}

func (*Ident) exprNode()         {}
func (*String) exprNode()        {}
func (*Template) exprNode()      {}
func (*KeywordValue) exprNode()  {}
func (*CaseWhen) exprNode()      {}
func (*Subquery) exprNode()      {}
func (*Over) exprNode()          {}
func (*BracketList) exprNode()   {}
func (*Parenthesized) exprNode() {}
func (*MemberAccess) exprNode()  {}
func (*Prefix) exprNode()        {}
func (*Infix) exprNode()         {}
func (*Bool) exprNode()          {}
func (*Adjacent) exprNode()      {}
