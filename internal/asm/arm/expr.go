package arm

// ExpressionKind tags the variant of an Expression, mirroring the external
// expression interface described in spec.md §6.1.
type ExpressionKind uint8

const (
	ExprConstant ExpressionKind = iota
	ExprSymbolRef
	ExprBinary
	ExprUnary
	ExprTargetSpecific
)

// Selector distinguishes the two target-specific ARM expression forms,
// ":upper16:" and ":lower16:", used by MOVT/MOVW.
type Selector uint8

const (
	SelectorNone Selector = iota
	SelectorUpper16
	SelectorLower16
)

// Expression is the external collaborator spec.md §6.1 calls "Expression
// interface": expression evaluation and symbol management live upstream of
// this emitter. The emitter only ever needs to know an expression's kind
// and, for target-specific expressions, its selector and sub-expression —
// everything else (constant folding, symbol resolution) is out of scope.
type Expression interface {
	Kind() ExpressionKind

	// Selector and SubExpression are meaningful only when Kind() returns
	// ExprTargetSpecific; callers must not invoke them otherwise.
	Selector() Selector
	SubExpression() Expression
}
