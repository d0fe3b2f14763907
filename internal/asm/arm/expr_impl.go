package arm

// SimpleExpression is a minimal, self-contained Expression implementation
// used by this package's own tests (cmd/armcdump's JSON fixture loader
// builds only register and immediate operands). Real assemblers plug in their own expression/symbol-management
// layer (spec.md §6.1 treats Expression as an external collaborator); this
// type exists only because something concrete has to stand in for it at
// the edges of this module.
type SimpleExpression struct {
	kind     ExpressionKind
	selector Selector
	sub      Expression
}

// NewSymbolExpression builds a plain symbol-reference expression.
func NewSymbolExpression() SimpleExpression {
	return SimpleExpression{kind: ExprSymbolRef}
}

// NewBinaryExpression builds a binary expression (e.g. "symbol - .").
func NewBinaryExpression() SimpleExpression {
	return SimpleExpression{kind: ExprBinary}
}

// NewTargetSpecificExpression builds a ":upper16:"/":lower16:" expression
// wrapping sub, the symbol or binary expression the selector applies to.
func NewTargetSpecificExpression(selector Selector, sub Expression) SimpleExpression {
	return SimpleExpression{kind: ExprTargetSpecific, selector: selector, sub: sub}
}

func (e SimpleExpression) Kind() ExpressionKind      { return e.kind }
func (e SimpleExpression) Selector() Selector        { return e.selector }
func (e SimpleExpression) SubExpression() Expression { return e.sub }
