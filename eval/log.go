package eval

import "strings"

// Log renders n as an infix expression. Children that are expressions
// themselves are parenthesized; operands are written with %v.
func Log[F Loggable, T Number](n Node[F, T]) string {
	return render(n)
}

func render[F Family, T Number](n Node[F, T]) string {
	var sb strings.Builder
	renderNode(&sb, n)
	return sb.String()
}

func renderNode[F Family, T Number](sb *strings.Builder, n Node[F, T]) {
	if n == nil {
		sb.WriteString("<nil>")
		return
	}
	n.render(sb)
}

func renderOperand[F Family, T Number](sb *strings.Builder, n Node[F, T]) {
	if n == nil || n.Type() != ExpressionNode {
		renderNode(sb, n)
		return
	}

	sb.WriteString("(")
	n.render(sb)
	sb.WriteString(")")
}
