package eval

import (
	"strings"

	"github.com/pkg/errors"
)

// Conversion changes the numeric kind of a subtree. It is transparent to
// rendering and reports the node type of its source.
type Conversion[F Family, To, From Number] struct {
	Source Node[F, From]
}

// Convert wraps n so it evaluates to To, e.g. Convert[float64](n).
func Convert[To Number, F Family, From Number](n Node[F, From]) *Conversion[F, To, From] {
	return &Conversion[F, To, From]{Source: n}
}

func (c *Conversion[F, To, From]) Eval() (To, error) {
	if c.Source == nil {
		return 0, errors.New("conversion is missing its source")
	}

	v, err := c.Source.Eval()
	if err != nil {
		return 0, err
	}
	return convert[F, To](v)
}

func (c *Conversion[F, To, From]) Type() NodeType {
	if c.Source == nil {
		return OperandNode
	}
	return c.Source.Type()
}

func (c *Conversion[F, To, From]) Family() F {
	var f F
	return f
}

func (c *Conversion[F, To, From]) render(sb *strings.Builder) {
	renderNode(sb, c.Source)
}

func (c *Conversion[F, To, From]) snapshot() Node[F, To] {
	return &Conversion[F, To, From]{Source: snapshotNode(c.Source)}
}

func convert[F Family, To, From Number](v From) (To, error) {
	if isChecked[F]() && !fits[To](v) {
		return 0, errors.Wrapf(ErrOverflow, "converting %v from %s to %s", v, typeName[From](), typeName[To]())
	}
	return To(v), nil
}
