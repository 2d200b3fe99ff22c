package mesh

import (
	"fmt"

	"github.com/hexlattice/contourpress/transformlang"
)

// Apply runs a parsed transform chain against m, applying each
// operation to the result of the previous one in list order.
func Apply(m Mesh, ops []transformlang.Op) (Mesh, error) {
	for _, op := range ops {
		switch o := op.(type) {
		case transformlang.Center:
			m = Center(m)
		case transformlang.Move:
			m = Translate(m, o.DX, o.DY, o.DZ)
		case transformlang.Scale:
			m = Scale(m, o.SX, o.SY, o.SZ)
		case transformlang.Homothety:
			m = Homothety(m, o.S)
		case transformlang.Rotate:
			switch o.Axis {
			case transformlang.X:
				m = RotateX(m, o.Theta)
			case transformlang.Y:
				m = RotateY(m, o.Theta)
			case transformlang.Z:
				m = RotateZ(m, o.Theta)
			default:
				return m, fmt.Errorf("mesh: unknown rotation axis %v", o.Axis)
			}
		default:
			return m, fmt.Errorf("mesh: unknown transform op %T", op)
		}
	}
	return m, nil
}
