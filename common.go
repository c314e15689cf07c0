package numkit

import "golang.org/x/exp/constraints"

// Real is the constraint satisfied by the built-in integer and
// floating-point types. The reductions in numkit/span are defined over Real
// element types.
type Real interface {
	constraints.Integer | constraints.Float
}
