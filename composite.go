package g2d

import (
	"fmt"

	"github.com/gogpu/g2d/backend"
)

// CompositeRule selects a Porter-Duff compositing rule.
type CompositeRule uint8

const (
	CompositeSrcOver CompositeRule = iota
	CompositeClear
	CompositeSrc
	CompositeDst
	CompositeDstOver
	CompositeSrcIn
	CompositeDstIn
	CompositeSrcOut
	CompositeDstOut
	CompositeSrcAtop
	CompositeDstAtop
)

// Composite pairs a compositing rule with a constant alpha in [0, 1]
// multiplied into every drawing operation.
type Composite struct {
	Rule  CompositeRule
	Alpha float64
}

// DefaultComposite returns source-over compositing at full opacity.
func DefaultComposite() Composite {
	return Composite{Rule: CompositeSrcOver, Alpha: 1}
}

// AlphaComposite returns a composite with the given rule and constant
// alpha.
func AlphaComposite(rule CompositeRule, alpha float64) Composite {
	return Composite{Rule: rule, Alpha: alpha}
}

func (r CompositeRule) blendMode() backend.BlendMode {
	switch r {
	case CompositeSrcOver:
		return backend.BlendSrcOver
	case CompositeClear:
		return backend.BlendClear
	case CompositeSrc:
		return backend.BlendSrc
	case CompositeDst:
		return backend.BlendDst
	case CompositeDstOver:
		return backend.BlendDstOver
	case CompositeSrcIn:
		return backend.BlendSrcIn
	case CompositeDstIn:
		return backend.BlendDstIn
	case CompositeSrcOut:
		return backend.BlendSrcOut
	case CompositeDstOut:
		return backend.BlendDstOut
	case CompositeSrcAtop:
		return backend.BlendSrcAtop
	case CompositeDstAtop:
		return backend.BlendDstAtop
	}
	panic(fmt.Sprintf("g2d: unrecognized composite rule %d", r))
}
