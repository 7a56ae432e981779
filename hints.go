package g2d

// HintKey identifies a rendering hint. Keys validate candidate values
// so an incompatible value is rejected at SetHint time.
type HintKey interface {
	// CompatibleValue reports whether v is valid for this key.
	CompatibleValue(v any) bool

	// String returns the key name for diagnostics.
	String() string
}

// Hints maps hint keys to their values.
type Hints map[HintKey]any

type hintKey struct {
	name       string
	compatible func(v any) bool
}

func (k *hintKey) CompatibleValue(v any) bool { return k.compatible(v) }
func (k *hintKey) String() string             { return k.name }

// AntialiasHint is the value type for KeyAntialias.
type AntialiasHint uint8

const (
	AntialiasDefault AntialiasHint = iota
	AntialiasOn
	AntialiasOff
)

// KeyAntialias controls edge smoothing. Valid values are
// AntialiasDefault, AntialiasOn and AntialiasOff.
var KeyAntialias HintKey = &hintKey{
	name: "antialias",
	compatible: func(v any) bool {
		h, ok := v.(AntialiasHint)
		return ok && h <= AntialiasOff
	},
}

// KeyFontMapping remaps requested font family names before typeface
// lookup. The value is a func(string) string, or nil to disable
// mapping. The mapping applies to fonts set after the hint.
var KeyFontMapping HintKey = &hintKey{
	name: "font-mapping",
	compatible: func(v any) bool {
		if v == nil {
			return true
		}
		_, ok := v.(func(string) string)
		return ok
	},
}
