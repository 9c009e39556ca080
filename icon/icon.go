// Package icon renders status symbols in the variant selected by the icons.variant key.
package icon

import (
	"github.com/boxkit/boxkit/key"
	"github.com/spf13/viper"
)

// Visual variants.
const (
	emoji   = "emoji"
	plain   = "plain"
	squares = "squares"
)

// AvailableVariants returns every supported icon style identifier.
func AvailableVariants() []string {
	return []string{emoji, plain, squares}
}

// Icon identifies a status symbol.
type Icon int

const (
	Success Icon = iota
	Fail
	Arrow
)

// iconDef holds the representations of one symbol across variants.
type iconDef struct {
	emoji   string
	plain   string
	squares string
}

func (d iconDef) get() string {
	switch viper.GetString(key.IconsVariant) {
	case emoji:
		return d.emoji
	case plain:
		return d.plain
	case squares:
		return d.squares
	default:
		return ""
	}
}

var icons = map[Icon]iconDef{
	Success: {emoji: "✅", plain: "✓", squares: "▣"},
	Fail:    {emoji: "❌", plain: "✗", squares: "▢"},
	Arrow:   {emoji: "👉", plain: "→", squares: "▸"},
}

// Get returns the symbol for i in the configured variant.
func Get(i Icon) string {
	return icons[i].get()
}
