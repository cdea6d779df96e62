package dialects

import (
	"fmt"

	"github.com/samber/lo"
)

// NewCustom builds a single-rune dialect. Symbols lists one rune per token in the order + - < > . , [ ]
func NewCustom(name string, symbols string) (Dialect, error) {
	runes := []rune(symbols)
	if len(runes) != 8 {
		return Dialect{}, fmt.Errorf("%s: got %d: %w", name, len(runes), ErrSymbolCount)
	}
	if dup := lo.FindDuplicates(runes); len(dup) > 0 {
		return Dialect{}, fmt.Errorf("%s: %q: %w", name, string(dup), ErrDuplicateSymbol)
	}
	d := Dialect{
		Name: name,
		Kind: KindSingle,
	}
	for i, r := range runes {
		d.Symbols[i] = string(r)
	}
	return d, nil
}
