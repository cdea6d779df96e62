package interp

import (
	"strings"

	"github.com/reusee/bfi/bficonfigs"
	"github.com/reusee/bfi/dialects"
)

const customDialect = "custom"

type GetDialect func() (dialects.Dialect, error)

func (Module) GetDialect(
	name bficonfigs.DialectName,
	symbols bficonfigs.CustomSymbols,
) GetDialect {
	return func() (dialects.Dialect, error) {
		return dialectByName(string(name), symbols)
	}
}

// GetDialectByName resolves a dialect other than the configured one, for example a translation target.
type GetDialectByName func(name string) (dialects.Dialect, error)

func (Module) GetDialectByName(
	symbols bficonfigs.CustomSymbols,
) GetDialectByName {
	return func(name string) (dialects.Dialect, error) {
		return dialectByName(name, symbols)
	}
}

func dialectByName(name string, symbols bficonfigs.CustomSymbols) (dialects.Dialect, error) {
	if strings.EqualFold(name, customDialect) {
		return dialects.NewCustom(customDialect, strings.Join(symbols, ""))
	}
	return dialects.Lookup(name)
}
