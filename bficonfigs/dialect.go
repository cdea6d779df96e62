package bficonfigs

import (
	"strings"

	"github.com/reusee/bfi/cmds"
	"github.com/reusee/bfi/configs"
	"github.com/reusee/bfi/vars"
)

type DialectName string

var dialectFlag = cmds.Var[string]("-dialect", "source dialect: bf, ook, blub or custom")

func (Module) DialectName(
	loader configs.Loader,
) DialectName {
	return DialectName(vars.FirstNonZero(
		*dialectFlag,
		configs.First[string](loader, "dialect"),
		"bf",
	))
}

// CustomSymbols lists the eight symbols of the custom dialect in token order.
type CustomSymbols []string

var symbolsFlag = cmds.Var[string]("-symbols", "the eight runes of the custom dialect, in the order +-<>.,[]")

func (Module) CustomSymbols(
	loader configs.Loader,
) CustomSymbols {
	if *symbolsFlag != "" {
		// one symbol per rune
		return CustomSymbols(strings.Split(*symbolsFlag, ""))
	}
	return CustomSymbols(configs.First[[]string](loader, "custom_symbols"))
}
