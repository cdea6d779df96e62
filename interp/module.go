package interp

import (
	"github.com/reusee/bfi/bficonfigs"
	"github.com/reusee/bfi/logs"
	"github.com/reusee/bfi/sources"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Configs bficonfigs.Module
	Logs    logs.Module
	Sources sources.Module
}
