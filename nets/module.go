package nets

import (
	"github.com/reusee/bfi/bficonfigs"
	"github.com/reusee/bfi/logs"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Configs bficonfigs.Module
	Logs    logs.Module
}
