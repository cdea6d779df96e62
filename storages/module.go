package storages

import (
	"sync"

	"github.com/reusee/bfi/bficonfigs"
	"github.com/reusee/bfi/logs"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Configs bficonfigs.Module
	Logs    logs.Module
}

// OpenStore opens the configured database once.
type OpenStore func() (*Store, error)

func (Module) OpenStore(
	path bficonfigs.DatabasePath,
	logger logs.Logger,
) OpenStore {
	return sync.OnceValues(func() (*Store, error) {
		logger.Info("open snapshot database", "path", path)
		return Open(string(path))
	})
}
