package bficonfigs

import (
	"os"
	"path/filepath"

	"github.com/reusee/bfi/cmds"
	"github.com/reusee/bfi/configs"
	"github.com/reusee/bfi/vars"
)

type DatabasePath string

var dbFlag = cmds.Var[string]("-db", "snapshot database file")

func (Module) DatabasePath(
	loader configs.Loader,
) DatabasePath {
	return DatabasePath(vars.FirstNonZero(
		*dbFlag,
		configs.First[string](loader, "database"),
		defaultDatabasePath(),
	))
}

func defaultDatabasePath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "bfi.db"
	}
	return filepath.Join(dir, "bfi", "snapshots.db")
}
