package bficonfigs

import (
	"github.com/reusee/bfi/cmds"
	"github.com/reusee/bfi/configs"
	"github.com/reusee/bfi/vars"
)

type EOFMode string

var eofFlag = cmds.Var[string]("-eof", "end of input policy: error, zero, unchanged or max")

func (Module) EOFMode(
	loader configs.Loader,
) EOFMode {
	return EOFMode(vars.FirstNonZero(
		*eofFlag,
		configs.First[string](loader, "eof"),
		"error",
	))
}

type TapeKind string

const (
	TapeGrowable TapeKind = "growable"
	TapeFixed    TapeKind = "fixed"
	TapeWrapping TapeKind = "wrapping"
)

var tapeFlag = cmds.Var[string]("-tape", "tape kind: growable, fixed or wrapping")

func (Module) TapeKind(
	loader configs.Loader,
) TapeKind {
	return TapeKind(vars.FirstNonZero(
		*tapeFlag,
		configs.First[string](loader, "tape.kind"),
		string(TapeGrowable),
	))
}

// TapeSize is the cell count of fixed and wrapping tapes. Zero selects the default.
type TapeSize int

var tapeSizeFlag = cmds.Var[int]("-tape-size", "cell count of fixed tapes")

func (Module) TapeSize(
	loader configs.Loader,
) TapeSize {
	return TapeSize(vars.FirstNonZero(
		*tapeSizeFlag,
		configs.First[int](loader, "tape.size"),
	))
}

// MaxCells bounds the growable tape. Zero is unbounded.
type MaxCells int

var maxCellsFlag = cmds.Var[int]("-max-cells", "upper bound of growable tape cells")

func (Module) MaxCells(
	loader configs.Loader,
) MaxCells {
	return MaxCells(vars.FirstNonZero(
		*maxCellsFlag,
		configs.First[int](loader, "tape.max_cells"),
	))
}

// StepLimit bounds executed instructions. Zero is unbounded.
type StepLimit int

var stepsFlag = cmds.Var[int]("-steps", "maximum executed instructions")

func (Module) StepLimit(
	loader configs.Loader,
) StepLimit {
	return StepLimit(vars.FirstNonZero(
		*stepsFlag,
		configs.First[int](loader, "step_limit"),
	))
}
