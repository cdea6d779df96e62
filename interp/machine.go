package interp

import (
	"fmt"
	"io"

	"github.com/reusee/bfi/bficonfigs"
	"github.com/reusee/bfi/bfvm"
)

type NewMachine func(program bfvm.Program, in io.Reader, out io.Writer) (*bfvm.Machine, error)

func (Module) NewMachine(
	eofMode bficonfigs.EOFMode,
	tapeKind bficonfigs.TapeKind,
	tapeSize bficonfigs.TapeSize,
	maxCells bficonfigs.MaxCells,
	stepLimit bficonfigs.StepLimit,
) NewMachine {
	return func(program bfvm.Program, in io.Reader, out io.Writer) (*bfvm.Machine, error) {
		eof, err := bfvm.ParseEOFPolicy(string(eofMode))
		if err != nil {
			return nil, err
		}

		var tape bfvm.Tape
		switch tapeKind {
		case bficonfigs.TapeGrowable, "":
			tape = bfvm.NewGrowableTape(int(maxCells))
		case bficonfigs.TapeFixed:
			tape = bfvm.NewFixedTape(int(tapeSize), false)
		case bficonfigs.TapeWrapping:
			tape = bfvm.NewFixedTape(int(tapeSize), true)
		default:
			return nil, fmt.Errorf("unknown tape kind: %s", tapeKind)
		}

		return bfvm.NewMachine(
			program,
			bfvm.WithTape(tape),
			bfvm.WithInput(in),
			bfvm.WithOutput(out),
			bfvm.WithEOF(eof),
			bfvm.WithStepLimit(int(stepLimit)),
		), nil
	}
}
