package debugs

import (
	"github.com/reusee/bfi/bfvm"
)

// MachineGlobals exposes a machine state and its run error to starlark.
func MachineGlobals(state bfvm.State, err error) map[string]any {
	cell := func(i int) int {
		if i < 0 || i >= len(state.Cells) {
			return 0
		}
		return int(state.Cells[i])
	}
	text := func(from int, to int) string {
		from = max(from, 0)
		to = min(to, len(state.Cells))
		if from >= to {
			return ""
		}
		return string(state.Cells[from:to])
	}
	var errValue any
	if err != nil {
		errValue = err
	}
	return map[string]any{
		"pc":      state.PC,
		"pointer": state.Pointer,
		"cells":   state.Cells,
		"steps":   state.Steps,
		"error":   errValue,
		"cell":    cell,
		"text":    text,
	}
}
