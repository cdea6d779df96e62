package bfvm

type Interrupt struct {
	Budget bool
}

var (
	// InterruptBudget is yielded every Machine.Budget steps
	InterruptBudget = &Interrupt{
		Budget: true,
	}
)
