package dialects

import (
	"fmt"
	"slices"
	"strings"

	"github.com/samber/lo"
)

var Brainfuck = Dialect{
	Name:    "brainfuck",
	Kind:    KindSingle,
	Symbols: [8]string{"+", "-", "<", ">", ".", ",", "[", "]"},
}

var pairs = [8]string{"..", "!!", "?.", ".?", "!.", ".!", "!?", "?!"}

var Ook = Dialect{
	Name:     "ook",
	Kind:     KindPaired,
	Symbols:  pairs,
	Word:     "Ook",
	Alphabet: ".!?",
}

var Blub = Dialect{
	Name:     "blub",
	Kind:     KindPaired,
	Symbols:  pairs,
	Word:     "Blub",
	Alphabet: ".!?",
}

var builtins = map[string]Dialect{
	Brainfuck.Name: Brainfuck,
	Ook.Name:       Ook,
	Blub.Name:      Blub,
}

// Lookup finds a builtin dialect by name, case-insensitively.
func Lookup(name string) (Dialect, error) {
	switch name {
	case "", "bf":
		return Brainfuck, nil
	}
	d, ok := builtins[strings.ToLower(name)]
	if !ok {
		return Dialect{}, fmt.Errorf("%s: %w", name, ErrUnknownDialect)
	}
	return d, nil
}

func Names() []string {
	names := lo.Keys(builtins)
	slices.Sort(names)
	return names
}
