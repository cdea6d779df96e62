package dialects

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/reusee/bfi/tokens"
	"github.com/samber/lo"
)

var (
	ErrInvalidSource   = errors.New("invalid source")
	ErrDuplicateSymbol = errors.New("duplicate symbol")
	ErrSymbolCount     = errors.New("expecting 8 symbols")
	ErrUnknownDialect  = errors.New("unknown dialect")
)

type Kind int

const (
	// KindSingle maps one rune to one token
	KindSingle Kind = iota
	// KindPaired maps two symbols of a three symbol alphabet to one token
	KindPaired
)

// Dialect is a symbol table for the eight tokens.
// Symbols is indexed by token value.
type Dialect struct {
	Name     string
	Kind     Kind
	Symbols  [8]string
	Word     string
	Alphabet string
}

func (d Dialect) lookup() map[string]tokens.Token {
	ret := make(map[string]tokens.Token, len(d.Symbols))
	for _, token := range tokens.All {
		ret[d.Symbols[token]] = token
	}
	return ret
}

// Tokenize maps source text to tokens. Text that maps to no token is dropped.
func (d Dialect) Tokenize(src string) ([]tokens.Token, error) {
	switch d.Kind {
	case KindSingle:
		return d.tokenizeSingle(src), nil
	case KindPaired:
		return d.tokenizePaired(src)
	}
	return nil, fmt.Errorf("%s: bad kind %d", d.Name, d.Kind)
}

func (d Dialect) tokenizeSingle(src string) []tokens.Token {
	table := d.lookup()
	var ret []tokens.Token
	for _, r := range src {
		token, ok := table[string(r)]
		if !ok {
			continue
		}
		ret = append(ret, token)
	}
	return ret
}

func (d Dialect) tokenizePaired(src string) ([]tokens.Token, error) {
	symbols := lo.Filter([]rune(src), func(r rune, _ int) bool {
		return strings.ContainsRune(d.Alphabet, r)
	})
	if len(symbols)%2 != 0 {
		return nil, fmt.Errorf("%s: %d symbols cannot form pairs: %w", d.Name, len(symbols), ErrInvalidSource)
	}
	table := d.lookup()
	var ret []tokens.Token
	for i := 0; i < len(symbols); i += 2 {
		token, ok := table[string(symbols[i:i+2])]
		if !ok {
			// unassigned pair
			continue
		}
		ret = append(ret, token)
	}
	return ret, nil
}

// Render is the inverse of Tokenize.
func (d Dialect) Render(ts []tokens.Token) (string, error) {
	var b strings.Builder
	for i, token := range ts {
		if !token.Valid() {
			return "", fmt.Errorf("%s: token %s at %d: %w", d.Name, token, i, ErrInvalidSource)
		}
		symbol := d.Symbols[token]
		switch d.Kind {
		case KindSingle:
			b.WriteString(symbol)
		case KindPaired:
			if i > 0 {
				b.WriteByte(' ')
			}
			first, size := utf8.DecodeRuneInString(symbol)
			b.WriteString(d.Word)
			b.WriteRune(first)
			b.WriteByte(' ')
			b.WriteString(d.Word)
			b.WriteString(symbol[size:])
		}
	}
	return b.String(), nil
}

func (d Dialect) String() string {
	return d.Name
}

func Translate(src string, from, to Dialect) (string, error) {
	ts, err := from.Tokenize(src)
	if err != nil {
		return "", err
	}
	return to.Render(ts)
}
