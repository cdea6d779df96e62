package bfvm

import "github.com/reusee/bfi/tokens"

// parse maps canonical symbols to tokens and drops everything else
func parse(src string) Program {
	var ret Program
	for _, r := range src {
		for _, token := range tokens.All {
			if token.String() == string(r) {
				ret = append(ret, token)
				break
			}
		}
	}
	return ret
}
