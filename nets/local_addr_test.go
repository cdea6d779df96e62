package nets

import (
	"testing"

	"github.com/reusee/bfi/configs"
	"github.com/reusee/bfi/modes"
	"github.com/reusee/dscope"
)

func TestIsLocalAddr(t *testing.T) {
	dscope.New(
		modes.ForTest(t),
		new(Module),
	).Fork(
		func() configs.Loader {
			return configs.NewLoader(nil, "")
		},
	).Call(func(
		isLocalAddr IsLocalAddr,
	) {
		for addr, expected := range map[string]bool{
			"127.0.0.1:10000": true,
			"[::1]:80":        true,
			"localhost":       true,
			"10.1.2.3":        true,
			"192.168.1.1:443": true,
			"8.8.8.8:53":      false,
			"1.1.1.1":         false,
		} {
			yes, err := isLocalAddr(addr)
			if err != nil {
				t.Fatal(err)
			}
			if yes != expected {
				t.Fatalf("%s: got %v", addr, yes)
			}
		}
	})
}
