package interp

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/reusee/bfi/bfvm"
	"github.com/reusee/bfi/configs"
	"github.com/reusee/bfi/dialects"
	"github.com/reusee/bfi/modes"
	"github.com/reusee/bfi/sources"
	"github.com/reusee/dscope"
)

const helloWorld = "++++++++[>++++[>++>+++>+++>+<<<<-]>+>+>->>+[<]<-]>>.>---.+++++++..+++.>>.<-.<.+++.------.--------.>>+.>++."

func testScope(t *testing.T, config string) dscope.Scope {
	return dscope.New(
		modes.ForTest(t),
		new(Module),
	).Fork(
		func() configs.Loader {
			return configs.NewSourceLoader(config, "")
		},
	)
}

func execute(t *testing.T, config string, text string, input string, initial *bfvm.State) (string, bfvm.State, error) {
	t.Helper()
	var output string
	var state bfvm.State
	var err error
	testScope(t, config).Call(func(
		execute Execute,
	) {
		out := new(bytes.Buffer)
		state, err = execute(
			context.Background(),
			sources.Source{
				Location: t.Name(),
				Text:     text,
			},
			strings.NewReader(input),
			out,
			initial,
		)
		output = out.String()
	})
	return output, state, err
}

func TestHelloWorld(t *testing.T) {
	out, _, err := execute(t, "", helloWorld, "", nil)
	if err != nil {
		t.Fatal(err)
	}
	if out != "Hello World!\n" {
		t.Fatalf("got %q", out)
	}
}

func TestOok(t *testing.T) {
	src, err := dialects.Translate(helloWorld, dialects.Brainfuck, dialects.Ook)
	if err != nil {
		t.Fatal(err)
	}
	out, _, err := execute(t, `dialect: "ook"`, src, "", nil)
	if err != nil {
		t.Fatal(err)
	}
	if out != "Hello World!\n" {
		t.Fatalf("got %q", out)
	}
}

func TestCustomDialect(t *testing.T) {
	config := `
dialect: "custom"
eof: "zero"
custom_symbols: ["p", "m", "l", "r", "o", "i", "b", "e"]
`
	out, _, err := execute(t, config, "iboie", "abc", nil)
	if err != nil {
		t.Fatal(err)
	}
	if out != "abc" {
		t.Fatalf("got %q", out)
	}

	_, _, err = execute(t, `
dialect: "custom"
custom_symbols: ["p", "p", "l", "r", "o", "i", "b", "e"]
`, "", "", nil)
	if !errors.Is(err, dialects.ErrDuplicateSymbol) {
		t.Fatalf("got %v", err)
	}
}

func TestUnknownDialect(t *testing.T) {
	_, _, err := execute(t, `dialect: "cow"`, "+", "", nil)
	if !errors.Is(err, dialects.ErrUnknownDialect) {
		t.Fatalf("got %v", err)
	}
}

func TestEOFPolicy(t *testing.T) {
	_, _, err := execute(t, "", ",", "", nil)
	if !errors.Is(err, bfvm.ErrInputExhausted) {
		t.Fatalf("got %v", err)
	}

	// cat until zero
	out, _, err := execute(t, `eof: "zero"`, ",[.,]", "foo", nil)
	if err != nil {
		t.Fatal(err)
	}
	if out != "foo" {
		t.Fatalf("got %q", out)
	}

	_, _, err = execute(t, `eof: "sometimes"`, ",", "", nil)
	if err == nil {
		t.Fatal("should error")
	}
}

func TestUnbalancedRejectedBeforeRun(t *testing.T) {
	out, state, err := execute(t, "", "+.+]", "", nil)
	if !errors.Is(err, bfvm.ErrUnbalancedBracket) {
		t.Fatalf("got %v", err)
	}
	if out != "" || state.Steps != 0 {
		t.Fatalf("got %q %+v", out, state)
	}
}

func TestStepLimit(t *testing.T) {
	_, state, err := execute(t, `step_limit: 1000`, "+[>+]", "", nil)
	if !errors.Is(err, bfvm.ErrStepLimit) {
		t.Fatalf("got %v", err)
	}
	if state.Steps != 1000 {
		t.Fatalf("got %d", state.Steps)
	}
	if len(state.Cells) < 2 {
		t.Fatalf("got %d", len(state.Cells))
	}
}

func TestTapeKinds(t *testing.T) {
	_, _, err := execute(t, `tape: kind: "fixed"`, "<", "", nil)
	if !errors.Is(err, bfvm.ErrPointerOutOfRange) {
		t.Fatalf("got %v", err)
	}

	_, state, err := execute(t, `tape: { kind: "wrapping", size: 16 }`, "<+", "", nil)
	if err != nil {
		t.Fatal(err)
	}
	if state.Pointer != 15 || len(state.Cells) != 16 || state.Cells[15] != 1 {
		t.Fatalf("got %+v", state)
	}

	_, _, err = execute(t, `tape: max_cells: 4`, "+[>+]", "", nil)
	if !errors.Is(err, bfvm.ErrTapeLimit) {
		t.Fatalf("got %v", err)
	}

	_, state, err = execute(t, "", "<<+", "", nil)
	if err != nil {
		t.Fatal(err)
	}
	if state.Pointer != 0 || len(state.Cells) != 3 || state.Cells[0] != 1 {
		t.Fatalf("got %+v", state)
	}
}

func TestCarryState(t *testing.T) {
	_, first, err := execute(t, "", "+++>++", "", nil)
	if err != nil {
		t.Fatal(err)
	}

	// print both cells in another dialect
	src, err := dialects.Translate("<.>.", dialects.Brainfuck, dialects.Blub)
	if err != nil {
		t.Fatal(err)
	}
	out, second, err := execute(t, `dialect: "blub"`, src, "", &first)
	if err != nil {
		t.Fatal(err)
	}
	if out != "\x03\x02" {
		t.Fatalf("got %q", out)
	}
	if second.Steps != 4 {
		t.Fatalf("got %d", second.Steps)
	}
}

func TestCanceled(t *testing.T) {
	testScope(t, "").Call(func(
		execute Execute,
	) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := execute(ctx, sources.Source{Text: "+[]"}, strings.NewReader(""), new(bytes.Buffer), nil)
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("got %v", err)
		}
	})
}

func TestGetDialectByName(t *testing.T) {
	testScope(t, `custom_symbols: ["1", "2", "3", "4", "5", "6", "7", "8"]`).Call(func(
		get GetDialectByName,
	) {
		d, err := get("Ook")
		if err != nil {
			t.Fatal(err)
		}
		if d.Name != "ook" {
			t.Fatalf("got %v", d.Name)
		}
		d, err = get("custom")
		if err != nil {
			t.Fatal(err)
		}
		if d.Symbols[7] != "8" {
			t.Fatalf("got %v", d.Symbols)
		}
	})
}

func TestCanceledWhileReading(t *testing.T) {
	testScope(t, "").Call(func(
		execute Execute,
	) {
		r, w := io.Pipe()
		defer w.Close()

		ctx, cancel := context.WithCancel(context.Background())
		errCh := make(chan error, 1)
		go func() {
			_, err := execute(ctx, sources.Source{Text: ",."}, r, new(bytes.Buffer), nil)
			errCh <- err
		}()

		time.Sleep(50 * time.Millisecond)
		cancel()
		select {
		case err := <-errCh:
			if !errors.Is(err, context.Canceled) {
				t.Fatalf("got %v", err)
			}
		case <-time.After(5 * time.Second):
			t.Fatal("blocked after cancel")
		}
	})
}

func TestContextReader(t *testing.T) {
	r := contextReader{
		ctx: context.Background(),
		r:   strings.NewReader("ab"),
	}
	buf := make([]byte, 1)
	n, err := r.Read(buf)
	if err != nil || n != 1 || buf[0] != 'a' {
		t.Fatalf("got %d %v %q", n, err, buf)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	r.ctx = ctx
	if _, err := r.Read(buf); !errors.Is(err, context.Canceled) {
		t.Fatalf("got %v", err)
	}
}
