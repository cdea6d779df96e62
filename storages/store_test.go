package storages

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/reusee/bfi/bficonfigs"
	"github.com/reusee/bfi/bfvm"
	"github.com/reusee/bfi/configs"
	"github.com/reusee/bfi/modes"
	"github.com/reusee/dscope"
)

func openTestStore(t *testing.T) *Store {
	store, err := Open(filepath.Join(t.TempDir(), "sub", "snapshots.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		store.Close()
	})
	return store
}

func TestSaveLoad(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	state := bfvm.State{
		PC:      3,
		Pointer: 1,
		Cells:   []byte{1, 2, 3},
		Steps:   42,
	}
	saved, err := store.Save(ctx, "foo", "ook", state)
	if err != nil {
		t.Fatal(err)
	}

	loaded, err := store.Load(ctx, "foo")
	if err != nil {
		t.Fatal(err)
	}
	if loaded.ID != saved.ID {
		t.Fatalf("got %v", loaded.ID)
	}
	if loaded.Dialect != "ook" {
		t.Fatalf("got %q", loaded.Dialect)
	}
	if loaded.State.Pointer != 1 || loaded.State.Steps != 42 || !bytes.Equal(loaded.State.Cells, []byte{1, 2, 3}) {
		t.Fatalf("got %+v", loaded.State)
	}

	// latest wins
	state.Cells = []byte{9}
	state.Pointer = 0
	if _, err := store.Save(ctx, "foo", "bf", state); err != nil {
		t.Fatal(err)
	}
	loaded, err = store.Load(ctx, "foo")
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(loaded.State.Cells, []byte{9}) || loaded.Dialect != "bf" {
		t.Fatalf("got %+v", loaded)
	}

	_, err = store.Load(ctx, "bar")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("got %v", err)
	}

	if _, err := store.Save(ctx, "", "bf", state); err == nil {
		t.Fatal("should error")
	}
}

func TestListDelete(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	for _, name := range []string{"a", "b", "a"} {
		if _, err := store.Save(ctx, name, "bf", bfvm.State{Cells: []byte{0}}); err != nil {
			t.Fatal(err)
		}
	}
	list, err := store.List(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 3 {
		t.Fatalf("got %d", len(list))
	}
	if list[0].Name != "a" {
		t.Fatalf("got %q", list[0].Name)
	}

	n, err := store.Delete(ctx, "a")
	if err != nil {
		t.Fatal(err)
	}
	if n != 2 {
		t.Fatalf("got %d", n)
	}
	list, err = store.List(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 1 || list[0].Name != "b" {
		t.Fatalf("got %+v", list)
	}
}

func TestWithTxRollback(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()
	errFoo := errors.New("foo")

	err := store.WithTx(ctx, func(tx Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM snapshots`); err != nil {
			return err
		}
		if _, err := tx.Exec(ctx,
			`INSERT INTO snapshots (id, name, dialect, created_at, state) VALUES ('x', 'x', 'bf', 0, x'00')`,
		); err != nil {
			return err
		}
		return errFoo
	})
	if !errors.Is(err, errFoo) {
		t.Fatalf("got %v", err)
	}
	list, err := store.List(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 0 {
		t.Fatalf("got %+v", list)
	}
}

func TestOpenStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db")
	dscope.New(
		modes.ForTest(t),
		new(Module),
	).Fork(
		func() configs.Loader {
			return configs.NewLoader(nil, "")
		},
		func() bficonfigs.DatabasePath {
			return bficonfigs.DatabasePath(path)
		},
	).Call(func(
		open OpenStore,
	) {
		store, err := open()
		if err != nil {
			t.Fatal(err)
		}
		defer store.Close()
		again, err := open()
		if err != nil {
			t.Fatal(err)
		}
		if again != store {
			t.Fatal("should open once")
		}
	})
}
