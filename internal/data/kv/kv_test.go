package kv

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func implementations(t *testing.T) map[string]KV {
	t.Helper()

	fileStore, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}

	return map[string]KV{
		"file":   fileStore,
		"memory": NewMemStore(),
	}
}

func TestKV(t *testing.T) {
	ctx := context.Background()

	type payload struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}

	for name, store := range implementations(t) {
		t.Run(name, func(t *testing.T) {
			t.Run("get missing key", func(t *testing.T) {
				var dest payload
				err := store.Get(ctx, "absent", &dest)
				if !errors.Is(err, ErrNoKey) {
					t.Errorf("got %v, want ErrNoKey", err)
				}
			})

			t.Run("set and get", func(t *testing.T) {
				want := payload{Name: "tasks", Count: 3}
				if err := store.Set(ctx, "roundtrip", want); err != nil {
					t.Fatalf("Set: %v", err)
				}

				var got payload
				if err := store.Get(ctx, "roundtrip", &got); err != nil {
					t.Fatalf("Get: %v", err)
				}
				if got != want {
					t.Errorf("got %+v, want %+v", got, want)
				}
			})

			t.Run("set overwrites", func(t *testing.T) {
				if err := store.Set(ctx, "overwrite", payload{Count: 1}); err != nil {
					t.Fatalf("Set: %v", err)
				}
				if err := store.Set(ctx, "overwrite", payload{Count: 2}); err != nil {
					t.Fatalf("Set: %v", err)
				}

				var got payload
				if err := store.Get(ctx, "overwrite", &got); err != nil {
					t.Fatalf("Get: %v", err)
				}
				if got.Count != 2 {
					t.Errorf("got count %d, want 2", got.Count)
				}
			})

			t.Run("has", func(t *testing.T) {
				ok, err := store.Has(ctx, "roundtrip")
				if err != nil || !ok {
					t.Errorf("Has(roundtrip) = %v, %v, want true", ok, err)
				}

				ok, err = store.Has(ctx, "absent")
				if err != nil || ok {
					t.Errorf("Has(absent) = %v, %v, want false", ok, err)
				}
			})

			t.Run("delete", func(t *testing.T) {
				if err := store.Set(ctx, "doomed", payload{}); err != nil {
					t.Fatalf("Set: %v", err)
				}
				if err := store.Delete(ctx, "doomed"); err != nil {
					t.Fatalf("Delete: %v", err)
				}

				var dest payload
				if err := store.Get(ctx, "doomed", &dest); !errors.Is(err, ErrNoKey) {
					t.Errorf("got %v, want ErrNoKey", err)
				}

				// Deleting again is not an error.
				if err := store.Delete(ctx, "doomed"); err != nil {
					t.Errorf("second Delete: %v", err)
				}
			})

			t.Run("list keys", func(t *testing.T) {
				for _, key := range []string{"zeta", "alpha"} {
					if err := store.Set(ctx, key, payload{}); err != nil {
						t.Fatalf("Set %s: %v", key, err)
					}
				}

				keys, err := store.ListKeys(ctx)
				if err != nil {
					t.Fatalf("ListKeys: %v", err)
				}

				idxAlpha, idxZeta := -1, -1
				for i, k := range keys {
					switch k {
					case "alpha":
						idxAlpha = i
					case "zeta":
						idxZeta = i
					}
				}
				if idxAlpha == -1 || idxZeta == -1 || idxAlpha > idxZeta {
					t.Errorf("keys %v not sorted or missing entries", keys)
				}
			})
		})
	}
}

func TestFileStore_MalformedValue(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	store, err := NewFileStore(dir)
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}

	if err := os.WriteFile(filepath.Join(dir, "broken.json"), []byte("{not json"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	var dest map[string]any
	err = store.Get(ctx, "broken", &dest)
	if err == nil {
		t.Fatal("expected unmarshal error, got nil")
	}
	if errors.Is(err, ErrNoKey) {
		t.Error("malformed value must not look like a missing key")
	}
}

func TestFileStore_PersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	store, err := NewFileStore(dir)
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	if err := store.Set(ctx, "tasks", []string{"a", "b"}); err != nil {
		t.Fatalf("Set: %v", err)
	}

	reopened, err := NewFileStore(dir)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}

	var got []string
	if err := reopened.Get(ctx, "tasks", &got); err != nil {
		t.Fatalf("Get after reopen: %v", err)
	}
	if len(got) != 2 || got[0] != "a" {
		t.Errorf("got %v, want [a b]", got)
	}
}
