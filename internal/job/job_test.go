package job

import (
	"context"
	"errors"
	"strconv"
	"testing"
)

func TestNewRunsClosure(t *testing.T) {
	t.Parallel()
	called := false
	j := New(func(context.Context) error {
		called = true
		return nil
	})
	if err := j.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !called {
		t.Fatal("closure never ran")
	}
}

func TestNilJobFunc(t *testing.T) {
	t.Parallel()
	var j jobFunc
	if err := j.Run(context.Background()); !errors.Is(err, ErrNilJobFunc) {
		t.Fatalf("expected ErrNilJobFunc, got %v", err)
	}
}

func TestShardLabel(t *testing.T) {
	t.Parallel()
	first := ShardLabel("content-7")
	for i := 0; i < 50; i++ {
		if got := ShardLabel("content-7"); got != first {
			t.Fatalf("label not stable: %q vs %q", got, first)
		}
	}
	n, err := strconv.Atoi(first)
	if err != nil {
		t.Fatalf("label %q is not numeric", first)
	}
	if n < 0 || n > 31 {
		t.Fatalf("label %d outside 0-31", n)
	}
}
