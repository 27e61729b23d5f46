package feature

import (
	"testing"

	"github.com/ice200117/mapnik/pkg/value"
)

func TestIteratorSortedOrder(t *testing.T) {
	ctx := NewContext()
	ctx.Push("pop")
	ctx.Push("area")
	ctx.Push("name")

	f := New(ctx, 1)
	if err := f.Put("pop", value.NewInteger(100)); err != nil {
		t.Fatal(err)
	}
	if err := f.Put("name", value.NewString("NYC")); err != nil {
		t.Fatal(err)
	}

	it := f.Iterator()
	var keys []string
	for it.Next() {
		keys = append(keys, it.Key())
	}

	want := []string{"area", "name", "pop"}
	if len(keys) != len(want) {
		t.Fatalf("iterated %d keys, want %d", len(keys), len(want))
	}
	for i, key := range keys {
		if key != want[i] {
			t.Errorf("key %d = %q, want %q", i, key, want[i])
		}
	}
}

// TestIteratorNullFillBeyondArray verifies entries past the feature's
// array are visited with a null value, not skipped.
func TestIteratorNullFillBeyondArray(t *testing.T) {
	ctx := NewContext()
	ctx.Push("name")
	stale := New(ctx, 1)
	if err := stale.Put("name", value.NewString("NYC")); err != nil {
		t.Fatal(err)
	}
	ctx.Push("pop")

	it := stale.Iterator()
	var names []string
	var values []value.Value
	for it.Next() {
		names = append(names, it.Key())
		values = append(values, it.Value())
	}

	if len(names) != 2 {
		t.Fatalf("iterated %d entries, want 2 (null fill, no omission)", len(names))
	}
	if names[0] != "name" || values[0].Text() != "NYC" {
		t.Errorf("entry 0 = %q:%v, want name:NYC", names[0], values[0])
	}
	if names[1] != "pop" || !values[1].IsNull() {
		t.Errorf("entry 1 = %q:%v, want pop:null", names[1], values[1])
	}
}

// TestIteratorRestartable verifies each Iterator call yields a fresh,
// independent traversal.
func TestIteratorRestartable(t *testing.T) {
	ctx := NewContext()
	ctx.Push("name")
	ctx.Push("pop")
	f := New(ctx, 1)

	first := f.Iterator()
	count := 0
	for first.Next() {
		count++
	}
	if count != 2 {
		t.Fatalf("first traversal visited %d entries, want 2", count)
	}

	second := f.Iterator()
	count = 0
	for second.Next() {
		count++
	}
	if count != 2 {
		t.Errorf("second traversal visited %d entries, want 2", count)
	}
}

func TestIteratorExhausted(t *testing.T) {
	f := New(NewContext(), 1)
	it := f.Iterator()
	if it.Next() {
		t.Error("Next() on empty schema should be false")
	}
	if it.Next() {
		t.Error("Next() after exhaustion should stay false")
	}
}

func TestAllSeq(t *testing.T) {
	ctx := NewContext()
	ctx.Push("name")
	ctx.Push("pop")
	f := New(ctx, 1)
	if err := f.Put("name", value.NewString("NYC")); err != nil {
		t.Fatal(err)
	}

	got := make(map[string]value.Value)
	for name, v := range f.All() {
		got[name] = v
	}

	if len(got) != 2 {
		t.Fatalf("All() yielded %d entries, want 2", len(got))
	}
	if got["name"].Text() != "NYC" {
		t.Errorf("All()[name] = %v, want NYC", got["name"])
	}
	if !got["pop"].IsNull() {
		t.Errorf("All()[pop] = %v, want null", got["pop"])
	}

	// Early break must not panic or leak.
	for range f.All() {
		break
	}
}
