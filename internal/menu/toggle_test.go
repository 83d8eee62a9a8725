package menu

import "testing"

func TestToggleFlipsOnEditKeys(t *testing.T) {
	item := NewToggle("border", false)
	for i, k := range []Key{KeyIncrement, KeyDecrement, KeyActivate} {
		want := i%2 == 0
		if !item.HandleKey(k) {
			t.Fatalf("expected %s to toggle", k)
		}
		if item.Get() != want {
			t.Fatalf("after %s expected %v, got %v", k, want, item.Get())
		}
	}
	if item.HandleKey(KeyMax) || item.HandleKey(KeyRound) {
		t.Fatalf("expected bound keys other than edit keys to be ignored")
	}
}

func TestToggleSetReportsChange(t *testing.T) {
	item := NewToggle("wire", true)
	if item.Set(true) {
		t.Fatalf("expected no change setting the same value")
	}
	if !item.Set(false) {
		t.Fatalf("expected change setting a new value")
	}
	if got := item.Display(); got != "wire = false" {
		t.Fatalf("unexpected display %q", got)
	}
}
