package seed

import "testing"

func TestGenerate(t *testing.T) {
	a := Generate()
	b := Generate()
	if len(a) != 64 {
		t.Fatalf("expected 64 hex chars, got %d (%q)", len(a), a)
	}
	for _, r := range a {
		if (r < '0' || r > '9') && (r < 'a' || r > 'f') {
			t.Fatalf("non-hex rune %q in seed %q", r, a)
		}
	}
	if a == b {
		t.Fatal("two generated seeds were identical")
	}
}

func TestValid(t *testing.T) {
	if Valid("") {
		t.Fatal("empty seed should be invalid")
	}
	if !Valid("pasted-by-a-user") {
		t.Fatal("non-empty seed should be valid")
	}
}
