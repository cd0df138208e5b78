package hasher

import (
	"strings"
	"testing"
)

func TestContentHashReaderDeterministic(t *testing.T) {
	a, err := ContentHashReader(strings.NewReader("same bytes"), 16)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	b, err := ContentHashReader(strings.NewReader("same bytes"), 16)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if a != b {
		t.Errorf("same input hashed differently: %q vs %q", a, b)
	}
	if len(a) != 16 {
		t.Errorf("length: got %d, want 16", len(a))
	}
}

func TestContentHashReaderDistinguishesContent(t *testing.T) {
	a, _ := ContentHashReader(strings.NewReader("one"), 16)
	b, _ := ContentHashReader(strings.NewReader("two"), 16)
	if a == b {
		t.Errorf("different inputs collided: %q", a)
	}
}

func TestContentHashReaderTruncation(t *testing.T) {
	h, err := ContentHashReader(strings.NewReader("abc"), 8)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if len(h) != 8 {
		t.Errorf("length: got %d, want 8", len(h))
	}

	full, err := ContentHashReader(strings.NewReader("abc"), 0)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if len(full) != 16 {
		t.Errorf("full length: got %d, want 16", len(full))
	}
	if !strings.HasPrefix(full, h) {
		t.Errorf("truncated %q is not a prefix of %q", h, full)
	}
}

func TestContentHashReaderEmptyInput(t *testing.T) {
	// xxHash64 of the empty input with seed 0.
	got, err := ContentHashReader(strings.NewReader(""), 0)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if got != "ef46db3751d8e999" {
		t.Errorf("empty-input hash: got %q", got)
	}
}
