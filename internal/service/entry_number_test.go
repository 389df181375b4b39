package service

import (
	"strings"
	"testing"
)

func TestNewEntryNumber(t *testing.T) {
	seen := make(map[string]bool)

	for i := 0; i < 200; i++ {
		number, err := newEntryNumber()
		if err != nil {
			t.Fatalf("newEntryNumber returned error: %v", err)
		}

		if len(number) != entryNumberLength {
			t.Fatalf("Expected length %d, got %d (%q)", entryNumberLength, len(number), number)
		}

		for _, ch := range number {
			if !strings.ContainsRune(entryNumberCharset, ch) {
				t.Fatalf("Unexpected character %q in entry number %q", ch, number)
			}
		}

		seen[number] = true
	}

	// Генератор случайный: 200 значений не могут совпасть все до одного
	if len(seen) < 2 {
		t.Error("Expected generated entry numbers to vary")
	}
}
