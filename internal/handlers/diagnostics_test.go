package handlers

import (
	"errors"
	"strings"
	"testing"
	"unicode/utf8"
)

func TestTruncateErrorKeepsShortMessages(t *testing.T) {
	if got := truncateError(errors.New("server selection error"), 80); got != "server selection error" {
		t.Fatalf("expected message unchanged, got %q", got)
	}
}

func TestTruncateErrorCutsOnRuneBoundaries(t *testing.T) {
	err := errors.New(strings.Repeat("bağlantı hatası ", 10))

	got := truncateError(err, 80)
	if !utf8.ValidString(got) {
		t.Fatalf("expected valid utf-8 after truncation, got %q", got)
	}
	if utf8.RuneCountInString(got) != 80 {
		t.Fatalf("expected 80 runes, got %d", utf8.RuneCountInString(got))
	}
}
