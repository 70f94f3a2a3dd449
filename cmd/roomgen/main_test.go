package main

import (
	"strings"
	"testing"

	"cozy-spring/internal/config"
	"cozy-spring/internal/room"
)

func TestParseExits(t *testing.T) {
	l, err := parseExits("ne", 1)
	if err != nil {
		t.Fatalf("parseExits: %v", err)
	}
	if l != (room.Layout{North: true, East: true}) {
		t.Fatalf("unexpected layout %v", l)
	}
	a, _ := parseExits("random", 9)
	b, _ := parseExits("RANDOM", 9)
	if a != b {
		t.Fatalf("random layouts should be seeded")
	}
	if _, err := parseExits("nx", 1); err == nil {
		t.Fatalf("expected an error for an invalid side")
	}
}

func TestWriteASCII(t *testing.T) {
	cfg := config.Default()
	cfg.Room.Width, cfg.Room.Height = 12, 7
	frame := generator(cfg, room.Layout{West: true})(5)

	var b strings.Builder
	writeASCII(&b, frame)
	lines := strings.Split(strings.TrimSuffix(b.String(), "\n"), "\n")
	if len(lines) != 8 {
		t.Fatalf("expected 7 rows and a status line, got %d lines", len(lines))
	}
	for i, line := range lines[:7] {
		if len([]rune(line)) != 12 {
			t.Fatalf("row %d has width %d", i, len([]rune(line)))
		}
	}
	if strings.Trim(lines[0], "#T") != "" {
		t.Fatalf("top row should be sealed, got %q", lines[0])
	}
	if lines[3][0] == '#' {
		t.Fatalf("west opening should be clear, got %q", lines[3])
	}
	if !strings.HasPrefix(lines[7], "seed 5 12x7 exits w") {
		t.Fatalf("unexpected status %q", lines[7])
	}
}
