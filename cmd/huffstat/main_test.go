package main

import (
	"bufio"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/text/language"

	"github.com/chronos-tachyon/huffstat"
)

func TestStripModeFor(t *testing.T) {
	type testRow struct {
		raw       bool
		canonical bool
		mode      huffstat.StripMode
	}

	testData := [...]testRow{
		{false, false, huffstat.StripLeadingZeros},
		{true, false, huffstat.KeepRawPath},
		{false, true, huffstat.KeepRawPath},
		{true, true, huffstat.KeepRawPath},
	}
	for _, row := range testData {
		if actual := stripModeFor(row.raw, row.canonical); actual != row.mode {
			t.Errorf("raw=%t canonical=%t: expected %v, got %v", row.raw, row.canonical, row.mode, actual)
		}
	}
}

func TestRun_Canonical(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input")
	if err := os.WriteFile(path, []byte("abracadabra"), 0o644); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	analyzer := huffstat.NewAnalyzer(huffstat.WithStripMode(stripModeFor(false, true)), huffstat.WithVerify(true))
	renderer := huffstat.NewRenderer(language.English)

	var sb strings.Builder
	w := bufio.NewWriter(&sb)
	if err := run(context.Background(), w, analyzer, renderer, huffstat.SourceConfig{Path: path}, true, false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := w.Flush(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Raw lengths a=1 b=2 r=3 c=4 d=4, assigned in (length, byte) order.
	expect := "97 a: 0\n98 b: 10\n99 c: 1110\n100 d: 1111\n114 r: 110\n"
	sections := strings.Split(sb.String(), "\n\n")
	if len(sections) < 2 || sections[1]+"\n" != expect {
		t.Errorf("wrong encodings:\n\texpect: %q\n\tactual: %q", expect, sb.String())
	}
}
