package main

import (
	"testing"

	"github.com/linuxmatters/glyphforge/internal/config"
	"github.com/linuxmatters/glyphforge/internal/shape"
	"github.com/linuxmatters/glyphforge/internal/symbol"
)

func TestNewSymbolGenerator_SeedReproducible(t *testing.T) {
	rc := &config.RuntimeConfig{Size: 128}
	families, err := shape.ParseFamilies("geometric")
	if err != nil {
		t.Fatal(err)
	}

	hashes := func(seed uint64) []symbol.Hash {
		gen, err := newSymbolGenerator(rc, families, seed)
		if err != nil {
			t.Fatalf("newSymbolGenerator: %v", err)
		}
		var out []symbol.Hash
		for i := 0; i < 5; i++ {
			sym, err := gen.GenerateUnique(config.MaxAttempts)
			if err != nil {
				t.Fatalf("GenerateUnique: %v", err)
			}
			out = append(out, sym.Hash)
		}
		return out
	}

	a, b := hashes(42), hashes(42)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("symbol %d differs between runs with the same seed", i+1)
		}
	}

	c := hashes(43)
	same := 0
	for i := range a {
		if a[i] == c[i] {
			same++
		}
	}
	if same == len(a) {
		t.Error("different seeds produced the same alphabet")
	}
}

func TestGenerateCmd_RejectsInvalidFlags(t *testing.T) {
	testCases := []struct {
		name string
		cmd  GenerateCmd
	}{
		{"zero count", GenerateCmd{Count: 0, MaxAttempts: 1, Size: 500, Families: "all", Ink: "#000000", Background: "#FFFFFF"}},
		{"zero attempts", GenerateCmd{Count: 1, MaxAttempts: 0, Size: 500, Families: "all", Ink: "#000000", Background: "#FFFFFF"}},
		{"tiny canvas", GenerateCmd{Count: 1, MaxAttempts: 1, Size: 10, Families: "all", Ink: "#000000", Background: "#FFFFFF"}},
		{"bad ink", GenerateCmd{Count: 1, MaxAttempts: 1, Size: 500, Families: "all", Ink: "black", Background: "#FFFFFF"}},
		{"bad family", GenerateCmd{Count: 1, MaxAttempts: 1, Size: 500, Families: "runes", Ink: "#000000", Background: "#FFFFFF"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tc.cmd.OutputDir = t.TempDir()
			if err := tc.cmd.Run(); err == nil {
				t.Error("expected an error")
			}
		})
	}
}
