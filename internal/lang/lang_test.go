package lang

import "testing"

func TestSupported(t *testing.T) {
	for _, name := range []string{"Go", "Rust", "Dockerfile", "C#", "TypeScript"} {
		if !Supported(name) {
			t.Errorf("%q should be supported", name)
		}
	}
	for _, name := range []string{"Text", "go", "Brainfuck", ""} {
		if Supported(name) {
			t.Errorf("%q should not be supported", name)
		}
	}
}

func TestCatalogHasNoDuplicates(t *testing.T) {
	seen := map[string]bool{}
	for _, l := range Catalog {
		if seen[l] {
			t.Errorf("duplicate catalog entry %q", l)
		}
		seen[l] = true
	}
}
