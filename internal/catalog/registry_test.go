package catalog

import "testing"

func TestRegistryLoadsEmbeddedCatalog(t *testing.T) {
	r, err := NewRegistry()
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}

	info, ok := r.Lookup("openai/gpt-4o-mini")
	if !ok {
		t.Fatal("default extraction model missing from catalog")
	}
	if info.Provider != "openrouter" {
		t.Errorf("provider = %q, want openrouter inherited from the file", info.Provider)
	}
	if info.Deprecated {
		t.Error("default model flagged deprecated")
	}
}

func TestRegistryDeprecatedFlag(t *testing.T) {
	r, err := NewRegistry()
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}

	info, ok := r.Lookup("anthropic/claude-3-haiku")
	if !ok {
		t.Fatal("deprecated model missing from catalog")
	}
	if !info.Deprecated {
		t.Error("deprecated flag not carried over")
	}
}

func TestRegistryUnknownModel(t *testing.T) {
	r, err := NewRegistry()
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}

	if r.Known("somelab/unlisted-model") {
		t.Error("unlisted model reported as known")
	}
}
