package catalog

import (
	"embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed config/*.yaml
var configFiles embed.FS

// Registry holds the known generation models across providers. Generation
// rows store the model name verbatim; the registry only exists so the
// service layer can flag sessions recorded against unknown or deprecated
// models.
type Registry struct {
	models map[string]ModelInfo
	mu     sync.RWMutex
}

// NewRegistry creates a registry from the embedded YAML files
func NewRegistry() (*Registry, error) {
	r := &Registry{
		models: make(map[string]ModelInfo),
	}

	if err := r.loadProviderFile("openrouter"); err != nil {
		return nil, fmt.Errorf("failed to load openrouter models: %w", err)
	}

	return r, nil
}

// loadProviderFile loads a provider's model YAML file
func (r *Registry) loadProviderFile(provider string) error {
	filename := fmt.Sprintf("config/%s.yaml", provider)
	data, err := configFiles.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", filename, err)
	}

	var pm providerModels
	if err := yaml.Unmarshal(data, &pm); err != nil {
		return fmt.Errorf("failed to unmarshal %s: %w", filename, err)
	}

	r.mu.Lock()
	for _, m := range pm.Models {
		if m.Provider == "" {
			m.Provider = pm.Provider
		}
		r.models[m.Name] = m
	}
	r.mu.Unlock()

	return nil
}

// Lookup returns the catalog entry for a model name
func (r *Registry) Lookup(name string) (ModelInfo, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	info, ok := r.models[name]
	return info, ok
}

// Known reports whether the model name appears in the catalog
func (r *Registry) Known(name string) bool {
	_, ok := r.Lookup(name)
	return ok
}
