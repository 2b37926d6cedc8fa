package catalog

// ModelInfo describes one generation model the application is known to use
type ModelInfo struct {
	Name        string `yaml:"name"`
	Provider    string `yaml:"provider"`
	Description string `yaml:"description"`
	Deprecated  bool   `yaml:"deprecated"`
}

// providerModels is the on-disk shape of a provider's model list
type providerModels struct {
	Provider string      `yaml:"provider"`
	Models   []ModelInfo `yaml:"models"`
}
