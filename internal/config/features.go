package config

// Deployment environments.
const (
	EnvLocal       = "local"
	EnvIntegration = "integration"
	EnvProduction  = "production"
)

// Feature names gated per environment.
const (
	FeatureAuth        = "auth"
	FeatureFlashcards  = "flashcards"
	FeatureGenerations = "generations"
)

// featureTable is the static per-environment configuration. Environments
// missing from the table have every feature disabled.
var featureTable = map[string]map[string]bool{
	EnvLocal: {
		FeatureAuth:        true,
		FeatureFlashcards:  true,
		FeatureGenerations: true,
	},
	EnvIntegration: {
		FeatureAuth:        true,
		FeatureFlashcards:  true,
		FeatureGenerations: true,
	},
	EnvProduction: {
		FeatureAuth:        true,
		FeatureFlashcards:  true,
		FeatureGenerations: false,
	},
}

// FeatureFlags answers whether a feature is enabled in one environment.
type FeatureFlags struct {
	enabled map[string]bool
}

// Features returns the flags for env. An unrecognized environment fails
// closed: every feature is reported disabled.
func Features(env string) FeatureFlags {
	flags := make(map[string]bool)
	for name, on := range featureTable[env] {
		flags[name] = on
	}
	return FeatureFlags{enabled: flags}
}

// IsEnabled reports whether the named feature is on. Unknown names are off.
func (f FeatureFlags) IsEnabled(name string) bool {
	return f.enabled[name]
}

func isKnownEnvironment(env string) bool {
	_, ok := featureTable[env]
	return ok
}
