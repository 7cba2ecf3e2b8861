package resources

import (
	"os"
	"strings"
)

// Ensure Env implements Resources
var _ Resources = (*Env)(nil)

// Env resolves string resources from environment variables.
// The name "mapzen_api_key" for package "com.example.app" is looked up as
// COM_EXAMPLE_APP_MAPZEN_API_KEY and then MAPZEN_API_KEY.
type Env struct {
	// Scoped disables the unprefixed fallback when set
	Scoped bool
}

// Lookup only serves the "string" type; empty variables count as unset
func (e *Env) Lookup(name, resType, pkg string) (string, bool) {
	if resType != "string" {
		return "", false
	}

	if pkg != "" {
		if value := os.Getenv(EnvName(pkg + "_" + name)); value != "" {
			return value, true
		}
	}

	if e.Scoped {
		return "", false
	}

	if value := os.Getenv(EnvName(name)); value != "" {
		return value, true
	}
	return "", false
}

// EnvName converts a resource or package name to its environment variable form
func EnvName(s string) string {
	return strings.ToUpper(strings.NewReplacer(".", "_", "-", "_").Replace(s))
}
