package driven

// ConfigStore holds settings under dotted keys such as "fetch.burst".
// Typed getters return the zero value for missing or mistyped keys.
type ConfigStore interface {
	// Get returns the raw value and whether the key is set.
	Get(key string) (any, bool)

	GetString(key string) string
	GetInt(key string) int

	// GetFloat accepts any numeric value.
	GetFloat(key string) float64

	// Set stores a value. File-backed stores write it through at once.
	Set(key string, value any) error

	Save() error

	// Path is where Save writes.
	Path() string
}
