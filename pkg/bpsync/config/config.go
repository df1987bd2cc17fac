// Package config wraps decoded YAML or JSON documents for defaulting,
// type-safe value extraction.
//
// Accessors never fail: a missing key or a value of the wrong type yields
// the caller's default.
//
//	cfg, err := config.FromFile("events.yaml")
//	if err != nil {
//	    return err
//	}
//	strict := cfg.Bool("strict", true)
//	groups := cfg.Section("groups")
//
// Config is safe for concurrent reads. It is never modified after creation.
package config

// Config is a read-only view over a decoded document.
type Config struct {
	data map[string]any
}

// New creates a Config from the given map.
// If data is nil, an empty Config is returned.
func New(data map[string]any) Config {
	if data == nil {
		data = make(map[string]any)
	}
	return Config{data: data}
}

// String returns the string value for key, or defaultVal if missing or not a string.
func (c Config) String(key, defaultVal string) string {
	if s, ok := c.data[key].(string); ok {
		return s
	}
	return defaultVal
}

// Bool returns the boolean value for key, or defaultVal if missing or not a bool.
func (c Config) Bool(key string, defaultVal bool) bool {
	if b, ok := c.data[key].(bool); ok {
		return b
	}
	return defaultVal
}

// Int returns the integer value for key, or defaultVal if missing or not integral.
// JSON numbers (float64) are accepted when they have no fractional part.
func (c Config) Int(key string, defaultVal int) int {
	switch val := c.data[key].(type) {
	case int:
		return val
	case int64:
		return int(val)
	case float64:
		if val == float64(int(val)) {
			return int(val)
		}
	}
	return defaultVal
}

// StringSlice returns the string list for key, or defaultVal if missing or if
// any element is not a string.
func (c Config) StringSlice(key string, defaultVal []string) []string {
	switch val := c.data[key].(type) {
	case []string:
		return val
	case []any:
		return toStrings(val, defaultVal)
	}
	return defaultVal
}

// Section returns the nested mapping at key as a Config.
// A missing or non-mapping value yields an empty Config.
func (c Config) Section(key string) Config {
	if m, ok := c.data[key].(map[string]any); ok {
		return New(m)
	}
	return New(nil)
}

// List returns the raw list at key, or nil if missing or not a list.
func (c Config) List(key string) []any {
	if l, ok := c.data[key].([]any); ok {
		return l
	}
	return nil
}

// Keys returns the top-level keys in unspecified order.
func (c Config) Keys() []string {
	keys := make([]string, 0, len(c.data))
	for k := range c.data {
		keys = append(keys, k)
	}
	return keys
}

// Has returns true if the key exists in the config.
func (c Config) Has(key string) bool {
	_, ok := c.data[key]
	return ok
}

// Raw returns the underlying map.
// The returned map should not be modified.
func (c Config) Raw() map[string]any {
	return c.data
}

func toStrings(items []any, defaultVal []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		s, ok := item.(string)
		if !ok {
			return defaultVal
		}
		out = append(out, s)
	}
	return out
}
