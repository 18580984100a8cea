package agent

import (
	"strconv"
	"strings"
)

// Properties is an agent's configuration table, built once from a
// whitespace-separated "key=value" string. Reads coerce the stored
// strings on demand; the only post-construction mutation is Notify.
type Properties map[string]string

// ParseProperties builds a table from args. The built-in defaults
// name=unknown and role=unknown are applied first, so later tokens
// overwrite them. A token without '=' (such as the bare "init"
// trigger) stores an empty value and still satisfies Has.
func ParseProperties(args string) Properties {
	p := Properties{"name": "unknown", "role": "unknown"}
	for _, tok := range strings.Fields(args) {
		p.set(tok)
	}
	return p
}

func (p Properties) set(tok string) {
	key, value, _ := strings.Cut(tok, "=")
	p[key] = value
}

// Has reports whether key was supplied.
func (p Properties) Has(key string) bool {
	_, ok := p[key]
	return ok
}

// String returns the raw value for key, or "" when absent.
func (p Properties) String(key string) string { return p[key] }

// Float returns key's value parsed as a float, or def when the key is
// absent or not numeric.
func (p Properties) Float(key string, def float64) float64 {
	v, ok := p[key]
	if !ok {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return def
	}
	return f
}

// Int returns key's value coerced to an integer. Like Float, but the
// parsed value is truncated, so "3.7" reads as 3.
func (p Properties) Int(key string, def int64) int64 {
	v, ok := p[key]
	if !ok {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return def
	}
	return int64(f)
}

// Notify re-parses a single key=value pair, overwriting the stored
// value. Hosts use it to push out-of-band information at any time.
func (p Properties) Notify(msg string) { p.set(msg) }
