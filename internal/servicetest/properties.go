package servicetest

import (
	"fmt"
	"strings"

	"github.com/magiconair/properties"
)

// decodeProperties parses a Java-style .properties file into nested maps, so
// that "assistant.v2.username" is read back through viper with the same key.
func decodeProperties(b []byte) (map[string]any, error) {
	p, err := properties.Load(b, properties.UTF8)
	if err != nil {
		return nil, err
	}
	out := map[string]any{}
	for _, key := range p.Keys() {
		value, _ := p.Get(key)
		path := strings.Split(strings.ToLower(key), ".")
		m := out
		for i, part := range path[:len(path)-1] {
			switch next := m[part].(type) {
			case map[string]any:
				m = next
			case nil:
				child := map[string]any{}
				m[part] = child
				m = child
			default:
				return nil, fmt.Errorf("property %q: %q already holds a value", key, strings.Join(path[:i+1], "."))
			}
		}
		leaf := path[len(path)-1]
		if _, exists := m[leaf]; exists {
			return nil, fmt.Errorf("property %q collides with another key", key)
		}
		m[leaf] = value
	}
	return out, nil
}
