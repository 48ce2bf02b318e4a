package config

import (
	"fmt"

	"github.com/dshills/smartkey/internal/surround"
	"github.com/dshills/smartkey/internal/trigger"
)

// decode overlays the generic map produced by a loader onto c. Keys that
// are absent keep their current value; unknown keys are ignored.
func decode(c *Config, m map[string]any) error {
	d := decoder{}

	d.boolean(m, "smart_semicolon", &c.SmartSemicolon)
	d.str(m, "semicolon_char", &c.SemicolonChar)
	d.integer(m, "indent_size", &c.IndentSize)
	d.str(m, "log_level", &c.LogLevel)

	if pairs, ok := d.table(m, "autopair"); ok {
		d.boolean(pairs, "paren", &c.AutoPair.Paren)
		d.boolean(pairs, "bracket", &c.AutoPair.Bracket)
		d.boolean(pairs, "single_quote", &c.AutoPair.SingleQuote)
		d.boolean(pairs, "double_quote", &c.AutoPair.DoubleQuote)
	}

	if list, ok := d.tables(m, "smartkey"); ok {
		c.SmartKeys = make([]trigger.Trigger, 0, len(list))
		for _, item := range list {
			var t trigger.Trigger
			d.str(item, "key", &t.Key)
			d.str(item, "file_type", &t.FileType)
			d.str(item, "value", &t.Value)
			c.SmartKeys = append(c.SmartKeys, t)
		}
	}

	if list, ok := d.tables(m, "surround"); ok {
		c.Surround = make([]surround.Spec, 0, len(list))
		for _, item := range list {
			var s surround.Spec
			d.str(item, "key", &s.Key)
			d.str(item, "name", &s.Name)
			d.str(item, "template", &s.Template)
			d.boolean(item, "disable", &s.Disable)
			c.Surround = append(c.Surround, s)
		}
	}

	return d.err
}

// decoder records the first type mismatch and ignores everything after.
type decoder struct {
	err error
}

func (d *decoder) fail(key string, want string, got any) {
	if d.err == nil {
		d.err = fmt.Errorf("%w: %s: expected %s, got %T", ErrInvalidConfig, key, want, got)
	}
}

func (d *decoder) boolean(m map[string]any, key string, dst *bool) {
	v, ok := m[key]
	if !ok {
		return
	}
	b, ok := v.(bool)
	if !ok {
		d.fail(key, "bool", v)
		return
	}
	*dst = b
}

func (d *decoder) str(m map[string]any, key string, dst *string) {
	v, ok := m[key]
	if !ok {
		return
	}
	s, ok := v.(string)
	if !ok {
		d.fail(key, "string", v)
		return
	}
	*dst = s
}

// integer accepts the integer shapes of every loader: int64 from TOML and
// Lua, float64 from JSON.
func (d *decoder) integer(m map[string]any, key string, dst *int) {
	v, ok := m[key]
	if !ok {
		return
	}
	switch n := v.(type) {
	case int64:
		*dst = int(n)
	case int:
		*dst = n
	case float64:
		if n != float64(int(n)) {
			d.fail(key, "integer", v)
			return
		}
		*dst = int(n)
	default:
		d.fail(key, "integer", v)
	}
}

func (d *decoder) table(m map[string]any, key string) (map[string]any, bool) {
	v, ok := m[key]
	if !ok {
		return nil, false
	}
	t, ok := v.(map[string]any)
	if !ok {
		d.fail(key, "table", v)
		return nil, false
	}
	return t, true
}

func (d *decoder) tables(m map[string]any, key string) ([]map[string]any, bool) {
	v, ok := m[key]
	if !ok {
		return nil, false
	}

	var out []map[string]any
	switch list := v.(type) {
	case []map[string]any:
		out = list
	case []any:
		for i, item := range list {
			t, ok := item.(map[string]any)
			if !ok {
				d.fail(fmt.Sprintf("%s[%d]", key, i), "table", item)
				return nil, false
			}
			out = append(out, t)
		}
	case map[string]any:
		// An empty Lua table decodes as a map.
		if len(list) != 0 {
			d.fail(key, "array of tables", v)
			return nil, false
		}
	default:
		d.fail(key, "array of tables", v)
		return nil, false
	}
	return out, true
}
