package config

import (
	"fmt"

	"github.com/tidwall/sjson"
)

// EncodeJSON renders c in the JSON config format, so it can be loaded back
// with Load.
func EncodeJSON(c *Config) ([]byte, error) {
	doc := []byte("{}")
	var err error

	set := func(path string, value any) {
		if err != nil {
			return
		}
		doc, err = sjson.SetBytes(doc, path, value)
	}

	set("smart_semicolon", c.SmartSemicolon)
	set("semicolon_char", c.SemicolonChar)
	set("indent_size", c.IndentSize)
	set("log_level", c.LogLevel)
	set("autopair.paren", c.AutoPair.Paren)
	set("autopair.bracket", c.AutoPair.Bracket)
	set("autopair.single_quote", c.AutoPair.SingleQuote)
	set("autopair.double_quote", c.AutoPair.DoubleQuote)

	set("smartkey", []any{})
	for _, t := range c.SmartKeys {
		item := map[string]any{"key": t.Key, "value": t.Value}
		if t.FileType != "" {
			item["file_type"] = t.FileType
		}
		set("smartkey.-1", item)
	}

	set("surround", []any{})
	for _, s := range c.Surround {
		item := map[string]any{"key": s.Key, "name": s.Name, "template": s.Template}
		if s.Disable {
			item["disable"] = true
		}
		set("surround.-1", item)
	}

	if err != nil {
		return nil, fmt.Errorf("encoding config: %w", err)
	}
	return doc, nil
}
