// Package features assembles keystroke handler chains from configuration.
//
// Handlers are registered in a fixed priority order: smart semicolon,
// smart keys, auto pairs (single quote, double quote, parenthesis,
// bracket) and finally surround templates. Disabled features are not
// registered at all.
package features

import (
	"github.com/dshills/smartkey/internal/autopair"
	"github.com/dshills/smartkey/internal/config"
	"github.com/dshills/smartkey/internal/keychain"
	"github.com/dshills/smartkey/internal/logging"
	"github.com/dshills/smartkey/internal/semicolon"
	"github.com/dshills/smartkey/internal/smartkey"
	"github.com/dshills/smartkey/internal/surround"
	"github.com/dshills/smartkey/internal/trigger"
)

// Builder creates handler chains for one configuration. The trigger set
// is compiled once and shared; each chain gets its own handler state.
type Builder struct {
	cfg      *config.Config
	triggers *trigger.Set
	log      *logging.Logger
}

// NewBuilder creates a Builder for cfg.
func NewBuilder(cfg *config.Config, log *logging.Logger) *Builder {
	if cfg == nil {
		cfg = config.Default()
	}
	if log == nil {
		log = logging.Nop()
	}
	return &Builder{
		cfg:      cfg,
		triggers: cfg.TriggerSet(),
		log:      log,
	}
}

// Config returns the configuration the builder was created with.
func (b *Builder) Config() *config.Config {
	return b.cfg
}

// Chain returns a new chain with fresh per-document state.
func (b *Builder) Chain() *keychain.Chain {
	c := keychain.NewChain(b.log)

	if b.cfg.SmartSemicolon {
		c.Append(semicolon.New(b.cfg.SemicolonChar, b.log))
	}
	if b.triggers.Len() > 0 {
		c.Append(smartkey.New(b.triggers, b.log))
	}

	pairs := []struct {
		enabled bool
		pair    autopair.Pair
	}{
		{b.cfg.AutoPair.SingleQuote, autopair.SingleQuote},
		{b.cfg.AutoPair.DoubleQuote, autopair.DoubleQuote},
		{b.cfg.AutoPair.Paren, autopair.Paren},
		{b.cfg.AutoPair.Bracket, autopair.Bracket},
	}
	for _, p := range pairs {
		if p.enabled {
			c.Append(p.pair)
		}
	}

	if b.cfg.HasSurround() {
		c.Append(surround.New(b.cfg.Surround, b.log))
	}

	b.log.WithComponent("features").Debug("built chain %v", c.Names())
	return c
}
