package config

import (
	"github.com/dshills/smartkey/internal/config/watcher"
	"github.com/dshills/smartkey/internal/logging"
)

// Watch reloads the file at path whenever it changes and passes each
// valid result to apply. A reload that fails is logged and the previous
// configuration stays in effect. The returned watcher is already started.
func Watch(path string, log *logging.Logger, apply func(*Config)) (*watcher.Watcher, error) {
	if log == nil {
		log = logging.Nop()
	}
	log = log.WithComponent("config")

	reload := func(p string) {
		cfg, err := Load(p)
		if err != nil {
			log.WithField("path", p).Error("reload failed: %v", err)
			return
		}
		log.WithField("path", p).Info("config reloaded")
		apply(cfg)
	}

	w, err := watcher.New(path, reload, watcher.WithErrorHandler(func(err error) {
		log.Warn("watch error: %v", err)
	}))
	if err != nil {
		return nil, err
	}
	if err := w.Start(); err != nil {
		w.Close()
		return nil, err
	}
	return w, nil
}
