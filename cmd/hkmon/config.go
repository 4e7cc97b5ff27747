package main

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// bindingsFile is the TOML shape:
//
//	[bindings]
//	screenshot = "cmdorctrl+shift+Digit4"
//	push-to-talk = "ctrl+shift+Space"
type bindingsFile struct {
	Bindings map[string]string `toml:"bindings"`
}

func loadBindings(path string) (map[string]string, error) {
	var cfg bindingsFile
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, err
	}
	if len(cfg.Bindings) == 0 {
		return nil, fmt.Errorf("%s: no [bindings] entries", path)
	}
	return cfg.Bindings, nil
}
