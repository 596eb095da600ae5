package main

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// config holds the settings that can come from a TOML file. Command line flags override them.
type config struct {
	WrapMain bool   `toml:"wrap_main"`
	AST      bool   `toml:"ast"`
	Tokens   bool   `toml:"tokens"`
	Trace    bool   `toml:"trace"`
	LogLevel string `toml:"log_level"`
}

func defaultConfig() config {
	return config{LogLevel: "info"}
}

// loadConfig reads path, or returns the defaults if path is empty.
func loadConfig(path string) (config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	path = os.ExpandEnv(path)
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, fmt.Errorf("failed to parse config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return cfg, fmt.Errorf("%s: unknown config key %q", path, undecoded[0].String())
	}
	return cfg, nil
}

// merge command line flags over the file settings. Boolean flags can only switch a setting on.
func (c config) merge(wrapMain, ast, tokens, trace bool, logLevel string) config {
	c.WrapMain = c.WrapMain || wrapMain
	c.AST = c.AST || ast
	c.Tokens = c.Tokens || tokens
	c.Trace = c.Trace || trace
	if logLevel != "" {
		c.LogLevel = logLevel
	}
	return c
}
