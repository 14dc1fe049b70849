package main

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/ghodss/yaml"
)

const (
	DefaultConfigFile  = "./rpncalc.yml"
	DefaultPrompt      = "> "
	DefaultHistoryFile = "~/.rpncalc_history"
	DefaultSeries      = "rpncalc_result"
)

type ConfigFunctions struct {
	Script string   `json:"script"`
	Names  []string `json:"names"`
}

type ConfigRemoteWrite struct {
	Url    string `json:"url"`
	Series string `json:"series"`
}

type ConfigRoot struct {
	Prompt      string             `json:"prompt"`
	FailFast    bool               `json:"fail_fast"`
	HistoryFile string             `json:"history_file"`
	Variables   map[string]float64 `json:"variables"`
	Functions   ConfigFunctions    `json:"functions"`
	RemoteWrite ConfigRemoteWrite  `json:"remote_write"`
}

func defaultConfig() *ConfigRoot {
	return &ConfigRoot{
		Prompt:      DefaultPrompt,
		HistoryFile: DefaultHistoryFile,
		RemoteWrite: ConfigRemoteWrite{
			Series: DefaultSeries,
		},
	}
}

// loadConfig reads the yaml file at path over the defaults. A missing file is
// only an error when required is set.
func loadConfig(path string, required bool) (*ConfigRoot, error) {
	root := defaultConfig()

	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !required {
			return root, nil
		}
		return nil, err
	}

	if err := yaml.Unmarshal(raw, root); err != nil {
		return nil, err
	}

	if root.Functions.Script != "" && !filepath.IsAbs(root.Functions.Script) {
		root.Functions.Script = filepath.Join(filepath.Dir(path), root.Functions.Script)
	}
	return root, nil
}

// expandHome resolves a leading ~/ against the user's home directory.
func expandHome(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[2:])
}
