// Package config loads and persists user settings from the XDG config
// directory as JSON.
package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

var (
	cfgFile = "gomokuterm/config.json"
)

type InvalidConfig struct {
	err string
}

func (e *InvalidConfig) Error() string {
	return fmt.Sprintf("Config error: %s", e.err)
}

type ConfigColors struct {
	BoardColor        int `json:"board"`
	LineColor         int `json:"line"`
	BlackColor        int `json:"black"`
	WhiteColor        int `json:"white"`
	CursorColorBG     int `json:"cursor_bg"`
	LastPlayedColorBG int `json:"last_played_bg"`
}

type ConfigSymbols struct {
	BlackStone rune `json:"black"`
	WhiteStone rune `json:"white"`
}

type Theme struct {
	FullWidthLetters bool          `json:"fullwidth_letters"`
	Colors           ConfigColors  `json:"colors"`
	Symbols          ConfigSymbols `json:"symbols"`
}

// RecordsConfig controls game-record (SGF) writing.
type RecordsConfig struct {
	Autosave bool   `json:"autosave"`
	Dir      string `json:"dir"` // empty means the XDG data directory
}

type Config struct {
	Theme   Theme         `json:"theme"`
	Records RecordsConfig `json:"records"`
}

func InitConfig() (*Config, error) {
	config := DefaultConfig
	absPath, err := xdg.SearchConfigFile(cfgFile)
	if err == nil {
		readCfgFile(absPath, &config)
	}
	if err = config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

func (c *Config) Validate() error {
	for _, r := range []rune{c.Theme.Symbols.BlackStone, c.Theme.Symbols.WhiteStone} {
		if r < 32 || (r >= 127 && r <= 159) {
			return &InvalidConfig{"Unicode characters 1-31 and 127-159 are not allowed"}
		}
	}
	return nil
}

// RecordsDir resolves the directory game records are written to.
func (c *Config) RecordsDir() string {
	if c.Records.Dir != "" {
		return c.Records.Dir
	}
	return filepath.Join(xdg.DataHome, "gomokuterm", "records")
}

func (c *Config) Save() {
	absPath, err := xdg.ConfigFile(cfgFile)
	if err != nil {
		panic(err)
	}
	saveCfgFile(absPath, c, 0664)
}

func saveCfgFile(filePath string, a interface{}, perm fs.FileMode) {
	jsonData, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		panic(err)
	}
	err = os.WriteFile(filePath, jsonData, perm)
	if err != nil {
		panic(err)
	}
}

func readCfgFile(filePath string, a interface{}) {
	configReader, err := os.ReadFile(filePath)
	if err == nil {
		err = json.Unmarshal(configReader, &a)
		if err != nil {
			panic(err)
		}
	}
}
