package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"stonehenge/game"
	"stonehenge/meta"
	"stonehenge/searcher"

	"github.com/adrg/xdg"
	"github.com/rs/zerolog"
)

var (
	cfgFile = "stonehenge/config.json"
)

type InvalidConfig struct {
	err string
}

func (e *InvalidConfig) Error() string {
	return fmt.Sprintf("Config error: %s", e.err)
}

type GameConfig struct {
	SideLength   int    `json:"side_length"`
	P1Starts     bool   `json:"p1_starts"`
	Opponent     string `json:"opponent"`
	HumanRetries int    `json:"human_retries"`
}

type ServerConfig struct {
	Addr            string `json:"addr"`
	ShutdownSeconds int    `json:"shutdown_seconds"`
}

type ExperimentConfig struct {
	Games      int      `json:"games"`
	Parallel   int      `json:"parallel"`
	OutDir     string   `json:"out_dir"`
	Strategies []string `json:"strategies"`
}

type Config struct {
	LogLevel    string           `json:"log_level"`
	Game        GameConfig       `json:"game"`
	Server      ServerConfig     `json:"server"`
	Experiments ExperimentConfig `json:"experiments"`
}

var DefaultConfig = Config{
	LogLevel: "info",
	Game: GameConfig{
		SideLength:   meta.SIDE_LENGTH,
		P1Starts:     true,
		Opponent:     meta.OPPONENT,
		HumanRetries: meta.HUMAN_RETRIES,
	},
	Server: ServerConfig{
		Addr:            meta.ADDR,
		ShutdownSeconds: meta.SHUTDOWN_SECONDS,
	},
	Experiments: ExperimentConfig{
		Games:      10,
		Parallel:   4,
		OutDir:     "experiments",
		Strategies: []string{searcher.RandomName, searcher.RoughName, searcher.RecursiveName, searcher.IterativeName},
	},
}

func defaults() Config {
	config := DefaultConfig
	config.Experiments.Strategies = append([]string(nil), DefaultConfig.Experiments.Strategies...)
	return config
}

// InitConfig starts from DefaultConfig and applies the user's config file
// if one exists in an XDG config directory.
func InitConfig() (*Config, error) {
	config := defaults()
	absPath, err := xdg.SearchConfigFile(cfgFile)
	if err == nil {
		if err := readCfgFile(absPath, &config); err != nil {
			return nil, err
		}
	}
	if err = config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// Load reads the file at path on top of DefaultConfig.
func Load(path string) (*Config, error) {
	config := defaults()
	if err := readCfgFile(path, &config); err != nil {
		return nil, err
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

func (c *Config) Validate() error {
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return &InvalidConfig{fmt.Sprintf("unknown log level %q", c.LogLevel)}
	}
	if _, err := game.GeometryFor(c.Game.SideLength); err != nil {
		return &InvalidConfig{err.Error()}
	}
	if c.Game.HumanRetries < 0 {
		return &InvalidConfig{"human_retries must not be negative"}
	}
	for _, name := range append([]string{c.Game.Opponent}, c.Experiments.Strategies...) {
		if _, err := searcher.New(name, nil); err != nil {
			return &InvalidConfig{err.Error()}
		}
	}
	if c.Server.ShutdownSeconds <= 0 {
		return &InvalidConfig{"shutdown_seconds must be positive"}
	}
	if c.Experiments.Games <= 0 || c.Experiments.Parallel <= 0 {
		return &InvalidConfig{"experiment games and parallel must be positive"}
	}
	return nil
}

// Level is the parsed LogLevel. Validate guarantees it parses.
func (c *Config) Level() zerolog.Level {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.InfoLevel
	}
	return level
}

func (c *Config) Save() (string, error) {
	absPath, err := xdg.ConfigFile(cfgFile)
	if err != nil {
		return "", err
	}
	return absPath, saveCfgFile(absPath, c, 0664)
}

func saveCfgFile(filePath string, a interface{}, perm fs.FileMode) error {
	jsonData, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
		return err
	}
	return os.WriteFile(filePath, jsonData, perm)
}

func readCfgFile(filePath string, a interface{}) error {
	data, err := os.ReadFile(filePath)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read config: %w", err)
	}
	if err := json.Unmarshal(data, a); err != nil {
		return &InvalidConfig{fmt.Sprintf("%s: %v", filePath, err)}
	}
	return nil
}
