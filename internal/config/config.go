// Package config resolves runtime settings from defaults, an optional .env
// file, an optional INI file and the environment, in that order.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/ini.v1"
)

// EnvFile is the dotenv file consulted before the environment is read.
var EnvFile = ".env"

const (
	envAddr    = "DUNGEON_ADDR"
	envCharset = "DUNGEON_CHARSET"
	envColor   = "DUNGEON_COLOR"
	envWidth   = "DUNGEON_WIDTH"
	envShowMap = "DUNGEON_SHOW_MAP"
)

// Config holds everything main needs to start a session.
type Config struct {
	// Addr switches from the console to a telnet listener when set.
	Addr    string
	Charset string
	// Color is nil until a source sets it; see UseColor.
	Color   *bool
	Width   int
	ShowMap bool
	// MonsterScripts maps a monster name to the path of its script.
	MonsterScripts map[string]string
}

// Default returns the settings used when nothing overrides them.
func Default() Config {
	return Config{
		Charset:        "utf-8",
		Width:          80,
		ShowMap:        true,
		MonsterScripts: make(map[string]string),
	}
}

// Load layers the .env file, the INI file at path (skipped when empty) and
// the environment over Default.
func Load(path string) (Config, error) {
	cfg := Default()
	if err := loadEnvFile(EnvFile); err != nil {
		return cfg, err
	}
	if trimmed := strings.TrimSpace(path); trimmed != "" {
		if err := cfg.applyFile(trimmed); err != nil {
			return cfg, err
		}
	}
	if err := cfg.applyEnv(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func loadEnvFile(name string) error {
	if strings.TrimSpace(name) == "" {
		return nil
	}
	if err := godotenv.Load(name); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load %s: %w", name, err)
	}
	return nil
}

func (c *Config) applyFile(path string) error {
	file, err := ini.Load(path)
	if err != nil {
		return fmt.Errorf("load config %s: %w", path, err)
	}

	display := file.Section("display")
	if display.HasKey("color") {
		enabled := display.Key("color").MustBool(true)
		c.Color = &enabled
	}
	c.Width = display.Key("width").MustInt(c.Width)
	c.ShowMap = display.Key("show_map").MustBool(c.ShowMap)

	server := file.Section("server")
	c.Addr = server.Key("addr").MustString(c.Addr)
	c.Charset = server.Key("charset").MustString(c.Charset)

	base := filepath.Dir(path)
	for _, key := range file.Section("monsters").Keys() {
		script := strings.TrimSpace(key.String())
		if script != "" && !filepath.IsAbs(script) {
			script = filepath.Join(base, script)
		}
		c.MonsterScripts[key.Name()] = script
	}
	return nil
}

func (c *Config) applyEnv() error {
	if v, ok := os.LookupEnv(envAddr); ok {
		c.Addr = strings.TrimSpace(v)
	}
	if v, ok := os.LookupEnv(envCharset); ok && strings.TrimSpace(v) != "" {
		c.Charset = strings.TrimSpace(v)
	}
	if v, ok := os.LookupEnv(envColor); ok {
		enabled, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%s: %w", envColor, err)
		}
		c.Color = &enabled
	}
	if v, ok := os.LookupEnv(envWidth); ok {
		width, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%s: %w", envWidth, err)
		}
		c.Width = width
	}
	if v, ok := os.LookupEnv(envShowMap); ok {
		enabled, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%s: %w", envShowMap, err)
		}
		c.ShowMap = enabled
	}
	return nil
}

// UseColor reports whether output should carry ANSI styling. An explicit
// setting wins; otherwise colour follows whether the output is a terminal.
func (c Config) UseColor(terminal bool) bool {
	if c.Color != nil {
		return *c.Color
	}
	return terminal
}

// ScriptSources reads every configured monster script. A blank path maps to
// an empty source, which disables that monster's script.
func (c Config) ScriptSources() (map[string]string, error) {
	sources := make(map[string]string, len(c.MonsterScripts))
	for monster, path := range c.MonsterScripts {
		if path == "" {
			sources[monster] = ""
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("monster %s script: %w", monster, err)
		}
		sources[monster] = string(data)
	}
	return sources, nil
}
