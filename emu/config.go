package emu

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/kirsle/configdir"
	"github.com/veandco/go-sdl2/sdl"

	"nesbus/emu/log"
	"nesbus/hw/input"
)

type Config struct {
	Input input.Config `toml:"input"`
}

var ConfigDir string = sync.OnceValue(func() string {
	dir := configdir.LocalConfig("nesbus")
	if err := configdir.MakePath(dir); err != nil {
		log.ModEmu.Fatalf("failed to create directory %s: %v", dir, err)
	}
	return dir
})()

const cfgFilename = "config.toml"

// LoadConfigOrDefault loads the configuration from the nesbus config
// directory, or provides a default one.
func LoadConfigOrDefault() Config {
	cfg, err := loadConfig(filepath.Join(ConfigDir, cfgFilename))
	if err != nil {
		return defaultConfig()
	}
	return cfg
}

// SaveConfig into the nesbus config directory.
func SaveConfig(cfg Config) error {
	return saveConfig(filepath.Join(ConfigDir, cfgFilename), cfg)
}

func loadConfig(path string) (Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func saveConfig(path string, cfg Config) error {
	buf, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, buf, 0644)
}

func defaultConfig() Config {
	key := func(sc sdl.Scancode) input.Code {
		return input.Code{Scancode: sc, Type: input.KeyboardCtrl}
	}

	var cfg Config
	cfg.Input.Pads[0] = input.PadConfig{
		Plugged: true,
		Buttons: [input.PadButtonCount]input.Code{
			input.PadA:      key(sdl.SCANCODE_X),
			input.PadB:      key(sdl.SCANCODE_Z),
			input.PadSelect: key(sdl.SCANCODE_RSHIFT),
			input.PadStart:  key(sdl.SCANCODE_RETURN),
			input.PadUp:     key(sdl.SCANCODE_UP),
			input.PadDown:   key(sdl.SCANCODE_DOWN),
			input.PadLeft:   key(sdl.SCANCODE_LEFT),
			input.PadRight:  key(sdl.SCANCODE_RIGHT),
		},
	}
	return cfg
}
