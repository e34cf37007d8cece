package masterlevels

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/ini.v1"
)

const (
	DefaultMasterPath = "."
	DefaultOutput     = "masterlevels.wad"
	DefaultMusicPack  = "MLMUSIC.WAD"
	DefaultConfigFile = "transmasc.ini"
)

// Config holds the settings for one merge run
type Config struct {
	MasterPath string // Directory holding the Master Levels WADs
	Output     string // Merged WAD to create
	MusicPack  string // File name looked up in MasterPath; its presence drops music from UMAPINFO
	NoUMAPINFO bool   // Leave the UMAPINFO lump out
}

// DefaultConfig returns the settings used when neither ini file nor flags say otherwise
func DefaultConfig() *Config {
	return &Config{
		MasterPath: DefaultMasterPath,
		Output:     DefaultOutput,
		MusicPack:  DefaultMusicPack,
	}
}

// LoadConfig returns the defaults overridden by the keys of the default section of the ini
// file at path: master_path, output, music_pack and no_umapinfo. A missing file is not an
// error.
func LoadConfig(path string) (*Config, error) {
	config := DefaultConfig()
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return config, nil
	}

	file, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	section := file.Section("")
	if key := section.Key("master_path").String(); key != "" {
		config.MasterPath = key
	}
	if key := section.Key("output").String(); key != "" {
		config.Output = key
	}
	if key := section.Key("music_pack").String(); key != "" {
		config.MusicPack = key
	}
	if section.HasKey("no_umapinfo") {
		noUMAPINFO, err := section.Key("no_umapinfo").Bool()
		if err != nil {
			return nil, fmt.Errorf("config %s: no_umapinfo: %w", path, err)
		}
		config.NoUMAPINFO = noUMAPINFO
	}
	logger.Printf("Loaded config %v", path)
	return config, nil
}
