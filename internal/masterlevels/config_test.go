package masterlevels

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig_Missing(t *testing.T) {
	config, err := LoadConfig(filepath.Join(t.TempDir(), "transmasc.ini"))
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if *config != *DefaultConfig() {
		t.Errorf("config = %+v", config)
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "transmasc.ini")
	ini := "master_path = /games/master\noutput = ml.wad\nno_umapinfo = true\n"
	if err := os.WriteFile(path, []byte(ini), 0o644); err != nil {
		t.Fatal(err)
	}
	config, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	want := Config{MasterPath: "/games/master", Output: "ml.wad", MusicPack: DefaultMusicPack, NoUMAPINFO: true}
	if *config != want {
		t.Errorf("config = %+v, want %+v", *config, want)
	}
}

func TestLoadConfig_BadBool(t *testing.T) {
	path := filepath.Join(t.TempDir(), "transmasc.ini")
	if err := os.WriteFile(path, []byte("no_umapinfo = maybe\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Fatal("expected error")
	}
}
