package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestReadConfigCreatesDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	c, err := readConfig(path)
	if err != nil {
		t.Fatalf("read config: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("default config not written: %v", err)
	}
	again, err := readConfig(path)
	if err != nil {
		t.Fatalf("read written config: %v", err)
	}
	if again.World != c.World || again.Noise != c.Noise || len(again.Tiles.Biomes) != len(c.Tiles.Biomes) {
		t.Fatalf("written config %+v differs from default %+v", again, c)
	}
}

func TestReadConfigInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[World\nSeed = "), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := readConfig(path); err == nil {
		t.Fatal("expected decoding an invalid config to fail")
	}
}
