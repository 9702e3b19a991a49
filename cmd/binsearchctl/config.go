package main

import (
	"fmt"
	"os"

	jsoniter "github.com/json-iterator/go"
	"github.com/tailscale/hujson"
)

// LayoutConfig describes how to interpret a mapped data file: which
// columns it has, in what order, and what endianness/layout queries
// against it should assume. Config files are JWCC (JSON-with-comments),
// parsed via hujson before being handed to json-iterator.
type LayoutConfig struct {
	Path         string  `json:"path"`
	ColumnWidths []uint8 `json:"column_widths"`
	KeyWidth     int     `json:"key_width"`  // 8, 16, 32 or 64
	Endianness   string  `json:"endianness"` // "be" or "le"
	Column       bool    `json:"column"`     // column-oriented (little-endian only) layout
}

var jsonAPI = jsoniter.ConfigCompatibleWithStandardLibrary

// LoadLayoutConfig reads path as JWCC, standardizes it to plain JSON with
// hujson, and decodes it into a LayoutConfig.
func LoadLayoutConfig(path string) (*LayoutConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("binsearchctl: read config %s: %w", path, err)
	}
	std, err := hujson.Standardize(raw)
	if err != nil {
		return nil, fmt.Errorf("binsearchctl: parse config %s: %w", path, err)
	}
	var cfg LayoutConfig
	if err := jsonAPI.Unmarshal(std, &cfg); err != nil {
		return nil, fmt.Errorf("binsearchctl: decode config %s: %w", path, err)
	}
	if cfg.KeyWidth == 0 {
		cfg.KeyWidth = 64
	}
	if cfg.Endianness == "" {
		cfg.Endianness = "be"
	}
	return &cfg, nil
}
