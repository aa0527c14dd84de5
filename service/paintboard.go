package service

import (
	"fmt"
)

var defaultHub *Hub

// InitPaintboard loads the canvas for the configured dimensions and stands
// up the broadcast hub. Must run once at startup, after the database and
// settings are ready and before any request is served.
func InitPaintboard() error {
	setting, err := GetSetting()
	if err != nil {
		return err
	}
	board, err := NewCanvas(setting.CanvasWidth, setting.CanvasHeight)
	if err != nil {
		return err
	}
	defaultHub = NewHub(board)
	return nil
}

// DefaultHub returns the process-wide hub and board.
func DefaultHub() (*Hub, error) {
	if defaultHub == nil {
		return nil, fmt.Errorf("paintboard is not initialized")
	}
	return defaultHub, nil
}

// PublicConfig is the subset of the setting exposed without admin auth.
func PublicConfig() (map[string]interface{}, error) {
	setting, err := GetSetting()
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{
		"canvasWidth":     setting.CanvasWidth,
		"canvasHeight":    setting.CanvasHeight,
		"cooldownSeconds": setting.CooldownSeconds,
	}, nil
}
