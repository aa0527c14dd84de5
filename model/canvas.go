package model

import (
	"fmt"
	"regexp"
	"strings"
)

const (
	BucketCanvas = "canvas"

	// DefaultColor is the color of every untouched cell.
	DefaultColor = "#FFFFFF"
)

// ColorPattern matches a strict #RRGGBB hex color, case-insensitive.
var ColorPattern = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// NormalizeColor returns the canonical uppercase form of a color already
// known to match ColorPattern.
func NormalizeColor(color string) string {
	return strings.ToUpper(color)
}

// PixelKey renders the wire key for a coordinate, e.g. "5,5".
func PixelKey(x, y int) string {
	return fmt.Sprintf("%d,%d", x, y)
}

// ParsePixelKey is the inverse of PixelKey.
func ParsePixelKey(key string) (x, y int, err error) {
	if _, err = fmt.Sscanf(key, "%d,%d", &x, &y); err != nil {
		return 0, 0, fmt.Errorf("bad pixel key %q: %w", key, err)
	}
	return x, y, nil
}

// CanvasSnapshot is a full copy of the board at one point in time.
type CanvasSnapshot struct {
	Width  int               `json:"width"`
	Height int               `json:"height"`
	Pixels map[string]string `json:"pixels"`
}

// DrawAck reports a committed draw. NextDrawIn is the configured cooldown
// the client must wait before its next draw, not a remaining time.
type DrawAck struct {
	NextDrawIn int64 `json:"nextDrawIn"`
}
