package service

import (
	"sync"

	"github.com/boltdb/bolt"
	"github.com/ed-builder/paintboard/db"
	"github.com/ed-builder/paintboard/model"
	"github.com/ed-builder/paintboard/pkg/log"
)

// Canvas is the authoritative board state. Every in-range coordinate always
// has a color; untouched cells are white. Drawn pixels are also persisted so
// the board survives restarts.
type Canvas struct {
	mu     sync.RWMutex
	width  int
	height int
	pixels map[string]string
}

// NewCanvas builds a fully white canvas and overlays any pixels previously
// persisted to the database. Keys outside the current bounds are skipped.
func NewCanvas(width, height int) (*Canvas, error) {
	c := &Canvas{
		width:  width,
		height: height,
		pixels: make(map[string]string, width*height),
	}
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			c.pixels[model.PixelKey(x, y)] = model.DefaultColor
		}
	}
	if err := db.DB().View(func(tx *bolt.Tx) error {
		bkt := tx.Bucket([]byte(model.BucketCanvas))
		if bkt == nil {
			return nil
		}
		return bkt.ForEach(func(k, v []byte) error {
			x, y, err := model.ParsePixelKey(string(k))
			if err != nil {
				log.Warn("canvas restore: %v", err)
				return nil
			}
			if x < 0 || x >= width || y < 0 || y >= height {
				return nil
			}
			c.pixels[string(k)] = string(v)
			return nil
		})
	}); err != nil {
		return nil, &model.PersistenceError{Err: err}
	}
	return c, nil
}

func (c *Canvas) Size() (width, height int) {
	return c.width, c.height
}

// Set overwrites the color at a coordinate the caller has already checked
// to be in range. The pixel is persisted before the in-memory state is
// updated, so a published change always reflects a durable commit.
func (c *Canvas) Set(x, y int, color string) error {
	key := model.PixelKey(x, y)
	if err := db.DB().Update(func(tx *bolt.Tx) error {
		bkt, err := tx.CreateBucketIfNotExists([]byte(model.BucketCanvas))
		if err != nil {
			return err
		}
		return bkt.Put([]byte(key), []byte(color))
	}); err != nil {
		return &model.PersistenceError{Err: err}
	}
	c.mu.Lock()
	c.pixels[key] = color
	c.mu.Unlock()
	return nil
}

// Get returns the current color at a coordinate.
func (c *Canvas) Get(x, y int) string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.pixels[model.PixelKey(x, y)]
}

// Snapshot copies the full board. The copy is independent of later writes.
func (c *Canvas) Snapshot() model.CanvasSnapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()
	pixels := make(map[string]string, len(c.pixels))
	for k, v := range c.pixels {
		pixels[k] = v
	}
	return model.CanvasSnapshot{
		Width:  c.width,
		Height: c.height,
		Pixels: pixels,
	}
}
