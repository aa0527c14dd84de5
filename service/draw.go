package service

import (
	"sync"
	"time"

	"github.com/ed-builder/paintboard/model"
)

// tokenLocks serializes the cooldown check-then-record sequence per token.
// Draws from different tokens never contend on the same lock.
var tokenLocks sync.Map

func tokenLock(token string) *sync.Mutex {
	mu, _ := tokenLocks.LoadOrStore(token, &sync.Mutex{})
	return mu.(*sync.Mutex)
}

// Draw validates and commits a single-pixel draw. The checks run in a fixed
// order so the reported failure is deterministic: token, bounds, color
// format, cooldown. On success the pixel is committed and broadcast and the
// token's cooldown restarts at now.
func Draw(hub *Hub, token string, x, y int, color string, now time.Time) (ack model.DrawAck, err error) {
	if !ValidateToken(token) {
		return ack, model.ErrInvalidToken
	}
	setting, err := GetSetting()
	if err != nil {
		return ack, err
	}
	if x < 0 || x >= setting.CanvasWidth || y < 0 || y >= setting.CanvasHeight {
		return ack, model.ErrOutOfBounds
	}
	if !model.ColorPattern.MatchString(color) {
		return ack, model.ErrBadColorFormat
	}

	mu := tokenLock(token)
	mu.Lock()
	defer mu.Unlock()

	cooldownMs := setting.CooldownSeconds * 1000
	if last, ok := LastDraw(token); ok {
		elapsed := now.UnixMilli() - last
		if elapsed < cooldownMs {
			return ack, &model.CooldownError{RemainingSeconds: ceilSeconds(cooldownMs - elapsed)}
		}
	}
	if err = hub.CommitPixel(x, y, model.NormalizeColor(color)); err != nil {
		return ack, err
	}
	if err = RecordDraw(token, now); err != nil {
		return ack, err
	}
	return model.DrawAck{NextDrawIn: setting.CooldownSeconds}, nil
}
