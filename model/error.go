package model

import "fmt"

var (
	ErrInvalidCode    = fmt.Errorf("invalid invitation code")
	ErrInvalidToken   = fmt.Errorf("invalid token")
	ErrOutOfBounds    = fmt.Errorf("coordinates out of canvas bounds")
	ErrBadColorFormat = fmt.Errorf("bad color format, use HEX format like #FF0000")
	ErrCodeExists     = fmt.Errorf("invitation code already exists")
	ErrCodeNotFound   = fmt.Errorf("invitation code not found")
)

// RateLimitedError reports an exhausted invitation code. ResetIn tells the
// client how many seconds until a retry can succeed.
type RateLimitedError struct {
	ResetIn   int64
	LeftCount int
}

func (e *RateLimitedError) Error() string {
	return fmt.Sprintf("invitation code rate limited, retry in %d seconds", e.ResetIn)
}

// CooldownError reports a draw attempted before the token's cooldown ran out.
type CooldownError struct {
	RemainingSeconds int64
}

func (e *CooldownError) Error() string {
	return fmt.Sprintf("cooldown active, %d seconds remaining", e.RemainingSeconds)
}

// PersistenceError wraps a failed durable write. It is a server-side
// failure, distinct from the client-input errors above.
type PersistenceError struct {
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence failure: %v", e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
