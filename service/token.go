package service

import (
	"encoding/binary"
	"time"

	"github.com/boltdb/bolt"
	"github.com/ed-builder/paintboard/common"
	"github.com/ed-builder/paintboard/db"
	"github.com/ed-builder/paintboard/model"
	jsoniter "github.com/json-iterator/go"
	gonanoid "github.com/matoous/go-nanoid"
)

// IssueToken mints a draw token for an invitation code, enforcing the
// code's sliding-window rate limit. The count is recomputed from the full
// token ledger inside one write transaction, so concurrent issuances for
// the same code cannot both pass the limit check.
func IssueToken(code string, now time.Time) (issuance model.TokenIssuance, err error) {
	setting, err := GetSetting()
	if err != nil {
		return issuance, err
	}
	desc, ok := setting.FindInvitationCode(code)
	if !ok {
		return issuance, model.ErrInvalidCode
	}
	nowMs := now.UnixMilli()
	windowMs := desc.TimeWindow * 1000
	if err = db.DB().Update(func(tx *bolt.Tx) error {
		bkt, err := tx.CreateBucketIfNotExists([]byte(model.BucketToken))
		if err != nil {
			return err
		}
		// Scan the whole ledger for live issuances of this code. Codes are
		// few and short-lived, so the linear scan stays cheap and survives
		// restarts without a separate counter to keep consistent.
		var count int
		windowStart := nowMs
		if err := bkt.ForEach(func(k, v []byte) error {
			var t model.Token
			if err := jsoniter.Unmarshal(v, &t); err != nil {
				return err
			}
			if t.InvitationCode != desc.Code || nowMs-t.CreatedAt >= windowMs {
				return nil
			}
			count++
			if t.CreatedAt < windowStart {
				windowStart = t.CreatedAt
			}
			return nil
		}); err != nil {
			return err
		}
		if common.Max(0, desc.MaxCount-count) == 0 {
			return &model.RateLimitedError{
				ResetIn:   ceilSeconds(windowStart + windowMs - nowMs),
				LeftCount: 0,
			}
		}
		token, err := gonanoid.Generate(common.Alphabet, model.TokenLength)
		if err != nil {
			return err
		}
		record := model.Token{Token: token, InvitationCode: desc.Code, CreatedAt: nowMs}
		b, err := jsoniter.Marshal(&record)
		if err != nil {
			return err
		}
		if err := bkt.Put([]byte(token), b); err != nil {
			return err
		}
		issuance = model.TokenIssuance{
			Token:     token,
			ResetIn:   ceilSeconds(windowStart + windowMs - nowMs),
			LeftCount: common.Max(0, desc.MaxCount-count-1),
		}
		return nil
	}); err != nil {
		if rl, ok := err.(*model.RateLimitedError); ok {
			return issuance, rl
		}
		return issuance, &model.PersistenceError{Err: err}
	}
	return issuance, nil
}

// ValidateToken reports whether token was ever issued. Tokens do not expire.
func ValidateToken(token string) bool {
	var ok bool
	_ = db.DB().View(func(tx *bolt.Tx) error {
		bkt := tx.Bucket([]byte(model.BucketToken))
		if bkt == nil {
			return nil
		}
		ok = bkt.Get([]byte(token)) != nil
		return nil
	})
	return ok
}

// LastDraw returns the unix-millisecond time of the token's most recent
// successful draw, or false if it has never drawn.
func LastDraw(token string) (lastMs int64, ok bool) {
	_ = db.DB().View(func(tx *bolt.Tx) error {
		bkt := tx.Bucket([]byte(model.BucketCooldown))
		if bkt == nil {
			return nil
		}
		b := bkt.Get([]byte(token))
		if len(b) != 8 {
			return nil
		}
		lastMs = int64(binary.BigEndian.Uint64(b))
		ok = true
		return nil
	})
	return lastMs, ok
}

// RecordDraw stores now as the token's most recent successful draw time.
func RecordDraw(token string, now time.Time) error {
	if err := db.DB().Update(func(tx *bolt.Tx) error {
		bkt, err := tx.CreateBucketIfNotExists([]byte(model.BucketCooldown))
		if err != nil {
			return err
		}
		var b [8]byte
		binary.BigEndian.PutUint64(b[:], uint64(now.UnixMilli()))
		return bkt.Put([]byte(token), b[:])
	}); err != nil {
		return &model.PersistenceError{Err: err}
	}
	return nil
}

// ceilSeconds converts a millisecond duration to whole seconds, rounding up.
func ceilSeconds(ms int64) int64 {
	if ms <= 0 {
		return 0
	}
	return (ms + 999) / 1000
}
