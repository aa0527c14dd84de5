package service

import (
	"encoding/binary"
	"time"

	"github.com/boltdb/bolt"
	"github.com/ed-builder/paintboard/db"
	"github.com/ed-builder/paintboard/model"
	"github.com/ed-builder/paintboard/pkg/log"
)

// GoBackgrounds starts the resource-hygiene loops. None of them are needed
// for correctness; draws re-check everything on their own.
func GoBackgrounds() {
	// Cooldown records whose window already ran out no longer influence any
	// draw, so they can be swept. The current cooldown is re-read on every
	// sweep because admins may change it at runtime.
	go cleanDormantCooldownBackground(10 * time.Minute)()
}

func cleanDormantCooldownBackground(interval time.Duration) func() {
	return func() {
		tick := time.Tick(interval)
		for now := range tick {
			setting, err := GetSetting()
			if err != nil {
				log.Warn("clean cooldowns: %v", err)
				continue
			}
			cooldownMs := setting.CooldownSeconds * 1000
			nowMs := now.UnixMilli()
			var removed int
			if err := db.DB().Update(func(tx *bolt.Tx) error {
				bkt := tx.Bucket([]byte(model.BucketCooldown))
				if bkt == nil {
					return nil
				}
				cursor := bkt.Cursor()
				for k, v := cursor.First(); k != nil; k, v = cursor.Next() {
					if len(v) != 8 {
						continue
					}
					last := int64(binary.BigEndian.Uint64(v))
					if nowMs-last >= cooldownMs {
						if err := cursor.Delete(); err != nil {
							return err
						}
						removed++
					}
				}
				return nil
			}); err != nil {
				log.Warn("clean cooldowns: %v", err)
				continue
			}
			if removed > 0 {
				log.Trace("cleaned %d dormant cooldown records", removed)
			}
		}
	}
}
