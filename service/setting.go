package service

import (
	"crypto/subtle"

	"github.com/boltdb/bolt"
	"github.com/ed-builder/paintboard/common"
	"github.com/ed-builder/paintboard/db"
	"github.com/ed-builder/paintboard/model"
	jsoniter "github.com/json-iterator/go"
)

// initialCanvasWidth/Height seed the very first setting blob. They only
// matter before the blob exists; afterwards the stored values win.
var (
	initialCanvasWidth  int
	initialCanvasHeight int
)

// InitSetting records the first-boot canvas size and makes sure a setting
// blob exists so later reads cannot fail on an empty database.
func InitSetting(canvasWidth, canvasHeight int) error {
	initialCanvasWidth = canvasWidth
	initialCanvasHeight = canvasHeight
	_, err := GetSetting()
	return err
}

func getSettingTx(tx *bolt.Tx) (setting model.Setting, err error) {
	bkt, err := tx.CreateBucketIfNotExists([]byte(model.BucketSetting))
	if err != nil {
		return setting, err
	}
	b := bkt.Get([]byte(model.SettingKey))
	if b == nil {
		setting = model.DefaultSetting(initialCanvasWidth, initialCanvasHeight)
		if b, err = jsoniter.Marshal(&setting); err != nil {
			return setting, err
		}
		return setting, bkt.Put([]byte(model.SettingKey), b)
	}
	err = jsoniter.Unmarshal(b, &setting)
	return setting, err
}

func putSettingTx(tx *bolt.Tx, setting model.Setting) error {
	bkt, err := tx.CreateBucketIfNotExists([]byte(model.BucketSetting))
	if err != nil {
		return err
	}
	b, err := jsoniter.Marshal(&setting)
	if err != nil {
		return err
	}
	return bkt.Put([]byte(model.SettingKey), b)
}

// GetSetting reads the latest setting from the database, persisting the
// defaults on the first-ever access.
func GetSetting() (setting model.Setting, err error) {
	if err = db.DB().Update(func(tx *bolt.Tx) error {
		setting, err = getSettingTx(tx)
		return err
	}); err != nil {
		return setting, &model.PersistenceError{Err: err}
	}
	return setting, nil
}

// SaveSetting overwrites the durable setting blob.
func SaveSetting(setting model.Setting) error {
	if err := db.DB().Update(func(tx *bolt.Tx) error {
		return putSettingTx(tx, setting)
	}); err != nil {
		return &model.PersistenceError{Err: err}
	}
	return nil
}

// AddInvitationCode appends a descriptor and returns the new full list.
// The read-modify-write runs in one transaction so concurrent admin edits
// serialize; a failed write aborts the transaction leaving the stored
// setting untouched.
func AddInvitationCode(code model.InvitationCode) (codes []model.InvitationCode, err error) {
	if err = db.DB().Update(func(tx *bolt.Tx) error {
		setting, err := getSettingTx(tx)
		if err != nil {
			return err
		}
		if _, ok := setting.FindInvitationCode(code.Code); ok {
			return model.ErrCodeExists
		}
		setting.InvitationCodes = append(setting.InvitationCodes, code)
		codes = setting.InvitationCodes
		return putSettingTx(tx, setting)
	}); err != nil {
		if err == model.ErrCodeExists {
			return nil, err
		}
		return nil, &model.PersistenceError{Err: err}
	}
	return codes, nil
}

// DeleteInvitationCode removes the descriptor named code and returns the
// remaining list.
func DeleteInvitationCode(code string) (codes []model.InvitationCode, err error) {
	if err = db.DB().Update(func(tx *bolt.Tx) error {
		setting, err := getSettingTx(tx)
		if err != nil {
			return err
		}
		kept := make([]model.InvitationCode, 0, len(setting.InvitationCodes))
		for _, c := range setting.InvitationCodes {
			if c.Code != code {
				kept = append(kept, c)
			}
		}
		if len(kept) == len(setting.InvitationCodes) {
			return model.ErrCodeNotFound
		}
		setting.InvitationCodes = kept
		codes = kept
		return putSettingTx(tx, setting)
	}); err != nil {
		if err == model.ErrCodeNotFound {
			return nil, err
		}
		return nil, &model.PersistenceError{Err: err}
	}
	return codes, nil
}

// UpdateCooldown sets the global cooldown in seconds.
func UpdateCooldown(cooldownSeconds int64) error {
	if err := db.DB().Update(func(tx *bolt.Tx) error {
		setting, err := getSettingTx(tx)
		if err != nil {
			return err
		}
		setting.CooldownSeconds = cooldownSeconds
		return putSettingTx(tx, setting)
	}); err != nil {
		return &model.PersistenceError{Err: err}
	}
	return nil
}

// CheckAdminAuth verifies admin credentials against the stored username and
// SHA-512 password hash.
func CheckAdminAuth(username, password string) bool {
	setting, err := GetSetting()
	if err != nil {
		return false
	}
	hash := common.Sha512Hex(password)
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(setting.AdminUsername)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(hash), []byte(setting.AdminPassword)) == 1
	return userOK && passOK
}
