package model

import (
	"bytes"

	"github.com/ed-builder/paintboard/common"
	jsoniter "github.com/json-iterator/go"
)

const (
	BucketSetting = "setting"
	SettingKey    = "setting"

	DefaultCanvasWidth  = 960
	DefaultCanvasHeight = 540

	// DefaultInvitationWindow and DefaultInvitationMaxCount apply to
	// invitation codes given in the legacy bare-string form.
	DefaultInvitationWindow   int64 = 3600
	DefaultInvitationMaxCount       = 1
)

// DefaultAdminUsername and DefaultAdminPassword are only used to seed the
// very first setting blob; the password is stored as its SHA-512 hex digest.
const (
	DefaultAdminUsername = "ED_Builder"
	DefaultAdminPassword = "paintboard"
)

var DefaultInvitationCodes = []string{"INVITE2024", "DEMO1234", "TEST5678"}

// Setting is the durable configuration blob. It is always read back from
// the database before use so admin edits take effect without a restart.
type Setting struct {
	CanvasWidth     int              `json:"canvasWidth"`
	CanvasHeight    int              `json:"canvasHeight"`
	CooldownSeconds int64            `json:"cooldownSeconds"`
	AdminUsername   string           `json:"adminUsername"`
	AdminPassword   string           `json:"adminPassword"`
	InvitationCodes []InvitationCode `json:"invitationCodes"`
}

// InvitationCode is the normalized descriptor for one invitation code.
// TimeWindow is in seconds; MaxCount is the number of tokens that may be
// issued within any sliding window of that length.
type InvitationCode struct {
	Code       string `json:"code"`
	TimeWindow int64  `json:"timeWindow"`
	MaxCount   int    `json:"maxCount"`
}

// UnmarshalJSON accepts both descriptor shapes: a bare string (legacy
// config files) and a full object. Missing object fields fall back to the
// same defaults as the string form, so the rest of the code only ever sees
// the normalized descriptor.
func (c *InvitationCode) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var code string
		if err := jsoniter.Unmarshal(b, &code); err != nil {
			return err
		}
		*c = InvitationCode{
			Code:       code,
			TimeWindow: DefaultInvitationWindow,
			MaxCount:   DefaultInvitationMaxCount,
		}
		return nil
	}
	type alias InvitationCode
	var full alias
	if err := jsoniter.Unmarshal(b, &full); err != nil {
		return err
	}
	*c = InvitationCode(full)
	return common.FillEmpty(c, InvitationCode{
		TimeWindow: DefaultInvitationWindow,
		MaxCount:   DefaultInvitationMaxCount,
	})
}

// FindInvitationCode returns the descriptor for code, or false.
func (s *Setting) FindInvitationCode(code string) (InvitationCode, bool) {
	for _, c := range s.InvitationCodes {
		if c.Code == code {
			return c, true
		}
	}
	return InvitationCode{}, false
}

// DefaultSetting builds the first-ever setting blob. Zero width/height fall
// back to the package defaults.
func DefaultSetting(canvasWidth, canvasHeight int) Setting {
	if canvasWidth <= 0 {
		canvasWidth = DefaultCanvasWidth
	}
	if canvasHeight <= 0 {
		canvasHeight = DefaultCanvasHeight
	}
	codes := make([]InvitationCode, 0, len(DefaultInvitationCodes))
	for _, code := range DefaultInvitationCodes {
		codes = append(codes, InvitationCode{
			Code:       code,
			TimeWindow: DefaultInvitationWindow,
			MaxCount:   DefaultInvitationMaxCount,
		})
	}
	return Setting{
		CanvasWidth:     canvasWidth,
		CanvasHeight:    canvasHeight,
		CooldownSeconds: 0,
		AdminUsername:   DefaultAdminUsername,
		AdminPassword:   common.Sha512Hex(DefaultAdminPassword),
		InvitationCodes: codes,
	}
}
