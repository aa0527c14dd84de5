package model

import (
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Settings written by older deployments list invitation codes as bare
// strings; both shapes must normalize to the same descriptor.
func TestInvitationCodeUnmarshalShapes(t *testing.T) {
	raw := `{
		"canvasWidth": 16,
		"canvasHeight": 9,
		"cooldownSeconds": 5,
		"invitationCodes": [
			"LEGACY",
			{"code": "FULL", "timeWindow": 60, "maxCount": 2},
			{"code": "PARTIAL"}
		]
	}`
	var setting Setting
	require.NoError(t, jsoniter.Unmarshal([]byte(raw), &setting))
	require.Len(t, setting.InvitationCodes, 3)

	legacy := setting.InvitationCodes[0]
	assert.Equal(t, "LEGACY", legacy.Code)
	assert.Equal(t, DefaultInvitationWindow, legacy.TimeWindow)
	assert.Equal(t, DefaultInvitationMaxCount, legacy.MaxCount)

	full := setting.InvitationCodes[1]
	assert.Equal(t, InvitationCode{Code: "FULL", TimeWindow: 60, MaxCount: 2}, full)

	partial := setting.InvitationCodes[2]
	assert.Equal(t, "PARTIAL", partial.Code)
	assert.Equal(t, DefaultInvitationWindow, partial.TimeWindow)
	assert.Equal(t, DefaultInvitationMaxCount, partial.MaxCount)
}

func TestInvitationCodeMarshalIsAlwaysObject(t *testing.T) {
	b, err := jsoniter.Marshal(InvitationCode{Code: "X", TimeWindow: 30, MaxCount: 1})
	require.NoError(t, err)
	assert.JSONEq(t, `{"code":"X","timeWindow":30,"maxCount":1}`, string(b))
}

func TestFindInvitationCode(t *testing.T) {
	setting := Setting{InvitationCodes: []InvitationCode{
		{Code: "A", TimeWindow: 60, MaxCount: 1},
	}}
	desc, ok := setting.FindInvitationCode("A")
	assert.True(t, ok)
	assert.Equal(t, int64(60), desc.TimeWindow)
	_, ok = setting.FindInvitationCode("B")
	assert.False(t, ok)
}

func TestDefaultSetting(t *testing.T) {
	setting := DefaultSetting(0, 0)
	assert.Equal(t, DefaultCanvasWidth, setting.CanvasWidth)
	assert.Equal(t, DefaultCanvasHeight, setting.CanvasHeight)
	require.Len(t, setting.InvitationCodes, len(DefaultInvitationCodes))

	custom := DefaultSetting(32, 24)
	assert.Equal(t, 32, custom.CanvasWidth)
	assert.Equal(t, 24, custom.CanvasHeight)
}
