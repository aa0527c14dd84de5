package service

import (
	"testing"
	"time"

	"github.com/ed-builder/paintboard/db"
	"github.com/ed-builder/paintboard/model"
	"github.com/stretchr/testify/require"
)

// initTestDB points the global bolt handle at a fresh temp database.
func initTestDB(t *testing.T) {
	t.Helper()
	require.NoError(t, db.CloseDB())
	db.InitDB(t.TempDir())
	initialCanvasWidth = 0
	initialCanvasHeight = 0
}

func testSetting(t *testing.T, width, height int, cooldownSeconds int64, codes ...model.InvitationCode) {
	t.Helper()
	setting := model.DefaultSetting(width, height)
	setting.CanvasWidth = width
	setting.CanvasHeight = height
	setting.CooldownSeconds = cooldownSeconds
	setting.InvitationCodes = codes
	require.NoError(t, SaveSetting(setting))
}

func issueTestToken(t *testing.T, code string, now time.Time) string {
	t.Helper()
	issuance, err := IssueToken(code, now)
	require.NoError(t, err)
	return issuance.Token
}

func newTestHub(t *testing.T, width, height int) *Hub {
	t.Helper()
	board, err := NewCanvas(width, height)
	require.NoError(t, err)
	return NewHub(board)
}
