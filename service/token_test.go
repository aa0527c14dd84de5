package service

import (
	"testing"
	"time"

	"github.com/ed-builder/paintboard/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueTokenInvalidCode(t *testing.T) {
	initTestDB(t)
	testSetting(t, 3, 3, 0, model.InvitationCode{Code: "X", TimeWindow: 3600, MaxCount: 1})

	_, err := IssueToken("nope", time.Now())
	assert.ErrorIs(t, err, model.ErrInvalidCode)
}

func TestIssueTokenWindowRateLimit(t *testing.T) {
	initTestDB(t)
	testSetting(t, 3, 3, 0, model.InvitationCode{Code: "W", TimeWindow: 60, MaxCount: 2})

	t0 := time.UnixMilli(1_000_000)

	first, err := IssueToken("W", t0)
	require.NoError(t, err)
	assert.NotEmpty(t, first.Token)
	assert.Equal(t, 1, first.LeftCount)
	assert.Equal(t, int64(60), first.ResetIn)

	second, err := IssueToken("W", t0.Add(10*time.Second))
	require.NoError(t, err)
	assert.Equal(t, 0, second.LeftCount)
	// window is anchored at the earliest live issuance
	assert.Equal(t, int64(50), second.ResetIn)
	assert.NotEqual(t, first.Token, second.Token)

	_, err = IssueToken("W", t0.Add(20*time.Second))
	var rl *model.RateLimitedError
	require.ErrorAs(t, err, &rl)
	assert.Equal(t, 0, rl.LeftCount)
	assert.Equal(t, int64(40), rl.ResetIn)

	// the first issuance leaves the window after 60s, freeing one slot
	third, err := IssueToken("W", t0.Add(61*time.Second))
	require.NoError(t, err)
	assert.Equal(t, 0, third.LeftCount)
	// now anchored at the second issuance, which leaves at t0+70s
	assert.Equal(t, int64(9), third.ResetIn)
}

func TestValidateToken(t *testing.T) {
	initTestDB(t)
	testSetting(t, 3, 3, 0, model.InvitationCode{Code: "X", TimeWindow: 3600, MaxCount: 1})

	token := issueTestToken(t, "X", time.Now())
	assert.True(t, ValidateToken(token))
	assert.False(t, ValidateToken("made-up"))

	// tokens never expire
	assert.True(t, ValidateToken(token))
}

func TestRecordDrawAndLastDraw(t *testing.T) {
	initTestDB(t)

	_, ok := LastDraw("ghost")
	assert.False(t, ok)

	now := time.UnixMilli(42_000)
	require.NoError(t, RecordDraw("tok", now))
	last, ok := LastDraw("tok")
	require.True(t, ok)
	assert.Equal(t, int64(42_000), last)

	later := now.Add(5 * time.Second)
	require.NoError(t, RecordDraw("tok", later))
	last, ok = LastDraw("tok")
	require.True(t, ok)
	assert.Equal(t, later.UnixMilli(), last)
}

func TestCeilSeconds(t *testing.T) {
	assert.Equal(t, int64(0), ceilSeconds(-5))
	assert.Equal(t, int64(0), ceilSeconds(0))
	assert.Equal(t, int64(1), ceilSeconds(1))
	assert.Equal(t, int64(1), ceilSeconds(1000))
	assert.Equal(t, int64(2), ceilSeconds(1001))
}
