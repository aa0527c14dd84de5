package service

import (
	"testing"
	"time"

	"github.com/ed-builder/paintboard/model"
	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readFrame(t *testing.T, v *Viewer) []byte {
	t.Helper()
	select {
	case b, ok := <-v.Events():
		require.True(t, ok, "viewer channel closed")
		return b
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for frame")
		return nil
	}
}

func assertNoFrame(t *testing.T, v *Viewer) {
	t.Helper()
	select {
	case b := <-v.Events():
		t.Fatalf("unexpected frame: %s", b)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestRegisterSendsInitSnapshot(t *testing.T) {
	initTestDB(t)
	hub := newTestHub(t, 3, 3)

	// commit before the viewer connects
	require.NoError(t, hub.CommitPixel(1, 1, "#FF00AA"))

	viewer, err := hub.Register()
	require.NoError(t, err)
	defer hub.Unregister(viewer)

	var init model.InitMessage
	require.NoError(t, jsoniter.Unmarshal(readFrame(t, viewer), &init))
	assert.Equal(t, model.MsgTypeInit, init.Type)
	assert.Equal(t, 3, init.Width)
	assert.Equal(t, 3, init.Height)
	assert.Equal(t, "#FF00AA", init.Pixels["1,1"])
	assert.Equal(t, model.DefaultColor, init.Pixels["0,0"])

	// the pre-connect commit is in the snapshot, not replayed as an event
	assertNoFrame(t, viewer)
}

func TestBroadcastOrderMatchesCommitOrder(t *testing.T) {
	initTestDB(t)
	hub := newTestHub(t, 3, 3)

	a, err := hub.Register()
	require.NoError(t, err)
	defer hub.Unregister(a)
	b, err := hub.Register()
	require.NoError(t, err)
	defer hub.Unregister(b)

	readFrame(t, a) // init
	readFrame(t, b) // init

	require.NoError(t, hub.CommitPixel(0, 0, "#AA0000"))
	require.NoError(t, hub.CommitPixel(1, 1, "#00BB00"))

	for _, viewer := range []*Viewer{a, b} {
		var first, second model.PixelEvent
		require.NoError(t, jsoniter.Unmarshal(readFrame(t, viewer), &first))
		require.NoError(t, jsoniter.Unmarshal(readFrame(t, viewer), &second))
		assert.Equal(t, model.MsgTypePixel, first.Type)
		assert.Equal(t, "#AA0000", first.Color)
		assert.Equal(t, "#00BB00", second.Color)
	}
}

func TestSlowViewerDroppedWithoutStallingOthers(t *testing.T) {
	initTestDB(t)
	hub := newTestHub(t, 64, 64)

	slow, err := hub.Register()
	require.NoError(t, err)
	fast, err := hub.Register()
	require.NoError(t, err)
	defer hub.Unregister(fast)
	require.Equal(t, 2, hub.ViewerCount())

	done := make(chan int)
	go func() {
		n := 0
		for range fast.Events() {
			n++
			if n == viewerBuffer+1 {
				done <- n
				return
			}
		}
		done <- n
	}()

	// slow never reads: its buffer holds the init frame plus viewerBuffer-1
	// pixels, so this loop overflows it and the hub drops it
	for i := 0; i < viewerBuffer; i++ {
		require.NoError(t, hub.CommitPixel(i%64, i/64, "#123456"))
	}

	assert.Equal(t, 1, hub.ViewerCount())
	select {
	case n := <-done:
		assert.Equal(t, viewerBuffer+1, n)
	case <-time.After(time.Second):
		t.Fatal("fast viewer stalled")
	}

	// dropped viewer's channel is closed after draining
	for {
		if _, ok := <-slow.Events(); !ok {
			break
		}
	}
}

func TestUnregisterIsIdempotent(t *testing.T) {
	initTestDB(t)
	hub := newTestHub(t, 2, 2)

	viewer, err := hub.Register()
	require.NoError(t, err)
	hub.Unregister(viewer)
	hub.Unregister(viewer)
	assert.Equal(t, 0, hub.ViewerCount())
}
