package service

import (
	"sync"

	"github.com/ed-builder/paintboard/model"
	"github.com/ed-builder/paintboard/pkg/log"
	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
)

// viewerBuffer bounds how many undelivered frames a viewer may lag behind
// before it is dropped.
const viewerBuffer = 256

// Viewer is one live streaming connection. Frames arrive on Events in the
// order draws were committed; the channel is closed when the viewer is
// dropped from the hub.
type Viewer struct {
	id string
	ch chan []byte
}

func (v *Viewer) Events() <-chan []byte {
	return v.ch
}

// Hub owns the set of live viewers and is the single serialization point
// for pixel commits and registrations. Holding one lock across the canvas
// write and the fan-out keeps broadcast order equal to commit order, and
// guarantees a new viewer's snapshot contains exactly the draws committed
// before its registration.
type Hub struct {
	mu      sync.Mutex
	board   *Canvas
	viewers map[string]*Viewer
}

func NewHub(board *Canvas) *Hub {
	return &Hub{
		board:   board,
		viewers: make(map[string]*Viewer),
	}
}

func (h *Hub) Board() *Canvas {
	return h.board
}

// Register adds a viewer and queues its init snapshot. Any pixel committed
// after Register returns is delivered as a separate event; any pixel
// committed before is already in the snapshot and is not re-delivered.
func (h *Hub) Register() (*Viewer, error) {
	v := &Viewer{
		id: uuid.New().String(),
		ch: make(chan []byte, viewerBuffer),
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	init := model.NewInitMessage(h.board.Snapshot())
	b, err := jsoniter.Marshal(&init)
	if err != nil {
		return nil, err
	}
	v.ch <- b
	h.viewers[v.id] = v
	log.Debug("viewer %v connected, %d online", v.id, len(h.viewers))
	return v, nil
}

// Unregister drops a viewer and closes its event channel. Safe to call
// more than once.
func (h *Hub) Unregister(v *Viewer) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.dropLocked(v.id)
}

func (h *Hub) dropLocked(id string) {
	v, ok := h.viewers[id]
	if !ok {
		return
	}
	delete(h.viewers, id)
	close(v.ch)
	log.Debug("viewer %v dropped, %d online", id, len(h.viewers))
}

// CommitPixel durably writes one pixel and fans the change out to every
// open viewer. A viewer whose buffer is full cannot stall the others or
// the caller; it is dropped on the spot and must reconnect for a fresh
// snapshot.
func (h *Hub) CommitPixel(x, y int, color string) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if err := h.board.Set(x, y, color); err != nil {
		return err
	}
	ev := model.NewPixelEvent(x, y, color)
	b, err := jsoniter.Marshal(&ev)
	if err != nil {
		return err
	}
	for id, v := range h.viewers {
		select {
		case v.ch <- b:
		default:
			log.Warn("viewer %v too slow, dropping", id)
			h.dropLocked(id)
		}
	}
	return nil
}

// ViewerCount reports how many viewers are currently open.
func (h *Hub) ViewerCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.viewers)
}
