package model

const (
	MsgTypeInit  = "init"
	MsgTypePixel = "pixel"
)

// InitMessage is sent once to every viewer right after it connects.
type InitMessage struct {
	Type   string            `json:"type"`
	Width  int               `json:"width"`
	Height int               `json:"height"`
	Pixels map[string]string `json:"pixels"`
}

// PixelEvent is broadcast to every open viewer for each committed draw,
// in commit order.
type PixelEvent struct {
	Type  string `json:"type"`
	X     int    `json:"x"`
	Y     int    `json:"y"`
	Color string `json:"color"`
}

func NewInitMessage(snap CanvasSnapshot) InitMessage {
	return InitMessage{
		Type:   MsgTypeInit,
		Width:  snap.Width,
		Height: snap.Height,
		Pixels: snap.Pixels,
	}
}

func NewPixelEvent(x, y int, color string) PixelEvent {
	return PixelEvent{
		Type:  MsgTypePixel,
		X:     x,
		Y:     y,
		Color: color,
	}
}
