package replay

import "github.com/hajimehoshi/ebiten/v2"

// FrameInput records input state for a single frame
type FrameInput struct {
	F  int                  `json:"f"`           // Frame number
	MS int64                `json:"ms"`          // Frame delta in milliseconds
	K  []ebiten.Key         `json:"k,omitempty"` // Held keys
	B  []ebiten.MouseButton `json:"b,omitempty"` // Held mouse buttons
	MX float32              `json:"mx"`          // MouseX
	MY float32              `json:"my"`          // MouseY
	W  int                  `json:"w,omitempty"` // Window width, set when it changed before this frame
	H  int                  `json:"h,omitempty"` // Window height, set when it changed before this frame
}

// ReplayData contains all data needed to replay a session
type ReplayData struct {
	Version   string       `json:"version"`
	Scene     string       `json:"scene"`
	Window    [2]int       `json:"window"`
	StartTime string       `json:"startTime"`
	Frames    []FrameInput `json:"frames"`
}

const dataVersion = "2.0"
