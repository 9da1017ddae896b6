package replay

import (
	"encoding/json"
	"io"
	"os"
	"time"

	"github.com/pkg/errors"

	"github.com/younwookim/darkanmon/internal/domain/input"
)

// Replayer handles input playback from recorded data. It feeds a headless
// window and doubles as the clock, so replays see the recorded deltas.
type Replayer struct {
	data    ReplayData
	frame   int
	elapsed time.Duration
	start   time.Time
	size    [2]int
}

// NewReplayer creates a new replayer from replay data
func NewReplayer(data ReplayData) *Replayer {
	return &Replayer{data: data, start: time.Unix(0, 0), size: data.Window}
}

// Decode reads replay data from r.
func Decode(r io.Reader) (*ReplayData, error) {
	var data ReplayData
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, errors.Wrap(err, "failed to decode replay")
	}
	return &data, nil
}

// LoadReplay loads replay data from a file
func LoadReplay(filename string) (*ReplayData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open file")
	}
	defer func() { _ = file.Close() }()

	return Decode(file)
}

// Next returns the input for the current frame and advances.
func (r *Replayer) Next() (input.Snapshot, bool) {
	if r.frame >= len(r.data.Frames) {
		return input.Snapshot{}, false
	}

	fi := r.data.Frames[r.frame]
	r.frame++
	r.elapsed += time.Duration(fi.MS) * time.Millisecond
	if fi.W > 0 && fi.H > 0 {
		r.size = [2]int{fi.W, fi.H}
	}

	return input.Snapshot{
		Keys:    fi.K,
		Buttons: fi.B,
		Cursor:  input.Point{X: fi.MX, Y: fi.MY},
	}, true
}

// Now returns the recorded time of the last frame handed out.
func (r *Replayer) Now() time.Time {
	return r.start.Add(r.elapsed)
}

// CurrentFrame returns the current frame number
func (r *Replayer) CurrentFrame() int {
	return r.frame
}

// TotalFrames returns the total number of frames
func (r *Replayer) TotalFrames() int {
	return len(r.data.Frames)
}

// Scene returns the scene the recording started in
func (r *Replayer) Scene() string {
	return r.data.Scene
}

// Window returns the window size of the recording
func (r *Replayer) Window() (int, int) {
	return r.data.Window[0], r.data.Window[1]
}

// Size returns the window size in effect for the last frame handed out.
func (r *Replayer) Size() (int, int) {
	return r.size[0], r.size[1]
}

// Reset resets the replayer to the beginning
func (r *Replayer) Reset() {
	r.frame = 0
	r.elapsed = 0
	r.size = r.data.Window
}

// CreateTestReplayData creates replay data for testing (cursor parked at
// mouseX, mouseY, nothing pressed, 16ms frames)
func CreateTestReplayData(frames int, mouseX, mouseY float32) ReplayData {
	data := ReplayData{
		Version:   dataVersion,
		Scene:     "test",
		Window:    [2]int{1280, 720},
		StartTime: time.Now().Format(time.RFC3339),
		Frames:    make([]FrameInput, frames),
	}

	for i := 0; i < frames; i++ {
		data.Frames[i] = FrameInput{
			F:  i,
			MS: 16,
			MX: mouseX,
			MY: mouseY,
		}
	}

	return data
}
