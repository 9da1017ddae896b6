package replay

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"time"

	"github.com/pkg/errors"

	"github.com/younwookim/darkanmon/internal/domain/input"
)

// Recorder handles input recording for replay
type Recorder struct {
	data      ReplayData
	recording bool
	frame     int
	resized   [2]int
}

// NewRecorder creates a recorder for a session starting in scene with the
// given window size.
func NewRecorder(scene string, width, height int) *Recorder {
	return &Recorder{
		data: ReplayData{
			Version:   dataVersion,
			Scene:     scene,
			Window:    [2]int{width, height},
			StartTime: time.Now().Format(time.RFC3339),
			Frames:    make([]FrameInput, 0, 3600), // Pre-allocate for ~1 minute at 60fps
		},
		recording: true,
	}
}

// Record appends one frame's input and delta.
func (r *Recorder) Record(snap input.Snapshot, delta float64) {
	if !r.recording {
		return
	}
	r.data.Frames = append(r.data.Frames, FrameInput{
		F:  r.frame,
		MS: int64(math.Round(delta * 1000)),
		K:  snap.Keys,
		B:  snap.Buttons,
		MX: snap.Cursor.X,
		MY: snap.Cursor.Y,
		W:  r.resized[0],
		H:  r.resized[1],
	})
	r.resized = [2]int{}
	r.frame++
}

// RecordResize notes a window resize; the next recorded frame carries it.
func (r *Recorder) RecordResize(width, height int) {
	if !r.recording {
		return
	}
	r.resized = [2]int{width, height}
}

// Encode writes the replay data as indented JSON.
func (r *Recorder) Encode(w io.Writer) error {
	if len(r.data.Frames) == 0 {
		return errors.New("no frames to save")
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return errors.Wrap(encoder.Encode(r.data), "failed to encode replay")
}

// Save writes the replay data to a file
func (r *Recorder) Save(filename string) error {
	if len(r.data.Frames) == 0 {
		return errors.New("no frames to save")
	}
	file, err := os.Create(filename)
	if err != nil {
		return errors.Wrap(err, "failed to create file")
	}
	defer func() { _ = file.Close() }()

	return r.Encode(file)
}

// Stop stops recording
func (r *Recorder) Stop() {
	r.recording = false
}

// IsRecording returns whether recording is active
func (r *Recorder) IsRecording() bool {
	return r.recording
}

// FrameCount returns the number of recorded frames
func (r *Recorder) FrameCount() int {
	return len(r.data.Frames)
}

// Data returns the replay data
func (r *Recorder) Data() ReplayData {
	return r.data
}

// GenerateFilename creates a filename based on current time
func GenerateFilename() string {
	return fmt.Sprintf("replay_%s.json", time.Now().Format("20060102_150405"))
}
