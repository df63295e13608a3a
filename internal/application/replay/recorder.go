package replay

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/younwookim/sectorphys/internal/application/system"
)

// Recorder handles input recording for replay
type Recorder struct {
	data      ReplayData
	hash      *StateHash
	recording bool
	tick      int
}

// NewRecorder creates a new recorder for a session on level starting at spawn
func NewRecorder(level string, dt float64, spawn mgl64.Vec3) *Recorder {
	return &Recorder{
		data: ReplayData{
			Version:   Version,
			Level:     level,
			DT:        dt,
			Spawn:     spawn,
			StartTime: time.Now().Format(time.RFC3339),
			Ticks:     make([]TickInput, 0, 2100), // ~1 minute at 35 ticks per second
		},
		hash:      NewStateHash(),
		recording: true,
	}
}

// RecordTick records the input of one tick and the actor state it produced
func (r *Recorder) RecordTick(velocity mgl64.Vec3, door bool, after system.ActorState) {
	if !r.recording {
		return
	}

	r.data.Ticks = append(r.data.Ticks, TickInput{
		T:    r.tick,
		VX:   velocity[0],
		VY:   velocity[1],
		VZ:   velocity[2],
		Door: door,
	})
	r.hash.Add(after)
	r.tick++
}

// Save writes the replay data to a file
func (r *Recorder) Save(filename string) error {
	if len(r.data.Ticks) == 0 {
		return fmt.Errorf("no ticks to save")
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer func() { _ = file.Close() }()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(r.GetData()); err != nil {
		return fmt.Errorf("failed to encode replay: %w", err)
	}

	return nil
}

// Stop stops recording
func (r *Recorder) Stop() {
	r.recording = false
}

// IsRecording returns whether recording is active
func (r *Recorder) IsRecording() bool {
	return r.recording
}

// FrameCount returns the number of recorded ticks
func (r *Recorder) FrameCount() int {
	return len(r.data.Ticks)
}

// GetData returns the replay data with the checksum of everything recorded so far
func (r *Recorder) GetData() ReplayData {
	data := r.data
	data.Checksum = FormatChecksum(r.hash.Sum64())
	return data
}

// GenerateFilename creates a filename based on current time
func GenerateFilename() string {
	return fmt.Sprintf("replay_%s.json", time.Now().Format("20060102_150405"))
}
