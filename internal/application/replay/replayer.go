package replay

import (
	"encoding/json"
	"fmt"
	"os"
)

// Replayer handles input playback from recorded data
type Replayer struct {
	data ReplayData
	tick int
}

// NewReplayer creates a new replayer from replay data
func NewReplayer(data ReplayData) *Replayer {
	return &Replayer{data: data}
}

// LoadReplay loads replay data from a file
func LoadReplay(filename string) (*ReplayData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var data ReplayData
	decoder := json.NewDecoder(file)
	if err := decoder.Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode replay: %w", err)
	}
	if data.DT <= 0 {
		return nil, fmt.Errorf("replay %s: tick duration must be positive, got %v", filename, data.DT)
	}

	return &data, nil
}

// NextTick returns the input for the current tick and advances
func (r *Replayer) NextTick() (TickInput, bool) {
	if r.tick >= len(r.data.Ticks) {
		return TickInput{}, false
	}

	in := r.data.Ticks[r.tick]
	r.tick++
	return in, true
}

// CurrentTick returns the current tick number
func (r *Replayer) CurrentTick() int {
	return r.tick
}

// TotalTicks returns the total number of ticks
func (r *Replayer) TotalTicks() int {
	return len(r.data.Ticks)
}
