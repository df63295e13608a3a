package config

// LevelConfig is the root config for a level file (JSON or YAML).
// The node list is produced by an external BSP builder; the loader only checks it.
type LevelConfig struct {
	ID         string            `json:"id" yaml:"id"`
	Name       string            `json:"name" yaml:"name"`
	Vertices   [][2]float64      `json:"vertices" yaml:"vertices"`
	Linedefs   []LinedefConfig   `json:"linedefs" yaml:"linedefs"`
	Sectors    []SectorConfig    `json:"sectors" yaml:"sectors"`
	Subsectors []SubsectorConfig `json:"subsectors" yaml:"subsectors"`
	Nodes      []NodeConfig      `json:"nodes" yaml:"nodes"`
	Spawn      SpawnConfig       `json:"spawn" yaml:"spawn"`
}

type LinedefConfig struct {
	V1    int  `json:"v1" yaml:"v1"`
	V2    int  `json:"v2" yaml:"v2"`
	Front int  `json:"front" yaml:"front"`                   // sector index
	Back  *int `json:"back,omitempty" yaml:"back,omitempty"` // nil = one-sided
}

type SectorConfig struct {
	Floor   float64 `json:"floor" yaml:"floor"`
	Ceiling float64 `json:"ceiling" yaml:"ceiling"`
	Light   float64 `json:"light" yaml:"light"`
	Tag     string  `json:"tag,omitempty" yaml:"tag,omitempty"`
}

type SubsectorConfig struct {
	Sector int `json:"sector" yaml:"sector"`
}

type NodeConfig struct {
	X     float64         `json:"x" yaml:"x"`
	Y     float64         `json:"y" yaml:"y"`
	DX    float64         `json:"dx" yaml:"dx"`
	DY    float64         `json:"dy" yaml:"dy"`
	Front NodeChildConfig `json:"front" yaml:"front"`
	Back  NodeChildConfig `json:"back" yaml:"back"`
}

type NodeChildConfig struct {
	Subsector bool `json:"subsector" yaml:"subsector"`
	Index     int  `json:"index" yaml:"index"`
}

type SpawnConfig struct {
	X   float64 `json:"x" yaml:"x"`
	Y   float64 `json:"y" yaml:"y"`
	Z   float64 `json:"z" yaml:"z"`
	Yaw float64 `json:"yaw" yaml:"yaw"`
}
