package config

// PuzzleConfig is one light path puzzle: a scene, how to search it and how to
// present the result.
type PuzzleConfig struct {
	Metadata Metadata `yaml:"metadata"`
	Scene    Scene    `yaml:"scene"`
	Search   Search   `yaml:"search"`
	Beam     Beam     `yaml:"beam"`
	Render   Render   `yaml:"render"`
}

type Metadata struct {
	Timestamp string `yaml:"timestamp"` // YYYY-MM-DD HH:MM:SS in UTC
	GitCommit string `yaml:"git_commit"`
}

type Scene struct {
	// Either may be omitted, in which case nothing is reachable
	Source         *[2]float64 `yaml:"source,omitempty"`
	Target         *[2]float64 `yaml:"target,omitempty"`
	MaxReflections int         `yaml:"max_reflections"`
	Mirrors        Mirrors     `yaml:"mirrors"`
	Obstacles      Obstacles   `yaml:"obstacles"`
}

type Mirrors struct {
	Inline   []MirrorSpec `yaml:"inline,omitempty"`
	FromFile string       `yaml:"from_file,omitempty"`
}

// MirrorSpec gives a mirror either by its end points or by a placement
// gesture: centre, a point it should face, and a length.
type MirrorSpec struct {
	A         *[2]float64 `yaml:"a,omitempty" json:"a,omitempty"`
	B         *[2]float64 `yaml:"b,omitempty" json:"b,omitempty"`
	Placement *Placement  `yaml:"placement,omitempty" json:"placement,omitempty"`
}

type Placement struct {
	At     [2]float64 `yaml:"at" json:"at"`
	Toward [2]float64 `yaml:"toward" json:"toward"`
	Length float64    `yaml:"length" json:"length"`
}

type Obstacles struct {
	Circles  []CircleSpec  `yaml:"circles,omitempty"`
	Segments []SegmentSpec `yaml:"segments,omitempty"`
	Mesh     *MeshSpec     `yaml:"mesh,omitempty"`
}

type CircleSpec struct {
	Center [2]float64 `yaml:"center"`
	Radius float64    `yaml:"radius"`
}

type SegmentSpec struct {
	A [2]float64 `yaml:"a"`
	B [2]float64 `yaml:"b"`
}

type MeshSpec struct {
	Path        string  `yaml:"path"`
	SliceHeight float64 `yaml:"slice_height"`
	Scale       float64 `yaml:"scale"` // mesh units per scene unit, 1000 for millimetres
}

type Search struct {
	MaxNodes  int  `yaml:"max_nodes"`
	TimeoutMS int  `yaml:"timeout_ms"`
	Debug     bool `yaml:"debug"`
}

type Beam struct {
	Reflectivity map[float64]float64 `yaml:"reflectivity,omitempty"` // incidence angle -> loss in dB
}

type Render struct {
	Width  int     `yaml:"width"`
	Height int     `yaml:"height"`
	Margin float64 `yaml:"margin"`
}
