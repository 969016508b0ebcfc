package gen

// ChunkKey identifies a chunk by its position in chunk space (not world
// units). Comparable; used directly as a map key.
type ChunkKey struct {
	X, Y, Z int
}

// Voxel is the material of one cell. The zero value is air, which also means
// "not yet written by any pass".
type Voxel uint8

const (
	Air Voxel = iota
	Stone
	Grass
	Dirt
	Sand
	Sandstone
	Snow
	Water
)

// Solid reports whether the voxel blocks the column (air and water do not).
func (v Voxel) Solid() bool {
	return v != Air && v != Water
}

// NewChunkBuffer allocates an all-air voxel buffer for one chunk.
func NewChunkBuffer() []Voxel {
	return make([]Voxel, ChunkVolume)
}

// World-space altitude lines shared by the land variants. The mountain and
// snow lines coincide; variants reference the single HighAltitude constant.
const (
	SeaLevel     = 16
	HighAltitude = 40
)
