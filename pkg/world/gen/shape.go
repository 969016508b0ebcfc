package gen

import "fmt"

// Chunk dimensions. Chunks are cubic; the voxel buffer is a dense slice of
// ChunkVolume cells and the per-chunk biome attribute field holds ChunkArea
// values, one per column.
const (
	ChunkSize   = 32
	ChunkArea   = ChunkSize * ChunkSize
	ChunkVolume = ChunkSize * ChunkSize * ChunkSize
)

// Shape maps between linear buffer indices and local coordinates for a cubic
// chunk of the given edge length. Linearization order is pinned: x varies
// fastest, then y, then z (plane: x fastest, then z). Every buffer in this
// package uses this order.
type Shape struct {
	Edge int
}

// Canonical shapes for the fixed chunk size.
var (
	ChunkShape = Shape{ChunkSize}
	PlaneShape = Shape{ChunkSize}
)

// Linearize3 converts local (x,y,z) to a buffer index. Panics if any
// coordinate is outside [0,Edge); indices here only ever originate from valid
// buffer ranges, so a violation is a bug in the caller.
func (s Shape) Linearize3(x, y, z int) int {
	if x < 0 || x >= s.Edge || y < 0 || y >= s.Edge || z < 0 || z >= s.Edge {
		panic(fmt.Sprintf("gen: local coordinate (%d,%d,%d) outside chunk edge %d", x, y, z, s.Edge))
	}
	return x + s.Edge*y + s.Edge*s.Edge*z
}

// Delinearize3 converts a buffer index back to local (x,y,z).
func (s Shape) Delinearize3(i int) (x, y, z int) {
	if i < 0 || i >= s.Edge*s.Edge*s.Edge {
		panic(fmt.Sprintf("gen: index %d outside chunk volume %d", i, s.Edge*s.Edge*s.Edge))
	}
	x = i % s.Edge
	y = (i / s.Edge) % s.Edge
	z = i / (s.Edge * s.Edge)
	return x, y, z
}

// Linearize2 converts local (x,z) to a planar field index.
func (s Shape) Linearize2(x, z int) int {
	if x < 0 || x >= s.Edge || z < 0 || z >= s.Edge {
		panic(fmt.Sprintf("gen: planar coordinate (%d,%d) outside edge %d", x, z, s.Edge))
	}
	return x + s.Edge*z
}

// Delinearize2 converts a planar field index back to local (x,z).
func (s Shape) Delinearize2(i int) (x, z int) {
	if i < 0 || i >= s.Edge*s.Edge {
		panic(fmt.Sprintf("gen: index %d outside plane area %d", i, s.Edge*s.Edge))
	}
	return i % s.Edge, i / s.Edge
}
