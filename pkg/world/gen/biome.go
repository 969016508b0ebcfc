package gen

import (
	"fmt"
	"math"
)

// Biome is one of the closed set of land variants. Variants carry no state;
// dispatch is a single switch so the set stays exhaustively checked.
type Biome uint8

const (
	BasicLand Biome = iota
	DryLand
	SnowLand
	SandLand
	BlueLand
)

// String implements fmt.Stringer for logs and map legends.
func (b Biome) String() string {
	switch b {
	case BasicLand:
		return "basic"
	case DryLand:
		return "dry"
	case SnowLand:
		return "snow"
	case SandLand:
		return "sand"
	case BlueLand:
		return "blue"
	default:
		return fmt.Sprintf("biome(%d)", uint8(b))
	}
}

// SelectBiome maps a biome attribute value to its variant. Half-open bands,
// first match wins; a boundary value belongs to the upper band. Panics on a
// non-finite attribute: that means the noise field was mis-seeded upstream,
// and silently placing a biome would hide corrupted terrain.
func SelectBiome(attr float32) Biome {
	if math.IsNaN(float64(attr)) || math.IsInf(float64(attr), 0) {
		panic(fmt.Sprintf("gen: non-finite biome attribute %v", attr))
	}
	switch {
	case attr < 0.1:
		return BasicLand
	case attr < 0.4:
		return DryLand
	case attr < 0.6:
		return SnowLand
	case attr < 0.8:
		return SandLand
	default:
		return BlueLand
	}
}

// GenLand mutates the column at chunkIdx for the given variant. The height
// and local-coordinate derivation is shared by every variant: height is the
// column's world-space altitude, key.Y*ChunkSize plus the local y.
func GenLand(b Biome, key ChunkKey, voxels []Voxel, chunkIdx, planeIdx int) {
	x, y, z := ChunkShape.Delinearize3(chunkIdx)
	height := key.Y*ChunkSize + y
	genLandWithInfo(b, voxels, chunkIdx, height, x, y, z)
}

// genLandWithInfo dispatches to the variant's column mutation.
func genLandWithInfo(b Biome, voxels []Voxel, chunkIdx, height, x, y, z int) {
	switch b {
	case BasicLand:
		genBasicLand(voxels, chunkIdx, height, x, y, z)
	case DryLand:
		genDryLand(voxels, chunkIdx, height, x, y, z)
	case SnowLand:
		genSnowLand(voxels, chunkIdx, height, x, y, z)
	case SandLand:
		genSandLand(voxels, chunkIdx, height, x, y, z)
	case BlueLand:
		genBlueLand(voxels, chunkIdx, height, x, y, z)
	default:
		panic(fmt.Sprintf("gen: unknown biome %d", uint8(b)))
	}
}
