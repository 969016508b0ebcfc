package gen

import (
	"math"

	opensimplex "github.com/ojrac/opensimplex-go"
)

// TerrainGenerator produces the base stone terrain from layered simplex
// noise. It fills each column with stone up to its heightmap altitude and
// records the topmost solid cell as that column's surface index.
type TerrainGenerator struct {
	base   opensimplex.Noise
	detail opensimplex.Noise
}

// NewTerrainGenerator creates a TerrainGenerator from a seed.
func NewTerrainGenerator(seed int64) *TerrainGenerator {
	return &TerrainGenerator{
		base:   opensimplex.New(seed),
		detail: opensimplex.New(seed + 1),
	}
}

// HeightAt returns the world-space altitude of the topmost solid cell of the
// column at world block coordinates (wx, wz).
func (g *TerrainGenerator) HeightAt(wx, wz int) int {
	// Broad landmass shape at large scale, small-scale roughness on top.
	nx := float64(wx) / 256.0
	nz := float64(wz) / 256.0
	base := octaveNoise2(g.base, nx, nz, 4, 0.5)

	dx := float64(wx) / 32.0
	dz := float64(wz) / 32.0
	detail := octaveNoise2(g.detail, dx, dz, 2, 0.5)

	// Centered a little below sea level so coastlines and high-altitude
	// terrain both occur.
	h := float64(SeaLevel) - 4.0 + base*24.0 + detail*4.0
	return int(math.Floor(h))
}

// Generate builds the terrain for one chunk.
func (g *TerrainGenerator) Generate(key ChunkKey) ([]Voxel, []int) {
	voxels := NewChunkBuffer()
	surface := make([]int, 0, ChunkArea)
	baseY := key.Y * ChunkSize

	for z := 0; z < ChunkSize; z++ {
		for x := 0; x < ChunkSize; x++ {
			wx := key.X*ChunkSize + x
			wz := key.Z*ChunkSize + z
			h := g.HeightAt(wx, wz)
			if h < baseY {
				continue // chunk is entirely above this column's terrain
			}

			top := h - baseY
			inChunk := top < ChunkSize
			if !inChunk {
				top = ChunkSize - 1
			}
			for y := 0; y <= top; y++ {
				voxels[ChunkShape.Linearize3(x, y, z)] = Stone
			}
			if inChunk {
				surface = append(surface, ChunkShape.Linearize3(x, top, z))
			}
		}
	}
	return voxels, surface
}

// octaveNoise2 layers octaves of 2D simplex noise.
// Returns a value roughly in [-1, 1].
func octaveNoise2(n opensimplex.Noise, x, z float64, octaves int, persistence float64) float64 {
	var total, maxVal float64
	amplitude := 1.0
	frequency := 1.0

	for range octaves {
		total += n.Eval2(x*frequency, z*frequency) * amplitude
		maxVal += amplitude
		amplitude *= persistence
		frequency *= 2.0
	}
	return total / maxVal
}
