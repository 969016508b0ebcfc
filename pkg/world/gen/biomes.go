package gen

import "fmt"

// biomeFrequency keeps biome cells far larger than a single chunk, so regions
// span many chunks instead of changing per chunk.
const biomeFrequency = 0.008

// BiomeField samples the biome attribute for every column of a chunk.
// The returned field has ChunkArea entries in plane order. The sampling
// window is the chunk's world-space footprint, so fields of adjacent chunks
// are contiguous slices of the same underlying noise: no reseeding per chunk.
func BiomeField(key ChunkKey, seed int64) []float32 {
	noise := NewWorley(seed).
		SetDistanceFunc(Euclidean).
		SetReturnType(ReturnValue).
		SetFrequency(biomeFrequency)

	xOffset := float64(key.X * ChunkSize)
	zOffset := float64(key.Z * ChunkSize)

	field := make([]float32, ChunkArea)
	for z := 0; z < ChunkSize; z++ {
		for x := 0; x < ChunkSize; x++ {
			field[PlaneShape.Linearize2(x, z)] =
				float32(noise.At2D(xOffset+float64(x), zOffset+float64(z)))
		}
	}
	return field
}

// GenerateBiomes runs the biome pass over one chunk: for every surface column
// it selects a land variant from the chunk's attribute field and lets that
// variant rewrite the column. surface holds linear indices of each column's
// topmost solid cell. An empty surface list is a no-op and samples no noise.
//
// The buffer is borrowed for the duration of the call only; a panic here
// (out-of-range index, non-finite attribute) means an upstream contract
// violation and the half-written buffer must be discarded.
func GenerateBiomes(key ChunkKey, seed int64, surface []int, voxels []Voxel) {
	if len(surface) == 0 {
		return
	}
	generateBiomes(key, BiomeField(key, seed), surface, voxels)
}

// generateBiomes is the field-injected body of GenerateBiomes.
func generateBiomes(key ChunkKey, field []float32, surface []int, voxels []Voxel) {
	if len(voxels) != ChunkVolume {
		panic(fmt.Sprintf("gen: voxel buffer length %d, want %d", len(voxels), ChunkVolume))
	}
	for _, idx := range surface {
		x, _, z := ChunkShape.Delinearize3(idx)
		planeIdx := PlaneShape.Linearize2(x, z)
		attr := field[planeIdx]
		biome := SelectBiome(attr)
		GenLand(biome, key, voxels, idx, planeIdx)
	}
}
