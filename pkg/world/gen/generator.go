package gen

// Generator produces the base terrain for one chunk deterministically from
// its seed: a dense voxel buffer of ChunkVolume cells plus the linear indices
// of each column's topmost solid cell. The surface list feeds the biome pass;
// columns whose surface lies outside this chunk's vertical range are absent
// from it.
type Generator interface {
	Generate(key ChunkKey) (voxels []Voxel, surface []int)
}
