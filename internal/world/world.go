package world

import (
	"runtime"
	"sync"

	"github.com/alitto/pond/v2"

	"github.com/voxelforge/terragen/pkg/world/gen"
)

// Chunk is one generated chunk: its key and the fully mutated voxel buffer
// (base terrain plus the biome pass).
type Chunk struct {
	Key    gen.ChunkKey
	Voxels []gen.Voxel
}

// World generates and caches chunks. Generation is deterministic per
// (seed, key), so concurrent callers racing on the same key produce identical
// chunks and the loser's buffer is simply discarded.
type World struct {
	mu        sync.RWMutex
	seed      int64
	generator gen.Generator
	chunks    map[gen.ChunkKey]*Chunk
}

// New creates a World with the given seed and base terrain generator.
func New(seed int64, generator gen.Generator) *World {
	return &World{
		seed:      seed,
		generator: generator,
		chunks:    make(map[gen.ChunkKey]*Chunk),
	}
}

// GetOrGenerate returns the chunk for the given key, generating and caching
// it if needed.
func (w *World) GetOrGenerate(key gen.ChunkKey) *Chunk {
	w.mu.RLock()
	if c, ok := w.chunks[key]; ok {
		w.mu.RUnlock()
		return c
	}
	w.mu.RUnlock()

	c := w.generate(key)

	w.mu.Lock()
	// Double-check after acquiring write lock.
	if existing, ok := w.chunks[key]; ok {
		w.mu.Unlock()
		return existing
	}
	w.chunks[key] = c
	w.mu.Unlock()
	return c
}

// generate runs the full per-chunk pipeline: base terrain with surface
// detection, then the biome pass over the detected surface columns.
func (w *World) generate(key gen.ChunkKey) *Chunk {
	voxels, surface := w.generator.Generate(key)
	gen.GenerateBiomes(key, w.seed, surface, voxels)
	return &Chunk{Key: key, Voxels: voxels}
}

// VoxelAt returns the voxel at local (x,y,z) of the given chunk, generating
// the chunk if needed.
func (w *World) VoxelAt(key gen.ChunkKey, x, y, z int) gen.Voxel {
	c := w.GetOrGenerate(key)
	return c.Voxels[gen.ChunkShape.Linearize3(x, y, z)]
}

// ChunkCount returns the number of cached chunks.
func (w *World) ChunkCount() int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return len(w.chunks)
}

// GenerateRegion generates every chunk with X,Z in [-radius, radius] and Y in
// [yMin, yMax] across a worker pool, and returns the number of chunks
// generated. Each chunk owns its buffer, so the only shared state is the
// cache map behind the World's lock.
func (w *World) GenerateRegion(radius, yMin, yMax, workers int) int {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	pool := pond.NewPool(workers)
	defer pool.StopAndWait()

	var wg sync.WaitGroup
	count := 0
	for cx := -radius; cx <= radius; cx++ {
		for cz := -radius; cz <= radius; cz++ {
			for cy := yMin; cy <= yMax; cy++ {
				key := gen.ChunkKey{X: cx, Y: cy, Z: cz}
				count++
				wg.Add(1)
				pool.Submit(func() {
					defer wg.Done()
					w.GetOrGenerate(key)
				})
			}
		}
	}
	wg.Wait()
	return count
}

// ColumnBiomes returns the biome selected for every column of a chunk's
// horizontal footprint, in plane order. Used by the map renderer.
func (w *World) ColumnBiomes(key gen.ChunkKey) []gen.Biome {
	field := gen.BiomeField(key, w.seed)
	biomes := make([]gen.Biome, len(field))
	for i, attr := range field {
		biomes[i] = gen.SelectBiome(attr)
	}
	return biomes
}
