package gen

// FlatGenerator produces a featureless stone slab whose top solid layer sits
// at a fixed world altitude. Used by tests and for debugging the biome pass
// in isolation.
type FlatGenerator struct {
	height int
}

// NewFlatGenerator creates a FlatGenerator with its surface at the given
// world-space altitude.
func NewFlatGenerator(height int) *FlatGenerator {
	return &FlatGenerator{height: height}
}

func (g *FlatGenerator) Generate(key ChunkKey) ([]Voxel, []int) {
	voxels := NewChunkBuffer()
	baseY := key.Y * ChunkSize
	if g.height < baseY {
		return voxels, nil
	}

	top := g.height - baseY
	inChunk := top < ChunkSize
	if !inChunk {
		top = ChunkSize - 1
	}
	for z := 0; z < ChunkSize; z++ {
		for x := 0; x < ChunkSize; x++ {
			for y := 0; y <= top; y++ {
				voxels[ChunkShape.Linearize3(x, y, z)] = Stone
			}
		}
	}
	if !inChunk {
		return voxels, nil
	}

	surface := make([]int, 0, ChunkArea)
	for z := 0; z < ChunkSize; z++ {
		for x := 0; x < ChunkSize; x++ {
			surface = append(surface, ChunkShape.Linearize3(x, top, z))
		}
	}
	return voxels, surface
}

// HeightAt returns the slab's fixed surface altitude.
func (g *FlatGenerator) HeightAt(_, _ int) int {
	return g.height
}
