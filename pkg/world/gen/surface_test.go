package gen

import "testing"

// stoneColumn fills the column at (x,z) with stone from y=0 through top and
// returns the surface index.
func stoneColumn(voxels []Voxel, x, top, z int) int {
	for y := 0; y <= top; y++ {
		voxels[ChunkShape.Linearize3(x, y, z)] = Stone
	}
	return ChunkShape.Linearize3(x, top, z)
}

func columnVoxel(voxels []Voxel, x, y, z int) Voxel {
	return voxels[ChunkShape.Linearize3(x, y, z)]
}

func TestSandLandColumn(t *testing.T) {
	voxels := NewChunkBuffer()
	idx := stoneColumn(voxels, 4, 20, 9)

	GenLand(SandLand, ChunkKey{0, 0, 0}, voxels, idx, PlaneShape.Linearize2(4, 9))

	for y := 20; y >= 17; y-- {
		if got := columnVoxel(voxels, 4, y, 9); got != Sand {
			t.Errorf("y=%d: got %v, want sand", y, got)
		}
	}
	for y := 16; y >= 15; y-- {
		if got := columnVoxel(voxels, 4, y, 9); got != Sandstone {
			t.Errorf("y=%d: got %v, want sandstone", y, got)
		}
	}
	if got := columnVoxel(voxels, 4, 14, 9); got != Stone {
		t.Errorf("y=14: got %v, want untouched stone", got)
	}
}

func TestDryLandColumn(t *testing.T) {
	voxels := NewChunkBuffer()
	idx := stoneColumn(voxels, 0, 10, 0)

	GenLand(DryLand, ChunkKey{0, 0, 0}, voxels, idx, PlaneShape.Linearize2(0, 0))

	for y := 10; y >= 8; y-- {
		if got := columnVoxel(voxels, 0, y, 0); got != Dirt {
			t.Errorf("y=%d: got %v, want dirt", y, got)
		}
	}
	if got := columnVoxel(voxels, 0, 7, 0); got != Stone {
		t.Errorf("y=7: got %v, want untouched stone", got)
	}
}

func TestSnowLandDeepPackAtAltitude(t *testing.T) {
	// World height 40 is on the high-altitude line: snow runs deeper.
	voxels := NewChunkBuffer()
	idx := stoneColumn(voxels, 2, 8, 2)

	GenLand(SnowLand, ChunkKey{0, 1, 0}, voxels, idx, PlaneShape.Linearize2(2, 2)) // world height 40

	for y := 8; y >= 6; y-- {
		if got := columnVoxel(voxels, 2, y, 2); got != Snow {
			t.Errorf("y=%d: got %v, want snow", y, got)
		}
	}

	// Below the line the pack is one snow layer over dirt.
	voxels = NewChunkBuffer()
	idx = stoneColumn(voxels, 2, 8, 2)
	GenLand(SnowLand, ChunkKey{0, 0, 0}, voxels, idx, PlaneShape.Linearize2(2, 2)) // world height 8
	if got := columnVoxel(voxels, 2, 8, 2); got != Snow {
		t.Errorf("surface: got %v, want snow", got)
	}
	for y := 7; y >= 6; y-- {
		if got := columnVoxel(voxels, 2, y, 2); got != Dirt {
			t.Errorf("y=%d: got %v, want dirt", y, got)
		}
	}
}

func TestBlueLandFloodsToSeaLevel(t *testing.T) {
	// Surface at world height 10, below sea level: sand shore, water above
	// up to the sea line.
	voxels := NewChunkBuffer()
	idx := stoneColumn(voxels, 6, 10, 6)

	GenLand(BlueLand, ChunkKey{0, 0, 0}, voxels, idx, PlaneShape.Linearize2(6, 6))

	if got := columnVoxel(voxels, 6, 10, 6); got != Sand {
		t.Errorf("surface: got %v, want sand", got)
	}
	for y := 11; y <= SeaLevel; y++ {
		if got := columnVoxel(voxels, 6, y, 6); got != Water {
			t.Errorf("y=%d: got %v, want water", y, got)
		}
	}
	if got := columnVoxel(voxels, 6, SeaLevel+1, 6); got != Air {
		t.Errorf("y=%d: got %v, want air above sea level", SeaLevel+1, got)
	}
}

func TestBlueLandInlandIsGrass(t *testing.T) {
	voxels := NewChunkBuffer()
	idx := stoneColumn(voxels, 1, 25, 1) // world height 25, above the shore band

	GenLand(BlueLand, ChunkKey{0, 0, 0}, voxels, idx, PlaneShape.Linearize2(1, 1))

	if got := columnVoxel(voxels, 1, 25, 1); got != Grass {
		t.Errorf("surface: got %v, want grass", got)
	}
	if got := columnVoxel(voxels, 1, 26, 1); got != Air {
		t.Errorf("above surface: got %v, want air", got)
	}
}

func TestSubsurfaceSkipsCarvedCells(t *testing.T) {
	// A carved pocket below the surface must stay open: subsurface layers
	// only replace already-solid cells.
	voxels := NewChunkBuffer()
	idx := stoneColumn(voxels, 3, 12, 3)
	voxels[ChunkShape.Linearize3(3, 11, 3)] = Air // pocket right under the surface

	GenLand(BasicLand, ChunkKey{0, 1, 0}, voxels, idx, PlaneShape.Linearize2(3, 3))

	if got := columnVoxel(voxels, 3, 11, 3); got != Air {
		t.Errorf("carved cell: got %v, want air", got)
	}
	for y := 10; y >= 9; y-- {
		if got := columnVoxel(voxels, 3, y, 3); got != Dirt {
			t.Errorf("y=%d: got %v, want dirt", y, got)
		}
	}
}

func TestVariantsStayInColumn(t *testing.T) {
	// No variant may write outside its own column.
	for b := BasicLand; b <= BlueLand; b++ {
		voxels := NewChunkBuffer()
		idx := stoneColumn(voxels, 8, 14, 8)

		before := make([]Voxel, ChunkVolume)
		copy(before, voxels)

		GenLand(b, ChunkKey{0, 0, 0}, voxels, idx, PlaneShape.Linearize2(8, 8))

		for i, v := range voxels {
			if v == before[i] {
				continue
			}
			x, _, z := ChunkShape.Delinearize3(i)
			if x != 8 || z != 8 {
				t.Errorf("%v wrote outside its column at index %d (%d,_,%d)", b, i, x, z)
			}
		}
	}
}

func TestSurfaceNearChunkFloor(t *testing.T) {
	// A surface on the chunk floor has no room below; depth loops must stop
	// at y=0 without panicking.
	for b := BasicLand; b <= BlueLand; b++ {
		voxels := NewChunkBuffer()
		idx := stoneColumn(voxels, 0, 0, 0)
		GenLand(b, ChunkKey{0, 0, 0}, voxels, idx, PlaneShape.Linearize2(0, 0))
	}
}
