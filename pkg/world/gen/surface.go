package gen

// Per-variant column mutation. Each variant rewrites the surface cell and a
// few subsurface layers directly below it. Subsurface writes only replace
// cells an earlier pass already made solid, so caves and overhangs carved out
// of the column stay open. No variant ever writes outside its own column or
// outside the chunk.

// genBasicLand places grass with a dirt underlayer; dirt at or below sea
// level, a snow cap at or above the high-altitude line.
func genBasicLand(voxels []Voxel, chunkIdx, height, x, y, z int) {
	switch {
	case height >= HighAltitude:
		voxels[chunkIdx] = Snow
	case height <= SeaLevel:
		voxels[chunkIdx] = Dirt
	default:
		voxels[chunkIdx] = Grass
	}
	fillBelow(voxels, x, y, z, 1, 3, Dirt)
}

// genDryLand places bare dirt: parched ground with no grass cover.
func genDryLand(voxels []Voxel, chunkIdx, height, x, y, z int) {
	voxels[chunkIdx] = Dirt
	fillBelow(voxels, x, y, z, 1, 2, Dirt)
}

// genSnowLand places a snow surface; above the high-altitude line the snow
// pack runs deeper, otherwise frozen dirt sits underneath.
func genSnowLand(voxels []Voxel, chunkIdx, height, x, y, z int) {
	voxels[chunkIdx] = Snow
	if height >= HighAltitude {
		fillBelow(voxels, x, y, z, 1, 2, Snow)
	} else {
		fillBelow(voxels, x, y, z, 1, 2, Dirt)
	}
}

// genSandLand places deep sand over sandstone.
func genSandLand(voxels []Voxel, chunkIdx, height, x, y, z int) {
	voxels[chunkIdx] = Sand
	fillBelow(voxels, x, y, z, 1, 3, Sand)
	fillBelow(voxels, x, y, z, 4, 5, Sandstone)
}

// genBlueLand is the water-adjacent variant: sand shores near or below sea
// level with water filling the column up to the sea line, grass further up.
func genBlueLand(voxels []Voxel, chunkIdx, height, x, y, z int) {
	if height > SeaLevel+1 {
		voxels[chunkIdx] = Grass
		fillBelow(voxels, x, y, z, 1, 2, Dirt)
		return
	}

	voxels[chunkIdx] = Sand
	fillBelow(voxels, x, y, z, 1, 2, Sand)

	// Flood the column above the surface up to sea level, air cells only.
	// chunkBase is the world-space altitude of the chunk's y=0 layer.
	chunkBase := height - y
	for yy := y + 1; yy < ChunkSize; yy++ {
		if chunkBase+yy > SeaLevel {
			break
		}
		idx := ChunkShape.Linearize3(x, yy, z)
		if voxels[idx] == Air {
			voxels[idx] = Water
		}
	}
}

// fillBelow replaces already-solid cells in the column under (x,y,z), at
// depths [from, to] below the surface cell, with the given material. Stops at
// the chunk floor.
func fillBelow(voxels []Voxel, x, y, z, from, to int, m Voxel) {
	for d := from; d <= to; d++ {
		yy := y - d
		if yy < 0 {
			return
		}
		idx := ChunkShape.Linearize3(x, yy, z)
		if voxels[idx].Solid() {
			voxels[idx] = m
		}
	}
}
