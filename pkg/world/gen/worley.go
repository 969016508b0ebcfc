package gen

import "math"

// Cellular (Worley) noise. Each integer grid cell owns one feature point at a
// seed-hashed offset; sampling finds the nearest feature point among the
// surrounding cells. Deterministic for a given seed: all randomness comes from
// integer mixing, never math/rand, so output is identical across platforms and
// process restarts.

// DistanceFunc measures the distance between a sample point and a feature
// point, given the component deltas.
type DistanceFunc func(dx, dz float64) float64

// Euclidean is the straight-line distance.
func Euclidean(dx, dz float64) float64 {
	return math.Sqrt(dx*dx + dz*dz)
}

// Manhattan is the axis-aligned taxicab distance.
func Manhattan(dx, dz float64) float64 {
	return math.Abs(dx) + math.Abs(dz)
}

// Chebyshev is the maximum component distance.
func Chebyshev(dx, dz float64) float64 {
	return math.Max(math.Abs(dx), math.Abs(dz))
}

// ReturnType selects how a sample is interpreted.
type ReturnType int

const (
	// ReturnValue yields the hash value of the nearest feature point's cell,
	// in [-1, 1). Produces a flat plateau per cell, so regions are uniform.
	ReturnValue ReturnType = iota
	// ReturnDistance yields the distance to the nearest feature point,
	// rescaled so a sample on top of a feature point is -1.
	ReturnDistance
)

// Worley produces seeded cellular noise.
type Worley struct {
	seed int64
	freq float64
	dist DistanceFunc
	ret  ReturnType
}

// NewWorley creates a Worley generator with frequency 1, euclidean distance,
// and value return.
func NewWorley(seed int64) *Worley {
	return &Worley{seed: seed, freq: 1.0, dist: Euclidean, ret: ReturnValue}
}

// SetFrequency scales the sampling domain. Lower frequency means larger cells.
func (w *Worley) SetFrequency(freq float64) *Worley {
	w.freq = freq
	return w
}

// SetDistanceFunc replaces the distance metric.
func (w *Worley) SetDistanceFunc(dist DistanceFunc) *Worley {
	w.dist = dist
	return w
}

// SetReturnType replaces the sample interpretation.
func (w *Worley) SetReturnType(ret ReturnType) *Worley {
	w.ret = ret
	return w
}

// At2D samples the noise at the given planar coordinates.
// Output is in [-1, 1).
func (w *Worley) At2D(x, z float64) float64 {
	px := x * w.freq
	pz := z * w.freq
	cx := fastFloor(px)
	cz := fastFloor(pz)

	var bestX, bestZ int
	best := math.MaxFloat64
	for i := cx - 1; i <= cx+1; i++ {
		for j := cz - 1; j <= cz+1; j++ {
			fx, fz := w.featurePoint(i, j)
			d := w.dist(px-fx, pz-fz)
			if d < best {
				best = d
				bestX, bestZ = i, j
			}
		}
	}

	if w.ret == ReturnDistance {
		return best*2.0 - 1.0
	}
	return w.cellValue(bestX, bestZ)
}

// featurePoint returns the feature point owned by cell (cx, cz), in absolute
// (frequency-scaled) coordinates.
func (w *Worley) featurePoint(cx, cz int) (fx, fz float64) {
	h := w.cellHash(cx, cz)
	fx = float64(cx) + float64(h&0xFFFF)/65536.0
	fz = float64(cz) + float64((h>>16)&0xFFFF)/65536.0
	return fx, fz
}

// cellValue returns the constant value associated with a cell, in [-1, 1).
func (w *Worley) cellValue(cx, cz int) float64 {
	h := w.cellHash(cx, cz)
	return float64(uint32(h>>32))/float64(1<<31) - 1.0
}

// cellHash mixes the seed and cell coordinates, splitmix64-style.
func (w *Worley) cellHash(cx, cz int) uint64 {
	h := uint64(w.seed) ^ 0x9E3779B97F4A7C15
	h ^= uint64(int64(cx)) * 0xBF58476D1CE4E5B9
	h = (h ^ (h >> 30)) * 0xBF58476D1CE4E5B9
	h ^= uint64(int64(cz)) * 0x94D049BB133111EB
	h = (h ^ (h >> 27)) * 0x94D049BB133111EB
	h ^= h >> 31
	return h
}

func fastFloor(x float64) int {
	xi := int(x)
	if x < float64(xi) {
		return xi - 1
	}
	return xi
}
