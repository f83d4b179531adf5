package topology

import (
	"math"
	"sort"
)

// cellKey identifies one square bucket of a uniform spatial grid whose cell
// size equals the proximity threshold, so that every point within threshold
// of a query lies in the query's own cell or one of its 8 neighbors.
//
// This is the same bucketing idea as the teacher's gridgraph.Cell, applied
// to a dynamic point set instead of a fixed raster: cheap neighbor lookup
// without a full R-tree, which is overkill at the scale spec.md targets.
type cellKey struct {
	cx, cy int
}

// spatialIndex buckets road-endpoint node keys by cell so proximity
// stitching does not have to scan every endpoint for every semantic point.
type spatialIndex struct {
	cellSize float64
	buckets  map[cellKey][]int // cell -> endpoint node keys, insertion order
	coordOf  map[int]Coordinate
}

func newSpatialIndex(cellSize float64) *spatialIndex {
	return &spatialIndex{
		cellSize: cellSize,
		buckets:  make(map[cellKey][]int),
		coordOf:  make(map[int]Coordinate),
	}
}

func (idx *spatialIndex) cellOf(x, y float64) cellKey {
	return cellKey{
		cx: int(math.Floor(x / idx.cellSize)),
		cy: int(math.Floor(y / idx.cellSize)),
	}
}

// insert records a road-endpoint node key at (x, y).
func (idx *spatialIndex) insert(key int, x, y float64) {
	c := idx.cellOf(x, y)
	idx.buckets[c] = append(idx.buckets[c], key)
	idx.coordOf[key] = Coordinate{X: x, Y: y}
}

// candidate pairs a road-endpoint node key with its distance to a query point.
type candidate struct {
	key  int
	dist float64
}

// kNearestWithin returns up to k endpoint node keys within maxDist of
// (x, y), sorted ascending by distance then by node key (spec.md §4.1:
// "ties on distance broken by node key ascending").
//
// It scans the query cell and its 8 immediate neighbors, which suffices
// because cellSize == maxDist: any endpoint farther than one cell away in
// either axis is necessarily farther than maxDist.
func (idx *spatialIndex) kNearestWithin(x, y, maxDist float64, k int) []int {
	center := idx.cellOf(x, y)

	var candidates []candidate
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			c := cellKey{cx: center.cx + dx, cy: center.cy + dy}
			for _, key := range idx.buckets[c] {
				coord := idx.coordOf[key]
				d := math.Hypot(coord.X-x, coord.Y-y)
				if d <= maxDist {
					candidates = append(candidates, candidate{key: key, dist: d})
				}
			}
		}
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].dist != candidates[j].dist {
			return candidates[i].dist < candidates[j].dist
		}
		return candidates[i].key < candidates[j].key
	})

	if len(candidates) > k {
		candidates = candidates[:k]
	}

	out := make([]int, len(candidates))
	for i, c := range candidates {
		out[i] = c.key
	}

	return out
}
