package graphmodel

import (
	"math"
	"sort"
	"strings"
)

// FindNearestNode returns the Node closest to (x, y), restricted to nodes
// whose Category has the given prefix (pass "" for no filter) and within
// maxDistance. Returns (nil, false) if no node qualifies.
//
// This is a linear scan over all nodes, which spec.md §4.2 explicitly
// allows at this scale (O(N) over <10^4 nodes). Ties are broken by the
// lowest node key, matching the deterministic tie-break topology uses for
// proximity-stitch candidate selection.
func (g *Graph) FindNearestNode(x, y float64, categoryPrefix string, maxDistance float64) (*Node, bool) {
	g.muNode.RLock()
	defer g.muNode.RUnlock()

	var best *Node
	bestDist := math.Inf(1)

	keys := make([]int, 0, len(g.nodes))
	for k := range g.nodes {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	for _, k := range keys {
		n := g.nodes[k]
		if categoryPrefix != "" && !strings.HasPrefix(string(n.Category), categoryPrefix) {
			continue
		}
		dx, dy := n.X-x, n.Y-y
		d := math.Hypot(dx, dy)
		if d > maxDistance {
			continue
		}
		if d < bestDist {
			bestDist = d
			best = n
		}
	}

	if best == nil {
		return nil, false
	}

	return best, true
}

// NodesByCategory returns every Node whose Category starts with prefix,
// ordered by ascending node key. An empty prefix matches every node.
func (g *Graph) NodesByCategory(prefix string) []*Node {
	g.muNode.RLock()
	defer g.muNode.RUnlock()

	keys := make([]int, 0, len(g.nodes))
	for k := range g.nodes {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	out := make([]*Node, 0, len(keys))
	for _, k := range keys {
		n := g.nodes[k]
		if strings.HasPrefix(string(n.Category), prefix) {
			out = append(out, n)
		}
	}

	return out
}
