package astar

// item is one entry in the search frontier: a candidate node reached with
// accumulated cost g and estimated total cost f = g + h. seq records push
// order so that Less can break f/g ties deterministically (spec.md §4.4:
// "ties on f are broken by g (lower first), then by insertion order").
type item struct {
	f, g float64
	node int
	seq  int
}

// frontier is a min-heap of *item ordered by (f, g, seq), implementing the
// same lazy-decrease-key discipline as the teacher's dijkstra.nodePQ: a
// node may appear more than once if a cheaper path to it is found after an
// earlier, costlier entry was already pushed; the stale entry is discarded
// on pop via the closed-set check in Planner.FindPathVia.
type frontier []*item

func (f frontier) Len() int { return len(f) }

func (f frontier) Less(i, j int) bool {
	if f[i].f != f[j].f {
		return f[i].f < f[j].f
	}
	if f[i].g != f[j].g {
		return f[i].g < f[j].g
	}
	return f[i].seq < f[j].seq
}

func (f frontier) Swap(i, j int) { f[i], f[j] = f[j], f[i] }

func (f *frontier) Push(x interface{}) { *f = append(*f, x.(*item)) }

func (f *frontier) Pop() interface{} {
	old := *f
	n := len(old)
	it := old[n-1]
	*f = old[:n-1]
	return it
}
