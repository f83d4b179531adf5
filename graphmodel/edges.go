package graphmodel

// AddAntiparallelEdge inserts two directed Edges, from->to and to->from,
// both of the given type, length, and speed cap. This is the only edge
// insertion primitive the Graph exposes: spec.md §3 requires road edges
// and proximity stitches to always be inserted as antiparallel pairs, so
// there is deliberately no single-direction AddEdge escape hatch.
//
// Zero-length self-loops (from == to) are accepted, not rejected: the
// planner must tolerate them rather than the graph refusing to build them
// (spec.md §3). Negative length is rejected with ErrNegativeLength.
//
// Returns the two new edge IDs, [from->to, to->from].
func (g *Graph) AddAntiparallelEdge(from, to int, typ EdgeType, length, speedCap float64) ([2]int, error) {
	if length < 0 {
		return [2]int{}, ErrNegativeLength
	}
	if speedCap <= 0 {
		speedCap = DefaultSpeedCap
	}

	g.muEdge.Lock()
	defer g.muEdge.Unlock()

	g.nextEdgeID++
	fwdID := g.nextEdgeID
	fwd := &Edge{ID: fwdID, From: from, To: to, Type: typ, Length: length, SpeedCap: speedCap}

	g.nextEdgeID++
	revID := g.nextEdgeID
	rev := &Edge{ID: revID, From: to, To: from, Type: typ, Length: length, SpeedCap: speedCap}

	g.edges[fwdID] = fwd
	g.edges[revID] = rev
	g.adjacency[from] = append(g.adjacency[from], fwd)
	g.adjacency[to] = append(g.adjacency[to], rev)

	return [2]int{fwdID, revID}, nil
}
