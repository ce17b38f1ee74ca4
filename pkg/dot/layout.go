package dot

import "math"

// ApplyLayout assigns a position in the normalized [0,1]x[0,1] square to
// every node, using the graph's selected layout algorithm. Positions are
// written in place; calling it again recomputes them from scratch.
func (g *Graph) ApplyLayout() {
	switch g.layout {
	case LayoutCircular:
		g.circularLayout()
	case LayoutForceDirected:
		g.forceDirectedLayout()
	case LayoutGrid:
		g.gridLayout()
	default:
		g.hierarchicalLayout()
	}
}

// circularLayout spaces nodes evenly on a circle of radius 0.35 around the
// center, starting at angle 0 and proceeding counterclockwise in insertion
// order. A single node sits at the center.
func (g *Graph) circularLayout() {
	nodes := g.Nodes()
	n := len(nodes)
	for i, node := range nodes {
		if n == 1 {
			node.X, node.Y = 0.5, 0.5
			continue
		}
		angle := 2 * math.Pi * float64(i) / float64(n)
		node.X = 0.5 + 0.35*math.Cos(angle)
		node.Y = 0.5 + 0.35*math.Sin(angle)
	}
}

// gridLayout arranges nodes row-major on a near-square grid spanning
// [0.1, 0.9] on both axes. Columns are ceil(sqrt(n)).
func (g *Graph) gridLayout() {
	nodes := g.Nodes()
	n := len(nodes)
	if n == 0 {
		return
	}
	cols := int(math.Ceil(math.Sqrt(float64(n))))
	rows := (n + cols - 1) / cols

	for i, node := range nodes {
		col := i % cols
		row := i / cols
		if cols == 1 {
			node.X = 0.5
		} else {
			node.X = 0.1 + 0.8*float64(col)/float64(cols-1)
		}
		if rows == 1 {
			node.Y = 0.5
		} else {
			node.Y = 0.1 + 0.8*float64(row)/float64(rows-1)
		}
	}
}

// forceDirectedLayout seeds nodes on a circle of radius 0.25 and runs a
// fixed ten-iteration attraction-only relaxation: each edge pulls both
// endpoints toward each other by 2% of their separation per iteration, with
// positions clamped to [0.1, 0.9] after every step. There is no repulsion
// term, so dense graphs contract toward their connectivity centroid.
func (g *Graph) forceDirectedLayout() {
	nodes := g.Nodes()
	n := len(nodes)

	index := make(map[string]int, n)
	for i, node := range nodes {
		index[node.ID] = i
		if n == 1 {
			node.X, node.Y = 0.5, 0.5
			continue
		}
		angle := 2 * math.Pi * float64(i) / float64(n)
		node.X = 0.5 + 0.25*math.Cos(angle)
		node.Y = 0.5 + 0.25*math.Sin(angle)
	}

	const (
		iterations = 10
		pull       = 0.02
	)

	for iter := 0; iter < iterations; iter++ {
		adjX := make([]float64, n)
		adjY := make([]float64, n)

		for _, e := range g.edges {
			from, to := index[e.From], index[e.To]
			dx := nodes[to].X - nodes[from].X
			dy := nodes[to].Y - nodes[from].Y
			if dx == 0 && dy == 0 {
				continue
			}
			adjX[from] += dx * pull
			adjY[from] += dy * pull
			adjX[to] -= dx * pull
			adjY[to] -= dy * pull
		}

		for i, node := range nodes {
			node.X = clamp(node.X+adjX[i], 0.1, 0.9)
			node.Y = clamp(node.Y+adjY[i], 0.1, 0.9)
		}
	}
}

// hierarchicalLayout assigns nodes to layers with a Kahn-style topological
// sort, repairs cycles by placing leftover nodes one past their deepest
// already-placed predecessor, and positions layers top to bottom with
// subgraph-aligned columns.
func (g *Graph) hierarchicalLayout() {
	layers := g.buildLayers()
	g.positionLayers(layers)
}

// buildLayers runs the layered topological sort. Every node ends up in
// exactly one layer even when the graph contains cycles.
func (g *Graph) buildLayers() [][]string {
	adj := make(map[string][]string, len(g.order))
	inDegree := make(map[string]int, len(g.order))
	for _, id := range g.order {
		inDegree[id] = 0
	}
	for _, e := range g.edges {
		adj[e.From] = append(adj[e.From], e.To)
		inDegree[e.To]++
	}

	// Kahn layering: each BFS wave becomes one layer. Roots are taken in
	// insertion order so the result is deterministic.
	var layers [][]string
	var queue []string
	placed := make(map[string]bool, len(g.order))
	for _, id := range g.order {
		if inDegree[id] == 0 {
			queue = append(queue, id)
		}
	}

	for len(queue) > 0 {
		layer := queue
		queue = nil
		for _, id := range layer {
			placed[id] = true
			for _, next := range adj[id] {
				inDegree[next]--
				if inDegree[next] == 0 {
					queue = append(queue, next)
				}
			}
		}
		layers = append(layers, layer)
	}

	// Cycle repair: nodes the sort never reached go into the earliest layer
	// right after a placed predecessor with a direct edge into them, or into
	// a new trailing layer when no predecessor has been placed. Earlier
	// repaired nodes count as placed for later ones.
	for _, id := range g.order {
		if placed[id] {
			continue
		}
		best := len(layers)
	search:
		for layerIdx, layer := range layers {
			for _, member := range layer {
				if g.hasEdge(member, id) {
					best = layerIdx + 1
					break search
				}
			}
		}
		if best >= len(layers) {
			layers = append(layers, []string{id})
		} else {
			layers[best] = append(layers[best], id)
		}
		placed[id] = true
	}

	return layers
}

func (g *Graph) hasEdge(from, to string) bool {
	for _, e := range g.edges {
		if e.From == from && e.To == to {
			return true
		}
	}
	return false
}

// positionLayers maps layers to y positions from 0.9 (top) down to 0.1 and
// spreads each layer's nodes horizontally around their subgraph column.
func (g *Graph) positionLayers(layers [][]string) {
	layerCount := len(layers)
	if layerCount == 0 {
		return
	}

	columns := g.subgraphColumns()

	for layerIdx, layer := range layers {
		y := 0.5
		if layerCount > 1 {
			y = 0.9 - float64(layerIdx)/float64(layerCount-1)*0.8
		}

		// Group the layer's nodes by subgraph, preserving layer order
		// within each group.
		var groupOrder []string
		groups := make(map[string][]string)
		for _, id := range layer {
			sg := g.SubgraphOf(id)
			if _, seen := groups[sg]; !seen {
				groupOrder = append(groupOrder, sg)
			}
			groups[sg] = append(groups[sg], id)
		}

		for _, sg := range groupOrder {
			group := groups[sg]
			baseX, ok := columns[sg]
			if !ok {
				baseX = 0.5
			}
			for i, id := range group {
				x := baseX
				if len(group) > 1 {
					// Jitter siblings around the column, clamped so
					// crowded columns stay inside the frame.
					offset := (float64(i)/float64(len(group)-1) - 0.5) * 0.15
					x = clamp(baseX+offset, 0.05, 0.95)
				}
				if node, found := g.nodes[id]; found {
					node.X = x
					node.Y = y
				}
			}
		}
	}
}

// subgraphColumns assigns a fixed x position to each subgraph that owns at
// least one node, spread evenly across [0.25, 0.75] in the order their first
// member node appears.
// Nodes outside any subgraph share the center column under the "" key.
func (g *Graph) subgraphColumns() map[string]float64 {
	columns := map[string]float64{"": 0.5}

	var ids []string
	seen := make(map[string]bool)
	for _, id := range g.order {
		sg := g.SubgraphOf(id)
		if sg == "" || seen[sg] {
			continue
		}
		seen[sg] = true
		ids = append(ids, sg)
	}

	for i, id := range ids {
		if len(ids) == 1 {
			columns[id] = 0.5
		} else {
			columns[id] = 0.25 + float64(i)/float64(len(ids)-1)*0.5
		}
	}
	return columns
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
