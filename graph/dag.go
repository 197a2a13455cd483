package graph

import "sort"

// LayerBound records, for one depth level, the exclusive end index into the
// node array and into the connection array, as populated by BuildAcyclic's
// lock-step scan.
type LayerBound struct {
	EndNodeIdx       int
	EndConnectionIdx int
}

// DAG is the depth-layered runtime form of an acyclic graph: nodes are
// renumbered so indices are monotonically non-decreasing in depth, and
// connections are sorted so a single forward pass over the connection array
// never reads a target before all of its contributing sources have been
// activated.
type DAG struct {
	InputCount     int
	OutputCount    int
	TotalNodeCount int
	GraphDepth     int

	NodeDepth []int

	SourceID []int
	TargetID []int
	Weight   []float64

	// OutputNodeIdx holds the new index of each original output node, in
	// original output order. Because outputs are reordered by depth they are
	// no longer contiguous, hence a scatter index rather than a range.
	OutputNodeIdx []int

	LayerEnd []LayerBound
}

// BuildAcyclic compiles a cyclic-form graph, plus its depth info, into a
// DAG. The caller must have already verified (or accepted on faith, per
// AnalyzeDepth's contract) that g is acyclic.
func BuildAcyclic(g *Cyclic, depth *DepthInfo) (*DAG, error) {
	totalNodeCount := g.TotalNodeCount

	// nodeOrder[i] is the old node ID occupying new position i.
	nodeOrder := make([]int, totalNodeCount)
	for i := 0; i < g.InputCount; i++ {
		nodeOrder[i] = i
	}
	rest := make([]int, 0, totalNodeCount-g.InputCount)
	for id := g.InputCount; id < totalNodeCount; id++ {
		rest = append(rest, id)
	}
	sort.SliceStable(rest, func(a, b int) bool {
		return depth.NodeDepth[rest[a]] < depth.NodeDepth[rest[b]]
	})
	copy(nodeOrder[g.InputCount:], rest)

	newIDByOldID := make([]int, totalNodeCount)
	for newID, oldID := range nodeOrder {
		newIDByOldID[oldID] = newID
	}

	newNodeDepth := make([]int, totalNodeCount)
	for newID, oldID := range nodeOrder {
		newNodeDepth[newID] = depth.NodeDepth[oldID]
	}

	connCount := len(g.SourceID)
	remappedSource := make([]int, connCount)
	remappedTarget := make([]int, connCount)
	connectionIndexMap := make([]int, connCount)
	for i := 0; i < connCount; i++ {
		remappedSource[i] = newIDByOldID[g.SourceID[i]]
		remappedTarget[i] = newIDByOldID[g.TargetID[i]]
		connectionIndexMap[i] = i
	}

	sort.Slice(connectionIndexMap, func(a, b int) bool {
		i, j := connectionIndexMap[a], connectionIndexMap[b]
		if remappedSource[i] != remappedSource[j] {
			return remappedSource[i] < remappedSource[j]
		}
		return remappedTarget[i] < remappedTarget[j]
	})

	sourceID := make([]int, connCount)
	targetID := make([]int, connCount)
	weight := make([]float64, connCount)
	for newIdx, oldIdx := range connectionIndexMap {
		sourceID[newIdx] = remappedSource[oldIdx]
		targetID[newIdx] = remappedTarget[oldIdx]
		weight[newIdx] = g.Weight[oldIdx]
	}

	outputNodeIdx := make([]int, g.OutputCount)
	for i := 0; i < g.OutputCount; i++ {
		originalOutputID := g.InputCount + i
		outputNodeIdx[i] = newIDByOldID[originalOutputID]
	}

	graphDepth := depth.GraphDepth
	layerEnd := make([]LayerBound, graphDepth)
	nodeCursor, connCursor := 0, 0
	for currDepth := 0; currDepth < graphDepth; currDepth++ {
		for nodeCursor < totalNodeCount && newNodeDepth[nodeCursor] == currDepth {
			nodeCursor++
		}
		for connCursor < connCount && newNodeDepth[sourceID[connCursor]] == currDepth {
			connCursor++
		}
		layerEnd[currDepth] = LayerBound{EndNodeIdx: nodeCursor, EndConnectionIdx: connCursor}
	}

	return &DAG{
		InputCount:     g.InputCount,
		OutputCount:    g.OutputCount,
		TotalNodeCount: totalNodeCount,
		GraphDepth:     graphDepth,
		NodeDepth:      newNodeDepth,
		SourceID:       sourceID,
		TargetID:       targetID,
		Weight:         weight,
		OutputNodeIdx:  outputNodeIdx,
		LayerEnd:       layerEnd,
	}, nil
}
