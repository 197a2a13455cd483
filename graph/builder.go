package graph

import (
	"github.com/pkg/errors"
	"sort"
)

// BuildCyclic compiles a sparse connection list into a compacted runtime
// graph. inputCount and outputCount fix the dense ID convention: node IDs
// [0,inputCount) are inputs, [inputCount,inputCount+outputCount) are
// outputs, and any other node ID appearing in the connection list is a
// hidden node, renumbered to a dense ID starting at inputCount+outputCount
// in ascending order of its original ID.
//
// This mirrors the sparse-ID -> dense-index remap that
// Network.FastNetworkSolver performs via its neuronLookup map, generalized
// from fixed bias/input/output/hidden neuron buckets to the three-way
// input/output/hidden convention the graph package uses.
func BuildCyclic(connections []WeightedConnection, inputCount, outputCount int) (*Cyclic, error) {
	if inputCount < 0 || outputCount < 0 {
		return nil, errors.Wrap(ErrInvalidGraph, "input/output counts must be non-negative")
	}
	reservedCount := inputCount + outputCount

	hiddenSet := make(map[int]struct{})
	for _, c := range connections {
		if c.Source < 0 || c.Target < 0 {
			return nil, errors.Wrapf(ErrInvalidGraph, "negative node id in connection (%d -> %d)", c.Source, c.Target)
		}
		if c.Source >= reservedCount {
			hiddenSet[c.Source] = struct{}{}
		}
		if c.Target >= reservedCount {
			hiddenSet[c.Target] = struct{}{}
		}
	}

	hiddenIDs := make([]int, 0, len(hiddenSet))
	for id := range hiddenSet {
		hiddenIDs = append(hiddenIDs, id)
	}
	sort.Ints(hiddenIDs)

	hiddenIdxByID := make(map[int]int, len(hiddenIDs))
	for i, id := range hiddenIDs {
		hiddenIdxByID[id] = reservedCount + i
	}
	totalNodeCount := reservedCount + len(hiddenIDs)

	remap := func(id int) int {
		if id < reservedCount {
			return id
		}
		return hiddenIdxByID[id]
	}

	sourceID := make([]int, len(connections))
	targetID := make([]int, len(connections))
	weight := make([]float64, len(connections))
	order := make([]int, len(connections))
	for i, c := range connections {
		sourceID[i] = remap(c.Source)
		targetID[i] = remap(c.Target)
		weight[i] = c.Weight
		order[i] = i
	}

	sort.Slice(order, func(a, b int) bool {
		i, j := order[a], order[b]
		if sourceID[i] != sourceID[j] {
			return sourceID[i] < sourceID[j]
		}
		return targetID[i] < targetID[j]
	})

	sortedSource := make([]int, len(connections))
	sortedTarget := make([]int, len(connections))
	sortedWeight := make([]float64, len(connections))
	for newIdx, oldIdx := range order {
		sortedSource[newIdx] = sourceID[oldIdx]
		sortedTarget[newIdx] = targetID[oldIdx]
		sortedWeight[newIdx] = weight[oldIdx]
	}

	return &Cyclic{
		InputCount:     inputCount,
		OutputCount:    outputCount,
		TotalNodeCount: totalNodeCount,
		SourceID:       sortedSource,
		TargetID:       sortedTarget,
		Weight:         sortedWeight,
	}, nil
}
