package graph

import "github.com/pkg/errors"

var (
	// ErrInvalidGraph is raised by BuildCyclic when the connection list or
	// node counts fail the structural contract: a negative node ID, or a
	// negative input or output count. No other consistency check between the
	// counts and the node IDs is made.
	ErrInvalidGraph = errors.New("invalid graph: structural constraint violated")
	// ErrCycleDetected is raised defensively by AnalyzeDepth and
	// VerifyAcyclic when a back-edge is found in a graph the caller claimed
	// was acyclic. BuildAcyclic itself does not check for cycles.
	ErrCycleDetected = errors.New("cycle detected in graph claimed to be acyclic")
)
