package modgraph

// Graph is a collection of module nodes and their dependency edges. It is
// not safe for concurrent mutation; build it on one goroutine and share it
// read-only afterwards.
type Graph struct {
	// order lists node IDs in the order they were first added.
	order []string
	// nodes stores all nodes in the graph, keyed by their unique ID.
	nodes map[string]*node
}

// node represents a single vertex in the graph. It is un-exported to
// enforce interaction with the graph via the public API (using string IDs),
// not by direct struct manipulation.
type node struct {
	id string
	// deps holds the IDs this node depends on, in insertion order.
	deps []string
	// dependents holds the IDs that depend on this node, in insertion order.
	dependents []string
}
