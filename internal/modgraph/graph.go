package modgraph

import (
	"fmt"
	"slices"
)

// New creates and returns an initialized, empty Graph.
func New() *Graph {
	return &Graph{
		nodes: make(map[string]*node),
	}
}

// AddNode adds a new node with the given ID to the graph. If a node with
// the same ID already exists, the function does nothing.
func (g *Graph) AddNode(id string) {
	if _, ok := g.nodes[id]; ok {
		return
	}
	g.nodes[id] = &node{id: id}
	g.order = append(g.order, id)
}

// AddEdge records that `from` depends on `to`. Both nodes must exist.
// Adding the same edge twice is a no-op. Self edges are allowed so that a
// module listing itself surfaces as a cycle.
func (g *Graph) AddEdge(from, to string) error {
	fromNode, ok := g.nodes[from]
	if !ok {
		return fmt.Errorf("source node not found: %s", from)
	}
	toNode, ok := g.nodes[to]
	if !ok {
		return fmt.Errorf("destination node not found: %s", to)
	}
	if slices.Contains(fromNode.deps, to) {
		return nil
	}
	fromNode.deps = append(fromNode.deps, to)
	toNode.dependents = append(toNode.dependents, from)
	return nil
}

// Has reports whether the graph contains the node.
func (g *Graph) Has(id string) bool {
	_, ok := g.nodes[id]
	return ok
}

// Len returns the number of nodes.
func (g *Graph) Len() int { return len(g.order) }

// Nodes returns all node IDs in insertion order.
func (g *Graph) Nodes() []string { return slices.Clone(g.order) }

// Dependencies returns the IDs the given node depends on, in insertion order.
func (g *Graph) Dependencies(id string) ([]string, error) {
	n, ok := g.nodes[id]
	if !ok {
		return nil, fmt.Errorf("node not found: %s", id)
	}
	return slices.Clone(n.deps), nil
}

// Dependents returns the IDs that depend on the given node, in insertion order.
func (g *Graph) Dependents(id string) ([]string, error) {
	n, ok := g.nodes[id]
	if !ok {
		return nil, fmt.Errorf("node not found: %s", id)
	}
	return slices.Clone(n.dependents), nil
}

// FindCycle returns one cycle as a closed path, e.g. [A B A], or nil when
// the graph is acyclic. Roots are visited in insertion order, so the same
// graph always yields the same cycle.
func (g *Graph) FindCycle() []string {
	// permanent: fully explored and known not to lead back into the stack.
	// onStack: position of a node in the current recursion stack.
	permanent := make(map[string]bool, len(g.nodes))
	onStack := make(map[string]int)
	var stack []string
	var cycle []string

	var visit func(id string) bool
	visit = func(id string) bool {
		onStack[id] = len(stack)
		stack = append(stack, id)

		for _, dep := range g.nodes[id].deps {
			if pos, ok := onStack[dep]; ok {
				cycle = append(slices.Clone(stack[pos:]), dep)
				return true
			}
			if !permanent[dep] && visit(dep) {
				return true
			}
		}

		stack = stack[:len(stack)-1]
		delete(onStack, id)
		permanent[id] = true
		return false
	}

	for _, id := range g.order {
		if !permanent[id] && visit(id) {
			return cycle
		}
	}
	return nil
}

// DetectCycles returns an error describing the first cycle found, if any.
func (g *Graph) DetectCycles() error {
	if cycle := g.FindCycle(); cycle != nil {
		return fmt.Errorf("cycle detected: %s", FormatPath(cycle))
	}
	return nil
}
