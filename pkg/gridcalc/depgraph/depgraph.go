// Package depgraph is a directed dependency graph over string identifiers,
// keeping forward and reverse adjacency in lockstep. It is a standalone
// primitive: nothing wires it to the formula evaluator, and cycle prevention
// is deliberately out of scope (self-loops are structurally permitted).
package depgraph

// Graph records which node identifiers reference which others.
type Graph struct {
	forward map[string]map[string]struct{}
	reverse map[string]map[string]struct{}
}

// New creates an empty graph.
func New() *Graph {
	return &Graph{
		forward: make(map[string]map[string]struct{}),
		reverse: make(map[string]map[string]struct{}),
	}
}

// AddNode ensures adjacency entries exist for id. Idempotent.
func (g *Graph) AddNode(id string) {
	if g.forward[id] == nil {
		g.forward[id] = make(map[string]struct{})
	}
	if g.reverse[id] == nil {
		g.reverse[id] = make(map[string]struct{})
	}
}

// HasNode reports whether id is present in the graph.
func (g *Graph) HasNode(id string) bool {
	_, ok := g.forward[id]
	return ok
}

// RemoveNode deletes id and purges it from every other node's adjacency
// sets. O(total edges).
func (g *Graph) RemoveNode(id string) {
	if !g.HasNode(id) {
		return
	}
	for to := range g.forward[id] {
		delete(g.reverse[to], id)
	}
	for from := range g.reverse[id] {
		delete(g.forward[from], id)
	}
	delete(g.forward, id)
	delete(g.reverse, id)
}

// AddEdge records that from references to, creating either endpoint if
// missing. Edges form a set; re-adding is a no-op.
func (g *Graph) AddEdge(from, to string) {
	g.AddNode(from)
	g.AddNode(to)
	g.forward[from][to] = struct{}{}
	g.reverse[to][from] = struct{}{}
}

// RemoveEdge deletes the edge from -> to if present. Nodes stay.
func (g *Graph) RemoveEdge(from, to string) {
	if g.forward[from] != nil {
		delete(g.forward[from], to)
	}
	if g.reverse[to] != nil {
		delete(g.reverse[to], from)
	}
}

// Dependencies returns the nodes id points to, in no particular order.
func (g *Graph) Dependencies(id string) []string {
	return keys(g.forward[id])
}

// Dependents returns the nodes pointing to id, in no particular order.
func (g *Graph) Dependents(id string) []string {
	return keys(g.reverse[id])
}

// NodeCount returns the number of nodes in the graph.
func (g *Graph) NodeCount() int {
	return len(g.forward)
}

func keys(set map[string]struct{}) []string {
	if len(set) == 0 {
		return nil
	}
	out := make([]string, 0, len(set))
	for id := range set {
		out = append(out, id)
	}
	return out
}
