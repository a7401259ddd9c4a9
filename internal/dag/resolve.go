package dag

// Invocation is a single execution request for one target, resolved to
// the linear, dependency-ordered sequence of targets to run.
type Invocation struct {
	// Target is the requested target name.
	Target string
	// Args holds pass-through arguments named after the target on the
	// command line. No current target consumes them.
	Args []string
	// Steps is the dependency closure in declaration order, each
	// target at most once, ending with the requested target itself.
	Steps []*Node
}

// Resolve flattens the named target's dependency closure into an
// Invocation. Dependencies are visited depth-first in declaration
// order; a target already visited in this invocation is not repeated,
// so a diamond dependency runs at most once. Returns
// *UnknownTargetError if the name is not in the graph.
func (g *Graph) Resolve(name string, args []string) (*Invocation, error) {
	root, ok := g.nodes[name]
	if !ok {
		return nil, &UnknownTargetError{Name: name}
	}

	inv := &Invocation{Target: name, Args: args}
	visited := make(map[string]bool)

	var visit func(node *Node)
	visit = func(node *Node) {
		if visited[node.Name] {
			return
		}
		visited[node.Name] = true
		for _, dep := range node.Deps {
			visit(dep)
		}
		inv.Steps = append(inv.Steps, node)
	}
	visit(root)

	return inv, nil
}
