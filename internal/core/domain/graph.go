package domain

import (
	"slices"

	"go.trai.ch/zerr"
)

// DependencyGraph is the directed "depends on" graph over workspace members.
// Nodes are arena indices into the workspace's member slice; edges exist only
// between members. External dependencies are recorded on the members
// themselves, not in the graph. The graph is read-only after construction and
// may contain cycles (dev-dependency loops are legal in Cargo).
type DependencyGraph struct {
	ws    *Workspace
	edges [][]int
}

// BuildGraph derives the dependency graph from the workspace in a single
// pass over all declared dependencies. As a side effect it fills each
// member's External set with the declared names that did not resolve to
// another member.
func BuildGraph(ws *Workspace) *DependencyGraph {
	edges := make([][]int, len(ws.Members))
	for i := range ws.Members {
		m := &ws.Members[i]
		var external []InternedString
		for _, dep := range m.Dependencies {
			target := ws.resolve(dep)
			if target.Kind == TargetInternal {
				if !slices.Contains(edges[i], target.Member) {
					edges[i] = append(edges[i], target.Member)
				}
				continue
			}
			if !slices.Contains(external, dep.Name) {
				external = append(external, dep.Name)
			}
		}
		slices.SortFunc(external, func(a, b InternedString) int {
			return compareInterned(a, b)
		})
		m.External = external
	}
	return &DependencyGraph{ws: ws, edges: edges}
}

// resolve classifies a declared dependency. A path spec resolves in the
// member's favor; a registry, git, or bare-version spec is external even when
// a member shares the name; only a spec with no source information at all
// falls back to name matching.
func (w *Workspace) resolve(dep Dependency) DependencyTarget {
	switch dep.Hint {
	case HintExternal:
		return DependencyTarget{Kind: TargetExternal}
	case HintPath, HintUnspecified:
		if i, ok := w.Member(dep.Name); ok {
			return DependencyTarget{Kind: TargetInternal, Member: i}
		}
		return DependencyTarget{Kind: TargetExternal}
	default:
		return DependencyTarget{Kind: TargetExternal}
	}
}

// Reachable computes the transitive closure of members reachable from the
// given roots, inclusive of the roots. The traversal is an iterative
// depth-first search with a visited set, so cycles terminate and the result
// does not depend on traversal order. It returns ErrUnknownTarget if a root
// does not name a member.
func (g *DependencyGraph) Reachable(roots []string) (MemberSet, error) {
	stack := make([]int, 0, len(roots))
	for _, root := range roots {
		i, ok := g.ws.Member(NewInternedString(root))
		if !ok {
			return nil, zerr.With(ErrUnknownTarget, "target", root)
		}
		stack = append(stack, i)
	}

	kept := make(MemberSet, len(g.ws.Members))
	visited := make([]bool, len(g.ws.Members))
	for len(stack) > 0 {
		i := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visited[i] {
			continue
		}
		visited[i] = true
		kept[g.ws.Members[i].Name] = struct{}{}
		stack = append(stack, g.edges[i]...)
	}
	return kept, nil
}

// Dropped returns the names of members outside the kept set, in arena order.
func (g *DependencyGraph) Dropped(kept MemberSet) []InternedString {
	var dropped []InternedString
	for _, m := range g.ws.Members {
		if !kept.Has(m.Name) {
			dropped = append(dropped, m.Name)
		}
	}
	return dropped
}

func compareInterned(a, b InternedString) int {
	switch as, bs := a.String(), b.String(); {
	case as < bs:
		return -1
	case as > bs:
		return 1
	default:
		return 0
	}
}
