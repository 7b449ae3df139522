package gamma1

import (
	"fmt"

	"github.com/katalvlaran/uc/gamma2"
)

// halfGraph is one side of the bipartite double cover used by Color: a[i]
// and b[i] hold up to two neighbour ids (0 = empty), in the other side's id
// space, and colored[i] marks a vertex whose incident edges have all been
// consumed by the walk.
//
// This is the same half-edge/twin/used-mark shape tsp.EulerianCircuit uses
// for Hierholzer's algorithm, generalized from "walk an Eulerian circuit"
// to "2-colour a max-degree-2 bipartite double cover".
type halfGraph struct {
	a, b    []int
	colored []bool
}

func newHalfGraph(n int) *halfGraph {
	return &halfGraph{a: make([]int, n+1), b: make([]int, n+1), colored: make([]bool, n+1)}
}

// addBipartiteEdge records an L-side -> R-side edge, filling the first
// available slot pair on both sides, in the same priority order gamma2.AddEdge
// uses.
func addBipartiteEdge(l *halfGraph, i int, r *halfGraph, j int) error {
	switch {
	case l.a[i] == 0 && r.a[j] == 0:
		l.a[i], r.a[j] = j, i
	case l.a[i] == 0 && r.b[j] == 0:
		l.a[i], r.b[j] = j, i
	case l.b[i] == 0 && r.a[j] == 0:
		l.b[i], r.a[j] = j, i
	case l.b[i] == 0 && r.b[j] == 0:
		l.b[i], r.b[j] = j, i
	default:
		return fmt.Errorf("%w: bipartite slot exhausted at %d,%d", ErrColoringInvariantViolated, i, j)
	}
	return nil
}

// otherOf returns the neighbour of self in hg other than other, provided
// that neighbour exists and has not already been marked colored; returns 0
// otherwise. Mirrors DAG_Gamma2::other_child_or_parent.
func otherOf(hg *halfGraph, self, other int) int {
	if self == 0 {
		return 0
	}
	a, b := hg.a[self], hg.b[self]
	switch {
	case a == other && b != 0 && !hg.colored[b]:
		return b
	case b == other && a != 0 && !hg.colored[a]:
		return a
	default:
		return 0
	}
}

// smallestUncoloredWithChild returns the lowest id i such that L-copy i is
// not yet colored and has at least one recorded neighbour, or 0 if none
// remain.
func (hg *halfGraph) smallestUncoloredWithChild() int {
	for i := 1; i < len(hg.a); i++ {
		if !hg.colored[i] && (hg.a[i] != 0 || hg.b[i] != 0) {
			return i
		}
	}
	return 0
}

func buildBipartite(g *gamma2.Graph) (l, r *halfGraph, edges int, err error) {
	n := g.N()
	l, r = newHalfGraph(n), newHalfGraph(n)
	for i := 1; i <= n; i++ {
		node := g.Node(i)
		if node.Left != 0 {
			if err := addBipartiteEdge(l, i, r, node.Left); err != nil {
				return nil, nil, 0, err
			}
			edges++
		}
		if node.Right != 0 {
			if err := addBipartiteEdge(l, i, r, node.Right); err != nil {
				return nil, nil, 0, err
			}
			edges++
		}
	}
	return l, r, edges, nil
}

// colorEdge writes one Γ₂ edge (parent -> child) into g1 (color == true) or
// g2 (color == false), propagating the IsOutput flag from the originating
// Γ₂ graph. Returns false (a no-op) if either endpoint is 0.
func colorEdge(src *gamma2.Graph, parent, child int, color bool, g1, g2 *Graph) bool {
	if parent == 0 || child == 0 {
		return false
	}
	target := g2
	if color {
		target = g1
	}
	if n := src.Node(child); n != nil && n.IsOutput {
		target.nodes[child-1].IsOutput = true
	}
	target.addEdge(parent, child)
	return true
}

// Color splits a Γ₂ supergraph's edges into two edge-disjoint Γ₁ graphs
// (C3), by walking the Eulerian structure of the bipartite double cover:
// L-copies (one per Γ₂ node, degree = number of present children) and
// R-copies (one per Γ₂ node, degree = number of present parents).
//
// Each connected component of the double cover is a path or a cycle (every
// vertex has degree <= 2); the walk grows a single component outward from a
// seed edge in both directions at once — extending backward from the seed's
// child via its other parent, and forward from the seed's parent via its
// other child — colouring a pair of new edges each round with the same
// (alternating) colour, until both directions are exhausted. This correctly
// assigns the two edges at a degree-2 vertex different colours without ever
// revisiting a vertex, which a single-direction-per-call walk that resets
// colour state at every restart would not.
//
// prevNodeNum is the Γ₂ node count one recursion level up (0 at the top of
// the split tree); when it is odd, the larger resulting Γ₁ graph carries one
// extra node whose last slot is a parentless leftover that must be trimmed
// for the parity invariant (C4) to hold, and Color returns that corrected
// graph first.
//
// Complexity: O(E) in the number of Γ₂ edges.
func Color(src *gamma2.Graph, prevNodeNum int) (first, second *Graph, err error) {
	n := src.N()
	l, r, edges, err := buildBipartite(src)
	if err != nil {
		return nil, nil, err
	}
	g1 := NewGraph(n)
	g2 := NewGraph(n)

	color := true
	for edges > 0 {
		parent := l.smallestUncoloredWithChild()
		if parent == 0 {
			return nil, nil, fmt.Errorf("%w: %d edges left unassigned", ErrColoringInvariantViolated, edges)
		}
		child := l.a[parent]
		if child == 0 {
			child = l.b[parent]
		}
		if colorEdge(src, parent, child, color, g1, g2) {
			edges--
		}

		oldParent, oldChild := 0, 0
		b1, b2 := true, false
		for b1 || b2 {
			oldChildParent, oldParentChild := oldParent, oldChild
			oldChild, oldParent = child, parent

			if oldChildParent == 0 {
				parent = otherOf(r, oldChild, oldParent)
			} else {
				parent = otherOf(r, oldChild, oldChildParent)
			}
			if oldParentChild == 0 {
				cand := otherOf(l, oldParent, oldChild)
				if cand != oldChild {
					child = cand
				} else {
					child = 0
				}
			} else {
				child = otherOf(l, oldParent, oldParentChild)
			}

			color = !color
			b1 = colorEdge(src, parent, oldChild, color, g1, g2)
			if b1 {
				r.colored[oldChild] = true
				edges--
			}
			b2 = false
			if !(oldParent == parent && oldChild == child) {
				b2 = colorEdge(src, oldParent, child, color, g1, g2)
				if b2 {
					l.colored[oldParent] = true
					edges--
				}
			}
			if parent == 0 && oldChild != 0 {
				r.colored[oldChild] = true
			}
			if child == 0 && oldParent != 0 {
				l.colored[oldParent] = true
			}
		}
	}

	if prevNodeNum%2 == 1 {
		switch {
		case n > 0 && g1.lastNode().Parent == 0:
			g1.deleteLastNode()
			return g1, g2, nil
		case n > 0 && g2.lastNode().Parent == 0:
			g2.deleteLastNode()
			return g2, g1, nil
		default:
			return nil, nil, fmt.Errorf("%w: no parentless last node for odd parity", ErrColoringInvariantViolated)
		}
	}
	return g1, g2, nil
}
