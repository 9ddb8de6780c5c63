package section

import (
	"fmt"
	"sort"
	"strings"
)

// Loop is an ordered cycle of curve identifiers whose endpoints chain into a
// closed path. A loop and its reverse traversal are the same loop; DetectLoops
// reports each exactly once, starting at its lowest point identifier and
// running toward the lower-numbered of that point's two neighbors.
type Loop []int

type halfEdge struct {
	curve int
	to    int
}

// DetectLoops searches the undirected graph formed by the curves' endpoint
// identifiers for simple cycles of minLen to maxLen edges. The graph is
// sketch-sized, so a depth-bounded path extension from every vertex is
// exhaustive and still cheap. Each cycle is only discovered from its lowest
// vertex: paths never descend below the starting identifier.
func DetectLoops(curves []Curve, minLen, maxLen int) []Loop {
	adj := map[int][]halfEdge{}
	for _, c := range curves {
		adj[c.Start] = append(adj[c.Start], halfEdge{curve: c.ID, to: c.End})
		adj[c.End] = append(adj[c.End], halfEdge{curve: c.ID, to: c.Start})
	}

	starts := make([]int, 0, len(adj))
	for v := range adj {
		if len(adj[v]) >= 2 {
			starts = append(starts, v)
		}
	}
	sort.Ints(starts)

	var loops []Loop
	seen := map[string]bool{}

	for _, start := range starts {
		onPath := map[int]bool{}
		var extend func(v int, path, verts []int)
		extend = func(v int, path, verts []int) {
			for _, he := range adj[v] {
				if containsInt(path, he.curve) {
					continue
				}
				if he.to == start {
					if len(path)+1 >= minLen {
						record(&loops, seen, append(append(Loop{}, path...), he.curve), verts)
					}
					continue
				}
				if he.to < start || onPath[he.to] || len(path)+1 >= maxLen {
					continue
				}
				onPath[he.to] = true
				extend(he.to, append(path, he.curve), append(verts, he.to))
				delete(onPath, he.to)
			}
		}
		extend(start, nil, []int{start})
	}
	return loops
}

// record canonicalizes a discovered cycle and keeps it if unseen. A simple
// cycle is fully determined by its set of edges, so the deduplication key is
// the sorted curve identifiers; the stored traversal order is normalized so
// the second vertex is the smaller neighbor of the start.
func record(loops *[]Loop, seen map[string]bool, loop Loop, verts []int) {
	ids := append([]int{}, loop...)
	sort.Ints(ids)
	var key strings.Builder
	for _, id := range ids {
		fmt.Fprintf(&key, "%d,", id)
	}
	if seen[key.String()] {
		return
	}
	seen[key.String()] = true

	if len(verts) >= 3 && verts[1] > verts[len(verts)-1] {
		reverse(loop)
	}
	*loops = append(*loops, loop)
}

// reverse flips the traversal direction in place: the closing curve becomes
// the one leaving the start vertex.
func reverse(l Loop) {
	for i, j := 0, len(l)-1; i < j; i, j = i+1, j-1 {
		l[i], l[j] = l[j], l[i]
	}
}

func containsInt(s []int, x int) bool {
	for _, v := range s {
		if v == x {
			return true
		}
	}
	return false
}
