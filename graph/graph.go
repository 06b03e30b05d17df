// Package graph builds the corpus-wide lexical co-occurrence graph and
// propagates importance over it.
package graph

import (
	"sort"

	"github.com/grafrank/grafrank/sentence"
)

// DefaultWindow is the tiling window: how many kept-token slots ahead a
// pair may reach, and the maximum raw position gap of a pair.
const DefaultWindow = 3

// Graph is a directed weighted graph over lemma roots. Edge weights are
// co-occurrence counts; self-loops are never created.
type Graph struct {
	weights map[string]map[string]float64
	nodes   map[string]struct{}
}

func New() *Graph {
	return &Graph{
		weights: map[string]map[string]float64{},
		nodes:   map[string]struct{}{},
	}
}

// AddEdge increments the weight of from→to, creating the edge with
// weight 1 when absent. Self-loops are ignored.
func (g *Graph) AddEdge(from, to string) {
	if from == to {
		return
	}

	g.nodes[from] = struct{}{}
	g.nodes[to] = struct{}{}

	out, ok := g.weights[from]
	if !ok {
		out = map[string]float64{}
		g.weights[from] = out
	}
	out[to]++
}

// Weight returns the weight of from→to, 0 when the edge does not exist.
func (g *Graph) Weight(from, to string) float64 {
	return g.weights[from][to]
}

// Len returns the number of nodes.
func (g *Graph) Len() int {
	return len(g.nodes)
}

// Nodes returns the node roots sorted, for deterministic iteration.
func (g *Graph) Nodes() []string {
	nodes := make([]string, 0, len(g.nodes))
	for n := range g.nodes {
		nodes = append(nodes, n)
	}
	sort.Strings(nodes)
	return nodes
}

// Merge folds the nodes and edge weights of other into g. Parallel
// builders accumulate into independent subgraphs and merge before
// ranking.
func (g *Graph) Merge(other *Graph) {
	for n := range other.nodes {
		g.nodes[n] = struct{}{}
	}

	for from, out := range other.weights {
		dst, ok := g.weights[from]
		if !ok {
			dst = map[string]float64{}
			g.weights[from] = dst
		}
		for to, w := range out {
			dst[to] += w
		}
	}
}

// AddSentence tiles the kept tokens of one sentence into the graph.
func (g *Graph) AddSentence(s sentence.Sentence, window int) {
	for _, pair := range Tiles(s.Kept(), window) {
		g.AddEdge(pair[0], pair[1])
	}
}

// Tiles generates the co-occurring root pairs of kept tokens. A pair
// (i, j) is emitted when j lies within the next window kept slots AND
// the raw position gap is at most window. The second check bounds the
// window independently when unkept tokens were skipped between i and j.
func Tiles(kept []sentence.Token, window int) [][2]string {
	var pairs [][2]string

	for i := 0; i < len(kept)-1; i++ {
		w0 := kept[i]

		for j := i + 1; j < len(kept) && j < i+1+window; j++ {
			w1 := kept[j]

			if w1.Idx-w0.Idx <= window {
				pairs = append(pairs, [2]string{w0.Root, w1.Root})
			}
		}
	}

	return pairs
}
