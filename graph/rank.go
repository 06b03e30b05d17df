package graph

import "math"

// RankOptions tunes the damped rank propagation.
type RankOptions struct {
	// Damping is the probability of following an edge rather than
	// teleporting.
	Damping float64

	// Tol is the L1 convergence tolerance between iterations.
	Tol float64

	// MaxIter caps the iteration count. Hitting the cap is not fatal:
	// the best-effort vector is returned with Converged false.
	MaxIter int
}

func DefaultRankOptions() RankOptions {
	return RankOptions{Damping: 0.85, Tol: 1e-6, MaxIter: 100}
}

// Result is a normalized rank vector over the graph nodes.
type Result struct {
	Ranks map[string]float64

	Iterations int

	// Converged is false when MaxIter was reached first; the vector is
	// then an approximation.
	Converged bool
}

// Rank runs damped iterative rank diffusion over the graph. Every node
// starts at 1/N; dangling nodes redistribute their mass uniformly. The
// result sums to 1.0 and does not depend on edge insertion order.
func (g *Graph) Rank(opts RankOptions) Result {
	nodes := g.Nodes()
	n := len(nodes)

	res := Result{Ranks: make(map[string]float64, n), Converged: true}
	if n == 0 {
		return res
	}

	index := make(map[string]int, n)
	for i, node := range nodes {
		index[node] = i
	}

	// total outgoing weight per node; zero marks a dangling node
	outWeight := make([]float64, n)
	for from, out := range g.weights {
		fi := index[from]
		for _, w := range out {
			outWeight[fi] += w
		}
	}

	nf := float64(n)
	ranks := make([]float64, n)
	for i := range ranks {
		ranks[i] = 1.0 / nf
	}

	d := opts.Damping
	base := (1.0 - d) / nf

	for iter := 0; iter < opts.MaxIter; iter++ {
		next := make([]float64, n)

		dangling := 0.0
		for i := range ranks {
			if outWeight[i] == 0 {
				dangling += ranks[i]
			}
		}

		for i := range next {
			next[i] = base + d*dangling/nf
		}

		// all updates read the previous iteration's vector only
		for _, from := range nodes {
			fi := index[from]
			if outWeight[fi] == 0 {
				continue
			}
			for to, w := range g.weights[from] {
				next[index[to]] += d * (w / outWeight[fi]) * ranks[fi]
			}
		}

		err := 0.0
		for i := range next {
			err += math.Abs(next[i] - ranks[i])
		}

		ranks = next
		res.Iterations = iter + 1

		if err < opts.Tol {
			for i, node := range nodes {
				res.Ranks[node] = ranks[i]
			}
			return res
		}
	}

	res.Converged = false
	for i, node := range nodes {
		res.Ranks[node] = ranks[i]
	}
	return res
}
