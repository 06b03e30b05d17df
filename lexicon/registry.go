package lexicon

import "sync"

// Registry assigns a unique integer identity to each distinct lemma root.
// Identities start at 1 and grow monotonically; 0 is reserved for tokens
// excluded from ranking. A Registry is scoped to one run, so tests and
// parallel runs stay isolated.
type Registry struct {
	mu    sync.Mutex
	ids   map[string]int
	roots []string
}

func NewRegistry() *Registry {
	return &Registry{ids: map[string]int{}}
}

// ID returns the identity for root, assigning the next free one on first
// sight. Safe for concurrent use.
func (r *Registry) ID(root string) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	if id, ok := r.ids[root]; ok {
		return id
	}

	r.roots = append(r.roots, root)
	id := len(r.roots)
	r.ids[root] = id
	return id
}

// Root returns the lemma root for a previously assigned identity, or ""
// if the identity is unknown.
func (r *Registry) Root(id int) string {
	r.mu.Lock()
	defer r.mu.Unlock()

	if id < 1 || id > len(r.roots) {
		return ""
	}
	return r.roots[id-1]
}

// Len returns the number of assigned identities.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.roots)
}

// Merge folds the identities of other into r and returns the translation
// from other's identities to r's. Used to reconcile per-worker registries
// before graph construction.
func (r *Registry) Merge(other *Registry) map[int]int {
	other.mu.Lock()
	roots := make([]string, len(other.roots))
	copy(roots, other.roots)
	other.mu.Unlock()

	translate := make(map[int]int, len(roots))
	for i, root := range roots {
		translate[i+1] = r.ID(root)
	}
	return translate
}
