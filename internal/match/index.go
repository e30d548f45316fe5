package match

import (
	"encoding/json"
	"fmt"
	"os"
)

// Index holds the corpus of known card names together with their
// normalized forms. It is built once at startup and read-only after
// that, so lookups need no locking.
type Index struct {
	canonical  []string
	normalized []string
}

// NewIndex builds an index from canonical card names, preserving their
// order. Order matters: substring resolution returns the first match.
func NewIndex(names []string) *Index {
	idx := &Index{
		canonical:  make([]string, 0, len(names)),
		normalized: make([]string, 0, len(names)),
	}
	for _, name := range names {
		idx.canonical = append(idx.canonical, name)
		idx.normalized = append(idx.normalized, Normalize(name))
	}
	return idx
}

// LoadIndex reads a JSON array of canonical card names, the same
// format the ygoprodeck name dump uses.
func LoadIndex(path string) (*Index, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read name corpus: %w", err)
	}

	var names []string
	if err := json.Unmarshal(data, &names); err != nil {
		return nil, fmt.Errorf("failed to parse name corpus: %w", err)
	}

	return NewIndex(names), nil
}

func (idx *Index) Len() int {
	return len(idx.canonical)
}
