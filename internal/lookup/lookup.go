// Package lookup composes the local name index with the remote card
// database: resolve a free-text query to a known name, then let the
// API's partial-name search have the final say.
package lookup

import (
	"context"

	"github.com/whdzera/atem/internal/match"
	"github.com/whdzera/atem/internal/models"
)

// CardSearcher is the slice of the card database client the resolver
// needs.
type CardSearcher interface {
	SearchByName(ctx context.Context, partial string, limit int) (*models.CardSearchResult, error)
}

type Resolver struct {
	Index *match.Index
	Cards CardSearcher
}

func NewResolver(index *match.Index, cards CardSearcher) *Resolver {
	return &Resolver{Index: index, Cards: cards}
}

// ResolveCard maps a query to a single card record, or nil when
// nothing matches anywhere. When the local index misses entirely, the
// unmodified query still goes to the API: the index may be stale.
func (r *Resolver) ResolveCard(ctx context.Context, query string) (*models.Card, error) {
	name := r.Index.Resolve(query)

	result, err := r.Cards.SearchByName(ctx, name, 1)
	if err != nil {
		return nil, err
	}
	if result == nil || len(result.Cards) == 0 {
		return nil, nil
	}
	return &result.Cards[0], nil
}
