package recommend

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strconv"

	"github.com/redis/go-redis/v9"

	"github.com/dmarkhas/gameshop/internal/domain/model"
	"github.com/dmarkhas/gameshop/internal/domain/repository"
)

// sortedSets is the slice of redis commands the recommender issues.
// *redis.Client satisfies it; tests substitute a stub.
type sortedSets interface {
	ZIncrBy(ctx context.Context, key string, increment float64, member string) *redis.FloatCmd
	ZRevRangeWithScores(ctx context.Context, key string, start, stop int64) *redis.ZSliceCmd
}

// Recommender scores co-purchased product pairs in redis sorted sets and
// suggests the highest scored companions for a product.
type Recommender struct {
	rdb      sortedSets
	products repository.ProductRepository
	logger   *slog.Logger
}

// New constructs a Recommender around an injected redis client.
func New(rdb sortedSets, products repository.ProductRepository, logger *slog.Logger) *Recommender {
	return &Recommender{rdb: rdb, products: products, logger: logger}
}

func productKey(id int64) string {
	return fmt.Sprintf("product:%d:purchased_with", id)
}

// RecordPurchase increments the co-purchase score of every ordered pair of
// distinct products in the list, symmetrically: score(a,b) == score(b,a).
func (r *Recommender) RecordPurchase(ctx context.Context, productIDs []int64) error {
	for _, id := range productIDs {
		for _, with := range productIDs {
			if id == with {
				continue
			}
			member := strconv.FormatInt(with, 10)
			if err := r.rdb.ZIncrBy(ctx, productKey(id), 1, member).Err(); err != nil {
				return fmt.Errorf("record co-purchase %d/%d: %w", id, with, err)
			}
		}
	}
	return nil
}

// Suggest returns up to maxResults products most often bought together with
// the given product, highest score first. An empty slice means no
// co-purchase data exists yet.
func (r *Recommender) Suggest(ctx context.Context, productID int64, maxResults int) ([]model.Product, error) {
	if maxResults <= 0 {
		return nil, nil
	}

	scored, err := r.rdb.ZRevRangeWithScores(ctx, productKey(productID), 0, int64(maxResults)-1).Result()
	if err != nil {
		return nil, fmt.Errorf("read co-purchase scores: %w", err)
	}
	if len(scored) == 0 {
		return nil, nil
	}

	scores := make(map[int64]float64, len(scored))
	ids := make([]int64, 0, len(scored))
	for _, z := range scored {
		member, ok := z.Member.(string)
		if !ok {
			continue
		}
		id, err := strconv.ParseInt(member, 10, 64)
		if err != nil {
			r.logger.Warn("skipping malformed co-purchase member", slog.String("member", member))
			continue
		}
		ids = append(ids, id)
		scores[id] = z.Score
	}

	products, err := r.products.ListByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	// The id lookup does not preserve score order, so restore it.
	sort.SliceStable(products, func(i, j int) bool {
		return scores[products[i].ID] > scores[products[j].ID]
	})
	return products, nil
}
