package recommend

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/redis/go-redis/v9"

	"github.com/dmarkhas/gameshop/internal/domain/model"
	testhelpers "github.com/dmarkhas/gameshop/internal/test"
)

type sortedSetStub struct {
	increments map[string]map[string]float64
	ranges     map[string][]redis.Z
	incrErr    error
	rangeErr   error
}

func newSortedSetStub() *sortedSetStub {
	return &sortedSetStub{
		increments: make(map[string]map[string]float64),
		ranges:     make(map[string][]redis.Z),
	}
}

func (s *sortedSetStub) ZIncrBy(ctx context.Context, key string, increment float64, member string) *redis.FloatCmd {
	if s.incrErr != nil {
		cmd := redis.NewFloatCmd(ctx)
		cmd.SetErr(s.incrErr)
		return cmd
	}
	if s.increments[key] == nil {
		s.increments[key] = make(map[string]float64)
	}
	s.increments[key][member] += increment
	return redis.NewFloatResult(s.increments[key][member], nil)
}

func (s *sortedSetStub) ZRevRangeWithScores(ctx context.Context, key string, start, stop int64) *redis.ZSliceCmd {
	if s.rangeErr != nil {
		cmd := redis.NewZSliceCmd(ctx)
		cmd.SetErr(s.rangeErr)
		return cmd
	}
	return redis.NewZSliceCmdResult(s.ranges[key], nil)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func TestRecordPurchaseScoresEveryPairSymmetrically(t *testing.T) {
	stub := newSortedSetStub()
	rec := New(stub, &testhelpers.ProductRepositoryStub{}, discardLogger())

	if err := rec.RecordPurchase(context.Background(), []int64{1, 2, 3}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cases := []struct {
		key    string
		member string
	}{
		{"product:1:purchased_with", "2"},
		{"product:1:purchased_with", "3"},
		{"product:2:purchased_with", "1"},
		{"product:2:purchased_with", "3"},
		{"product:3:purchased_with", "1"},
		{"product:3:purchased_with", "2"},
	}
	for _, tc := range cases {
		if got := stub.increments[tc.key][tc.member]; got != 1 {
			t.Fatalf("expected score 1 for %s/%s, got %v", tc.key, tc.member, got)
		}
	}

	if got := stub.increments["product:1:purchased_with"]["1"]; got != 0 {
		t.Fatalf("product must not be co-purchased with itself, got score %v", got)
	}
}

func TestRecordPurchaseSymmetryAccumulates(t *testing.T) {
	stub := newSortedSetStub()
	rec := New(stub, &testhelpers.ProductRepositoryStub{}, discardLogger())

	for i := 0; i < 2; i++ {
		if err := rec.RecordPurchase(context.Background(), []int64{7, 9}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	forward := stub.increments["product:7:purchased_with"]["9"]
	backward := stub.increments["product:9:purchased_with"]["7"]
	if forward != 2 || backward != 2 {
		t.Fatalf("expected symmetric score 2/2, got %v/%v", forward, backward)
	}
}

func TestSuggestOrdersByDescendingScore(t *testing.T) {
	stub := newSortedSetStub()
	stub.ranges["product:1:purchased_with"] = []redis.Z{
		{Member: "3", Score: 5},
		{Member: "2", Score: 2},
	}

	products := &testhelpers.ProductRepositoryStub{
		ListByIDsFn: func(ctx context.Context, ids []int64) ([]model.Product, error) {
			// Deliberately shuffled relative to score order.
			return []model.Product{{ID: 2, Name: "Go"}, {ID: 3, Name: "Chess"}}, nil
		},
	}

	rec := New(stub, products, discardLogger())
	got, err := rec.Suggest(context.Background(), 1, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 suggestions, got %d", len(got))
	}
	if got[0].ID != 3 || got[1].ID != 2 {
		t.Fatalf("expected score order [3 2], got [%d %d]", got[0].ID, got[1].ID)
	}
}

func TestSuggestEmptyWithoutData(t *testing.T) {
	rec := New(newSortedSetStub(), &testhelpers.ProductRepositoryStub{}, discardLogger())
	got, err := rec.Suggest(context.Background(), 42, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no suggestions, got %d", len(got))
	}
}

func TestSuggestSkipsMalformedMembers(t *testing.T) {
	stub := newSortedSetStub()
	stub.ranges["product:1:purchased_with"] = []redis.Z{
		{Member: "not-a-number", Score: 9},
		{Member: "2", Score: 1},
	}

	products := &testhelpers.ProductRepositoryStub{
		ListByIDsFn: func(ctx context.Context, ids []int64) ([]model.Product, error) {
			if len(ids) != 1 || ids[0] != 2 {
				t.Fatalf("expected only id 2 to be resolved, got %v", ids)
			}
			return []model.Product{{ID: 2, Name: "Go"}}, nil
		},
	}

	rec := New(stub, products, discardLogger())
	got, err := rec.Suggest(context.Background(), 1, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].ID != 2 {
		t.Fatalf("unexpected suggestions: %v", got)
	}
}
