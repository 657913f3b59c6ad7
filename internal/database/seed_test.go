package database

import (
	"context"
	"fmt"
	"testing"
	"time"

	"backend/internal/models"
)

func TestPlaceholderProductsAreValid(t *testing.T) {
	products := placeholderProducts()
	if len(products) != 5 {
		t.Fatalf("expected 5 placeholder products, got %d", len(products))
	}
	for _, p := range products {
		if p.Title == "" || p.Category == "" {
			t.Fatalf("placeholder product missing required fields: %+v", p)
		}
		if p.Price < 0 {
			t.Fatalf("placeholder product has negative price: %+v", p)
		}
		if !p.InStock {
			t.Fatalf("placeholder product should default to in stock: %+v", p)
		}
	}
}

func TestPlaceholderReviewsAreValid(t *testing.T) {
	reviews := placeholderReviews()
	if len(reviews) != 2 {
		t.Fatalf("expected 2 placeholder reviews, got %d", len(reviews))
	}
	for _, r := range reviews {
		if r.Rating < 1 || r.Rating > 5 {
			t.Fatalf("placeholder review rating out of range: %+v", r)
		}
		if r.Source != "website" {
			t.Fatalf("placeholder review should carry the website source: %+v", r)
		}
	}
}

func TestPlaceholderBlogPostsHaveUniqueSlugs(t *testing.T) {
	now := time.Now().UTC()
	posts := placeholderBlogPosts(now)
	if len(posts) != 4 {
		t.Fatalf("expected 4 placeholder posts, got %d", len(posts))
	}

	slugs := map[string]struct{}{}
	for _, p := range posts {
		if p.Slug == "" || p.Title == "" || p.Category == "" {
			t.Fatalf("placeholder post missing required fields: %+v", p)
		}
		if _, dup := slugs[p.Slug]; dup {
			t.Fatalf("duplicate placeholder slug %q", p.Slug)
		}
		slugs[p.Slug] = struct{}{}
		if !p.PublishedAt.Equal(now) {
			t.Fatalf("placeholder post should be stamped with the seed time: %+v", p)
		}
	}
}

func countingSeedFuncs(count int64, countErr error, inserts *int) seedFuncs {
	return seedFuncs{
		count: func(context.Context, string) (int64, error) {
			return count, countErr
		},
		insert: func(context.Context, string, interface{}) (string, error) {
			*inserts++
			return "", nil
		},
	}
}

func TestSeedCollectionNeverInsertsIntoPopulatedCollection(t *testing.T) {
	inserts := 0
	store := countingSeedFuncs(3, nil, &inserts)
	docs := []interface{}{models.Review{Name: "Anika", Rating: 5, Comment: "ok", Source: "website"}}

	// Twice, as a repeat seeding call would run on every list request.
	seedCollection(context.Background(), store, "review", docs)
	seedCollection(context.Background(), store, "review", docs)

	if inserts != 0 {
		t.Fatalf("expected no inserts into a populated collection, got %d", inserts)
	}
}

func TestSeedCollectionFillsEmptyCollection(t *testing.T) {
	inserts := 0
	store := countingSeedFuncs(0, nil, &inserts)
	docs := []interface{}{
		models.Review{Name: "Anika", Rating: 5, Comment: "ok", Source: "website"},
		models.Review{Name: "Ravi", Rating: 4, Comment: "good", Source: "website"},
	}

	seedCollection(context.Background(), store, "review", docs)

	if inserts != len(docs) {
		t.Fatalf("expected %d inserts into an empty collection, got %d", len(docs), inserts)
	}
}

func TestSeedCollectionSkipsInsertsWhenCountFails(t *testing.T) {
	inserts := 0
	store := countingSeedFuncs(0, fmt.Errorf("server selection error"), &inserts)

	seedCollection(context.Background(), store, "review", []interface{}{models.Review{Name: "Anika"}})

	if inserts != 0 {
		t.Fatalf("expected no inserts when the count fails, got %d", inserts)
	}
}

func TestEnsureSeedDataNoopsWithoutStore(t *testing.T) {
	// Must not panic or block when the process runs without a database.
	EnsureSeedData(context.Background(), nil)
}
