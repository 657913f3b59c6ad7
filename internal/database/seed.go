package database

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"backend/internal/models"
)

func placeholderProducts() []models.Product {
	return []models.Product{
		{Title: "Neem Herbal Oil", Description: "Cold-pressed neem oil for skin and scalp.", Price: 12.99, Category: "Ayurvedic Products", Subcategory: "Oils", InStock: true},
		{Title: "Ashwagandha Capsules", Description: "Stress relief and vitality support.", Price: 18.5, Category: "Ayurvedic Products", Subcategory: "Capsules & Tablets", InStock: true},
		{Title: "DigestEase Arishta", Description: "Supports digestive comfort.", Price: 14.0, Category: "Ayurvedic Products", Subcategory: "Arishta & Asava", InStock: true},
		{Title: "Copper Puja Kalash", Description: "Traditional copper pot for rituals.", Price: 24.0, Category: "Traditional Products", Subcategory: "Puja Items", InStock: true},
		{Title: "Joint Relief Balm", Description: "Warming balm for joints and muscles.", Price: 7.5, Category: "Disease-Related Products", Subcategory: "Joint & Muscle Pain", InStock: true},
	}
}

func placeholderReviews() []models.Review {
	return []models.Review{
		{Name: "Anika", Rating: 5, Comment: "Amazing quality and very helpful staff!", Source: "website"},
		{Name: "Ravi", Rating: 4, Comment: "Consultation was insightful and products worked well.", Source: "website"},
	}
}

func placeholderBlogPosts(now time.Time) []models.BlogPost {
	return []models.BlogPost{
		{Title: "Herbal Wisdom: Neem", Slug: "herbal-wisdom-neem", Category: "Herbal Wisdom", Excerpt: "Discover the multifaceted benefits of Neem.", Content: "Long form content about Neem...", PublishedAt: now},
		{Title: "Healing Through Ayurveda: Digestive Balance", Slug: "healing-ayurveda-digestive", Category: "Healing Through Ayurveda", Excerpt: "Rekindle your digestive fire.", Content: "Content on Agni and digestion...", PublishedAt: now},
		{Title: "Power of Nature: Ashwagandha", Slug: "power-of-nature-ashwagandha", Category: "Power of Nature", Excerpt: "Ashwagandha for stress relief.", Content: "Content about adaptogens...", PublishedAt: now},
		{Title: "Ayurveda for Daily Life: Morning Rituals", Slug: "ayurveda-daily-life-morning", Category: "Ayurveda for Daily Life", Excerpt: "Simple practices to start your day.", Content: "Dinacharya overview...", PublishedAt: now},
	}
}

// seedFuncs narrows the store surface the seeding routine touches.
type seedFuncs struct {
	count  func(ctx context.Context, collection string) (int64, error)
	insert func(ctx context.Context, collection string, doc interface{}) (string, error)
}

func storeSeedFuncs(db *mongo.Database) seedFuncs {
	return seedFuncs{
		count: func(ctx context.Context, collection string) (int64, error) {
			return CountDocuments(ctx, db, collection, bson.M{})
		},
		insert: func(ctx context.Context, collection string, doc interface{}) (string, error) {
			return CreateDocument(ctx, db, collection, doc)
		},
	}
}

func seedCollection(ctx context.Context, store seedFuncs, collection string, docs []interface{}) {
	count, err := store.count(ctx, collection)
	if err != nil {
		log.Printf("EnsureSeedData: %s count failed: %v", collection, err)
		return
	}
	if count > 0 {
		return
	}

	for _, doc := range docs {
		if _, err := store.insert(ctx, collection, doc); err != nil {
			log.Printf("EnsureSeedData: %s seed insert failed: %v", collection, err)
			return
		}
	}
	log.Printf("EnsureSeedData: seeded %d placeholder documents into %s", len(docs), collection)
}

// EnsureSeedData inserts placeholder documents into empty product, review and
// blogpost collections. Best effort: failures are logged and never propagated,
// so an unreachable store does not break the caller. The count-then-insert
// sequence is not atomic; concurrent first access can duplicate placeholders.
func EnsureSeedData(ctx context.Context, db *mongo.Database) {
	if db == nil {
		return
	}

	store := storeSeedFuncs(db)

	products := placeholderProducts()
	productDocs := make([]interface{}, len(products))
	for i, p := range products {
		productDocs[i] = p
	}
	seedCollection(ctx, store, "product", productDocs)

	reviews := placeholderReviews()
	reviewDocs := make([]interface{}, len(reviews))
	for i, r := range reviews {
		reviewDocs[i] = r
	}
	seedCollection(ctx, store, "review", reviewDocs)

	posts := placeholderBlogPosts(time.Now().UTC())
	postDocs := make([]interface{}, len(posts))
	for i, b := range posts {
		postDocs[i] = b
	}
	seedCollection(ctx, store, "blogpost", postDocs)
}
