package handlers

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"backend/internal/database"
	"backend/internal/models"
)

type BlogPostCreateRequest struct {
	Title       string     `json:"title" binding:"required"`
	Slug        string     `json:"slug" binding:"required"`
	Category    string     `json:"category" binding:"required"`
	Excerpt     string     `json:"excerpt" binding:"required"`
	Content     string     `json:"content" binding:"required"`
	CoverImage  string     `json:"cover_image"`
	Tags        []string   `json:"tags"`
	PublishedAt *time.Time `json:"published_at"`
}

// resolvePublishedAt keeps a caller-supplied timestamp and stamps creation
// time when the field is absent.
func resolvePublishedAt(supplied *time.Time, now time.Time) time.Time {
	if supplied != nil && !supplied.IsZero() {
		return *supplied
	}
	return now
}

func GetBlogPosts(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /api/blog"
		defer handlePanic(c, route)

		log.Printf("[%s] hit category=%s", route, c.Query("category"))

		if !requireDB(c, db, route) {
			return
		}

		ctx, cancel := queryContext(c)
		defer cancel()

		database.EnsureSeedData(ctx, db)

		filter := bson.M{}
		if category := strings.TrimSpace(c.Query("category")); category != "" {
			filter["category"] = category
		}

		posts := make([]models.BlogPost, 0)
		if err := database.FindDocuments(ctx, db, "blogpost", filter, 0, &posts); err != nil {
			log.Printf("[%s] find error: %v", route, err)
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		log.Printf("[%s] returning %d posts", route, len(posts))
		c.JSON(http.StatusOK, posts)
	}
}

func CreateBlogPost(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /api/blog"
		defer handlePanic(c, route)

		var req BlogPostCreateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, err)
			return
		}

		post := models.BlogPost{
			Title:       strings.TrimSpace(req.Title),
			Slug:        strings.TrimSpace(req.Slug),
			Category:    strings.TrimSpace(req.Category),
			Excerpt:     strings.TrimSpace(req.Excerpt),
			Content:     req.Content,
			CoverImage:  strings.TrimSpace(req.CoverImage),
			Tags:        models.StringList(req.Tags),
			PublishedAt: resolvePublishedAt(req.PublishedAt, time.Now().UTC()),
		}

		if !requireDB(c, db, route) {
			return
		}

		ctx, cancel := queryContext(c)
		defer cancel()

		id, err := database.CreateDocument(ctx, db, "blogpost", post)
		if err != nil {
			log.Printf("[%s] insert error: %v", route, err)
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		log.Printf("[%s] created blog post %s", route, id)
		c.JSON(http.StatusOK, gin.H{"_id": id})
	}
}
