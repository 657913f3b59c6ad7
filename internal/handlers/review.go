package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"backend/internal/database"
	"backend/internal/models"
)

const defaultReviewLimit = 50

type ReviewCreateRequest struct {
	Name    string `json:"name" binding:"required"`
	Rating  *int   `json:"rating" binding:"required,gte=1,lte=5"`
	Comment string `json:"comment" binding:"required"`
	Source  string `json:"source"`
}

func GetReviews(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /api/reviews"
		defer handlePanic(c, route)

		limit, err := parseLimitParam(c.Query("limit"), defaultReviewLimit)
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, err.Error())
			return
		}

		if !requireDB(c, db, route) {
			return
		}

		ctx, cancel := queryContext(c)
		defer cancel()

		reviews := make([]models.Review, 0)
		if err := database.FindDocuments(ctx, db, "review", bson.M{}, limit, &reviews); err != nil {
			log.Printf("[%s] find error: %v", route, err)
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		log.Printf("[%s] returning %d reviews", route, len(reviews))
		c.JSON(http.StatusOK, reviews)
	}
}

func CreateReview(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /api/reviews"
		defer handlePanic(c, route)

		var req ReviewCreateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, err)
			return
		}

		source := strings.TrimSpace(req.Source)
		if source == "" {
			source = "website"
		}

		review := models.Review{
			Name:    strings.TrimSpace(req.Name),
			Rating:  *req.Rating,
			Comment: strings.TrimSpace(req.Comment),
			Source:  source,
		}

		if !requireDB(c, db, route) {
			return
		}

		ctx, cancel := queryContext(c)
		defer cancel()

		id, err := database.CreateDocument(ctx, db, "review", review)
		if err != nil {
			log.Printf("[%s] insert error: %v", route, err)
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		log.Printf("[%s] created review %s", route, id)
		c.JSON(http.StatusOK, gin.H{"_id": id})
	}
}
