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

type ProductCreateRequest struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description"`
	Price       *float64 `json:"price" binding:"required,gte=0"`
	Category    string   `json:"category" binding:"required"`
	Subcategory string   `json:"subcategory"`
	Image       string   `json:"image"`
	InStock     *bool    `json:"in_stock"`
}

// buildProductFilter translates list query parameters into a store filter.
// A free-text q matches title or description as a case-insensitive substring.
func buildProductFilter(q, category, subcategory string) bson.M {
	filter := bson.M{}

	if category = strings.TrimSpace(category); category != "" {
		filter["category"] = category
	}
	if subcategory = strings.TrimSpace(subcategory); subcategory != "" {
		filter["subcategory"] = subcategory
	}
	if q = strings.TrimSpace(q); q != "" {
		filter["$or"] = []bson.M{
			{"title": bson.M{"$regex": q, "$options": "i"}},
			{"description": bson.M{"$regex": q, "$options": "i"}},
		}
	}

	return filter
}

func GetProducts(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /api/products"
		defer handlePanic(c, route)

		log.Printf(
			"[%s] hit q=%s category=%s subcategory=%s",
			route,
			c.Query("q"),
			c.Query("category"),
			c.Query("subcategory"),
		)

		if !requireDB(c, db, route) {
			return
		}

		ctx, cancel := queryContext(c)
		defer cancel()

		database.EnsureSeedData(ctx, db)

		filter := buildProductFilter(c.Query("q"), c.Query("category"), c.Query("subcategory"))

		products := make([]models.Product, 0)
		if err := database.FindDocuments(ctx, db, "product", filter, 0, &products); err != nil {
			log.Printf("[%s] find error: %v", route, err)
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		log.Printf("[%s] returning %d products", route, len(products))
		c.JSON(http.StatusOK, products)
	}
}

func CreateProduct(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /api/products"
		defer handlePanic(c, route)

		var req ProductCreateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, err)
			return
		}

		inStock := true
		if req.InStock != nil {
			inStock = *req.InStock
		}

		product := models.Product{
			Title:       strings.TrimSpace(req.Title),
			Description: strings.TrimSpace(req.Description),
			Price:       *req.Price,
			Category:    strings.TrimSpace(req.Category),
			Subcategory: strings.TrimSpace(req.Subcategory),
			Image:       strings.TrimSpace(req.Image),
			InStock:     inStock,
		}

		if !requireDB(c, db, route) {
			return
		}

		ctx, cancel := queryContext(c)
		defer cancel()

		id, err := database.CreateDocument(ctx, db, "product", product)
		if err != nil {
			log.Printf("[%s] insert error: %v", route, err)
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		log.Printf("[%s] created product %s", route, id)
		c.JSON(http.StatusOK, gin.H{"_id": id})
	}
}
