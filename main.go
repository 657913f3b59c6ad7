package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"backend/internal/config"
	"backend/internal/database"
	"backend/internal/handlers"
)

func main() {
	config.Load()

	var db *mongo.Database

	if config.AppEnv.MongoURI == "" {
		log.Println("⚠️ DATABASE_URL not set, running without a database")
	} else {
		client, err := database.Connect(config.AppEnv.MongoURI)
		if err != nil {
			log.Println("⚠️ database connect failed:", err)
		} else {
			db = client.Database(config.AppEnv.DBName)

			if err := database.Ping(context.Background(), client); err != nil {
				log.Println("⚠️ database ping failed:", err)
			} else {
				log.Println("MongoDB connected to:", db.Name())
			}

			if err := database.EnsureProductIndexes(db); err != nil {
				log.Printf("⚠️ product index warning: %v", err)
			}
			if err := database.EnsureBlogIndexes(db); err != nil {
				log.Printf("⚠️ blog index warning: %v", err)
			}

			database.EnsureSeedData(context.Background(), db)
		}
	}

	r := gin.Default()

	r.GET("/", handlers.Home())
	r.GET("/test", handlers.TestDatabase(db))

	api := r.Group("/api")
	{
		api.GET("/categories", handlers.GetCategories())
		api.GET("/services", handlers.GetServices())

		api.GET("/products", handlers.GetProducts(db))
		api.POST("/products", handlers.CreateProduct(db))

		api.GET("/reviews", handlers.GetReviews(db))
		api.POST("/reviews", handlers.CreateReview(db))

		api.GET("/blog", handlers.GetBlogPosts(db))
		api.POST("/blog", handlers.CreateBlogPost(db))

		api.POST("/consultations", handlers.CreateConsultation(db))
		api.POST("/contact", handlers.CreateContactMessage(db))
	}

	r.Run(":" + config.AppEnv.Port)
}
