package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"backend/internal/database"
	"backend/internal/models"
)

type ContactRequest struct {
	FullName string `json:"full_name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Topic    string `json:"topic" binding:"required"`
	Message  string `json:"message" binding:"required"`
	Channel  string `json:"channel"`
}

func contactMessageFromRequest(req ContactRequest) models.ContactMessage {
	channel := strings.TrimSpace(req.Channel)
	if channel == "" {
		channel = "general"
	}

	return models.ContactMessage{
		FullName: strings.TrimSpace(req.FullName),
		Email:    strings.TrimSpace(req.Email),
		Topic:    strings.TrimSpace(req.Topic),
		Message:  strings.TrimSpace(req.Message),
		Channel:  channel,
	}
}

func CreateContactMessage(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /api/contact"
		defer handlePanic(c, route)

		var req ContactRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, err)
			return
		}

		message := contactMessageFromRequest(req)

		if !requireDB(c, db, route) {
			return
		}

		ctx, cancel := queryContext(c)
		defer cancel()

		id, err := database.CreateDocument(ctx, db, "contactmessage", message)
		if err != nil {
			log.Printf("[%s] insert error: %v", route, err)
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		log.Printf("[%s] recorded contact message %s", route, id)
		c.JSON(http.StatusOK, gin.H{"_id": id, "status": "received"})
	}
}
