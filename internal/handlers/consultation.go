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

type ConsultationRequest struct {
	FullName      string `json:"full_name" binding:"required"`
	Email         string `json:"email" binding:"required,email"`
	Phone         string `json:"phone"`
	Mode          string `json:"mode" binding:"required"`
	PreferredDate string `json:"preferred_date"`
	Message       string `json:"message"`
	Service       string `json:"service"`
}

func consultationFromRequest(req ConsultationRequest) models.Consultation {
	service := strings.TrimSpace(req.Service)
	if service == "" {
		service = "ayurvedic"
	}

	return models.Consultation{
		FullName:      strings.TrimSpace(req.FullName),
		Email:         strings.TrimSpace(req.Email),
		Phone:         strings.TrimSpace(req.Phone),
		Mode:          strings.TrimSpace(req.Mode),
		PreferredDate: strings.TrimSpace(req.PreferredDate),
		Message:       strings.TrimSpace(req.Message),
		Service:       service,
	}
}

func CreateConsultation(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /api/consultations"
		defer handlePanic(c, route)

		var req ConsultationRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, err)
			return
		}

		consultation := consultationFromRequest(req)

		if !requireDB(c, db, route) {
			return
		}

		ctx, cancel := queryContext(c)
		defer cancel()

		id, err := database.CreateDocument(ctx, db, "consultation", consultation)
		if err != nil {
			log.Printf("[%s] insert error: %v", route, err)
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		log.Printf("[%s] recorded consultation %s", route, id)
		c.JSON(http.StatusOK, gin.H{"_id": id, "status": "received"})
	}
}
