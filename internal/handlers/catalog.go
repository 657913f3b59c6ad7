package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

var ayurvedicSubcategories = []string{
	"Cosmetics", "Oils", "Balms", "Arishta & Asava", "Kwatha & Kashaya", "Powders", "Capsules & Tablets",
}

var diseaseSubcategories = []string{
	"Joint & Muscle Pain", "Digestive Disorders", "Respiratory Health", "Skin Conditions", "Women's Health",
	"Stress & Sleep", "Diabetes Support", "Immunity Boosters", "Hair & Scalp Problems",
}

var traditionalSubcategories = []string{
	"Puja Items", "Pottery Items", "Thovil Badu", "Gift Packs/Herbal Kits",
}

// ProductCategories is the static category taxonomy served by /api/categories
// and assumed by the seed fixtures.
var ProductCategories = map[string][]string{
	"Ayurvedic Products":       ayurvedicSubcategories,
	"Disease-Related Products": diseaseSubcategories,
	"Traditional Products":     traditionalSubcategories,
}

type serviceInfo struct {
	Title string   `json:"title"`
	Items []string `json:"items"`
}

var servicesInfo = map[string]serviceInfo{
	"ayurvedic": {
		Title: "Ayurvedic Consultations",
		Items: []string{
			"Doctor consultations (in-person/online)",
			"Prescription-based product supply",
		},
	},
	"nakshatra": {
		Title: "Nakshatra Services",
		Items: []string{
			"Personal horoscope reading",
			"Wedding/event calculations",
			"Healing rituals",
			"Newborn name selection",
			"Auspicious time calculation",
			"Customized ritual items",
		},
	},
}

func GetCategories() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, ProductCategories)
	}
}

func GetServices() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, servicesInfo)
	}
}
