package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is declared for the user collection but no endpoint routes to it yet.
type User struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name     string             `bson:"name" json:"name"`
	Email    string             `bson:"email" json:"email"`
	Phone    string             `bson:"phone,omitempty" json:"phone,omitempty"`
	IsActive bool               `bson:"is_active" json:"is_active"`
}
