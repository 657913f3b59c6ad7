package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Consultation struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	FullName      string             `bson:"full_name" json:"full_name"`
	Email         string             `bson:"email" json:"email"`
	Phone         string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Mode          string             `bson:"mode" json:"mode"`
	PreferredDate string             `bson:"preferred_date,omitempty" json:"preferred_date,omitempty"`
	Message       string             `bson:"message,omitempty" json:"message,omitempty"`
	Service       string             `bson:"service" json:"service"`
}
