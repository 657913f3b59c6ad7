package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ContactMessage struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	FullName string             `bson:"full_name" json:"full_name"`
	Email    string             `bson:"email" json:"email"`
	Topic    string             `bson:"topic" json:"topic"`
	Message  string             `bson:"message" json:"message"`
	Channel  string             `bson:"channel" json:"channel"`
}
