package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type BlogPost struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Title       string             `bson:"title" json:"title"`
	Slug        string             `bson:"slug" json:"slug"`
	Category    string             `bson:"category" json:"category"`
	Excerpt     string             `bson:"excerpt" json:"excerpt"`
	Content     string             `bson:"content" json:"content"`
	CoverImage  string             `bson:"cover_image,omitempty" json:"cover_image,omitempty"`
	Tags        StringList         `bson:"tags,omitempty" json:"tags,omitempty"`
	PublishedAt time.Time          `bson:"published_at" json:"published_at"`
}
