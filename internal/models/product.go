package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Product struct {
	ID          primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Title       string               `bson:"title" json:"title"`
	Description string               `bson:"description,omitempty" json:"description,omitempty"`
	Media       []string             `bson:"media" json:"media"`
	Category    string               `bson:"category" json:"category"`
	Collections []primitive.ObjectID `bson:"collections" json:"collections"`
	Tags        []string             `bson:"tags" json:"tags"`
	Sizes       []string             `bson:"sizes" json:"sizes"`
	Colors      []string             `bson:"colors" json:"colors"`
	Price       float64              `bson:"price" json:"price"`
	Cost        float64              `bson:"cost" json:"cost"`
	CreatedAt   time.Time            `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time            `bson:"updatedAt" json:"updatedAt"`
}
