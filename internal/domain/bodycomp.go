package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BodyCompEntry is a body composition checkpoint. Every measurement is optional.
type BodyCompEntry struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserEmail  string             `bson:"user_email" json:"user_email"`
	Date       time.Time          `bson:"date" json:"date"`
	WeightKG   *float64           `bson:"weight_kg,omitempty" json:"weight_kg,omitempty"`
	BodyFatPct *float64           `bson:"body_fat_pct,omitempty" json:"body_fat_pct,omitempty"`
	WaistCM    *float64           `bson:"waist_cm,omitempty" json:"waist_cm,omitempty"`
	HipsCM     *float64           `bson:"hips_cm,omitempty" json:"hips_cm,omitempty"`
	ChestCM    *float64           `bson:"chest_cm,omitempty" json:"chest_cm,omitempty"`
	CreatedAt  time.Time          `bson:"created_at" json:"created_at"`
}
