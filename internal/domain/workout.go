package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// WorkoutEntry is a single logged training session.
type WorkoutEntry struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserEmail   string             `bson:"user_email" json:"user_email"`
	Date        time.Time          `bson:"date" json:"date"` // UTC midnight
	Type        string             `bson:"type" json:"type"`
	DurationMin float64            `bson:"duration_min" json:"duration_min"`
	Intensity   *string            `bson:"intensity,omitempty" json:"intensity,omitempty"` // Low/Med/High, free text
	Notes       *string            `bson:"notes,omitempty" json:"notes,omitempty"`
	Calories    *float64           `bson:"calories,omitempty" json:"calories,omitempty"`
	Exercises   []string           `bson:"exercises,omitempty" json:"exercises,omitempty"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
}
