package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserProfile holds a user's identity and baseline metrics.
// Email is a soft key: nothing enforces its uniqueness.
type UserProfile struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name"`
	Email     string             `bson:"email" json:"email"`
	HeightCM  *float64           `bson:"height_cm,omitempty" json:"height_cm,omitempty"`
	Goal      *string            `bson:"goal,omitempty" json:"goal,omitempty"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}
