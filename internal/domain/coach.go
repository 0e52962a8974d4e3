package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Coach represents an account holder. A coach owns athletes, injury
// reports, videos and activity entries; nothing in the system exists
// outside a coach's scope.
type Coach struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         string             `bson:"name" json:"name"`
	Email        string             `bson:"email" json:"email"` // Unique across all coaches
	PasswordHash string             `bson:"passwordHash" json:"-"`
	Sport        string             `bson:"sport" json:"sport"`
	Language     string             `bson:"language" json:"language"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
}
