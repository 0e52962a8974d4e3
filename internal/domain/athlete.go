package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AthleteStatus tracks whether an athlete is currently fit to train.
type AthleteStatus string

const (
	AthleteActive  AthleteStatus = "active"
	AthleteInjured AthleteStatus = "injured"
)

// Athlete is a tracked individual under a coach's supervision.
type Athlete struct {
	ID                 primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CoachID            primitive.ObjectID `bson:"coachId" json:"coachId"`
	Name               string             `bson:"name" json:"name"`
	Age                int                `bson:"age" json:"age"`
	Sport              string             `bson:"sport" json:"sport"`
	Gender             string             `bson:"gender" json:"gender"`
	Location           string             `bson:"location" json:"location"`
	Contact            string             `bson:"contact" json:"contact"`
	Disabilities       string             `bson:"disabilities" json:"disabilities"`
	LanguagePreference string             `bson:"languagePreference" json:"languagePreference"`
	JoinedDate         time.Time          `bson:"joinedDate" json:"joinedDate"`
	Status             AthleteStatus      `bson:"status" json:"status"`
}
