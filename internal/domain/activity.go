package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Activity is an audit-trail entry describing a past mutating action by a
// coach. Entries are immutable and never deleted.
type Activity struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CoachID   primitive.ObjectID `bson:"coachId" json:"coachId"`
	Action    string             `bson:"action" json:"action"`
	Timestamp time.Time          `bson:"timestamp" json:"timestamp"`
}
