package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PerformanceRecord is one measured metric for an athlete. Records are
// append-only and immutable once written.
type PerformanceRecord struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	AthleteID  primitive.ObjectID `bson:"athleteId" json:"athleteId"`
	MetricName string             `bson:"metricName" json:"metricName"`
	Value      float64            `bson:"value" json:"value"`
	Date       time.Time          `bson:"date" json:"date"`
	Notes      string             `bson:"notes" json:"notes"`
	RecordedAt time.Time          `bson:"recordedAt" json:"recordedAt"`
}
