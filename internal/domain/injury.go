package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// InjurySeverity grades a reported injury.
type InjurySeverity string

const (
	SeverityMinor    InjurySeverity = "minor"
	SeverityModerate InjurySeverity = "moderate"
	SeveritySevere   InjurySeverity = "severe"
	SeverityCritical InjurySeverity = "critical"
)

// IsValid reports whether s is one of the four known severities.
func (s InjurySeverity) IsValid() bool {
	switch s {
	case SeverityMinor, SeverityModerate, SeveritySevere, SeverityCritical:
		return true
	}
	return false
}

// SidelinesAthlete reports whether an injury of this severity takes the
// athlete out of active status.
func (s InjurySeverity) SidelinesAthlete() bool {
	return s == SeveritySevere || s == SeverityCritical
}

// InjuryStatus tracks the lifecycle of a report. Resolution is out of
// scope for now, so reports stay active.
type InjuryStatus string

const (
	InjuryActive   InjuryStatus = "active"
	InjuryResolved InjuryStatus = "resolved"
)

// InjuryReport documents an injury for an athlete. Reports are append-only.
type InjuryReport struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CoachID      primitive.ObjectID `bson:"coachId" json:"coachId"`
	AthleteID    primitive.ObjectID `bson:"athleteId" json:"athleteId"`
	InjuryType   string             `bson:"injuryType" json:"injuryType"`
	BodyPart     string             `bson:"bodyPart" json:"bodyPart"`
	Severity     InjurySeverity     `bson:"severity" json:"severity"`
	Description  string             `bson:"description" json:"description"`
	RecoveryPlan string             `bson:"recoveryPlan" json:"recoveryPlan"`
	DateReported time.Time          `bson:"dateReported" json:"dateReported"`
	Status       InjuryStatus       `bson:"status" json:"status"`
}
