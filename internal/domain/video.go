package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// VideoStatus is the analysis lifecycle of an uploaded video. The only
// legal transition is pending_analysis -> analyzed.
type VideoStatus string

const (
	VideoPendingAnalysis VideoStatus = "pending_analysis"
	VideoAnalyzed        VideoStatus = "analyzed"
)

// Video stores metadata about an uploaded training clip. The actual file
// bytes live in the blob store, referenced by ObjectKey.
type Video struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CoachID      primitive.ObjectID `bson:"coachId" json:"coachId"`
	AthleteID    primitive.ObjectID `bson:"athleteId" json:"athleteId"`
	FileName     string             `bson:"fileName" json:"fileName"` // Sanitized original filename
	ObjectKey    string             `bson:"objectKey" json:"-"`       // Key in the blob store, internal use
	AnalysisType string             `bson:"analysisType" json:"analysisType"`
	Notes        string             `bson:"notes" json:"notes"`
	UploadDate   time.Time          `bson:"uploadDate" json:"uploadDate"`
	Status       VideoStatus        `bson:"status" json:"status"`
	AnalysisData *AnalysisResult    `bson:"analysisData,omitempty" json:"analysisData,omitempty"` // Present iff analyzed
}

// AnalysisResult is the outcome of analyzing a video.
type AnalysisResult struct {
	AnalysisDate    time.Time `bson:"analysisDate" json:"analysisDate"`
	TechniqueScore  int       `bson:"techniqueScore" json:"techniqueScore"`
	FormIssues      []string  `bson:"formIssues" json:"formIssues"`
	Recommendations []string  `bson:"recommendations" json:"recommendations"`
	Strengths       []string  `bson:"strengths" json:"strengths"`
}
