package service

import (
	"context"
	"time"

	"coachdesk/athlete-platform/internal/domain"
)

// VideoAnalyzer produces an analysis result for an uploaded video. The
// capability is an interface so a real analysis pipeline can replace the
// stub without touching the video service.
type VideoAnalyzer interface {
	Analyze(ctx context.Context, video *domain.Video) (*domain.AnalysisResult, error)
}

// mockAnalyzer returns a canned result. There is no real signal processing
// behind it.
type mockAnalyzer struct{}

// NewMockAnalyzer creates the placeholder analyzer.
func NewMockAnalyzer() VideoAnalyzer {
	return mockAnalyzer{}
}

func (mockAnalyzer) Analyze(_ context.Context, _ *domain.Video) (*domain.AnalysisResult, error) {
	return &domain.AnalysisResult{
		AnalysisDate:   time.Now().UTC(),
		TechniqueScore: 85,
		FormIssues: []string{
			"Slight forward lean during takeoff",
			"Arm position could be improved",
		},
		Recommendations: []string{
			"Focus on maintaining upright posture",
			"Practice arm swing drills",
		},
		Strengths: []string{
			"Good explosive power",
			"Excellent follow-through",
		},
	}, nil
}
