package service

import (
	"bytes"
	"context"
	"errors"
	"io"
	"sort"
	"time"

	"coachdesk/athlete-platform/internal/domain"
	"coachdesk/athlete-platform/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// In-memory repository fakes. They mirror the behavior of the mongo
// implementations: ids and timestamps assigned on insert, ErrNotFound on
// missing documents, newest-first ordering on the list calls.

type fakeCoachRepo struct {
	coaches map[primitive.ObjectID]*domain.Coach
}

func newFakeCoachRepo() *fakeCoachRepo {
	return &fakeCoachRepo{coaches: make(map[primitive.ObjectID]*domain.Coach)}
}

func (r *fakeCoachRepo) Create(_ context.Context, coach *domain.Coach) (primitive.ObjectID, error) {
	for _, existing := range r.coaches {
		if existing.Email == coach.Email {
			return primitive.NilObjectID, repository.ErrDuplicateEmail
		}
	}
	coach.ID = primitive.NewObjectID()
	coach.CreatedAt = time.Now().UTC()
	stored := *coach
	r.coaches[coach.ID] = &stored
	return coach.ID, nil
}

func (r *fakeCoachRepo) GetByEmail(_ context.Context, email string) (*domain.Coach, error) {
	for _, coach := range r.coaches {
		if coach.Email == email {
			copied := *coach
			return &copied, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeCoachRepo) GetByID(_ context.Context, id primitive.ObjectID) (*domain.Coach, error) {
	coach, ok := r.coaches[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := *coach
	return &copied, nil
}

func (r *fakeCoachRepo) UpdateProfile(_ context.Context, id primitive.ObjectID, name, sport, language, passwordHash string) error {
	coach, ok := r.coaches[id]
	if !ok {
		return repository.ErrNotFound
	}
	coach.Name = name
	coach.Sport = sport
	coach.Language = language
	if passwordHash != "" {
		coach.PasswordHash = passwordHash
	}
	return nil
}

type fakeAthleteRepo struct {
	athletes map[primitive.ObjectID]*domain.Athlete
}

func newFakeAthleteRepo() *fakeAthleteRepo {
	return &fakeAthleteRepo{athletes: make(map[primitive.ObjectID]*domain.Athlete)}
}

func (r *fakeAthleteRepo) Create(_ context.Context, athlete *domain.Athlete) (primitive.ObjectID, error) {
	athlete.ID = primitive.NewObjectID()
	athlete.JoinedDate = time.Now().UTC()
	stored := *athlete
	r.athletes[athlete.ID] = &stored
	return athlete.ID, nil
}

func (r *fakeAthleteRepo) GetByID(_ context.Context, id primitive.ObjectID) (*domain.Athlete, error) {
	athlete, ok := r.athletes[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := *athlete
	return &copied, nil
}

func (r *fakeAthleteRepo) GetByCoachID(_ context.Context, coachID primitive.ObjectID) ([]domain.Athlete, error) {
	result := []domain.Athlete{}
	for _, athlete := range r.athletes {
		if athlete.CoachID == coachID {
			result = append(result, *athlete)
		}
	}
	return result, nil
}

func (r *fakeAthleteRepo) SetStatus(_ context.Context, id primitive.ObjectID, status domain.AthleteStatus) error {
	athlete, ok := r.athletes[id]
	if !ok {
		return repository.ErrNotFound
	}
	athlete.Status = status
	return nil
}

type fakePerformanceRepo struct {
	records []domain.PerformanceRecord
}

func newFakePerformanceRepo() *fakePerformanceRepo {
	return &fakePerformanceRepo{}
}

func (r *fakePerformanceRepo) Create(_ context.Context, record *domain.PerformanceRecord) (primitive.ObjectID, error) {
	record.ID = primitive.NewObjectID()
	record.RecordedAt = time.Now().UTC()
	r.records = append(r.records, *record)
	return record.ID, nil
}

func (r *fakePerformanceRepo) GetByAthleteID(_ context.Context, athleteID primitive.ObjectID) ([]domain.PerformanceRecord, error) {
	result := []domain.PerformanceRecord{}
	for _, record := range r.records {
		if record.AthleteID == athleteID {
			result = append(result, record)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Date.After(result[j].Date)
	})
	return result, nil
}

type fakeInjuryRepo struct {
	reports []domain.InjuryReport
}

func newFakeInjuryRepo() *fakeInjuryRepo {
	return &fakeInjuryRepo{}
}

func (r *fakeInjuryRepo) Create(_ context.Context, report *domain.InjuryReport) (primitive.ObjectID, error) {
	report.ID = primitive.NewObjectID()
	report.DateReported = time.Now().UTC()
	r.reports = append(r.reports, *report)
	return report.ID, nil
}

func (r *fakeInjuryRepo) GetByCoachID(_ context.Context, coachID primitive.ObjectID) ([]domain.InjuryReport, error) {
	result := []domain.InjuryReport{}
	for _, report := range r.reports {
		if report.CoachID == coachID {
			result = append(result, report)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].DateReported.After(result[j].DateReported)
	})
	return result, nil
}

type fakeVideoRepo struct {
	videos map[primitive.ObjectID]*domain.Video
}

func newFakeVideoRepo() *fakeVideoRepo {
	return &fakeVideoRepo{videos: make(map[primitive.ObjectID]*domain.Video)}
}

func (r *fakeVideoRepo) Create(_ context.Context, video *domain.Video) (primitive.ObjectID, error) {
	video.ID = primitive.NewObjectID()
	video.UploadDate = time.Now().UTC()
	stored := *video
	r.videos[video.ID] = &stored
	return video.ID, nil
}

func (r *fakeVideoRepo) GetByID(_ context.Context, id primitive.ObjectID) (*domain.Video, error) {
	video, ok := r.videos[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := *video
	return &copied, nil
}

func (r *fakeVideoRepo) GetByCoachID(_ context.Context, coachID primitive.ObjectID) ([]domain.Video, error) {
	result := []domain.Video{}
	for _, video := range r.videos {
		if video.CoachID == coachID {
			result = append(result, *video)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].UploadDate.After(result[j].UploadDate)
	})
	return result, nil
}

func (r *fakeVideoRepo) SetAnalysis(_ context.Context, id primitive.ObjectID, analysis *domain.AnalysisResult) error {
	video, ok := r.videos[id]
	if !ok {
		return repository.ErrNotFound
	}
	video.Status = domain.VideoAnalyzed
	video.AnalysisData = analysis
	return nil
}

type fakeActivityRepo struct {
	activities []domain.Activity
}

func newFakeActivityRepo() *fakeActivityRepo {
	return &fakeActivityRepo{}
}

func (r *fakeActivityRepo) Create(_ context.Context, activity *domain.Activity) (primitive.ObjectID, error) {
	activity.ID = primitive.NewObjectID()
	activity.Timestamp = time.Now().UTC()
	r.activities = append(r.activities, *activity)
	return activity.ID, nil
}

func (r *fakeActivityRepo) GetRecentByCoachID(_ context.Context, coachID primitive.ObjectID, limit int64) ([]domain.Activity, error) {
	result := []domain.Activity{}
	for _, activity := range r.activities {
		if activity.CoachID == coachID {
			result = append(result, activity)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Timestamp.After(result[j].Timestamp)
	})
	if int64(len(result)) > limit {
		result = result[:limit]
	}
	return result, nil
}

// actionsFor collects the audit trail of a coach, oldest first.
func (r *fakeActivityRepo) actionsFor(coachID primitive.ObjectID) []string {
	var actions []string
	for _, activity := range r.activities {
		if activity.CoachID == coachID {
			actions = append(actions, activity.Action)
		}
	}
	return actions
}

// fakeBlobStorage records uploads in memory. failUpload simulates a blob
// store outage.
type fakeBlobStorage struct {
	objects    map[string][]byte
	failUpload bool
}

func newFakeBlobStorage() *fakeBlobStorage {
	return &fakeBlobStorage{objects: make(map[string][]byte)}
}

func (s *fakeBlobStorage) Upload(_ context.Context, objectKey string, _ string, _ int64, body io.Reader) error {
	if s.failUpload {
		return errors.New("blob store unavailable")
	}
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(body); err != nil {
		return err
	}
	s.objects[objectKey] = buf.Bytes()
	return nil
}

func (s *fakeBlobStorage) GeneratePresignedDownloadURL(_ context.Context, objectKey string, _ time.Duration) (string, error) {
	if _, ok := s.objects[objectKey]; !ok {
		return "", errors.New("object not found")
	}
	return "https://blobs.example/" + objectKey, nil
}

func (s *fakeBlobStorage) DeleteObject(_ context.Context, objectKey string) error {
	delete(s.objects, objectKey)
	return nil
}
