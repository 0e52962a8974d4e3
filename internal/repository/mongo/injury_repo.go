package mongo

import (
	"context"
	"errors"
	"time"

	"coachdesk/athlete-platform/internal/domain"
	"coachdesk/athlete-platform/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const injuryCollectionName = "injuries"

// mongoInjuryRepository implements repository.InjuryRepository using MongoDB.
type mongoInjuryRepository struct {
	collection *mongo.Collection
}

// NewMongoInjuryRepository creates a new instance of mongoInjuryRepository.
func NewMongoInjuryRepository(db *mongo.Database) repository.InjuryRepository {
	return &mongoInjuryRepository{
		collection: db.Collection(injuryCollectionName),
	}
}

// Create inserts a new injury report. Reports are append-only.
func (r *mongoInjuryRepository) Create(ctx context.Context, report *domain.InjuryReport) (primitive.ObjectID, error) {
	if report.CoachID == primitive.NilObjectID || report.AthleteID == primitive.NilObjectID {
		return primitive.NilObjectID, errors.New("injury coach ID and athlete ID are required")
	}

	report.ID = primitive.NewObjectID()
	report.DateReported = time.Now().UTC()

	result, err := r.collection.InsertOne(ctx, report)
	if err != nil {
		return primitive.NilObjectID, err
	}

	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted ID")
	}

	return insertedID, nil
}

// GetByCoachID retrieves all reports filed by a coach, most recent first.
func (r *mongoInjuryRepository) GetByCoachID(ctx context.Context, coachID primitive.ObjectID) ([]domain.InjuryReport, error) {
	var reports []domain.InjuryReport
	filter := bson.M{"coachId": coachID}
	opts := options.Find().SetSort(bson.D{{Key: "dateReported", Value: -1}})

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &reports); err != nil {
		return nil, err
	}
	if reports == nil {
		reports = []domain.InjuryReport{}
	}
	return reports, nil
}

// EnsureInjuryIndexes creates necessary indexes for the injuries collection.
func EnsureInjuryIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "coachId", Value: 1}, {Key: "dateReported", Value: -1}},
			Options: options.Index(),
		},
		{
			Keys:    bson.D{{Key: "athleteId", Value: 1}},
			Options: options.Index(),
		},
	}

	_, _ = collection.Indexes().CreateMany(ctx, indexes)
}
