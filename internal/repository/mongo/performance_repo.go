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

const performanceCollectionName = "performance"

// mongoPerformanceRepository implements repository.PerformanceRepository using MongoDB.
type mongoPerformanceRepository struct {
	collection *mongo.Collection
}

// NewMongoPerformanceRepository creates a new instance of mongoPerformanceRepository.
func NewMongoPerformanceRepository(db *mongo.Database) repository.PerformanceRepository {
	return &mongoPerformanceRepository{
		collection: db.Collection(performanceCollectionName),
	}
}

// Create inserts a new performance record. Records are append-only; there
// is deliberately no update or delete.
func (r *mongoPerformanceRepository) Create(ctx context.Context, record *domain.PerformanceRecord) (primitive.ObjectID, error) {
	if record.AthleteID == primitive.NilObjectID || record.MetricName == "" {
		return primitive.NilObjectID, errors.New("performance athlete ID and metric name are required")
	}

	record.ID = primitive.NewObjectID()
	record.RecordedAt = time.Now().UTC()

	result, err := r.collection.InsertOne(ctx, record)
	if err != nil {
		return primitive.NilObjectID, err
	}

	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted ID")
	}

	return insertedID, nil
}

// GetByAthleteID retrieves all records for an athlete, most recent date first.
func (r *mongoPerformanceRepository) GetByAthleteID(ctx context.Context, athleteID primitive.ObjectID) ([]domain.PerformanceRecord, error) {
	var records []domain.PerformanceRecord
	filter := bson.M{"athleteId": athleteID}
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	if records == nil {
		records = []domain.PerformanceRecord{}
	}
	return records, nil
}

// EnsurePerformanceIndexes creates necessary indexes for the performance collection.
func EnsurePerformanceIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "athleteId", Value: 1}, {Key: "date", Value: -1}},
			Options: options.Index(),
		},
	}

	_, _ = collection.Indexes().CreateMany(ctx, indexes)
}
