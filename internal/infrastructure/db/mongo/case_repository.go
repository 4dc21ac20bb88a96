package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/one-health/user-service/internal/core/domain"
)

const collectionCases = "doctor_cases"

type CaseRepository struct {
	col *mongo.Collection
}

func NewCaseRepository(db *mongo.Database) *CaseRepository {
	return &CaseRepository{col: db.Collection(collectionCases)}
}

// Create inserts a new doctor case document.
func (r *CaseRepository) Create(ctx context.Context, c *domain.DoctorCase) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.InsertOne(ctx, c)
	return err
}

func (r *CaseRepository) FindByCaseID(ctx context.Context, caseID string) (*domain.DoctorCase, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var c domain.DoctorCase
	err := r.col.FindOne(ctx, bson.M{"_id": caseID}).Decode(&c)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrCaseNotFound
		}
		return nil, err
	}
	return &c, nil
}

// ListByStatus returns one skip/limit window of cases with the given status,
// oldest first.
func (r *CaseRepository) ListByStatus(ctx context.Context, status domain.CaseStatus, skip, limit int) ([]*domain.DoctorCase, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().
		SetSkip(int64(skip)).
		SetLimit(int64(limit)).
		SetSort(bson.D{{Key: "created_at", Value: 1}})

	cur, err := r.col.Find(ctx, bson.M{"status": string(status)}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	cases := []*domain.DoctorCase{}
	for cur.Next(ctx) {
		var c domain.DoctorCase
		if err := cur.Decode(&c); err != nil {
			return nil, err
		}
		cases = append(cases, &c)
	}
	return cases, cur.Err()
}

func (r *CaseRepository) CountByStatus(ctx context.Context, status domain.CaseStatus) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	return r.col.CountDocuments(ctx, bson.M{"status": string(status)})
}

// EnsureIndexes creates the lookup indexes on the doctor_cases collection.
func (r *CaseRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "doctor_user_id", Value: 1}}},
		{Keys: bson.D{{Key: "patient_user_id", Value: 1}}},
		{Keys: bson.D{{Key: "status", Value: 1}, {Key: "created_at", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
