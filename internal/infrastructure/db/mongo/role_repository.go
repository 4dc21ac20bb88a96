package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/one-health/user-service/internal/core/domain"
)

const collectionRoleAssignments = "role_assignments"

type RoleRepository struct {
	col *mongo.Collection
}

func NewRoleRepository(db *mongo.Database) *RoleRepository {
	return &RoleRepository{col: db.Collection(collectionRoleAssignments)}
}

type mongoRoleAssignment struct {
	UserID string `bson:"user_id"`
	RoleID int    `bson:"role_id"`
}

// FindAssignmentByUserID returns (nil, nil) when the user has no assignment.
func (r *RoleRepository) FindAssignmentByUserID(ctx context.Context, userID string) (*domain.RoleAssignment, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var ma mongoRoleAssignment
	err := r.col.FindOne(ctx, bson.M{"user_id": userID}).Decode(&ma)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("find role assignment: %w", err)
	}
	return &domain.RoleAssignment{UserID: ma.UserID, RoleID: ma.RoleID}, nil
}

// Assign upserts the single assignment a user may hold.
func (r *RoleRepository) Assign(ctx context.Context, a *domain.RoleAssignment) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.UpdateOne(ctx,
		bson.M{"user_id": a.UserID},
		bson.M{"$set": bson.M{"role_id": a.RoleID}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("assign role: %w", err)
	}
	return nil
}

// EnsureIndexes keeps the one-assignment-per-user invariant in the store.
func (r *RoleRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "user_id", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}
