package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/atelieranj/client-portal/internal/core/domain"
)

const collectionAvailability = "availability"

type AvailabilityRepository struct {
	coll *mongo.Collection
}

func NewAvailabilityRepository(db *mongo.Database) *AvailabilityRepository {
	return &AvailabilityRepository{coll: db.Collection(collectionAvailability)}
}

func (r *AvailabilityRepository) FindByDate(ctx context.Context, date string) (*domain.AvailabilityRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var rec domain.AvailabilityRecord
	if err := r.coll.FindOne(ctx, bson.M{"_id": date}).Decode(&rec); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil // no override: default schedule applies
		}
		return nil, fmt.Errorf("find availability: %w", err)
	}
	return &rec, nil
}

func (r *AvailabilityRepository) List(ctx context.Context) ([]domain.AvailabilityRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list availability: %w", err)
	}
	defer cur.Close(ctx)

	var records []domain.AvailabilityRecord
	if err := cur.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("decode availability: %w", err)
	}
	return records, nil
}

// ReplaceAll swaps the entire override collection for the given records,
// matching the superadmin's replace-the-whole-schedule edit semantics.
func (r *AvailabilityRepository) ReplaceAll(ctx context.Context, records []domain.AvailabilityRecord) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.coll.DeleteMany(ctx, bson.M{}); err != nil {
		return fmt.Errorf("clear availability: %w", err)
	}
	if len(records) == 0 {
		return nil
	}

	docs := make([]interface{}, len(records))
	for i, rec := range records {
		docs[i] = rec
	}
	if _, err := r.coll.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("insert availability: %w", err)
	}
	return nil
}
