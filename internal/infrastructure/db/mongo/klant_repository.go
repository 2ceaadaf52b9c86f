package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/vng-realisatie/klantinteracties/internal/core/domain"
)

const collectionKlanten = "klanten"

type KlantRepository struct {
	col *mongo.Collection
}

func NewKlantRepository(db *mongo.Database) *KlantRepository {
	return &KlantRepository{col: db.Collection(collectionKlanten)}
}

// Create inserts a new klant document and assigns its storage ID.
func (r *KlantRepository) Create(ctx context.Context, k *domain.Klant) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if k.ID == "" {
		k.ID = newID()
	}
	if _, err := r.col.InsertOne(ctx, k); err != nil {
		return fmt.Errorf("insert klant: %w", duplicate(err))
	}
	return nil
}

func (r *KlantRepository) FindByUUID(ctx context.Context, uuid string) (*domain.Klant, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var k domain.Klant
	if err := r.col.FindOne(ctx, byUUID(uuid)).Decode(&k); err != nil {
		return nil, notFound(err)
	}
	return &k, nil
}

func (r *KlantRepository) Update(ctx context.Context, k *domain.Klant) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.ReplaceOne(ctx, byUUID(k.UUID), k)
	if err != nil {
		return fmt.Errorf("replace klant: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *KlantRepository) Delete(ctx context.Context, uuid string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, byUUID(uuid))
	if err != nil {
		return fmt.Errorf("delete klant: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List returns every klant, oldest first.
func (r *KlantRepository) List(ctx context.Context) ([]*domain.Klant, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("find klanten: %w", err)
	}
	return decodeAll[domain.Klant](ctx, cur)
}

func (r *KlantRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, indexTimeout)
	defer cancel()

	indexes := []mongo.IndexModel{
		uniqueIndex(bson.D{{Key: "uuid", Value: 1}}),
		{Keys: bson.D{{Key: "created_at", Value: 1}}},
	}
	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
