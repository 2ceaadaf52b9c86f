package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/vng-realisatie/klantinteracties/internal/core/domain"
)

const (
	collectionVerzoeken = "verzoeken"
	collectionCounters  = "counters"
)

type VerzoekRepository struct {
	col      *mongo.Collection
	counters *mongo.Collection
}

func NewVerzoekRepository(db *mongo.Database) *VerzoekRepository {
	return &VerzoekRepository{
		col:      db.Collection(collectionVerzoeken),
		counters: db.Collection(collectionCounters),
	}
}

// Create inserts a verzoek. The (bronorganisatie, identificatie) index turns
// a race between two creates into domain.ErrDuplicate.
func (r *VerzoekRepository) Create(ctx context.Context, v *domain.Verzoek) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if v.ID == "" {
		v.ID = newID()
	}
	if _, err := r.col.InsertOne(ctx, v); err != nil {
		return fmt.Errorf("insert verzoek: %w", duplicate(err))
	}
	return nil
}

func (r *VerzoekRepository) FindByUUID(ctx context.Context, uuid string) (*domain.Verzoek, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var v domain.Verzoek
	if err := r.col.FindOne(ctx, byUUID(uuid)).Decode(&v); err != nil {
		return nil, notFound(err)
	}
	return &v, nil
}

func (r *VerzoekRepository) Update(ctx context.Context, v *domain.Verzoek) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.ReplaceOne(ctx, byUUID(v.UUID), v)
	if err != nil {
		return fmt.Errorf("replace verzoek: %w", duplicate(err))
	}
	if res.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *VerzoekRepository) Delete(ctx context.Context, uuid string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, byUUID(uuid))
	if err != nil {
		return fmt.Errorf("delete verzoek: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *VerzoekRepository) List(ctx context.Context) ([]*domain.Verzoek, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("find verzoeken: %w", err)
	}
	return decodeAll[domain.Verzoek](ctx, cur)
}

func (r *VerzoekRepository) ExistsIdentificatie(ctx context.Context, bronorganisatie, identificatie, excludeUUID string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{"bronorganisatie": bronorganisatie, "identificatie": identificatie}
	if excludeUUID != "" {
		filter["uuid"] = bson.M{"$ne": excludeUUID}
	}
	n, err := r.col.CountDocuments(ctx, filter, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("count verzoeken: %w", err)
	}
	return n > 0, nil
}

type counter struct {
	ID  string `bson:"_id"`
	Seq int64  `bson:"seq"`
}

// NextSequence atomically increments the per-year verzoek counter.
func (r *VerzoekRepository) NextSequence(ctx context.Context, year int) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)
	var c counter
	err := r.counters.FindOneAndUpdate(ctx,
		bson.M{"_id": fmt.Sprintf("verzoek-%d", year)},
		bson.M{"$inc": bson.M{"seq": 1}},
		opts,
	).Decode(&c)
	if err != nil {
		return 0, fmt.Errorf("increment verzoek counter: %w", err)
	}
	return c.Seq, nil
}

func (r *VerzoekRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, indexTimeout)
	defer cancel()

	indexes := []mongo.IndexModel{
		uniqueIndex(bson.D{{Key: "uuid", Value: 1}}),
		uniqueIndex(bson.D{{Key: "bronorganisatie", Value: 1}, {Key: "identificatie", Value: 1}}),
	}
	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
