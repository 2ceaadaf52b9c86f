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
	collectionContactMomenten = "contactmomenten"
	collectionMedewerkers     = "medewerkers"
)

type ContactMomentRepository struct {
	col         *mongo.Collection
	medewerkers *mongo.Collection
}

func NewContactMomentRepository(db *mongo.Database) *ContactMomentRepository {
	return &ContactMomentRepository{
		col:         db.Collection(collectionContactMomenten),
		medewerkers: db.Collection(collectionMedewerkers),
	}
}

func (r *ContactMomentRepository) Create(ctx context.Context, cm *domain.ContactMoment) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if cm.ID == "" {
		cm.ID = newID()
	}
	if _, err := r.col.InsertOne(ctx, cm); err != nil {
		return fmt.Errorf("insert contactmoment: %w", duplicate(err))
	}
	return nil
}

// FindByUUID returns the contactmoment with its medewerkerIdentificatie.
func (r *ContactMomentRepository) FindByUUID(ctx context.Context, uuid string) (*domain.ContactMoment, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var cm domain.ContactMoment
	if err := r.col.FindOne(ctx, byUUID(uuid)).Decode(&cm); err != nil {
		return nil, notFound(err)
	}
	if err := r.loadMedewerkers(ctx, &cm); err != nil {
		return nil, err
	}
	return &cm, nil
}

func (r *ContactMomentRepository) Update(ctx context.Context, cm *domain.ContactMoment) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.ReplaceOne(ctx, byUUID(cm.UUID), cm)
	if err != nil {
		return fmt.Errorf("replace contactmoment: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete removes the contactmoment and its medewerkerIdentificatie.
func (r *ContactMomentRepository) Delete(ctx context.Context, uuid string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var cm domain.ContactMoment
	if err := r.col.FindOneAndDelete(ctx, byUUID(uuid)).Decode(&cm); err != nil {
		return notFound(err)
	}
	if _, err := r.medewerkers.DeleteOne(ctx, bson.M{"contactmoment_id": cm.ID}); err != nil {
		return fmt.Errorf("delete medewerker: %w", err)
	}
	return nil
}

// List returns every contactmoment, newest interaction first.
func (r *ContactMomentRepository) List(ctx context.Context) ([]*domain.ContactMoment, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "interactiedatum", Value: -1}})
	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("find contactmomenten: %w", err)
	}
	items, err := decodeAll[domain.ContactMoment](ctx, cur)
	if err != nil {
		return nil, err
	}
	if err := r.loadMedewerkers(ctx, items...); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *ContactMomentRepository) SaveMedewerker(ctx context.Context, m *domain.Medewerker) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if m.ID == "" {
		m.ID = newID()
	}
	if err := upsert(ctx, r.medewerkers, m.ID, m); err != nil {
		return fmt.Errorf("save medewerker: %w", duplicate(err))
	}
	return nil
}

// loadMedewerkers attaches medewerkerIdentificatie rows in one query.
func (r *ContactMomentRepository) loadMedewerkers(ctx context.Context, items ...*domain.ContactMoment) error {
	if len(items) == 0 {
		return nil
	}
	byID := make(map[string]*domain.ContactMoment, len(items))
	ids := make([]string, 0, len(items))
	for _, cm := range items {
		byID[cm.ID] = cm
		ids = append(ids, cm.ID)
	}

	cur, err := r.medewerkers.Find(ctx, bson.M{"contactmoment_id": bson.M{"$in": ids}})
	if err != nil {
		return fmt.Errorf("find medewerkers: %w", err)
	}
	medewerkers, err := decodeAll[domain.Medewerker](ctx, cur)
	if err != nil {
		return err
	}
	for _, m := range medewerkers {
		if cm, ok := byID[m.ContactMomentID]; ok {
			cm.MedewerkerIdentificatie = m
		}
	}
	return nil
}

func (r *ContactMomentRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, indexTimeout)
	defer cancel()

	indexes := []mongo.IndexModel{
		uniqueIndex(bson.D{{Key: "uuid", Value: 1}}),
		{Keys: bson.D{{Key: "interactiedatum", Value: -1}}},
	}
	if _, err := r.col.Indexes().CreateMany(ctx, indexes); err != nil {
		return err
	}
	_, err := r.medewerkers.Indexes().CreateOne(ctx, uniqueIndex(bson.D{{Key: "contactmoment_id", Value: 1}}))
	return err
}
