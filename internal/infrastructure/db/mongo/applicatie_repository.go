package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/vng-realisatie/klantinteracties/internal/core/domain"
)

const collectionApplicaties = "applicaties"

type ApplicatieRepository struct {
	col *mongo.Collection
}

func NewApplicatieRepository(db *mongo.Database) *ApplicatieRepository {
	return &ApplicatieRepository{col: db.Collection(collectionApplicaties)}
}

type mongoApplicatie struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	ClientID   string             `bson:"client_id"`
	Label      string             `bson:"label"`
	SecretHash string             `bson:"secret_hash"`
	Scopes     []string           `bson:"scopes"`
	CreatedAt  int64              `bson:"created_at"`
}

func (r *ApplicatieRepository) Create(ctx context.Context, app *domain.Applicatie) (*domain.Applicatie, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoApplicatie{
		ClientID:   app.ClientID,
		Label:      app.Label,
		SecretHash: app.SecretHash,
		Scopes:     app.Scopes,
		CreatedAt:  app.CreatedAt.Unix(),
	}

	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrApplicatieExists
		}
		return nil, fmt.Errorf("insert applicatie: %w", err)
	}

	created := *app
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *ApplicatieRepository) FindByClientID(ctx context.Context, clientID string) (*domain.Applicatie, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc mongoApplicatie
	if err := r.col.FindOne(ctx, bson.M{"client_id": clientID}).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrApplicatieNotFound
		}
		return nil, fmt.Errorf("find applicatie: %w", err)
	}

	return &domain.Applicatie{
		ID:         doc.ID.Hex(),
		ClientID:   doc.ClientID,
		Label:      doc.Label,
		SecretHash: doc.SecretHash,
		Scopes:     doc.Scopes,
		CreatedAt:  unixToTime(doc.CreatedAt),
	}, nil
}

func (r *ApplicatieRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, indexTimeout)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, uniqueIndex(bson.D{{Key: "client_id", Value: 1}}))
	return err
}

func unixToTime(ts int64) time.Time {
	if ts == 0 {
		return time.Time{}
	}
	return time.Unix(ts, 0).UTC()
}
