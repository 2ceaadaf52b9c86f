package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/vng-realisatie/klantinteracties/internal/core/domain"
	"github.com/vng-realisatie/klantinteracties/internal/core/ports"
)

const (
	collectionObjectContactMomenten     = "objectcontactmomenten"
	collectionObjectVerzoeken           = "objectverzoeken"
	collectionVerzoekInformatieObjecten = "verzoekinformatieobjecten"
	collectionVerzoekProducten          = "verzoekproducten"
	collectionVerzoekContactMomenten    = "verzoekcontactmomenten"
)

// RelationRepository stores one kind of relation row. filter turns the list
// filter of that kind into a query; pair is the unique key of a relation.
type RelationRepository[T any, F any] struct {
	col    *mongo.Collection
	assign func(row *T)
	filter func(f F) bson.M
	pair   mongo.IndexModel
}

func (r *RelationRepository[T, F]) Create(ctx context.Context, row *T) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	r.assign(row)
	if _, err := r.col.InsertOne(ctx, row); err != nil {
		return fmt.Errorf("insert %s: %w", r.col.Name(), duplicate(err))
	}
	return nil
}

func (r *RelationRepository[T, F]) FindByUUID(ctx context.Context, uuid string) (*T, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var row T
	if err := r.col.FindOne(ctx, byUUID(uuid)).Decode(&row); err != nil {
		return nil, notFound(err)
	}
	return &row, nil
}

func (r *RelationRepository[T, F]) Delete(ctx context.Context, uuid string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, byUUID(uuid))
	if err != nil {
		return fmt.Errorf("delete %s: %w", r.col.Name(), err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *RelationRepository[T, F]) List(ctx context.Context, f F) ([]*T, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, r.filter(f), options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("find %s: %w", r.col.Name(), err)
	}
	return decodeAll[T](ctx, cur)
}

// DeleteMatching removes every row matching f. An empty filter is refused so
// a cascade can never wipe the collection.
func (r *RelationRepository[T, F]) DeleteMatching(ctx context.Context, f F) error {
	query := r.filter(f)
	if len(query) == 0 {
		return fmt.Errorf("delete %s: empty filter", r.col.Name())
	}
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.col.DeleteMany(ctx, query); err != nil {
		return fmt.Errorf("delete %s: %w", r.col.Name(), err)
	}
	return nil
}

func (r *RelationRepository[T, F]) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, indexTimeout)
	defer cancel()

	indexes := []mongo.IndexModel{uniqueIndex(bson.D{{Key: "uuid", Value: 1}}), r.pair}
	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}

// match adds the non-empty values to a query.
func match(pairs ...string) bson.M {
	q := bson.M{}
	for i := 0; i+1 < len(pairs); i += 2 {
		if pairs[i+1] != "" {
			q[pairs[i]] = pairs[i+1]
		}
	}
	return q
}

func NewObjectContactMomentRepository(db *mongo.Database) *RelationRepository[domain.ObjectContactMoment, ports.ObjectContactMomentFilter] {
	return &RelationRepository[domain.ObjectContactMoment, ports.ObjectContactMomentFilter]{
		col:    db.Collection(collectionObjectContactMomenten),
		assign: func(r *domain.ObjectContactMoment) { r.ID = newID() },
		filter: func(f ports.ObjectContactMomentFilter) bson.M {
			return match("object", f.Object, "contactmoment", f.ContactMoment)
		},
		pair: uniqueIndex(bson.D{{Key: "contactmoment", Value: 1}, {Key: "object", Value: 1}}),
	}
}

func NewObjectVerzoekRepository(db *mongo.Database) *RelationRepository[domain.ObjectVerzoek, ports.ObjectVerzoekFilter] {
	return &RelationRepository[domain.ObjectVerzoek, ports.ObjectVerzoekFilter]{
		col:    db.Collection(collectionObjectVerzoeken),
		assign: func(r *domain.ObjectVerzoek) { r.ID = newID() },
		filter: func(f ports.ObjectVerzoekFilter) bson.M {
			return match("object", f.Object, "verzoek", f.Verzoek)
		},
		pair: uniqueIndex(bson.D{{Key: "verzoek", Value: 1}, {Key: "object", Value: 1}}),
	}
}

func NewVerzoekProductRepository(db *mongo.Database) *RelationRepository[domain.VerzoekProduct, ports.VerzoekProductFilter] {
	return &RelationRepository[domain.VerzoekProduct, ports.VerzoekProductFilter]{
		col:    db.Collection(collectionVerzoekProducten),
		assign: func(r *domain.VerzoekProduct) { r.ID = newID() },
		filter: func(f ports.VerzoekProductFilter) bson.M {
			return match("verzoek", f.Verzoek, "product", f.Product, "product_identificatie_code", f.ProductIdentificatieCode)
		},
		// Only links by product URL are unique; code-only links may repeat.
		pair: mongo.IndexModel{
			Keys: bson.D{{Key: "verzoek", Value: 1}, {Key: "product", Value: 1}},
			Options: options.Index().SetUnique(true).
				SetPartialFilterExpression(bson.M{"product": bson.M{"$gt": ""}}),
		},
	}
}

func NewVerzoekContactMomentRepository(db *mongo.Database) *RelationRepository[domain.VerzoekContactMoment, ports.VerzoekContactMomentFilter] {
	return &RelationRepository[domain.VerzoekContactMoment, ports.VerzoekContactMomentFilter]{
		col:    db.Collection(collectionVerzoekContactMomenten),
		assign: func(r *domain.VerzoekContactMoment) { r.ID = newID() },
		filter: func(f ports.VerzoekContactMomentFilter) bson.M {
			return match("verzoek", f.Verzoek, "contactmoment", f.ContactMoment)
		},
		pair: uniqueIndex(bson.D{{Key: "verzoek", Value: 1}, {Key: "contactmoment", Value: 1}}),
	}
}

// VerzoekInformatieObjectRepository also stores the URL of the mirrored
// remote relation.
type VerzoekInformatieObjectRepository struct {
	*RelationRepository[domain.VerzoekInformatieObject, ports.VerzoekInformatieObjectFilter]
}

func NewVerzoekInformatieObjectRepository(db *mongo.Database) *VerzoekInformatieObjectRepository {
	return &VerzoekInformatieObjectRepository{
		RelationRepository: &RelationRepository[domain.VerzoekInformatieObject, ports.VerzoekInformatieObjectFilter]{
			col:    db.Collection(collectionVerzoekInformatieObjecten),
			assign: func(r *domain.VerzoekInformatieObject) { r.ID = newID() },
			filter: func(f ports.VerzoekInformatieObjectFilter) bson.M {
				return match("verzoek", f.Verzoek, "informatieobject", f.Informatieobject)
			},
			pair: uniqueIndex(bson.D{{Key: "verzoek", Value: 1}, {Key: "informatieobject", Value: 1}}),
		},
	}
}

func (r *VerzoekInformatieObjectRepository) SetRemote(ctx context.Context, uuid, remote string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.UpdateOne(ctx, byUUID(uuid), bson.M{"$set": bson.M{"remote": remote}})
	if err != nil {
		return fmt.Errorf("set remote: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}
