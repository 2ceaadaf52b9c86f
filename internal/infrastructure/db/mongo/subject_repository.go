package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/vng-realisatie/klantinteracties/internal/core/domain"
)

const (
	collectionNatuurlijkePersonen   = "natuurlijke_personen"
	collectionVestigingen           = "vestigingen"
	collectionAdressen              = "adressen"
	collectionSubVerblijfBuitenland = "sub_verblijf_buitenland"
)

// SubjectRepository stores subject variants in one collection per type.
// Children live in their own collections and point back at their variant
// through exactly one owner key.
type SubjectRepository struct {
	variants    map[domain.SubjectType]*mongo.Collection
	adressen    *mongo.Collection
	buitenlands *mongo.Collection
}

func NewSubjectRepository(db *mongo.Database) *SubjectRepository {
	return &SubjectRepository{
		variants: map[domain.SubjectType]*mongo.Collection{
			domain.SubjectTypeNatuurlijkPersoon: db.Collection(collectionNatuurlijkePersonen),
			domain.SubjectTypeVestiging:         db.Collection(collectionVestigingen),
		},
		adressen:    db.Collection(collectionAdressen),
		buitenlands: db.Collection(collectionSubVerblijfBuitenland),
	}
}

func (r *SubjectRepository) variant(t domain.SubjectType) (*mongo.Collection, error) {
	col, ok := r.variants[t]
	if !ok {
		return nil, fmt.Errorf("unknown subject type %q", t)
	}
	return col, nil
}

func newSubject(t domain.SubjectType) domain.SubjectIdentificatie {
	switch t {
	case domain.SubjectTypeNatuurlijkPersoon:
		return &domain.NatuurlijkPersoon{}
	case domain.SubjectTypeVestiging:
		return &domain.Vestiging{}
	}
	return nil
}

// ownerFilter selects children owned by the given variant record.
func ownerFilter(owner domain.Owner) bson.M {
	if owner.NatuurlijkPersoonID != "" {
		return bson.M{"natuurlijk_persoon_id": owner.NatuurlijkPersoonID}
	}
	return bson.M{"vestiging_id": owner.VestigingID}
}

func (r *SubjectRepository) FindByKlant(ctx context.Context, klantID string, t domain.SubjectType) (domain.SubjectIdentificatie, error) {
	col, err := r.variant(t)
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	s := newSubject(t)
	if err := col.FindOne(ctx, bson.M{"klant_id": klantID}).Decode(s); err != nil {
		return nil, notFound(err)
	}

	filter := ownerFilter(domain.OwnerOf(s))
	rec := s.Record()

	var adres domain.Adres
	switch err := r.adressen.FindOne(ctx, filter).Decode(&adres); {
	case err == nil:
		rec.Verblijfsadres = &adres
	case !errors.Is(err, mongo.ErrNoDocuments):
		return nil, fmt.Errorf("find verblijfsadres: %w", err)
	}

	var buitenland domain.SubVerblijfBuitenland
	switch err := r.buitenlands.FindOne(ctx, filter).Decode(&buitenland); {
	case err == nil:
		rec.SubVerblijfBuitenland = &buitenland
	case !errors.Is(err, mongo.ErrNoDocuments):
		return nil, fmt.Errorf("find subVerblijfBuitenland: %w", err)
	}

	return s, nil
}

// Save upserts the variant and then its children, binding each child to the
// variant's owner key.
func (r *SubjectRepository) Save(ctx context.Context, s domain.SubjectIdentificatie) error {
	col, err := r.variant(s.SubjectType())
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	rec := s.Record()
	if rec.ID == "" {
		rec.ID = newID()
	}
	if err := upsert(ctx, col, rec.ID, s); err != nil {
		return fmt.Errorf("save %s: %w", s.SubjectType(), err)
	}

	owner := domain.OwnerOf(s)
	if err := owner.Validate(); err != nil {
		return err
	}
	if a := rec.Verblijfsadres; a != nil {
		a.Owner = owner
		if a.ID == "" {
			a.ID = newID()
		}
		if err := upsert(ctx, r.adressen, a.ID, a); err != nil {
			return fmt.Errorf("save verblijfsadres: %w", err)
		}
	}
	if b := rec.SubVerblijfBuitenland; b != nil {
		b.Owner = owner
		if b.ID == "" {
			b.ID = newID()
		}
		if err := upsert(ctx, r.buitenlands, b.ID, b); err != nil {
			return fmt.Errorf("save subVerblijfBuitenland: %w", err)
		}
	}
	return nil
}

func (r *SubjectRepository) DeleteByKlant(ctx context.Context, klantID string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	for t, col := range r.variants {
		s := newSubject(t)
		err := col.FindOne(ctx, bson.M{"klant_id": klantID}).Decode(s)
		if errors.Is(err, mongo.ErrNoDocuments) {
			continue
		}
		if err != nil {
			return fmt.Errorf("find %s: %w", t, err)
		}

		filter := ownerFilter(domain.OwnerOf(s))
		if _, err := r.adressen.DeleteMany(ctx, filter); err != nil {
			return fmt.Errorf("delete verblijfsadres: %w", err)
		}
		if _, err := r.buitenlands.DeleteMany(ctx, filter); err != nil {
			return fmt.Errorf("delete subVerblijfBuitenland: %w", err)
		}
		if _, err := col.DeleteOne(ctx, bson.M{"_id": s.Record().ID}); err != nil {
			return fmt.Errorf("delete %s: %w", t, err)
		}
	}
	return nil
}

// EnsureIndexes gives each klant at most one variant row per type and each
// variant at most one child of each kind.
func (r *SubjectRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, indexTimeout)
	defer cancel()

	for t, col := range r.variants {
		if _, err := col.Indexes().CreateOne(ctx, uniqueIndex(bson.D{{Key: "klant_id", Value: 1}})); err != nil {
			return fmt.Errorf("%s indexes: %w", t, err)
		}
	}

	children := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "natuurlijk_persoon_id", Value: 1}},
			Options: options.Index().SetUnique(true).SetSparse(true),
		},
		{
			Keys:    bson.D{{Key: "vestiging_id", Value: 1}},
			Options: options.Index().SetUnique(true).SetSparse(true),
		},
	}
	for _, col := range []*mongo.Collection{r.adressen, r.buitenlands} {
		if _, err := col.Indexes().CreateMany(ctx, children); err != nil {
			return fmt.Errorf("%s indexes: %w", col.Name(), err)
		}
	}
	return nil
}

func upsert(ctx context.Context, col *mongo.Collection, id string, doc any) error {
	_, err := col.ReplaceOne(ctx, bson.M{"_id": id}, doc, options.Replace().SetUpsert(true))
	return err
}
