package ports

import (
	"context"

	"github.com/vng-realisatie/klantinteracties/internal/core/domain"
)

// Relation filters carry the supported query parameters of each list
// endpoint. Empty fields do not filter.

type ObjectContactMomentFilter struct {
	Object        string
	ContactMoment string
}

type ObjectVerzoekFilter struct {
	Object  string
	Verzoek string
}

type VerzoekInformatieObjectFilter struct {
	Verzoek          string
	Informatieobject string
}

type VerzoekProductFilter struct {
	Verzoek                  string
	Product                  string
	ProductIdentificatieCode string
}

type VerzoekContactMomentFilter struct {
	Verzoek       string
	ContactMoment string
}

// Relation repositories. Create fails with domain.ErrDuplicate when the
// relation pair already exists. DeleteMatching removes every row matching the
// filter and is used for cascades.

type ObjectContactMomentRepository interface {
	Create(ctx context.Context, r *domain.ObjectContactMoment) error
	FindByUUID(ctx context.Context, uuid string) (*domain.ObjectContactMoment, error)
	Delete(ctx context.Context, uuid string) error
	List(ctx context.Context, filter ObjectContactMomentFilter) ([]*domain.ObjectContactMoment, error)
	DeleteMatching(ctx context.Context, filter ObjectContactMomentFilter) error
}

type ObjectVerzoekRepository interface {
	Create(ctx context.Context, r *domain.ObjectVerzoek) error
	FindByUUID(ctx context.Context, uuid string) (*domain.ObjectVerzoek, error)
	Delete(ctx context.Context, uuid string) error
	List(ctx context.Context, filter ObjectVerzoekFilter) ([]*domain.ObjectVerzoek, error)
	DeleteMatching(ctx context.Context, filter ObjectVerzoekFilter) error
}

type VerzoekInformatieObjectRepository interface {
	Create(ctx context.Context, r *domain.VerzoekInformatieObject) error
	FindByUUID(ctx context.Context, uuid string) (*domain.VerzoekInformatieObject, error)
	// SetRemote stores the URL of the mirrored remote relation.
	SetRemote(ctx context.Context, uuid, remote string) error
	Delete(ctx context.Context, uuid string) error
	List(ctx context.Context, filter VerzoekInformatieObjectFilter) ([]*domain.VerzoekInformatieObject, error)
	DeleteMatching(ctx context.Context, filter VerzoekInformatieObjectFilter) error
}

type VerzoekProductRepository interface {
	Create(ctx context.Context, r *domain.VerzoekProduct) error
	FindByUUID(ctx context.Context, uuid string) (*domain.VerzoekProduct, error)
	Delete(ctx context.Context, uuid string) error
	List(ctx context.Context, filter VerzoekProductFilter) ([]*domain.VerzoekProduct, error)
	DeleteMatching(ctx context.Context, filter VerzoekProductFilter) error
}

type VerzoekContactMomentRepository interface {
	Create(ctx context.Context, r *domain.VerzoekContactMoment) error
	FindByUUID(ctx context.Context, uuid string) (*domain.VerzoekContactMoment, error)
	Delete(ctx context.Context, uuid string) error
	List(ctx context.Context, filter VerzoekContactMomentFilter) ([]*domain.VerzoekContactMoment, error)
	DeleteMatching(ctx context.Context, filter VerzoekContactMomentFilter) error
}

// ObjectRelationInput creates an ObjectContactMoment or ObjectVerzoek. Parent
// is the contactmoment or verzoek URL.
type ObjectRelationInput struct {
	Parent     string
	Object     string
	ObjectType string
}

// ObjectRelationService manages relations whose canonical side lives in a
// remote API. Creation and deletion are checked against that API.
type ObjectRelationService interface {
	CreateObjectContactMoment(ctx context.Context, input ObjectRelationInput) (*domain.ObjectContactMoment, error)
	GetObjectContactMoment(ctx context.Context, uuid string) (*domain.ObjectContactMoment, error)
	ListObjectContactMomenten(ctx context.Context, filter ObjectContactMomentFilter) ([]*domain.ObjectContactMoment, error)
	DeleteObjectContactMoment(ctx context.Context, uuid string) error

	CreateObjectVerzoek(ctx context.Context, input ObjectRelationInput) (*domain.ObjectVerzoek, error)
	GetObjectVerzoek(ctx context.Context, uuid string) (*domain.ObjectVerzoek, error)
	ListObjectVerzoeken(ctx context.Context, filter ObjectVerzoekFilter) ([]*domain.ObjectVerzoek, error)
	DeleteObjectVerzoek(ctx context.Context, uuid string) error
}

// VerzoekInformatieObjectInput creates a VerzoekInformatieObject.
type VerzoekInformatieObjectInput struct {
	Verzoek          string
	Informatieobject string
}

// VerzoekInformatieObjectService manages document links that are mirrored to
// the documents API.
type VerzoekInformatieObjectService interface {
	Create(ctx context.Context, input VerzoekInformatieObjectInput) (*domain.VerzoekInformatieObject, error)
	Get(ctx context.Context, uuid string) (*domain.VerzoekInformatieObject, error)
	List(ctx context.Context, filter VerzoekInformatieObjectFilter) ([]*domain.VerzoekInformatieObject, error)
	Delete(ctx context.Context, uuid string) error
}

// VerzoekProductInput creates a VerzoekProduct. At least one of Product and
// ProductIdentificatieCode is required.
type VerzoekProductInput struct {
	Verzoek                  string
	Product                  string
	ProductIdentificatieCode string
}

// VerzoekContactMomentInput creates a VerzoekContactMoment.
type VerzoekContactMomentInput struct {
	Verzoek       string
	ContactMoment string
}

// VerzoekLinkService manages purely local verzoek links.
type VerzoekLinkService interface {
	CreateVerzoekProduct(ctx context.Context, input VerzoekProductInput) (*domain.VerzoekProduct, error)
	GetVerzoekProduct(ctx context.Context, uuid string) (*domain.VerzoekProduct, error)
	ListVerzoekProducten(ctx context.Context, filter VerzoekProductFilter) ([]*domain.VerzoekProduct, error)
	DeleteVerzoekProduct(ctx context.Context, uuid string) error

	CreateVerzoekContactMoment(ctx context.Context, input VerzoekContactMomentInput) (*domain.VerzoekContactMoment, error)
	GetVerzoekContactMoment(ctx context.Context, uuid string) (*domain.VerzoekContactMoment, error)
	ListVerzoekContactMomenten(ctx context.Context, filter VerzoekContactMomentFilter) ([]*domain.VerzoekContactMoment, error)
	DeleteVerzoekContactMoment(ctx context.Context, uuid string) error
}
