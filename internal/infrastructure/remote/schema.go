package remote

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/vng-realisatie/klantinteracties/internal/core/domain"
	"github.com/vng-realisatie/klantinteracties/internal/core/ports"
)

// SchemaValidator checks that a URL points at a resource matching a named
// schema of one of the loaded OpenAPI documents.
type SchemaValidator struct {
	fetcher retriever
	docs    []*openapi3.T
}

type retriever interface {
	Retrieve(ctx context.Context, url string) (ports.Object, error)
}

// LoadSpecs reads OpenAPI documents from files or http(s) URLs. Empty
// locations are skipped.
func LoadSpecs(locations ...string) ([]*openapi3.T, error) {
	loader := openapi3.NewLoader()
	loader.IsExternalRefsAllowed = true

	var docs []*openapi3.T
	for _, loc := range locations {
		if loc == "" {
			continue
		}
		var (
			doc *openapi3.T
			err error
		)
		if strings.HasPrefix(loc, "http://") || strings.HasPrefix(loc, "https://") {
			var u *url.URL
			if u, err = url.Parse(loc); err == nil {
				doc, err = loader.LoadFromURI(u)
			}
		} else {
			doc, err = loader.LoadFromFile(loc)
		}
		if err != nil {
			return nil, fmt.Errorf("load openapi spec %s: %w", loc, err)
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

func NewSchemaValidator(fetcher retriever, docs []*openapi3.T) *SchemaValidator {
	return &SchemaValidator{fetcher: fetcher, docs: docs}
}

var _ ports.ResourceValidator = (*SchemaValidator)(nil)

// Validate fetches rawURL and matches the body against schema. A URL that is
// malformed or cannot be fetched is bad-url; a body that does not match the
// schema is invalid-resource. Schemas absent from every document are not
// checked beyond the fetch.
func (v *SchemaValidator) Validate(ctx context.Context, field, schema, rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return domain.NewValidationError(field, domain.CodeBadURL, "Enter a valid URL.")
	}

	obj, err := v.fetcher.Retrieve(ctx, rawURL)
	if err != nil {
		return domain.NewValidationError(field, domain.CodeBadURL,
			fmt.Sprintf("The URL %s could not be fetched: %v", rawURL, err))
	}

	ref := v.lookup(schema)
	if ref == nil || ref.Value == nil {
		return nil
	}
	if err := ref.Value.VisitJSON(map[string]any(obj), openapi3.VisitAsResponse()); err != nil {
		return domain.NewValidationError(field, domain.CodeInvalidResource,
			fmt.Sprintf("The URL %s does not resolve to a %s: %v", rawURL, schema, err))
	}
	return nil
}

func (v *SchemaValidator) lookup(schema string) *openapi3.SchemaRef {
	for _, doc := range v.docs {
		if doc.Components == nil {
			continue
		}
		if ref, ok := doc.Components.Schemas[schema]; ok {
			return ref
		}
	}
	return nil
}
