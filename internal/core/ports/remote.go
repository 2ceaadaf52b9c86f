package ports

import "context"

// Object is a decoded JSON resource returned by a remote API.
type Object = map[string]any

// RemoteClient talks to sibling APIs (zaken, documenten). ref is any URL
// under the target API; it selects the API root and the credentials.
// resource is the singular resource name, e.g. "zaakcontactmoment".
type RemoteClient interface {
	List(ctx context.Context, ref, resource string, query map[string]string) ([]Object, error)
	Create(ctx context.Context, ref, resource string, body any) (Object, error)
	Retrieve(ctx context.Context, url string) (Object, error)
	Delete(ctx context.Context, url string) error
}

// ResourceValidator checks that url points at a resource of the named schema
// (e.g. "Zaak") in the remote API. It returns a *domain.ValidationError on
// field with code bad-url or invalid-resource.
type ResourceValidator interface {
	Validate(ctx context.Context, field, resource, url string) error
}
