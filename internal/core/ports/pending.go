package ports

import "context"

// Names of the pending-delete sets. A UUID in a set has its remote
// retraction in flight and is hidden from reads.
const (
	PendingVerzoekInformatieObjecten = "vios_marked_for_delete"
	PendingContactMomenten           = "contactmomenten_marked_for_delete"
)

// PendingDeletes tracks resources whose deletion is being propagated to a
// remote API.
type PendingDeletes interface {
	Mark(ctx context.Context, kind, uuid string) error
	Clear(ctx context.Context, kind, uuid string) error
	IsPending(ctx context.Context, kind, uuid string) (bool, error)
	Members(ctx context.Context, kind string) (map[string]struct{}, error)
}
