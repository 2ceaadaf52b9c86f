package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/vng-realisatie/klantinteracties/internal/core/ports"
)

// pendingReader hides resources whose delete is in flight. A failing cache
// hides nothing.
type pendingReader struct {
	pending ports.PendingDeletes
	logger  zerolog.Logger
}

func (p pendingReader) hidden(ctx context.Context, kind, uuid string) bool {
	ok, err := p.pending.IsPending(ctx, kind, uuid)
	if err != nil {
		p.logger.Warn().Err(err).Str("kind", kind).Msg("pending delete lookup failed")
		return false
	}
	return ok
}

func (p pendingReader) members(ctx context.Context, kind string) map[string]struct{} {
	set, err := p.pending.Members(ctx, kind)
	if err != nil {
		p.logger.Warn().Err(err).Str("kind", kind).Msg("pending delete lookup failed")
		return nil
	}
	return set
}

// visible drops items whose uuid is in the pending set.
func visible[T any](items []T, pending map[string]struct{}, uuidOf func(T) string) []T {
	if len(pending) == 0 {
		return items
	}
	out := make([]T, 0, len(items))
	for _, it := range items {
		if _, ok := pending[uuidOf(it)]; !ok {
			out = append(out, it)
		}
	}
	return out
}
