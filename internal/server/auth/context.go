package auth

import (
	"context"

	"github.com/dmitrijs2005/satstream/internal/common"
	"github.com/dmitrijs2005/satstream/internal/server/models"
)

type ctxKey struct{}

// WithPrincipal stores the authenticated caller in ctx.
func WithPrincipal(ctx context.Context, p models.Principal) context.Context {
	return context.WithValue(ctx, ctxKey{}, p)
}

// PrincipalFromContext returns the caller stored by WithPrincipal.
func PrincipalFromContext(ctx context.Context) (models.Principal, bool) {
	p, ok := ctx.Value(ctxKey{}).(models.Principal)
	return p, ok && p != ""
}

// ContextIdentity is the identity collaborator of the stream service: it
// reads the principal the transport layer put into the request context.
type ContextIdentity struct{}

func (ContextIdentity) CurrentIdentity(ctx context.Context) (models.Principal, error) {
	p, ok := PrincipalFromContext(ctx)
	if !ok {
		return "", common.ErrorUnauthenticated
	}
	return p, nil
}
