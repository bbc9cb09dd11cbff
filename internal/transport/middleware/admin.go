package middleware

import (
	"context"

	"github.com/michaelschade/kenchi-sub000/internal/domain"
	"github.com/michaelschade/kenchi-sub000/pkg/ctxutil"
)

// RequireOrgAdmin returns domain.ErrForbidden unless the context viewer is an
// organization admin. Use in resolver methods or REST handlers, not as HTTP
// middleware.
func RequireOrgAdmin(ctx context.Context) error {
	v := ctxutil.ViewerFromCtx(ctx)
	if !v.Authenticated() {
		return domain.ErrUnauthorized
	}
	if !v.User.IsOrganizationAdmin {
		return domain.ErrForbidden
	}
	return nil
}
