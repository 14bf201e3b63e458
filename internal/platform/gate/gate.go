// Package gate implements the profile-level authorization middleware.
// It resolves a bearer token to a principal backed by the current stored
// user row, so role and level changes take effect on the very next request.
package gate

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"

	"carebridge_backend/internal/feature/auth/domain/entity"
	"carebridge_backend/internal/platform/apperr"
	"carebridge_backend/internal/platform/httpx"
	"carebridge_backend/internal/platform/token"
)

// ContextPrincipal is the gin context key under which the principal is stored.
const ContextPrincipal = "principal"

// TokenVerifier validates a bearer token and returns its claims.
type TokenVerifier interface {
	Verify(tok string) (token.Principal, error)
}

// UserLoader fetches the current user row for a verified token.
type UserLoader interface {
	FindByID(ctx context.Context, id uint) (*entity.User, error)
}

// Gate checks bearer credentials and minimum profile levels.
// Role requirements are a separate axis and stay with the callers.
type Gate struct {
	verifier TokenVerifier
	users    UserLoader
}

// New creates a Gate with the given verifier and user store.
func New(verifier TokenVerifier, users UserLoader) *Gate {
	return &Gate{verifier: verifier, users: users}
}

// RequireLevel returns a middleware that admits only requests whose bearer
// token verifies and whose user's current profile level is at least minLevel.
// Absent, malformed, invalid or expired credentials abort with 401; an
// insufficient level aborts with 403.
func (g *Gate) RequireLevel(minLevel int) gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			abort(c, apperr.E(apperr.Unauthorized, "missing bearer token"))
			return
		}
		claims, err := g.verifier.Verify(strings.TrimPrefix(auth, "Bearer "))
		if err != nil {
			abort(c, apperr.E(apperr.Unauthorized, "invalid or expired token"))
			return
		}
		user, err := g.users.FindByID(c.Request.Context(), claims.UserID)
		if err != nil {
			abort(c, apperr.E(apperr.Unauthorized, "unknown user"))
			return
		}
		if user.ProfileLevel < minLevel {
			abort(c, apperr.E(apperr.Forbidden, "insufficient profile level"))
			return
		}
		// The stored row wins over the token snapshot.
		c.Set(ContextPrincipal, token.Principal{UserID: user.ID, Role: string(user.Role)})
		c.Next()
	}
}

// PrincipalFrom returns the principal stored by RequireLevel.
func PrincipalFrom(c *gin.Context) (token.Principal, bool) {
	v, ok := c.Get(ContextPrincipal)
	if !ok {
		return token.Principal{}, false
	}
	p, ok := v.(token.Principal)
	return p, ok
}

func abort(c *gin.Context, err error) {
	httpx.Error(c, err)
	c.Abort()
}
