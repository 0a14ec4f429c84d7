package auth

import (
	"context"
	"slices"

	"github.com/BruksfildServices01/laundry-marketplace/internal/models"
)

// Identity is the caller resolved by the auth middleware.
type Identity struct {
	UserID uint
	Name   string
	Email  string
	Role   models.Role
}

func IdentityFromUser(u *models.User) Identity {
	return Identity{
		UserID: u.ID,
		Name:   u.Name,
		Email:  u.Email,
		Role:   u.Role,
	}
}

func (i Identity) IsAdmin() bool {
	return i.Role == models.RoleAdmin
}

func (i Identity) HasRole(roles ...models.Role) bool {
	return slices.Contains(roles, i.Role)
}

// CanManage reports whether the caller may mutate a resource owned by
// ownerUserID.
func (i Identity) CanManage(ownerUserID uint) bool {
	return i.IsAdmin() || (i.Role == models.RoleMerchant && i.UserID == ownerUserID)
}

type identityKey struct{}

func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

func FromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityKey{}).(Identity)
	return id, ok
}
