// Package authz decides whether a caller may use the admin API.
//
// The policy is picked once at startup from auth.admin-policy:
//
//	┌────────────┬────────────────────────────────────────────────┐
//	│  Policy    │  Source of truth                               │
//	├────────────┼────────────────────────────────────────────────┤
//	│  table     │  admins table (managed with "academy admins")  │
//	│  allowlist │  auth.admin-allowlist user ids                 │
//	└────────────┴────────────────────────────────────────────────┘
//
// Nothing else grants admin rights: neither the server mode nor a disabled
// authentication does.
package authz

import (
	"context"
	"fmt"

	"github.com/learnloop/academy/internal/config"
)

type Policy interface {
	IsAdmin(ctx context.Context, userID string) (bool, error)
}

// AdminLookup is satisfied by store.AdminStore.
type AdminLookup interface {
	Exists(ctx context.Context, userID string) (bool, error)
}

type TablePolicy struct {
	admins AdminLookup
}

func NewTablePolicy(admins AdminLookup) *TablePolicy {
	return &TablePolicy{admins: admins}
}

func (p *TablePolicy) IsAdmin(ctx context.Context, userID string) (bool, error) {
	if userID == "" {
		return false, nil
	}
	return p.admins.Exists(ctx, userID)
}

type AllowListPolicy struct {
	ids map[string]struct{}
}

func NewAllowListPolicy(userIDs ...string) *AllowListPolicy {
	ids := make(map[string]struct{}, len(userIDs))
	for _, id := range userIDs {
		if id != "" {
			ids[id] = struct{}{}
		}
	}
	return &AllowListPolicy{ids: ids}
}

func (p *AllowListPolicy) IsAdmin(_ context.Context, userID string) (bool, error) {
	_, ok := p.ids[userID]
	return ok, nil
}

// NewPolicy builds the policy named by cfg.AdminPolicy.
func NewPolicy(cfg config.Authentication, admins AdminLookup) (Policy, error) {
	switch cfg.AdminPolicy {
	case config.AdminPolicyTable:
		return NewTablePolicy(admins), nil
	case config.AdminPolicyAllowList:
		return NewAllowListPolicy(cfg.AdminAllowList...), nil
	default:
		return nil, fmt.Errorf("unknown admin policy %q", cfg.AdminPolicy)
	}
}
