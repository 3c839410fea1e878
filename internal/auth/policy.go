package auth

import "issavie_backend/internal/models"

// AccessPolicy decides whether a trip member may act in a given role
// set. It is injected at wiring time so the permissive demo/staging
// mode is an explicit configuration choice rather than a hidden
// environment read inside the check.
type AccessPolicy interface {
	// Allows reports whether a member holding role may perform an
	// action restricted to the given roles.
	Allows(role models.MemberRole, required ...models.MemberRole) bool
}

// RolePolicy is the production policy: exact role membership.
type RolePolicy struct{}

func (RolePolicy) Allows(role models.MemberRole, required ...models.MemberRole) bool {
	if len(required) == 0 {
		return true
	}
	for _, r := range required {
		if role == r {
			return true
		}
	}
	return false
}

// AllowAllPolicy bypasses every role check. Demo and staging only.
type AllowAllPolicy struct{}

func (AllowAllPolicy) Allows(models.MemberRole, ...models.MemberRole) bool {
	return true
}

// PolicyFromConfig picks the policy for the configured mode.
func PolicyFromConfig(unlockAll bool) AccessPolicy {
	if unlockAll {
		return AllowAllPolicy{}
	}
	return RolePolicy{}
}
