package auth

import (
	"testing"

	"issavie_backend/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestRolePolicy(t *testing.T) {
	policy := RolePolicy{}

	cases := []struct {
		name     string
		role     models.MemberRole
		required []models.MemberRole
		want     bool
	}{
		{"organizer passes organizer check", models.RoleOrganizer, []models.MemberRole{models.RoleOrganizer}, true},
		{"co_organizer fails organizer-only check", models.RoleCoOrganizer, []models.MemberRole{models.RoleOrganizer}, false},
		{"co_organizer passes organizer-or-co check", models.RoleCoOrganizer, []models.MemberRole{models.RoleOrganizer, models.RoleCoOrganizer}, true},
		{"member fails organizer-or-co check", models.RoleMember, []models.MemberRole{models.RoleOrganizer, models.RoleCoOrganizer}, false},
		{"member passes member check", models.RoleMember, []models.MemberRole{models.RoleMember}, true},
		{"no requirement means open", models.RoleMember, nil, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, policy.Allows(tc.role, tc.required...))
		})
	}
}

func TestAllowAllPolicy(t *testing.T) {
	policy := AllowAllPolicy{}
	assert.True(t, policy.Allows(models.RoleMember, models.RoleOrganizer))
	assert.True(t, policy.Allows("", models.RoleOrganizer))
}

func TestPolicyFromConfig(t *testing.T) {
	assert.IsType(t, AllowAllPolicy{}, PolicyFromConfig(true))
	assert.IsType(t, RolePolicy{}, PolicyFromConfig(false))
}
