package rbac

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/smsdesk/smsdesk/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultRoles(t *testing.T) {
	svc, err := NewRBACService(config.GetDefaultConfig())
	require.NoError(t, err)

	tests := []struct {
		name   string
		roles  []string
		entity string
		action string
		want   bool
	}{
		{"admin lists all contacts", []string{"admin"}, EntityContact, ActionListAll, true},
		{"admin views any scheduled sms", []string{"admin"}, EntityScheduledSMS, ActionViewAny, true},
		{"user cannot list all contacts", []string{"user"}, EntityContact, ActionListAll, false},
		{"no roles grant nothing", nil, EntityContact, ActionListAll, false},
		{"unknown role grants nothing", []string{"ghost"}, EntityContact, ActionListAll, false},
		{"any role granting is enough", []string{"user", "admin"}, EntityContact, ActionListAll, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, svc.HasPermission(tt.roles, tt.entity, tt.action))
		})
	}

	assert.True(t, svc.ValidateRole("admin"))
	assert.False(t, svc.ValidateRole("ghost"))
	assert.Len(t, svc.ListRoles(), 2)

	role, ok := svc.GetRole("admin")
	require.True(t, ok)
	assert.Equal(t, "admin", role.ID)
}

func TestRolesFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roles.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"auditor":{"permissions":{"contact":["list_all"]}}}`), 0o600))

	cfg := config.GetDefaultConfig()
	cfg.RBAC.RolesConfigPath = path

	svc, err := NewRBACService(cfg)
	require.NoError(t, err)
	assert.True(t, svc.HasPermission([]string{"auditor"}, EntityContact, ActionListAll))
	assert.False(t, svc.ValidateRole("admin"))

	cfg.RBAC.RolesConfigPath = filepath.Join(t.TempDir(), "missing.json")
	_, err = NewRBACService(cfg)
	assert.Error(t, err)
}
