package rbac

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/smsdesk/smsdesk/internal/config"
)

// Entities and actions checked by the services
const (
	EntityContact      = "contact"
	EntityScheduledSMS = "scheduled_sms"

	ActionListAll   = "list_all"
	ActionViewAny   = "view_any"
	ActionDeleteAny = "delete_any"
)

//go:embed roles.json
var defaultRoles []byte

// RBACService handles permission checks with set-based lookups
type RBACService struct {
	// Fast lookup for permission checks (hot path - O(1))
	permissions map[string]map[string]map[string]bool

	// Full role definitions with metadata
	roles map[string]*Role
}

// Role represents a role with metadata
type Role struct {
	ID          string              `json:"id"`
	Name        string              `json:"name"`
	Description string              `json:"description"`
	Permissions map[string][]string `json:"permissions"`
}

// NewRBACService loads roles from the configured file, falling back to the bundled definitions
func NewRBACService(cfg *config.Configuration) (*RBACService, error) {
	data := defaultRoles
	if cfg != nil && cfg.RBAC.RolesConfigPath != "" {
		raw, err := os.ReadFile(cfg.RBAC.RolesConfigPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		data = raw
	}
	return NewRBACServiceFromJSON(data)
}

// NewRBACServiceFromJSON parses role_id -> role definitions
func NewRBACServiceFromJSON(data []byte) (*RBACService, error) {
	var rawConfig map[string]*Role
	if err := json.Unmarshal(data, &rawConfig); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	// Convert to optimized set-based structure for permission checks
	permissions := make(map[string]map[string]map[string]bool)

	for roleID, role := range rawConfig {
		role.ID = roleID
		permissions[roleID] = make(map[string]map[string]bool)

		for entity, actions := range role.Permissions {
			permissions[roleID][entity] = make(map[string]bool)
			for _, action := range actions {
				permissions[roleID][entity][action] = true
			}
		}
	}

	return &RBACService{
		permissions: permissions,
		roles:       rawConfig,
	}, nil
}

// HasPermission checks if any of the caller's roles grant permission.
// No roles means no permission.
func (s *RBACService) HasPermission(roles []string, entity string, action string) bool {
	for _, role := range roles {
		if s.permissions[role] != nil &&
			s.permissions[role][entity] != nil &&
			s.permissions[role][entity][action] {
			return true
		}
	}

	return false
}

// ValidateRole checks if role exists in definitions
func (s *RBACService) ValidateRole(roleName string) bool {
	_, exists := s.permissions[roleName]
	return exists
}

// ListRoles returns all roles with metadata
func (s *RBACService) ListRoles() []*Role {
	result := make([]*Role, 0, len(s.roles))
	for _, role := range s.roles {
		result = append(result, role)
	}
	return result
}

// GetRole returns a specific role with metadata
func (s *RBACService) GetRole(roleID string) (*Role, bool) {
	role, exists := s.roles[roleID]
	return role, exists
}
