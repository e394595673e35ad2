package types

import (
	"fmt"

	"github.com/oklog/ulid/v2"
)

// GenerateUUID returns a k-sortable unique identifier
func GenerateUUID() string {
	return ulid.Make().String()
}

// GenerateUUIDWithPrefix returns a k-sortable unique identifier
// with a prefix ex cont_01J9Z3TQ8M4S0N6V2K7XWQ5B1C
func GenerateUUIDWithPrefix(prefix string) string {
	if prefix == "" {
		return GenerateUUID()
	}
	return fmt.Sprintf("%s_%s", prefix, GenerateUUID())
}

const (
	// Prefixes for all domains and entities

	UUID_PREFIX_CONTACT       = "cont"
	UUID_PREFIX_GROUP         = "grp"
	UUID_PREFIX_USER          = "user"
	UUID_PREFIX_SCHEDULED_SMS = "ssms"
)
