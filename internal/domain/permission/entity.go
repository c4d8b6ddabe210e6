package permission

import (
	"time"

	"github.com/google/uuid"

	"github.com/majlis/majlis-api/internal/domain/user"
)

// Kind identifies a moderation capability that can be granted to a role.
type Kind string

const (
	KindDeleteTopic  Kind = "delete_topic"
	KindUpdateTopic  Kind = "update_topic"
	KindMoveTopic    Kind = "move_topic"
	KindHideTopic    Kind = "hide_topic"
	KindPinTopic     Kind = "pin_topic"
	KindFeatureTopic Kind = "feature_topic"
)

// Kinds returns every permission kind in display order.
func Kinds() []Kind {
	return []Kind{
		KindDeleteTopic,
		KindUpdateTopic,
		KindMoveTopic,
		KindHideTopic,
		KindPinTopic,
		KindFeatureTopic,
	}
}

// IsValidKind reports whether k names a known permission kind.
func IsValidKind(k Kind) bool {
	switch k {
	case KindDeleteTopic, KindUpdateTopic, KindMoveTopic, KindHideTopic, KindPinTopic, KindFeatureTopic:
		return true
	}
	return false
}

// Grant is a single row of the permission table: one role, one kind,
// enabled or not.
type Grant struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Role      user.Role `db:"role" json:"role"`
	Kind      Kind      `db:"kind" json:"kind"`
	Enabled   bool      `db:"enabled" json:"enabled"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// NoPermissions returns a permission set with every kind denied. It is
// the result for unauthenticated callers and for any subject whose
// grants cannot be resolved.
func NoPermissions() map[Kind]bool {
	m := make(map[Kind]bool, len(Kinds()))
	for _, k := range Kinds() {
		m[k] = false
	}
	return m
}
