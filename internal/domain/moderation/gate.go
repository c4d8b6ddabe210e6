package moderation

import "github.com/majlis/majlis-api/internal/domain/permission"

// ActionDescriptor describes one moderation control the client should
// render for the current user.
type ActionDescriptor struct {
	Kind  permission.Kind `json:"kind"`
	Label string          `json:"label"`
}

// actionLabel maps every permission kind to its display label. A kind
// with no label here would never be rendered, so keep this exhaustive.
func actionLabel(k permission.Kind) string {
	switch k {
	case permission.KindDeleteTopic:
		return "Delete topic"
	case permission.KindUpdateTopic:
		return "Edit topic"
	case permission.KindMoveTopic:
		return "Move topic"
	case permission.KindHideTopic:
		return "Hide topic"
	case permission.KindPinTopic:
		return "Pin topic"
	case permission.KindFeatureTopic:
		return "Feature topic"
	}
	return ""
}

// VisibleActions returns the moderation controls for a resolved
// permission set, in display order. Denied and absent kinds are never
// emitted, so a client rendering this list cannot show a control the
// user would be refused on.
func VisibleActions(perms map[permission.Kind]bool) []ActionDescriptor {
	actions := make([]ActionDescriptor, 0, len(perms))
	for _, k := range permission.Kinds() {
		if !perms[k] {
			continue
		}
		actions = append(actions, ActionDescriptor{Kind: k, Label: actionLabel(k)})
	}
	return actions
}
