package moderation

import (
	"testing"

	"github.com/majlis/majlis-api/internal/domain/permission"
)

func TestVisibleActionsOnlyGranted(t *testing.T) {
	perms := permission.NoPermissions()
	perms[permission.KindPinTopic] = true
	perms[permission.KindHideTopic] = true

	actions := VisibleActions(perms)

	if len(actions) != 2 {
		t.Fatalf("got %d actions, want 2", len(actions))
	}
	for _, a := range actions {
		if a.Kind != permission.KindPinTopic && a.Kind != permission.KindHideTopic {
			t.Errorf("unexpected action %s", a.Kind)
		}
		if a.Label == "" {
			t.Errorf("action %s has no label", a.Kind)
		}
	}
}

func TestVisibleActionsAllDenied(t *testing.T) {
	if got := VisibleActions(permission.NoPermissions()); len(got) != 0 {
		t.Errorf("got %d actions for an all-denied set, want 0", len(got))
	}
}

func TestVisibleActionsNilSet(t *testing.T) {
	if got := VisibleActions(nil); len(got) != 0 {
		t.Errorf("got %d actions for a nil set, want 0", len(got))
	}
}

func TestVisibleActionsEveryKindLabeled(t *testing.T) {
	perms := make(map[permission.Kind]bool)
	for _, k := range permission.Kinds() {
		perms[k] = true
	}

	actions := VisibleActions(perms)
	if len(actions) != len(permission.Kinds()) {
		t.Fatalf("got %d actions, want %d", len(actions), len(permission.Kinds()))
	}
	for i, k := range permission.Kinds() {
		if actions[i].Kind != k {
			t.Errorf("action %d is %s, want %s", i, actions[i].Kind, k)
		}
		if actions[i].Label == "" {
			t.Errorf("kind %s has no label", k)
		}
	}
}
