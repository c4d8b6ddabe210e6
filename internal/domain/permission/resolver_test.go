package permission

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/majlis/majlis-api/internal/domain/profile"
	"github.com/majlis/majlis-api/internal/domain/user"
)

type fakeGrantRepo struct {
	grants  []*Grant
	listErr error
}

func (f *fakeGrantRepo) List(ctx context.Context) ([]*Grant, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.grants, nil
}

func (f *fakeGrantRepo) GetByID(ctx context.Context, id uuid.UUID) (*Grant, error) {
	for _, g := range f.grants {
		if g.ID == id {
			return g, nil
		}
	}
	return nil, nil
}

func (f *fakeGrantRepo) SetEnabled(ctx context.Context, id uuid.UUID, enabled bool) error {
	for _, g := range f.grants {
		if g.ID == id {
			g.Enabled = enabled
			return nil
		}
	}
	return ErrGrantNotFound
}

type fakeProfileReader struct {
	profiles map[uuid.UUID]*profile.Profile
	err      error
}

func (f *fakeProfileReader) GetByUserID(ctx context.Context, userID uuid.UUID) (*profile.Profile, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.profiles[userID], nil
}

func grant(role user.Role, kind Kind, enabled bool) *Grant {
	return &Grant{
		ID:        uuid.New(),
		Role:      role,
		Kind:      kind,
		Enabled:   enabled,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}

func subject(role string) (*fakeProfileReader, uuid.UUID) {
	id := uuid.New()
	return &fakeProfileReader{profiles: map[uuid.UUID]*profile.Profile{
		id: {UserID: id, DisplayName: "test", Role: role},
	}}, id
}

func TestCanDeniesWithoutGrant(t *testing.T) {
	repo := &fakeGrantRepo{grants: []*Grant{
		grant(user.RoleAdmin, KindDeleteTopic, true),
	}}
	profiles, memberID := subject("member")
	r := NewResolver(NewStore(repo), profiles)

	allowed, err := r.Can(context.Background(), memberID, KindDeleteTopic)
	if err != nil {
		t.Fatalf("Can: %v", err)
	}
	if allowed {
		t.Error("member allowed delete_topic without a grant")
	}
}

func TestCanDeniesDisabledGrant(t *testing.T) {
	repo := &fakeGrantRepo{grants: []*Grant{
		grant(user.RoleModerator, KindPinTopic, false),
	}}
	profiles, modID := subject("moderator")
	r := NewResolver(NewStore(repo), profiles)

	allowed, err := r.Can(context.Background(), modID, KindPinTopic)
	if err != nil {
		t.Fatalf("Can: %v", err)
	}
	if allowed {
		t.Error("disabled grant allowed the action")
	}
}

func TestCanAllowsEnabledGrant(t *testing.T) {
	repo := &fakeGrantRepo{grants: []*Grant{
		grant(user.RoleModerator, KindPinTopic, true),
	}}
	profiles, modID := subject("moderator")
	r := NewResolver(NewStore(repo), profiles)

	allowed, err := r.Can(context.Background(), modID, KindPinTopic)
	if err != nil {
		t.Fatalf("Can: %v", err)
	}
	if !allowed {
		t.Error("enabled grant denied the action")
	}
}

func TestCanDeniesUnauthenticated(t *testing.T) {
	repo := &fakeGrantRepo{grants: []*Grant{
		grant(user.RoleAdmin, KindDeleteTopic, true),
	}}
	r := NewResolver(NewStore(repo), &fakeProfileReader{})

	allowed, err := r.Can(context.Background(), uuid.Nil, KindDeleteTopic)
	if err != nil {
		t.Fatalf("Can: %v", err)
	}
	if allowed {
		t.Error("unauthenticated subject was allowed")
	}
}

func TestCanDeniesOnStoreError(t *testing.T) {
	repo := &fakeGrantRepo{listErr: errors.New("db down")}
	profiles, adminID := subject("admin")
	r := NewResolver(NewStore(repo), profiles)

	allowed, err := r.Can(context.Background(), adminID, KindDeleteTopic)
	if err == nil {
		t.Fatal("expected error when grant table is unreadable")
	}
	if allowed {
		t.Error("store error must not grant access")
	}
}

func TestDuplicateGrantsEnabledWins(t *testing.T) {
	repo := &fakeGrantRepo{grants: []*Grant{
		grant(user.RoleModerator, KindHideTopic, false),
		grant(user.RoleModerator, KindHideTopic, true),
		grant(user.RoleModerator, KindHideTopic, false),
	}}
	profiles, modID := subject("moderator")
	r := NewResolver(NewStore(repo), profiles)

	allowed, err := r.Can(context.Background(), modID, KindHideTopic)
	if err != nil {
		t.Fatalf("Can: %v", err)
	}
	if !allowed {
		t.Error("an enabled duplicate row should win over disabled ones")
	}
}

func TestUnknownRoleResolvesAsMember(t *testing.T) {
	repo := &fakeGrantRepo{grants: []*Grant{
		grant(user.RoleAdmin, KindDeleteTopic, true),
	}}
	profiles, oddID := subject("superuser")
	r := NewResolver(NewStore(repo), profiles)

	role, err := r.ResolveRole(context.Background(), oddID)
	if err != nil {
		t.Fatalf("ResolveRole: %v", err)
	}
	if role != user.RoleMember {
		t.Errorf("unknown role resolved to %q, want member", role)
	}

	allowed, err := r.Can(context.Background(), oddID, KindDeleteTopic)
	if err != nil {
		t.Fatalf("Can: %v", err)
	}
	if allowed {
		t.Error("subject with unknown role inherited admin grants")
	}
}

func TestMissingProfileResolvesAsMember(t *testing.T) {
	repo := &fakeGrantRepo{}
	r := NewResolver(NewStore(repo), &fakeProfileReader{})

	role, err := r.ResolveRole(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("ResolveRole: %v", err)
	}
	if role != user.RoleMember {
		t.Errorf("missing profile resolved to %q, want member", role)
	}
}

func TestToggleTakesEffectImmediately(t *testing.T) {
	g := grant(user.RoleModerator, KindFeatureTopic, false)
	repo := &fakeGrantRepo{grants: []*Grant{g}}
	profiles, modID := subject("moderator")
	store := NewStore(repo)
	r := NewResolver(store, profiles)

	allowed, err := r.Can(context.Background(), modID, KindFeatureTopic)
	if err != nil {
		t.Fatalf("Can: %v", err)
	}
	if allowed {
		t.Fatal("grant should start disabled")
	}

	if _, err := store.SetGrantEnabled(context.Background(), g.ID, true); err != nil {
		t.Fatalf("SetGrantEnabled: %v", err)
	}

	allowed, err = r.Can(context.Background(), modID, KindFeatureTopic)
	if err != nil {
		t.Fatalf("Can: %v", err)
	}
	if !allowed {
		t.Error("enabled grant not visible after toggle")
	}

	if _, err := store.SetGrantEnabled(context.Background(), g.ID, false); err != nil {
		t.Fatalf("SetGrantEnabled: %v", err)
	}

	allowed, err = r.Can(context.Background(), modID, KindFeatureTopic)
	if err != nil {
		t.Fatalf("Can: %v", err)
	}
	if allowed {
		t.Error("disabled grant still visible after toggle")
	}
}

func TestSetGrantEnabledUnknownID(t *testing.T) {
	store := NewStore(&fakeGrantRepo{})

	_, err := store.SetGrantEnabled(context.Background(), uuid.New(), true)
	if err != ErrGrantNotFound {
		t.Errorf("got %v, want ErrGrantNotFound", err)
	}
}

func TestInvalidateFiresHooks(t *testing.T) {
	g := grant(user.RoleModerator, KindPinTopic, false)
	store := NewStore(&fakeGrantRepo{grants: []*Grant{g}})

	fired := 0
	store.OnInvalidate(func() { fired++ })

	if _, err := store.SetGrantEnabled(context.Background(), g.ID, true); err != nil {
		t.Fatalf("SetGrantEnabled: %v", err)
	}
	if fired != 1 {
		t.Errorf("hook fired %d times, want 1", fired)
	}
}

func TestUnknownKindRowsAreIgnored(t *testing.T) {
	repo := &fakeGrantRepo{grants: []*Grant{
		grant(user.RoleModerator, Kind("smite_user"), true),
	}}
	profiles, modID := subject("moderator")
	r := NewResolver(NewStore(repo), profiles)

	perms, err := r.Permissions(context.Background(), modID)
	if err != nil {
		t.Fatalf("Permissions: %v", err)
	}
	if len(perms) != len(Kinds()) {
		t.Errorf("got %d kinds, want %d", len(perms), len(Kinds()))
	}
	for kind, enabled := range perms {
		if enabled {
			t.Errorf("kind %s enabled by an unknown grant row", kind)
		}
	}
}

func TestPermissionsForUnauthenticated(t *testing.T) {
	r := NewResolver(NewStore(&fakeGrantRepo{}), &fakeProfileReader{})

	perms, err := r.Permissions(context.Background(), uuid.Nil)
	if err != nil {
		t.Fatalf("Permissions: %v", err)
	}
	for kind, enabled := range perms {
		if enabled {
			t.Errorf("kind %s enabled for unauthenticated subject", kind)
		}
	}
}
