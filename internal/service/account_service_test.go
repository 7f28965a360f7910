package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"classroom-service/internal/auth"
	"classroom-service/internal/models"
)

type fakeUserStore struct {
	users map[string]models.User // keyed by id
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[string]models.User)}
}

func (f *fakeUserStore) Create(_ context.Context, user *models.User) error {
	f.users[user.ID] = *user
	return nil
}

func (f *fakeUserStore) FindByID(_ context.Context, id string) (*models.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return &user, nil
}

func (f *fakeUserStore) FindByEmail(_ context.Context, email string) (*models.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			found := user
			return &found, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeUserStore) UpdateProfile(_ context.Context, id, name, photoURL string) error {
	user, ok := f.users[id]
	if !ok {
		return mongo.ErrNoDocuments
	}
	user.Name = name
	user.PhotoURL = photoURL
	f.users[id] = user
	return nil
}

type fakeTokenStore struct {
	revoked map[string]time.Duration
}

func newFakeTokenStore() *fakeTokenStore {
	return &fakeTokenStore{revoked: make(map[string]time.Duration)}
}

func (f *fakeTokenStore) Revoke(_ context.Context, tokenID string, ttl time.Duration) error {
	f.revoked[tokenID] = ttl
	return nil
}

func newAccountFixture(t *testing.T) (*AccountService, *fakeUserStore, *fakeTokenStore, *auth.Manager) {
	t.Helper()
	manager, err := auth.NewManager("test-secret", "classroom-service", time.Hour)
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}
	users := newFakeUserStore()
	tokens := newFakeTokenStore()
	return NewAccountService(users, tokens, manager), users, tokens, manager
}

func TestRegisterAndLogin(t *testing.T) {
	svc, _, _, manager := newAccountFixture(t)
	ctx := context.Background()

	user, err := svc.Register(ctx, "Grace", "grace@example.com", "hunter2", models.RoleStudent)
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if user.ID == "" {
		t.Error("expected a generated user id")
	}
	if user.PasswordHash == "hunter2" {
		t.Error("password stored in plain text")
	}

	token, loggedIn, err := svc.Login(ctx, "grace@example.com", "hunter2")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if loggedIn.ID != user.ID {
		t.Errorf("login returned user %q, want %q", loggedIn.ID, user.ID)
	}
	claims, err := manager.Parse(token)
	if err != nil {
		t.Fatalf("issued token does not parse: %v", err)
	}
	if claims.Role != models.RoleStudent {
		t.Errorf("claims role = %v, want student", claims.Role)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _, _, _ := newAccountFixture(t)
	ctx := context.Background()

	if _, err := svc.Register(ctx, "Grace", "grace@example.com", "pw", models.RoleStudent); err != nil {
		t.Fatalf("first Register: %v", err)
	}
	if _, err := svc.Register(ctx, "Imposter", "grace@example.com", "pw2", models.RoleInstructor); !errors.Is(err, ErrEmailTaken) {
		t.Errorf("error = %v, want ErrEmailTaken", err)
	}
}

func TestLoginBadCredentials(t *testing.T) {
	svc, _, _, _ := newAccountFixture(t)
	ctx := context.Background()

	if _, err := svc.Register(ctx, "Grace", "grace@example.com", "pw", models.RoleStudent); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if _, _, err := svc.Login(ctx, "grace@example.com", "wrong"); !errors.Is(err, ErrBadCredentials) {
		t.Errorf("wrong password error = %v, want ErrBadCredentials", err)
	}
	if _, _, err := svc.Login(ctx, "nobody@example.com", "pw"); !errors.Is(err, ErrBadCredentials) {
		t.Errorf("unknown email error = %v, want ErrBadCredentials", err)
	}
}

// A store whose insert always reports the unique email index firing, the
// way a registration losing the insert race would see it.
type dupEmailUserStore struct {
	*fakeUserStore
}

func (d *dupEmailUserStore) Create(context.Context, *models.User) error {
	return mongo.WriteException{WriteErrors: []mongo.WriteError{{Code: 11000}}}
}

func TestRegisterDuplicateEmailOnInsert(t *testing.T) {
	manager, err := auth.NewManager("test-secret", "classroom-service", time.Hour)
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}
	users := &dupEmailUserStore{fakeUserStore: newFakeUserStore()}
	svc := NewAccountService(users, newFakeTokenStore(), manager)

	if _, err := svc.Register(context.Background(), "Grace", "grace@example.com", "pw", models.RoleStudent); !errors.Is(err, ErrEmailTaken) {
		t.Errorf("Register error = %v, want ErrEmailTaken", err)
	}
}

func TestLogoutRevokesToken(t *testing.T) {
	svc, _, tokens, manager := newAccountFixture(t)
	ctx := context.Background()

	if _, err := svc.Register(ctx, "Grace", "grace@example.com", "pw", models.RoleStudent); err != nil {
		t.Fatalf("Register: %v", err)
	}
	token, _, err := svc.Login(ctx, "grace@example.com", "pw")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	claims, _ := manager.Parse(token)

	if err := svc.Logout(ctx, claims); err != nil {
		t.Fatalf("Logout: %v", err)
	}
	if _, revoked := tokens.revoked[claims.ID]; !revoked {
		t.Error("token id not revoked")
	}
}

func TestUpdateProfile(t *testing.T) {
	svc, _, _, _ := newAccountFixture(t)
	ctx := context.Background()

	user, _ := svc.Register(ctx, "Grace", "grace@example.com", "pw", models.RoleStudent)

	updated, err := svc.UpdateProfile(ctx, user.ID, "Grace Hopper", "https://img.example.com/grace.png")
	if err != nil {
		t.Fatalf("UpdateProfile: %v", err)
	}
	if updated.Name != "Grace Hopper" || updated.PhotoURL != "https://img.example.com/grace.png" {
		t.Errorf("profile not updated: %+v", updated)
	}

	if _, err := svc.UpdateProfile(ctx, user.ID, "", ""); err == nil {
		t.Error("expected error for empty display name")
	}
}
