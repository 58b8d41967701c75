package orchestrators

import (
	"context"
	"errors"
	"testing"

	"smartevents/internal/domain/session"
	"smartevents/internal/domain/user"
)

// mockProfileUpdater implements ProfileUpdater for testing.
type mockProfileUpdater struct {
	refreshed session.Session
	err       error
	gotUser   user.User
}

// UpdateProfile implements ProfileUpdater.
// PRE: u passed domain validation
// POST: returns the canned refreshed session
func (m *mockProfileUpdater) UpdateProfile(_ context.Context, token string, u user.User) (session.Session, error) {
	m.gotUser = u
	return m.refreshed, m.err
}

// mockSessionUpdater implements SessionUpdater for testing.
type mockSessionUpdater struct {
	updates map[string]session.Session
	err     error
}

// Update implements SessionUpdater.
// PRE: a row with this id exists
// POST: payload is recorded under the id
func (m *mockSessionUpdater) Update(_ context.Context, id string, value session.Session) error {
	if m.err != nil {
		return m.err
	}
	if m.updates == nil {
		m.updates = make(map[string]session.Session)
	}
	m.updates[id] = value
	return nil
}

func currentSession() session.Session {
	return session.Session{
		UserID: "user-001",
		Name:   "Alice Chen",
		Email:  "alice@example.com",
		Role:   session.RoleStudent,
		Token:  "old-token",
	}
}

// TestExecuteUpdateProfile_Valid tests that the refreshed payload replaces
// the stored session under the same cookie ID.
func TestExecuteUpdateProfile_Valid(t *testing.T) {
	refreshed := currentSession()
	refreshed.Name = "Alice C."
	refreshed.Token = "new-token"
	api := &mockProfileUpdater{refreshed: refreshed}
	store := &mockSessionUpdater{}

	got, err := ExecuteUpdateProfile(context.Background(), currentSession(), UpdateProfileInput{
		SessionID: "session-id-001",
		Name:      "Alice C.",
		Email:     "alice@example.com",
	}, UpdateProfileDeps{API: api, Upload: &mockUploader{}, Sessions: store})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Name != "Alice C." || got.Token != "new-token" {
		t.Errorf("returned session = %+v", got)
	}
	stored, ok := store.updates["session-id-001"]
	if !ok {
		t.Fatal("expected session row to be updated")
	}
	if stored.Token != "new-token" {
		t.Errorf("stored token = %q, want reissued token", stored.Token)
	}
}

// TestExecuteUpdateProfile_KeepsTokenWhenOmitted tests that a response
// without a token keeps the old one instead of storing an empty session.
func TestExecuteUpdateProfile_KeepsTokenWhenOmitted(t *testing.T) {
	refreshed := currentSession()
	refreshed.Token = ""
	api := &mockProfileUpdater{refreshed: refreshed}
	store := &mockSessionUpdater{}

	got, err := ExecuteUpdateProfile(context.Background(), currentSession(), UpdateProfileInput{
		SessionID: "session-id-001",
		Name:      "Alice Chen",
		Email:     "alice@example.com",
	}, UpdateProfileDeps{API: api, Upload: &mockUploader{}, Sessions: store})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Token != "old-token" {
		t.Errorf("token = %q, want old token kept", got.Token)
	}
}

// TestExecuteUpdateProfile_RoleDrift tests that a response changing the
// role is rejected; profile updates never switch shells.
func TestExecuteUpdateProfile_RoleDrift(t *testing.T) {
	refreshed := currentSession()
	refreshed.Role = session.RoleAdmin
	api := &mockProfileUpdater{refreshed: refreshed}
	store := &mockSessionUpdater{}

	_, err := ExecuteUpdateProfile(context.Background(), currentSession(), UpdateProfileInput{
		SessionID: "session-id-001",
		Name:      "Alice Chen",
		Email:     "alice@example.com",
	}, UpdateProfileDeps{API: api, Upload: &mockUploader{}, Sessions: store})
	if !errors.Is(err, ErrBadProfilePayload) {
		t.Errorf("got %v, want ErrBadProfilePayload", err)
	}
	if len(store.updates) != 0 {
		t.Error("drifted payload must not be persisted")
	}
}

// TestExecuteUpdateProfile_WithImage tests that a new picture is uploaded
// and its URL submitted with the profile.
func TestExecuteUpdateProfile_WithImage(t *testing.T) {
	api := &mockProfileUpdater{refreshed: currentSession()}
	up := &mockUploader{url: "https://cdn.example.com/avatar.png"}

	_, err := ExecuteUpdateProfile(context.Background(), currentSession(), UpdateProfileInput{
		SessionID:    "session-id-001",
		Name:         "Alice Chen",
		Email:        "alice@example.com",
		ImageDataURL: "data:image/png;base64,AAAA",
	}, UpdateProfileDeps{API: api, Upload: up, Sessions: &mockSessionUpdater{}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if up.calls != 1 {
		t.Errorf("upload calls = %d, want 1", up.calls)
	}
	if api.gotUser.ProfilePicture != "https://cdn.example.com/avatar.png" {
		t.Errorf("submitted picture = %q", api.gotUser.ProfilePicture)
	}
}

// TestExecuteUpdateProfile_InvalidForm tests that bad edits never reach
// the backend.
func TestExecuteUpdateProfile_InvalidForm(t *testing.T) {
	api := &mockProfileUpdater{refreshed: currentSession()}
	_, err := ExecuteUpdateProfile(context.Background(), currentSession(), UpdateProfileInput{
		SessionID: "session-id-001",
		Name:      "",
		Email:     "alice@example.com",
	}, UpdateProfileDeps{API: api, Upload: &mockUploader{}, Sessions: &mockSessionUpdater{}})
	if !errors.Is(err, user.ErrEmptyName) {
		t.Errorf("got %v, want ErrEmptyName", err)
	}
}
