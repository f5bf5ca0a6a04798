package services

import (
    "testing"

    "github.com/nst-sdc/Diet-Planner/models"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"
    "gorm.io/gorm"
)

type fakeUserStore struct {
    byEmail map[string]*models.User
}

func newFakeUserStore() *fakeUserStore {
    return &fakeUserStore{byEmail: make(map[string]*models.User)}
}

func (s *fakeUserStore) CreateUser(u *models.User) error {
    u.ID = uint(len(s.byEmail) + 1)
    s.byEmail[u.Email] = u
    return nil
}

func (s *fakeUserStore) UserByEmail(email string) (*models.User, error) {
    if u, ok := s.byEmail[email]; ok {
        return u, nil
    }
    return nil, gorm.ErrRecordNotFound
}

func TestSignup_CreatesUserAndToken(t *testing.T) {
    t.Setenv("JWT_SECRET", "test-secret")
    svc := NewAuthService(newFakeUserStore())

    user, token, err := svc.Signup("jo@example.com", "hunter22")
    require.NoError(t, err)
    assert.Equal(t, "jo@example.com", user.Email)
    assert.NotEmpty(t, token)
    assert.NotEqual(t, "hunter22", user.Password, "password must be stored hashed")
}

func TestSignup_RejectsShortPasswords(t *testing.T) {
    svc := NewAuthService(newFakeUserStore())

    _, _, err := svc.Signup("jo@example.com", "abc")
    assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestSignup_RejectsDuplicateEmail(t *testing.T) {
    t.Setenv("JWT_SECRET", "test-secret")
    store := newFakeUserStore()
    svc := NewAuthService(store)

    _, _, err := svc.Signup("jo@example.com", "hunter22")
    require.NoError(t, err)

    _, _, err = svc.Signup("jo@example.com", "hunter22")
    assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestLogin_VerifiesCredentials(t *testing.T) {
    t.Setenv("JWT_SECRET", "test-secret")
    store := newFakeUserStore()
    svc := NewAuthService(store)

    _, _, err := svc.Signup("jo@example.com", "hunter22")
    require.NoError(t, err)

    user, token, err := svc.Login("jo@example.com", "hunter22")
    require.NoError(t, err)
    assert.Equal(t, "jo@example.com", user.Email)
    assert.NotEmpty(t, token)

    _, _, err = svc.Login("jo@example.com", "wrong")
    assert.ErrorIs(t, err, ErrInvalidInput)

    _, _, err = svc.Login("nobody@example.com", "hunter22")
    assert.ErrorIs(t, err, ErrInvalidInput)
}
