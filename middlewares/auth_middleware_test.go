package middlewares

import (
    "net/http"
    "net/http/httptest"
    "testing"

    "github.com/nst-sdc/Diet-Planner/models"
    "github.com/nst-sdc/Diet-Planner/utils"

    "github.com/gin-gonic/gin"
    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"
    "gorm.io/gorm"
)

type fakeUserLookup struct {
    users map[uint]*models.User
}

func (f *fakeUserLookup) UserByID(id uint) (*models.User, error) {
    if u, ok := f.users[id]; ok {
        return u, nil
    }
    return nil, gorm.ErrRecordNotFound
}

func newAuthTestRouter(users *fakeUserLookup) *gin.Engine {
    gin.SetMode(gin.TestMode)
    r := gin.New()
    r.GET("/me", AuthMiddleware(users), func(c *gin.Context) {
        c.JSON(http.StatusOK, gin.H{"user_id": c.GetUint("userID")})
    })
    return r
}

func TestAuthMiddleware_AcceptsValidToken(t *testing.T) {
    t.Setenv("JWT_SECRET", "test-secret")

    user := &models.User{Email: "jo@example.com"}
    user.ID = 7
    r := newAuthTestRouter(&fakeUserLookup{users: map[uint]*models.User{7: user}})

    token, err := utils.GenerateJWT(7)
    require.NoError(t, err)

    w := httptest.NewRecorder()
    req := httptest.NewRequest(http.MethodGet, "/me", nil)
    req.Header.Set("Authorization", "Bearer "+token)
    r.ServeHTTP(w, req)

    assert.Equal(t, http.StatusOK, w.Code)
    assert.JSONEq(t, `{"user_id":7}`, w.Body.String())
}

func TestAuthMiddleware_RejectsMissingHeader(t *testing.T) {
    t.Setenv("JWT_SECRET", "test-secret")
    r := newAuthTestRouter(&fakeUserLookup{})

    w := httptest.NewRecorder()
    r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/me", nil))

    assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_RejectsGarbageToken(t *testing.T) {
    t.Setenv("JWT_SECRET", "test-secret")
    r := newAuthTestRouter(&fakeUserLookup{})

    w := httptest.NewRecorder()
    req := httptest.NewRequest(http.MethodGet, "/me", nil)
    req.Header.Set("Authorization", "Bearer not-a-token")
    r.ServeHTTP(w, req)

    assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_RejectsDeletedUser(t *testing.T) {
    t.Setenv("JWT_SECRET", "test-secret")
    r := newAuthTestRouter(&fakeUserLookup{})

    token, err := utils.GenerateJWT(99)
    require.NoError(t, err)

    w := httptest.NewRecorder()
    req := httptest.NewRequest(http.MethodGet, "/me", nil)
    req.Header.Set("Authorization", "Bearer "+token)
    r.ServeHTTP(w, req)

    assert.Equal(t, http.StatusUnauthorized, w.Code)
}
