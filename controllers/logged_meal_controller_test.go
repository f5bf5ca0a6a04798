package controllers

import (
    "net/http"
    "net/http/httptest"
    "strings"
    "testing"
    "time"

    "github.com/nst-sdc/Diet-Planner/models"
    "github.com/nst-sdc/Diet-Planner/services"

    "github.com/gin-gonic/gin"
    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"
    "gorm.io/gorm"
)

// in-memory store satisfying the logged-meal service's store interfaces

type memMealStore struct {
    meals map[uint]*models.LoggedMeal
    foods map[string]*models.CustomFood
}

func newMemMealStore(meals ...*models.LoggedMeal) *memMealStore {
    s := &memMealStore{
        meals: make(map[uint]*models.LoggedMeal),
        foods: make(map[string]*models.CustomFood),
    }
    for _, m := range meals {
        s.meals[m.ID] = m
    }
    return s
}

func (s *memMealStore) CreateLoggedMeal(m *models.LoggedMeal) error {
    m.ID = uint(len(s.meals) + 1)
    s.meals[m.ID] = m
    return nil
}

func (s *memMealStore) LoggedMealsByDate(userID uint, date time.Time) ([]models.LoggedMeal, error) {
    var out []models.LoggedMeal
    for _, m := range s.meals {
        if m.UserID == userID && m.MealDate.Equal(date) {
            out = append(out, *m)
        }
    }
    return out, nil
}

func (s *memMealStore) LoggedMealsByRange(userID uint, start, end time.Time) ([]models.LoggedMeal, error) {
    return nil, nil
}

func (s *memMealStore) DeleteLoggedMeal(id, userID uint) error {
    m, ok := s.meals[id]
    if !ok || m.UserID != userID {
        return gorm.ErrRecordNotFound
    }
    delete(s.meals, id)
    return nil
}

func (s *memMealStore) UpdateScaledLoggedMeal(id, userID uint, apply func(*models.LoggedMeal)) (*models.LoggedMeal, error) {
    m, ok := s.meals[id]
    if !ok || m.UserID != userID {
        return nil, gorm.ErrRecordNotFound
    }
    apply(m)
    return m, nil
}

func (s *memMealStore) CustomFoodByExactName(userID uint, name string) (*models.CustomFood, error) {
    if f, ok := s.foods[name]; ok {
        return f, nil
    }
    return nil, gorm.ErrRecordNotFound
}

func (s *memMealStore) CreateCustomFood(f *models.CustomFood) error {
    s.foods[f.Name] = f
    return nil
}

func newLoggedMealTestRouter(store *memMealStore) *gin.Engine {
    gin.SetMode(gin.TestMode)
    svc := services.NewLoggedMealService(store, store, nil)
    ctl := NewLoggedMealController(svc)

    r := gin.New()
    r.Use(func(c *gin.Context) {
        c.Set("userID", uint(7))
        c.Next()
    })
    r.GET("/api/logged-meals", ctl.List)
    r.POST("/api/logged-meals", ctl.Log)
    r.PATCH("/api/logged-meals/:id/quantity", ctl.UpdateQuantity)
    r.DELETE("/api/logged-meals/:id", ctl.Delete)
    return r
}

func patchQuantity(r *gin.Engine, id, body string) *httptest.ResponseRecorder {
    w := httptest.NewRecorder()
    req := httptest.NewRequest(http.MethodPatch, "/api/logged-meals/"+id+"/quantity", strings.NewReader(body))
    req.Header.Set("Content-Type", "application/json")
    r.ServeHTTP(w, req)
    return w
}

func seededMeal() *models.LoggedMeal {
    m := &models.LoggedMeal{
        UserID:       7,
        Name:         "Chicken Rice",
        Calories:     200,
        Protein:      10,
        Carbs:        20,
        Fat:          5,
        Quantity:     100,
        BaseQuantity: 100,
        MealDate:     time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC),
    }
    m.ID = 1
    return m
}

func TestPatchQuantity_RescalesMeal(t *testing.T) {
    store := newMemMealStore(seededMeal())
    r := newLoggedMealTestRouter(store)

    w := patchQuantity(r, "1", `{"quantity":150}`)
    require.Equal(t, http.StatusOK, w.Code)

    assert.Equal(t, float64(300), store.meals[1].Calories)
    assert.Equal(t, float64(150), store.meals[1].Quantity)
    assert.Contains(t, w.Body.String(), `"success":true`)
}

func TestPatchQuantity_MissingOrNonPositiveQuantityIs400(t *testing.T) {
    store := newMemMealStore(seededMeal())
    r := newLoggedMealTestRouter(store)

    for _, body := range []string{`{}`, `{"quantity":0}`, `{"quantity":-5}`} {
        w := patchQuantity(r, "1", body)
        assert.Equal(t, http.StatusBadRequest, w.Code, "body %s", body)
    }

    // stored meal untouched
    assert.Equal(t, float64(200), store.meals[1].Calories)
    assert.Equal(t, float64(100), store.meals[1].Quantity)
}

func TestPatchQuantity_UnknownMealIs404(t *testing.T) {
    r := newLoggedMealTestRouter(newMemMealStore())

    w := patchQuantity(r, "99", `{"quantity":150}`)
    assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestLogMeal_MissingNutrientsDefaultToZero(t *testing.T) {
    store := newMemMealStore()
    r := newLoggedMealTestRouter(store)

    w := httptest.NewRecorder()
    req := httptest.NewRequest(http.MethodPost, "/api/logged-meals",
        strings.NewReader(`{"name":"Black Coffee","meal_date":"2025-01-31"}`))
    req.Header.Set("Content-Type", "application/json")
    r.ServeHTTP(w, req)

    require.Equal(t, http.StatusCreated, w.Code)
    require.Len(t, store.meals, 1)
    for _, m := range store.meals {
        assert.Zero(t, m.Calories)
        assert.Zero(t, m.Protein)
        assert.Equal(t, float64(100), m.Quantity)
        assert.Equal(t, float64(100), m.BaseQuantity)
    }
}

func TestLogMeal_MissingNameIs400(t *testing.T) {
    r := newLoggedMealTestRouter(newMemMealStore())

    w := httptest.NewRecorder()
    req := httptest.NewRequest(http.MethodPost, "/api/logged-meals",
        strings.NewReader(`{"meal_date":"2025-01-31","calories":100}`))
    req.Header.Set("Content-Type", "application/json")
    r.ServeHTTP(w, req)

    assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListLoggedMeals_RequiresDate(t *testing.T) {
    r := newLoggedMealTestRouter(newMemMealStore())

    w := httptest.NewRecorder()
    r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/logged-meals", nil))

    assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteLoggedMeal_OwnershipEnforced(t *testing.T) {
    foreign := seededMeal()
    foreign.UserID = 8
    store := newMemMealStore(foreign)
    r := newLoggedMealTestRouter(store)

    w := httptest.NewRecorder()
    r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/logged-meals/1", nil))

    assert.Equal(t, http.StatusNotFound, w.Code)
    assert.Len(t, store.meals, 1)
}
