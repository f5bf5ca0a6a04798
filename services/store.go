package services

import (
    "time"

    "github.com/nst-sdc/Diet-Planner/models"

    "gorm.io/gorm"
    "gorm.io/gorm/clause"
)

// Store is the gorm-backed data access layer shared by all services.
// Each service declares the narrow interface it consumes; Store satisfies
// all of them. Not-found is reported as gorm.ErrRecordNotFound.
type Store struct {
    db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
    return &Store{db: db}
}

// ---- users ----

func (s *Store) CreateUser(u *models.User) error {
    return s.db.Create(u).Error
}

func (s *Store) UserByEmail(email string) (*models.User, error) {
    var u models.User
    if err := s.db.Where("email = ?", email).First(&u).Error; err != nil {
        return nil, err
    }
    return &u, nil
}

func (s *Store) UserByID(id uint) (*models.User, error) {
    var u models.User
    if err := s.db.First(&u, id).Error; err != nil {
        return nil, err
    }
    return &u, nil
}

// ---- custom foods ----

// CustomFoodsByName does a case-sensitive substring match, matching the
// search behavior users already rely on.
func (s *Store) CustomFoodsByName(userID uint, query string) ([]models.CustomFood, error) {
    var foods []models.CustomFood
    err := s.db.
        Where("user_id = ? AND name LIKE ?", userID, "%"+query+"%").
        Find(&foods).Error
    return foods, err
}

func (s *Store) CustomFoodByExactName(userID uint, name string) (*models.CustomFood, error) {
    var food models.CustomFood
    if err := s.db.Where("user_id = ? AND name = ?", userID, name).First(&food).Error; err != nil {
        return nil, err
    }
    return &food, nil
}

func (s *Store) CreateCustomFood(f *models.CustomFood) error {
    return s.db.Create(f).Error
}

// ---- logged meals ----

func (s *Store) CreateLoggedMeal(m *models.LoggedMeal) error {
    return s.db.Create(m).Error
}

func (s *Store) LoggedMealsByDate(userID uint, date time.Time) ([]models.LoggedMeal, error) {
    var meals []models.LoggedMeal
    err := s.db.
        Where("user_id = ? AND meal_date = ?", userID, date).
        Order("logged_at asc").
        Find(&meals).Error
    return meals, err
}

func (s *Store) LoggedMealsByRange(userID uint, start, end time.Time) ([]models.LoggedMeal, error) {
    var meals []models.LoggedMeal
    err := s.db.
        Where("user_id = ? AND meal_date >= ? AND meal_date <= ?", userID, start, end).
        Order("meal_date asc").
        Find(&meals).Error
    return meals, err
}

func (s *Store) DeleteLoggedMeal(id, userID uint) error {
    res := s.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.LoggedMeal{})
    if res.Error != nil {
        return res.Error
    }
    if res.RowsAffected == 0 {
        return gorm.ErrRecordNotFound
    }
    return nil
}

// UpdateScaledLoggedMeal locks the meal row, lets the caller rewrite the
// nutrient snapshot, and writes the four nutrient fields plus quantity in a
// single UPDATE. Concurrent rescales of the same meal serialize on the row
// lock, so a partially rescaled record is never observable.
func (s *Store) UpdateScaledLoggedMeal(id, userID uint, apply func(*models.LoggedMeal)) (*models.LoggedMeal, error) {
    var meal models.LoggedMeal
    err := s.db.Transaction(func(tx *gorm.DB) error {
        if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
            Where("id = ? AND user_id = ?", id, userID).
            First(&meal).Error; err != nil {
            return err
        }
        apply(&meal)
        return tx.Model(&models.LoggedMeal{}).
            Where("id = ?", meal.ID).
            Updates(map[string]interface{}{
                "calories": meal.Calories,
                "protein":  meal.Protein,
                "carbs":    meal.Carbs,
                "fat":      meal.Fat,
                "quantity": meal.Quantity,
            }).Error
    })
    if err != nil {
        return nil, err
    }
    return &meal, nil
}

// ---- meal library ----

func (s *Store) MealsByUser(userID uint) ([]models.Meal, error) {
    var meals []models.Meal
    err := s.db.
        Where("user_id = ?", userID).
        Order("planned_date asc").
        Find(&meals).Error
    return meals, err
}

func (s *Store) MealByID(id, userID uint) (*models.Meal, error) {
    var meal models.Meal
    if err := s.db.Where("id = ? AND user_id = ?", id, userID).First(&meal).Error; err != nil {
        return nil, err
    }
    return &meal, nil
}

func (s *Store) CreateMeal(m *models.Meal) error {
    return s.db.Create(m).Error
}

func (s *Store) SaveMeal(m *models.Meal) error {
    return s.db.Save(m).Error
}

func (s *Store) DeleteMeal(id, userID uint) error {
    res := s.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Meal{})
    if res.Error != nil {
        return res.Error
    }
    if res.RowsAffected == 0 {
        return gorm.ErrRecordNotFound
    }
    return nil
}

// ---- planned meals ----

func (s *Store) PlannedMealsByDate(userID uint, date time.Time) ([]models.PlannedMeal, error) {
    var meals []models.PlannedMeal
    err := s.db.
        Where("user_id = ? AND planned_date = ?", userID, date).
        Order("meal_type asc").
        Find(&meals).Error
    return meals, err
}

func (s *Store) PlannedMealByID(id, userID uint) (*models.PlannedMeal, error) {
    var meal models.PlannedMeal
    if err := s.db.Where("id = ? AND user_id = ?", id, userID).First(&meal).Error; err != nil {
        return nil, err
    }
    return &meal, nil
}

func (s *Store) CreatePlannedMeal(m *models.PlannedMeal) error {
    return s.db.Create(m).Error
}

func (s *Store) SavePlannedMeal(m *models.PlannedMeal) error {
    return s.db.Save(m).Error
}

func (s *Store) DeletePlannedMeal(id, userID uint) error {
    res := s.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.PlannedMeal{})
    if res.Error != nil {
        return res.Error
    }
    if res.RowsAffected == 0 {
        return gorm.ErrRecordNotFound
    }
    return nil
}

// ---- daily goals ----

func (s *Store) GoalByUser(userID uint) (*models.DailyGoal, error) {
    var goal models.DailyGoal
    if err := s.db.Where("user_id = ?", userID).First(&goal).Error; err != nil {
        return nil, err
    }
    return &goal, nil
}

func (s *Store) CreateGoal(g *models.DailyGoal) error {
    return s.db.Create(g).Error
}

func (s *Store) SaveGoal(g *models.DailyGoal) error {
    return s.db.Save(g).Error
}

func (s *Store) DeleteGoal(userID uint) error {
    return s.db.Where("user_id = ?", userID).Delete(&models.DailyGoal{}).Error
}
