package services

import (
    "context"
    "errors"
    "testing"
    "time"

    "github.com/nst-sdc/Diet-Planner/models"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"
)

// -------- test fakes --------

type fakeCustomFoods struct {
    foods []models.CustomFood
    err   error
}

func (f *fakeCustomFoods) CustomFoodsByName(userID uint, query string) ([]models.CustomFood, error) {
    return f.foods, f.err
}

type fakeSearcher struct {
    items []models.FoodItem
    err   error
    block bool // wait for ctx cancellation before returning
}

func (f *fakeSearcher) Search(ctx context.Context, query string) ([]models.FoodItem, error) {
    if f.block {
        <-ctx.Done()
        return nil, ctx.Err()
    }
    return f.items, f.err
}

func usdaItem(name string) models.FoodItem {
    return models.FoodItem{ID: "1", Name: name, Calories: 52, Source: models.SourceUSDA}
}

func offItem(name string) models.FoodItem {
    return models.FoodItem{ID: "2", Name: name, Calories: 48, Source: models.SourceOpenFoodFacts}
}

// -------- tests --------

func TestSearch_EmptyQueryIsInvalid(t *testing.T) {
    svc := NewNutritionService(&fakeCustomFoods{}, &fakeSearcher{}, &fakeSearcher{})

    for _, query := range []string{"", "   ", "\t\n"} {
        _, err := svc.Search(context.Background(), 1, query)
        assert.ErrorIs(t, err, ErrInvalidInput, "query %q", query)
    }
}

func TestSearch_MergeOrderIsCustomThenUSDAThenOFF(t *testing.T) {
    customFood := models.CustomFood{Name: "Oatmeal", Calories: 150, Protein: 5, Carbs: 27, Fat: 3}
    customFood.ID = 42

    svc := NewNutritionService(
        &fakeCustomFoods{foods: []models.CustomFood{customFood}},
        &fakeSearcher{items: []models.FoodItem{usdaItem("Oats")}},
        &fakeSearcher{items: []models.FoodItem{offItem("Oat Drink")}},
    )

    items, err := svc.Search(context.Background(), 1, "oat")
    require.NoError(t, err)
    require.Len(t, items, 3)

    assert.Equal(t, "custom-42", items[0].ID)
    assert.Equal(t, "Oatmeal (My Food)", items[0].Name)
    assert.Equal(t, models.SourceCustom, items[0].Source)
    assert.Equal(t, models.SourceUSDA, items[1].Source)
    assert.Equal(t, models.SourceOpenFoodFacts, items[2].Source)
}

func TestSearch_DedupesByCaseInsensitiveName(t *testing.T) {
    customFood := models.CustomFood{Name: "Apple"}
    customFood.ID = 1

    svc := NewNutritionService(
        &fakeCustomFoods{foods: []models.CustomFood{customFood}},
        &fakeSearcher{items: []models.FoodItem{usdaItem("APPLE (My Food)"), usdaItem("Apple Pie")}},
        &fakeSearcher{items: []models.FoodItem{offItem("apple pie")}},
    )

    items, err := svc.Search(context.Background(), 1, "apple")
    require.NoError(t, err)
    require.Len(t, items, 2)

    // first occurrence wins: the custom food and the first "Apple Pie"
    assert.Equal(t, models.SourceCustom, items[0].Source)
    assert.Equal(t, "Apple Pie", items[1].Name)
    assert.Equal(t, models.SourceUSDA, items[1].Source)
}

func TestSearch_FailedSourcesDegradeToEmpty(t *testing.T) {
    customFood := models.CustomFood{Name: "My Soup"}
    customFood.ID = 7

    svc := NewNutritionService(
        &fakeCustomFoods{foods: []models.CustomFood{customFood}},
        &fakeSearcher{err: errors.New("usda down")},
        &fakeSearcher{err: errors.New("off down")},
    )

    items, err := svc.Search(context.Background(), 1, "soup")
    require.NoError(t, err)
    require.Len(t, items, 1)
    assert.Equal(t, "My Soup (My Food)", items[0].Name)
}

func TestSearch_AllSourcesEmptyIsSuccess(t *testing.T) {
    svc := NewNutritionService(&fakeCustomFoods{}, &fakeSearcher{}, &fakeSearcher{})

    items, err := svc.Search(context.Background(), 1, "xyzzy")
    require.NoError(t, err)
    assert.Empty(t, items)
}

func TestSearch_SlowSourceTimesOutAndIsSkipped(t *testing.T) {
    svc := NewNutritionService(
        &fakeCustomFoods{},
        &fakeSearcher{block: true},
        &fakeSearcher{items: []models.FoodItem{offItem("Quick Result")}},
    )
    svc.timeout = 20 * time.Millisecond

    done := make(chan struct{})
    var items []models.FoodItem
    var err error
    go func() {
        items, err = svc.Search(context.Background(), 1, "slow")
        close(done)
    }()

    select {
    case <-done:
    case <-time.After(2 * time.Second):
        t.Fatal("search did not return after source timeout")
    }

    require.NoError(t, err)
    require.Len(t, items, 1)
    assert.Equal(t, "Quick Result", items[0].Name)
}

func TestSearch_CustomFoodStoreErrorIsStorageError(t *testing.T) {
    svc := NewNutritionService(
        &fakeCustomFoods{err: errors.New("db down")},
        &fakeSearcher{},
        &fakeSearcher{},
    )

    _, err := svc.Search(context.Background(), 1, "apple")
    assert.ErrorIs(t, err, ErrStorage)
}

func TestSearch_RoundsCustomFoodValues(t *testing.T) {
    customFood := models.CustomFood{Name: "Shake", Calories: 201.6, Protein: 24.46, Carbs: 10.34, Fat: 3.25}
    customFood.ID = 3

    svc := NewNutritionService(
        &fakeCustomFoods{foods: []models.CustomFood{customFood}},
        &fakeSearcher{},
        &fakeSearcher{},
    )

    items, err := svc.Search(context.Background(), 1, "shake")
    require.NoError(t, err)
    require.Len(t, items, 1)

    assert.Equal(t, float64(202), items[0].Calories)
    assert.Equal(t, 24.5, items[0].Protein)
    assert.Equal(t, 10.3, items[0].Carbs)
    assert.Equal(t, 3.3, items[0].Fat)
}

func TestSearch_SkipsCustomFoodsWithoutNames(t *testing.T) {
    unnamed := models.CustomFood{Name: "  "}
    unnamed.ID = 9

    svc := NewNutritionService(
        &fakeCustomFoods{foods: []models.CustomFood{unnamed}},
        &fakeSearcher{},
        &fakeSearcher{},
    )

    items, err := svc.Search(context.Background(), 1, "x")
    require.NoError(t, err)
    assert.Empty(t, items)
}
