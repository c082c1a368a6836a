package mealplan

import (
	"MealPlanner-Backend/entities"
	"context"
	"reflect"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type fakeMealplanRepository struct {
	rows     []UsageRow
	mealDays map[string]*entities.MealDay
}

func (f *fakeMealplanRepository) AddMealDay(_ context.Context, mealDay *entities.MealDay) error {
	if f.mealDays == nil {
		f.mealDays = make(map[string]*entities.MealDay)
	}
	f.mealDays[mealDay.ID.String()] = mealDay
	return nil
}

func (f *fakeMealplanRepository) GetMealDayByID(_ context.Context, id string) (*entities.MealDay, error) {
	mealDay, ok := f.mealDays[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return mealDay, nil
}

func (f *fakeMealplanRepository) DeleteMealDay(_ context.Context, id string) error {
	delete(f.mealDays, id)
	return nil
}

func (f *fakeMealplanRepository) GetUsageRows(_ context.Context, _ string, from, to time.Time) ([]UsageRow, error) {
	var result []UsageRow
	for _, row := range f.rows {
		if row.Date.Before(from) || row.Date.After(to) {
			continue
		}
		result = append(result, row)
	}
	return result, nil
}

type fakeRecipeRepository struct {
	recipes map[string]*entities.Recipe
}

func (f *fakeRecipeRepository) SaveRecipe(_ context.Context, _ *entities.Recipe) error { return nil }
func (f *fakeRecipeRepository) GetRecipeByID(_ context.Context, id string) (*entities.Recipe, error) {
	recipe, ok := f.recipes[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return recipe, nil
}
func (f *fakeRecipeRepository) GetRecipes(_ context.Context, _ string) ([]*entities.Recipe, error) {
	return nil, nil
}
func (f *fakeRecipeRepository) UpdateRecipe(_ context.Context, _ *entities.Recipe) error { return nil }
func (f *fakeRecipeRepository) ReplaceIngredients(_ context.Context, _ string, _ []*entities.RecipeIngredient) error {
	return nil
}
func (f *fakeRecipeRepository) DeleteRecipe(_ context.Context, _ string) error { return nil }

type fakeIngredientRepository struct {
	schedules []*entities.IngredientSchedule
}

func (f *fakeIngredientRepository) AddIngredient(_ context.Context, _ *entities.Ingredient) error {
	return nil
}
func (f *fakeIngredientRepository) GetIngredientByID(_ context.Context, _ string) (*entities.Ingredient, error) {
	return nil, gorm.ErrRecordNotFound
}
func (f *fakeIngredientRepository) GetIngredients(_ context.Context, _ string) ([]*entities.Ingredient, error) {
	return nil, nil
}
func (f *fakeIngredientRepository) UpdateIngredient(_ context.Context, _ *entities.Ingredient) error {
	return nil
}
func (f *fakeIngredientRepository) DeleteIngredient(_ context.Context, _ string) error { return nil }
func (f *fakeIngredientRepository) SearchIngredients(_ context.Context, _ string, _ string) ([]*entities.Ingredient, error) {
	return nil, nil
}
func (f *fakeIngredientRepository) AddSchedule(_ context.Context, _ *entities.IngredientSchedule) error {
	return nil
}
func (f *fakeIngredientRepository) GetScheduleByID(_ context.Context, _ string) (*entities.IngredientSchedule, error) {
	return nil, gorm.ErrRecordNotFound
}
func (f *fakeIngredientRepository) GetSchedules(_ context.Context, _ string) ([]*entities.IngredientSchedule, error) {
	return f.schedules, nil
}
func (f *fakeIngredientRepository) DeleteSchedule(_ context.Context, _ string) error { return nil }

func newTestService(rows []UsageRow, schedules []*entities.IngredientSchedule) MealplanService {
	return NewMealplanService(
		&fakeMealplanRepository{rows: rows},
		&fakeRecipeRepository{},
		&fakeIngredientRepository{schedules: schedules},
	)
}

func TestShoppingListNoHistoryBuysFullUnit(t *testing.T) {
	carrot := Ingredient{ID: uuid.New(), Name: "Carrot", PurchaseQuantity: 10, Life: 10}
	rows := []UsageRow{
		usageRow("2024-03-10", uuid.New(), "Stew", carrot, 5),
	}

	service := newTestService(rows, nil)
	list, err := service.BuildShoppingList(context.Background(), "user", date("2024-03-10"), date("2024-03-12"))
	if err != nil {
		t.Fatalf("BuildShoppingList returned error: %v", err)
	}

	if len(list.Ingredients) != 1 {
		t.Fatalf("expected 1 purchase row, got %d", len(list.Ingredients))
	}
	row := list.Ingredients[0]
	if row.ExistingSurplus != 0 || row.UsedQuantity != 5 || row.PurchaseQuantity != 10 {
		t.Errorf("expected surplus 0 / used 5 / purchase 10, got %d / %d / %d",
			row.ExistingSurplus, row.UsedQuantity, row.PurchaseQuantity)
	}
}

func TestShoppingListRecentLeftoverCoversUsage(t *testing.T) {
	carrot := Ingredient{ID: uuid.New(), Name: "Carrot", PurchaseQuantity: 10, Life: 10}
	rows := []UsageRow{
		// Five days before the range: bought 10, used 5, 5 left and unexpired.
		usageRow("2024-03-05", uuid.New(), "Soup", carrot, 5),
		usageRow("2024-03-10", uuid.New(), "Stew", carrot, 5),
	}

	service := newTestService(rows, nil)
	list, err := service.BuildShoppingList(context.Background(), "user", date("2024-03-10"), date("2024-03-12"))
	if err != nil {
		t.Fatalf("BuildShoppingList returned error: %v", err)
	}

	row := list.Ingredients[0]
	if row.ExistingSurplus != 5 {
		t.Errorf("expected existing surplus 5, got %d", row.ExistingSurplus)
	}
	if row.PurchaseQuantity != 0 {
		t.Errorf("expected leftover to cover the usage, purchase = %d", row.PurchaseQuantity)
	}
	if row.UsedQuantity != 5 {
		t.Errorf("expected used 5, got %d", row.UsedQuantity)
	}
}

func TestShoppingListExpiredLeftoverIsIgnored(t *testing.T) {
	carrot := Ingredient{ID: uuid.New(), Name: "Carrot", PurchaseQuantity: 10, Life: 10}
	rows := []UsageRow{
		// Exactly at the shelf-life boundary relative to the range start.
		usageRow("2024-02-29", uuid.New(), "Soup", carrot, 5),
		usageRow("2024-03-10", uuid.New(), "Stew", carrot, 5),
	}

	service := newTestService(rows, nil)
	list, err := service.BuildShoppingList(context.Background(), "user", date("2024-03-10"), date("2024-03-12"))
	if err != nil {
		t.Fatalf("BuildShoppingList returned error: %v", err)
	}

	row := list.Ingredients[0]
	if row.ExistingSurplus != 0 {
		t.Errorf("expected expired leftover to count as no surplus, got %d", row.ExistingSurplus)
	}
	if row.PurchaseQuantity != 10 {
		t.Errorf("expected purchase 10, got %d", row.PurchaseQuantity)
	}
}

func TestShoppingListScheduleOverlay(t *testing.T) {
	milk := &entities.Ingredient{
		ID:               uuid.New(),
		Name:             "Milk",
		PurchaseQuantity: 1,
		Life:             7,
	}
	schedules := []*entities.IngredientSchedule{
		{
			ID:           uuid.New(),
			IngredientID: milk.ID,
			StartDate:    date("2024-03-10"),
			Interval:     1,
			Ingredient:   milk,
		},
	}

	service := newTestService(nil, schedules)
	list, err := service.BuildShoppingList(context.Background(), "user", date("2024-03-10"), date("2024-03-12"))
	if err != nil {
		t.Fatalf("BuildShoppingList returned error: %v", err)
	}

	if len(list.Ingredients) != 0 {
		t.Errorf("expected no recipe-driven rows, got %d", len(list.Ingredients))
	}
	if len(list.ScheduledIngredients) != 1 {
		t.Fatalf("expected 1 scheduled row, got %d", len(list.ScheduledIngredients))
	}
	row := list.ScheduledIngredients[0]
	// Three daily occurrences inside the closed range.
	if row.PurchaseQuantity != 3 || row.UsedQuantity != 3 {
		t.Errorf("expected purchase 3 / used 3, got %d / %d", row.PurchaseQuantity, row.UsedQuantity)
	}
}

func TestShoppingListScheduleIntervalAndStartDate(t *testing.T) {
	milk := &entities.Ingredient{
		ID:               uuid.New(),
		Name:             "Milk",
		PurchaseQuantity: 1,
		Life:             7,
	}
	schedules := []*entities.IngredientSchedule{
		{
			ID:           uuid.New(),
			IngredientID: milk.ID,
			StartDate:    date("2024-03-11"),
			Interval:     2,
			Ingredient:   milk,
		},
	}

	service := newTestService(nil, schedules)
	list, err := service.BuildShoppingList(context.Background(), "user", date("2024-03-10"), date("2024-03-14"))
	if err != nil {
		t.Fatalf("BuildShoppingList returned error: %v", err)
	}

	// Occurrences fall on the 11th and 13th only; nothing before the start date.
	row := list.ScheduledIngredients[0]
	if row.PurchaseQuantity != 2 {
		t.Errorf("expected 2 occurrences, got %d", row.PurchaseQuantity)
	}
}

func TestShoppingListScheduleStartingAfterRange(t *testing.T) {
	milk := &entities.Ingredient{
		ID:               uuid.New(),
		Name:             "Milk",
		PurchaseQuantity: 1,
		Life:             7,
	}
	schedules := []*entities.IngredientSchedule{
		{
			ID:           uuid.New(),
			IngredientID: milk.ID,
			StartDate:    date("2024-04-01"),
			Interval:     1,
			Ingredient:   milk,
		},
	}

	service := newTestService(nil, schedules)
	list, err := service.BuildShoppingList(context.Background(), "user", date("2024-03-10"), date("2024-03-12"))
	if err != nil {
		t.Fatalf("BuildShoppingList returned error: %v", err)
	}

	if len(list.ScheduledIngredients) != 0 {
		t.Errorf("expected no scheduled rows before the start date, got %d", len(list.ScheduledIngredients))
	}
}

func TestShoppingListScheduleDoesNotCancelRecipeDemand(t *testing.T) {
	milk := Ingredient{ID: uuid.New(), Name: "Milk", PurchaseQuantity: 1, Life: 7}
	milkEntity := &entities.Ingredient{
		ID:               milk.ID,
		Name:             milk.Name,
		PurchaseQuantity: milk.PurchaseQuantity,
		Life:             milk.Life,
	}
	rows := []UsageRow{
		usageRow("2024-03-10", uuid.New(), "Porridge", milk, 1),
	}
	schedules := []*entities.IngredientSchedule{
		{
			ID:           uuid.New(),
			IngredientID: milk.ID,
			StartDate:    date("2024-03-10"),
			Interval:     1,
			Ingredient:   milkEntity,
		},
	}

	service := newTestService(rows, schedules)
	list, err := service.BuildShoppingList(context.Background(), "user", date("2024-03-10"), date("2024-03-10"))
	if err != nil {
		t.Fatalf("BuildShoppingList returned error: %v", err)
	}

	if len(list.Ingredients) != 1 || len(list.ScheduledIngredients) != 1 {
		t.Fatalf("expected one row in each set, got %d and %d",
			len(list.Ingredients), len(list.ScheduledIngredients))
	}
	if got := list.Ingredients[0].PurchaseQuantity; got != 1 {
		t.Errorf("expected recipe demand to buy its own unit, got %d", got)
	}
}

func TestShoppingListIsIdempotent(t *testing.T) {
	carrot := Ingredient{ID: uuid.New(), Name: "Carrot", PurchaseQuantity: 10, Life: 10}
	onion := Ingredient{ID: uuid.New(), Name: "Onion", PurchaseQuantity: 5, Life: 30}
	stewID := uuid.New()
	rows := []UsageRow{
		usageRow("2024-03-05", uuid.New(), "Soup", carrot, 5),
		usageRow("2024-03-10", stewID, "Stew", carrot, 8),
		usageRow("2024-03-10", stewID, "Stew", onion, 2),
		usageRow("2024-03-11", uuid.New(), "Salad", onion, 3),
	}

	service := newTestService(rows, nil)
	first, err := service.BuildShoppingList(context.Background(), "user", date("2024-03-10"), date("2024-03-12"))
	if err != nil {
		t.Fatalf("BuildShoppingList returned error: %v", err)
	}
	second, err := service.BuildShoppingList(context.Background(), "user", date("2024-03-10"), date("2024-03-12"))
	if err != nil {
		t.Fatalf("BuildShoppingList returned error: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated builds over the same data differ:\n%+v\n%+v", first, second)
	}
}

func TestGetMealDaysGroupsByDate(t *testing.T) {
	carrot := Ingredient{ID: uuid.New(), Name: "Carrot", PurchaseQuantity: 10, Life: 10}
	rows := []UsageRow{
		usageRow("2024-03-11", uuid.New(), "Soup", carrot, 3),
		usageRow("2024-03-10", uuid.New(), "Stew", carrot, 5),
	}

	service := newTestService(rows, nil)
	days, err := service.GetMealDays(context.Background(), "user", date("2024-03-10"), date("2024-03-12"))
	if err != nil {
		t.Fatalf("GetMealDays returned error: %v", err)
	}

	if len(days) != 2 {
		t.Fatalf("expected 2 days, got %d", len(days))
	}
	if days[0].Date != "2024-03-10" || days[1].Date != "2024-03-11" {
		t.Errorf("days not sorted ascending: %s, %s", days[0].Date, days[1].Date)
	}
	if days[0].Recipes[0].Name != "Stew" {
		t.Errorf("expected Stew on the first day, got %q", days[0].Recipes[0].Name)
	}
}
