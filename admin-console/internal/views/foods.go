package views

import (
	"context"
	"log"
	"strconv"
	"strings"

	"food-admin/admin-console/internal/audit"
	"food-admin/admin-console/internal/domain"
)

type FoodAPI interface {
	List(ctx context.Context) ([]domain.Food, error)
	Get(ctx context.Context, id int) (*domain.Food, error)
	Create(ctx context.Context, food domain.Food) (*domain.Food, error)
	Update(ctx context.Context, id int, food domain.Food) (*domain.Food, error)
	Delete(ctx context.Context, id int) error
}

type CategoryLister interface {
	List(ctx context.Context) ([]domain.Category, error)
}

// FoodForm holds the editable fields as typed by the operator; numbers stay
// strings until Save.
type FoodForm struct {
	ID          int
	Name        string
	CategoryID  string
	Price       string
	Description string
	ImageURL    string
	Rating      string
	Popular     bool
	Newest      bool
}

func NewFoodForm() FoodForm {
	return FoodForm{Rating: "0"}
}

func (f FoodForm) food() (domain.Food, error) {
	name := strings.TrimSpace(f.Name)
	if name == "" {
		return domain.Food{}, invalid("Name is required.")
	}
	categoryID, err := strconv.Atoi(strings.TrimSpace(f.CategoryID))
	if err != nil || categoryID <= 0 {
		return domain.Food{}, invalid("Please select a category.")
	}
	price, err := strconv.ParseFloat(strings.TrimSpace(f.Price), 64)
	if err != nil || price < 0 {
		return domain.Food{}, invalid("Price must be a number.")
	}

	rating := 0.0
	if raw := strings.TrimSpace(f.Rating); raw != "" {
		rating, err = strconv.ParseFloat(raw, 64)
		if err != nil || rating < 0 || rating > 5 {
			return domain.Food{}, invalid("Rating must be between 0 and 5.")
		}
	}

	return domain.Food{
		Name:        name,
		CategoryID:  categoryID,
		Price:       price,
		Description: f.Description,
		ImageURL:    f.ImageURL,
		Rating:      rating,
		Popular:     f.Popular,
		Newest:      f.Newest,
	}, nil
}

type FoodsView struct {
	Banner
	Foods      []domain.Food
	Categories []domain.Category

	foods      FoodAPI
	categories CategoryLister
	audit      *audit.Recorder
}

func NewFoodsView(foods FoodAPI, categories CategoryLister, recorder *audit.Recorder) *FoodsView {
	return &FoodsView{foods: foods, categories: categories, audit: recorder}
}

// Load refreshes foods and the category labels. A category failure only
// leaves the labels stale.
func (v *FoodsView) Load(ctx context.Context) error {
	v.DismissError()
	foods, err := v.foods.List(ctx)
	if err != nil {
		return v.fail(err, "Failed to load foods")
	}
	v.Foods = foods

	categories, err := v.categories.List(ctx)
	if err != nil {
		log.Printf("ERROR: load categories for foods: %v", err)
		return nil
	}
	v.Categories = categories
	return nil
}

// Edit fetches the latest copy of a food and turns it into a form.
func (v *FoodsView) Edit(ctx context.Context, id int) (FoodForm, error) {
	v.DismissError()
	food, err := v.foods.Get(ctx, id)
	if err != nil {
		return FoodForm{}, v.fail(err, "Failed to load food")
	}

	form := FoodForm{
		ID:          food.ID,
		Name:        food.Name,
		Price:       strconv.FormatFloat(food.Price, 'f', -1, 64),
		Description: food.Description,
		ImageURL:    food.ImageURL,
		Rating:      strconv.FormatFloat(food.Rating, 'f', -1, 64),
		Popular:     food.Popular,
		Newest:      food.Newest,
	}
	if food.CategoryID != 0 {
		form.CategoryID = strconv.Itoa(food.CategoryID)
	}
	return form, nil
}

// Save creates the food when the form has no id and updates it otherwise,
// then reloads the whole list.
func (v *FoodsView) Save(ctx context.Context, form FoodForm) error {
	v.DismissError()
	food, err := form.food()
	if err != nil {
		return v.fail(err, "Failed to save food")
	}

	if form.ID != 0 {
		if _, err := v.foods.Update(ctx, form.ID, food); err != nil {
			return v.fail(err, "Failed to save food")
		}
		v.audit.Record(ctx, audit.ActionUpdate, audit.ResourceFood, form.ID)
	} else {
		created, err := v.foods.Create(ctx, food)
		if err != nil {
			return v.fail(err, "Failed to save food")
		}
		v.audit.Record(ctx, audit.ActionCreate, audit.ResourceFood, created.ID)
	}
	return v.Load(ctx)
}

// Delete reports whether the food was removed; a declined prompt sends
// nothing.
func (v *FoodsView) Delete(ctx context.Context, id int, confirm Confirmer) (bool, error) {
	if !confirmed(confirm, "Are you sure you want to delete this food?") {
		return false, nil
	}
	v.DismissError()
	if err := v.foods.Delete(ctx, id); err != nil {
		return false, v.fail(err, "Failed to delete food")
	}
	v.audit.Record(ctx, audit.ActionDelete, audit.ResourceFood, id)
	return true, v.Load(ctx)
}

func (v *FoodsView) Filter(query string) []domain.Food {
	var out []domain.Food
	for _, food := range v.Foods {
		if containsFold(food.Name, query) || containsFold(food.Description, query) {
			out = append(out, food)
		}
	}
	return out
}

func (v *FoodsView) CategoryName(id int) string {
	for _, category := range v.Categories {
		if category.ID == id {
			return category.Name
		}
	}
	return "Unknown"
}
