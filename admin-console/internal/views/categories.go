package views

import (
	"context"
	"strings"

	"food-admin/admin-console/internal/audit"
	"food-admin/admin-console/internal/domain"
)

type CategoryAPI interface {
	List(ctx context.Context) ([]domain.Category, error)
	Get(ctx context.Context, id int) (*domain.Category, error)
	Create(ctx context.Context, category domain.Category) (*domain.Category, error)
	Update(ctx context.Context, id int, category domain.Category) (*domain.Category, error)
	Delete(ctx context.Context, id int) error
}

type CategoryForm struct {
	ID          int
	Name        string
	Description string
	ImageURL    string
}

type CategoriesView struct {
	Banner
	Categories []domain.Category

	api   CategoryAPI
	audit *audit.Recorder
}

func NewCategoriesView(api CategoryAPI, recorder *audit.Recorder) *CategoriesView {
	return &CategoriesView{api: api, audit: recorder}
}

func (v *CategoriesView) Load(ctx context.Context) error {
	v.DismissError()
	categories, err := v.api.List(ctx)
	if err != nil {
		return v.fail(err, "Failed to load categories")
	}
	v.Categories = categories
	return nil
}

func (v *CategoriesView) Get(ctx context.Context, id int) (*domain.Category, error) {
	v.DismissError()
	category, err := v.api.Get(ctx, id)
	if err != nil {
		return nil, v.fail(err, "Failed to load category")
	}
	return category, nil
}

// Edit builds a form from the already loaded list.
func (v *CategoriesView) Edit(id int) (CategoryForm, bool) {
	for _, c := range v.Categories {
		if c.ID == id {
			return CategoryForm{ID: c.ID, Name: c.Name, Description: c.Description, ImageURL: c.ImageURL}, true
		}
	}
	return CategoryForm{}, false
}

// Save appends a created category or replaces the updated one in place.
func (v *CategoriesView) Save(ctx context.Context, form CategoryForm) (*domain.Category, error) {
	v.DismissError()
	if strings.TrimSpace(form.Name) == "" {
		return nil, v.fail(invalid("Name is required."), "Failed to save category")
	}
	category := domain.Category{
		Name:        strings.TrimSpace(form.Name),
		Description: form.Description,
		ImageURL:    form.ImageURL,
	}

	if form.ID != 0 {
		saved, err := v.api.Update(ctx, form.ID, category)
		if err != nil {
			return nil, v.fail(err, "Failed to save category")
		}
		if saved == nil || saved.ID == 0 {
			category.ID = form.ID
			saved = &category
		}
		for i := range v.Categories {
			if v.Categories[i].ID == form.ID {
				v.Categories[i] = *saved
			}
		}
		v.audit.Record(ctx, audit.ActionUpdate, audit.ResourceCategory, form.ID)
		return saved, nil
	}

	saved, err := v.api.Create(ctx, category)
	if err != nil {
		return nil, v.fail(err, "Failed to save category")
	}
	v.Categories = append(v.Categories, *saved)
	v.audit.Record(ctx, audit.ActionCreate, audit.ResourceCategory, saved.ID)
	return saved, nil
}

func (v *CategoriesView) Delete(ctx context.Context, id int, confirm Confirmer) (bool, error) {
	if !confirmed(confirm, "Are you sure you want to delete this category?") {
		return false, nil
	}
	v.DismissError()
	if err := v.api.Delete(ctx, id); err != nil {
		return false, v.fail(err, "Failed to delete category")
	}

	kept := v.Categories[:0]
	for _, c := range v.Categories {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	v.Categories = kept
	v.audit.Record(ctx, audit.ActionDelete, audit.ResourceCategory, id)
	return true, nil
}

func (v *CategoriesView) Filter(query string) []domain.Category {
	var out []domain.Category
	for _, c := range v.Categories {
		if containsFold(c.Name, query) || containsFold(c.Description, query) {
			out = append(out, c)
		}
	}
	return out
}
