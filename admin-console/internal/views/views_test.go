package views_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"food-admin/admin-console/internal/audit"
	"food-admin/admin-console/internal/domain"
	"food-admin/admin-console/internal/export"
	"food-admin/admin-console/internal/gateway"
	"food-admin/admin-console/internal/mocks"
	"food-admin/admin-console/internal/views"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var errNotFound = errors.New("not found")

func auditEvent(action, resource string, id int) interface{} {
	return mock.MatchedBy(func(e audit.Event) bool {
		return e.Type == action && e.Resource == resource && e.ResourceID == id
	})
}

func TestFoodsView_LoadAndFilter(t *testing.T) {
	foods := &fakeFoods{items: []domain.Food{
		{ID: 1, Name: "Margherita", Description: "Tomato and basil", CategoryID: 2},
		{ID: 2, Name: "Paneer Wrap", Description: "Grilled paneer", CategoryID: 3},
	}}
	categories := &fakeCategories{items: []domain.Category{{ID: 2, Name: "Pizza"}}}
	view := views.NewFoodsView(foods, categories, nil)

	require.NoError(t, view.Load(context.Background()))
	assert.Len(t, view.Foods, 2)

	tests := []struct {
		query string
		want  []int
	}{
		{query: "", want: []int{1, 2}},
		{query: "PANEER", want: []int{2}},
		{query: "basil", want: []int{1}},
		{query: "sushi", want: nil},
	}
	for _, testCase := range tests {
		var got []int
		for _, f := range view.Filter(testCase.query) {
			got = append(got, f.ID)
		}
		assert.Equal(t, testCase.want, got, testCase.query)
	}

	assert.Equal(t, "Pizza", view.CategoryName(2))
	assert.Equal(t, "Unknown", view.CategoryName(3))
}

func TestFoodsView_LoadErrors(t *testing.T) {
	view := views.NewFoodsView(&fakeFoods{listErr: &gateway.APIError{Status: 500, Message: "database down"}}, &fakeCategories{}, nil)
	err := view.Load(context.Background())
	assert.Error(t, err)
	assert.Equal(t, "database down", view.Err)

	view.DismissError()
	assert.Empty(t, view.Err)

	foods := &fakeFoods{items: []domain.Food{{ID: 1, Name: "Margherita"}}}
	view = views.NewFoodsView(foods, &fakeCategories{listErr: assert.AnError}, nil)
	require.NoError(t, view.Load(context.Background()))
	assert.Len(t, view.Foods, 1)
	assert.Empty(t, view.Err)
}

func TestFoodsView_Save(t *testing.T) {
	tests := []struct {
		name    string
		form    views.FoodForm
		want    domain.Food
		wantErr string
	}{
		{
			name: "coerces numbers",
			form: views.FoodForm{Name: " Margherita ", CategoryID: "2", Price: "249.50", Rating: "4.5", Popular: true},
			want: domain.Food{ID: 1, Name: "Margherita", CategoryID: 2, Price: 249.5, Rating: 4.5, Popular: true},
		},
		{
			name:    "blank form",
			form:    views.NewFoodForm(),
			wantErr: "Name is required.",
		},
		{
			name: "empty rating is zero",
			form: views.FoodForm{Name: "Wrap", CategoryID: "3", Price: "99"},
			want: domain.Food{ID: 1, Name: "Wrap", CategoryID: 3, Price: 99},
		},
		{
			name:    "missing category",
			form:    views.FoodForm{Name: "Wrap", Price: "99"},
			wantErr: "Please select a category.",
		},
		{
			name:    "bad price",
			form:    views.FoodForm{Name: "Wrap", CategoryID: "3", Price: "cheap"},
			wantErr: "Price must be a number.",
		},
		{
			name:    "rating out of range",
			form:    views.FoodForm{Name: "Wrap", CategoryID: "3", Price: "99", Rating: "7"},
			wantErr: "Rating must be between 0 and 5.",
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			foods := &fakeFoods{}
			publisher := mocks.NewPublisher(t)
			view := views.NewFoodsView(foods, &fakeCategories{}, audit.NewRecorder(publisher, nil))

			if testCase.wantErr != "" {
				err := view.Save(context.Background(), testCase.form)
				var validation *views.ValidationError
				require.ErrorAs(t, err, &validation)
				assert.Equal(t, testCase.wantErr, view.Err)
				assert.Empty(t, foods.saved)
				return
			}

			publisher.On("Publish", mock.Anything, auditEvent(audit.ActionCreate, audit.ResourceFood, 1)).Return(nil).Once()
			require.NoError(t, view.Save(context.Background(), testCase.form))
			require.Len(t, foods.saved, 1)
			assert.Equal(t, testCase.want, foods.saved[0])
			assert.Equal(t, 1, foods.lists)
			assert.Len(t, view.Foods, 1)
		})
	}
}

func TestFoodsView_EditAndUpdate(t *testing.T) {
	foods := &fakeFoods{items: []domain.Food{{ID: 7, Name: "Biryani", CategoryID: 4, Price: 180, Rating: 4}}}
	publisher := mocks.NewPublisher(t)
	publisher.On("Publish", mock.Anything, auditEvent(audit.ActionUpdate, audit.ResourceFood, 7)).Return(nil).Once()
	view := views.NewFoodsView(foods, &fakeCategories{}, audit.NewRecorder(publisher, nil))

	form, err := view.Edit(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, views.FoodForm{ID: 7, Name: "Biryani", CategoryID: "4", Price: "180", Rating: "4"}, form)

	form.Price = "199.99"
	require.NoError(t, view.Save(context.Background(), form))
	assert.Equal(t, 199.99, view.Foods[0].Price)

	_, err = view.Edit(context.Background(), 99)
	assert.Error(t, err)
	assert.Equal(t, "not found", view.Err)
}

func TestFoodsView_Delete(t *testing.T) {
	t.Run("declined", func(t *testing.T) {
		foods := &fakeFoods{items: []domain.Food{{ID: 1}}}
		confirm := mocks.NewConfirmer(t)
		confirm.On("Confirm", "Are you sure you want to delete this food?").Return(false).Once()

		deleted, err := views.NewFoodsView(foods, &fakeCategories{}, nil).Delete(context.Background(), 1, confirm)
		require.NoError(t, err)
		assert.False(t, deleted)
		assert.Empty(t, foods.deleted)
	})

	t.Run("confirmed refetches", func(t *testing.T) {
		foods := &fakeFoods{items: []domain.Food{{ID: 1}, {ID: 2}}}
		confirm := mocks.NewConfirmer(t)
		confirm.On("Confirm", mock.Anything).Return(true).Once()
		view := views.NewFoodsView(foods, &fakeCategories{}, nil)

		deleted, err := view.Delete(context.Background(), 1, confirm)
		require.NoError(t, err)
		assert.True(t, deleted)
		assert.Equal(t, []int{1}, foods.deleted)
		assert.Equal(t, 1, foods.lists)
		assert.Equal(t, []domain.Food{{ID: 2}}, view.Foods)
	})

	t.Run("backend refuses", func(t *testing.T) {
		foods := &fakeFoods{deleteErr: &gateway.APIError{Status: 409, Message: "Food is part of an order"}}
		confirm := mocks.NewConfirmer(t)
		confirm.On("Confirm", mock.Anything).Return(true).Once()
		view := views.NewFoodsView(foods, &fakeCategories{}, nil)

		deleted, err := view.Delete(context.Background(), 1, confirm)
		assert.Error(t, err)
		assert.False(t, deleted)
		assert.Equal(t, "Food is part of an order", view.Err)
	})
}

func TestCategoriesView_LocalSplice(t *testing.T) {
	api := &fakeCategories{items: []domain.Category{
		{ID: 1, Name: "Pizza", Description: "Stone baked"},
		{ID: 2, Name: "Drinks", Description: "Cold"},
	}}
	publisher := mocks.NewPublisher(t)
	publisher.On("Publish", mock.Anything, mock.Anything).Return(nil).Times(3)
	view := views.NewCategoriesView(api, audit.NewRecorder(publisher, nil))
	ctx := context.Background()

	require.NoError(t, view.Load(ctx))

	created, err := view.Save(ctx, views.CategoryForm{Name: "Desserts"})
	require.NoError(t, err)
	assert.Equal(t, 102, created.ID)
	assert.Len(t, view.Categories, 3)
	assert.Equal(t, "Desserts", view.Categories[2].Name)

	form, ok := view.Edit(2)
	require.True(t, ok)
	form.Description = "Cold and hot"
	_, err = view.Save(ctx, form)
	require.NoError(t, err)
	assert.Equal(t, "Cold and hot", view.Categories[1].Description)

	confirm := mocks.NewConfirmer(t)
	confirm.On("Confirm", "Are you sure you want to delete this category?").Return(true).Once()
	deleted, err := view.Delete(ctx, 1, confirm)
	require.NoError(t, err)
	assert.True(t, deleted)
	assert.Equal(t, []int{1}, api.deleted)
	assert.Len(t, view.Categories, 2)
	assert.Equal(t, 2, view.Categories[0].ID)

	assert.Len(t, view.Filter("COLD"), 1)

	_, ok = view.Edit(42)
	assert.False(t, ok)
}

func TestCategoriesView_Errors(t *testing.T) {
	view := views.NewCategoriesView(&fakeCategories{saveErr: &gateway.NetworkError{Err: assert.AnError}}, nil)

	_, err := view.Save(context.Background(), views.CategoryForm{Name: "  "})
	var validation *views.ValidationError
	assert.ErrorAs(t, err, &validation)

	_, err = view.Save(context.Background(), views.CategoryForm{Name: "Soups"})
	assert.ErrorIs(t, err, gateway.ErrNetwork)
	assert.Equal(t, "Network Error", view.Err)
	assert.Empty(t, view.Categories)
}

func TestCategoriesView_UpdateWithEmptyBody(t *testing.T) {
	api := &fakeCategories{
		items:       []domain.Category{{ID: 1, Name: "Pizza", Description: "Stone baked"}},
		emptyUpdate: true,
	}
	view := views.NewCategoriesView(api, nil)
	ctx := context.Background()
	require.NoError(t, view.Load(ctx))

	saved, err := view.Save(ctx, views.CategoryForm{ID: 1, Name: "Pizza", Description: "Wood fired"})
	require.NoError(t, err)
	assert.Equal(t, 1, saved.ID)
	assert.Equal(t, []domain.Category{{ID: 1, Name: "Pizza", Description: "Wood fired"}}, view.Categories)
}

func TestUsersView_Filter(t *testing.T) {
	view := views.NewUsersView(&fakeUsers{items: []domain.User{
		{ID: 1, FullName: "Asha Rao", Email: "asha@example.com", Role: domain.RoleAdmin, PhoneNumber: "98450 11111"},
		{ID: 2, FullName: "Ravi Kumar", Email: "ravi@Example.com", Role: domain.RoleUser, PhoneNumber: "+91-ABC"},
	}}, nil)
	require.NoError(t, view.Load(context.Background()))

	tests := []struct {
		query string
		want  []int
	}{
		{query: "ASHA", want: []int{1}},
		{query: "example.COM", want: []int{1, 2}},
		{query: "admin", want: []int{1}},
		{query: "user", want: []int{2}},
		{query: "98450", want: []int{1}},
		{query: "ABC", want: []int{2}},
		{query: "abc", want: nil},
	}
	for _, testCase := range tests {
		var got []int
		for _, u := range view.Filter(testCase.query) {
			got = append(got, u.ID)
		}
		assert.Equal(t, testCase.want, got, testCase.query)
	}
}

func TestUsersView_SaveAndDelete(t *testing.T) {
	api := &fakeUsers{items: []domain.User{{ID: 1, FullName: "Asha Rao", Email: "asha@example.com", Role: domain.RoleAdmin}}}
	view := views.NewUsersView(api, nil)
	ctx := context.Background()
	require.NoError(t, view.Load(ctx))

	form := views.NewUserForm()
	form.FullName, form.Email = "Ravi", "ravi@example.com"
	created, err := view.Save(ctx, form)
	require.NoError(t, err)
	assert.Equal(t, domain.RoleUser, api.created[0].Role)
	assert.Equal(t, 500, created.ID)
	assert.Len(t, view.Users, 2)

	_, err = view.Save(ctx, views.UserForm{FullName: "X", Email: "x@example.com", Role: "OWNER"})
	var validation *views.ValidationError
	assert.ErrorAs(t, err, &validation)

	form, ok := view.Edit(1)
	require.True(t, ok)
	form.PhoneNumber = "12345"
	_, err = view.Save(ctx, form)
	require.NoError(t, err)
	assert.Equal(t, "12345", view.Users[0].PhoneNumber)

	deleted, err := view.Delete(ctx, 500, nil)
	require.NoError(t, err)
	assert.False(t, deleted)
	assert.Empty(t, api.deleted)

	confirm := mocks.NewConfirmer(t)
	confirm.On("Confirm", "Are you sure you want to delete this user?").Return(true).Once()
	deleted, err = view.Delete(ctx, 500, confirm)
	require.NoError(t, err)
	assert.True(t, deleted)
	assert.Len(t, view.Users, 1)
}

func TestUsersView_UpdateWithEmptyBody(t *testing.T) {
	api := &fakeUsers{
		items:       []domain.User{{ID: 3, FullName: "Asha Rao", Email: "asha@example.com", Role: domain.RoleUser}},
		emptyUpdate: true,
	}
	view := views.NewUsersView(api, nil)
	ctx := context.Background()
	require.NoError(t, view.Load(ctx))

	saved, err := view.Save(ctx, views.UserForm{ID: 3, FullName: "Asha Rao", Email: "asha@example.com", Role: domain.RoleAdmin})
	require.NoError(t, err)
	assert.Equal(t, 3, saved.ID)
	assert.Equal(t, []domain.User{{ID: 3, FullName: "Asha Rao", Email: "asha@example.com", Role: domain.RoleAdmin}}, view.Users)
}

func TestUsersView_Export(t *testing.T) {
	view := views.NewUsersView(&fakeUsers{items: []domain.User{
		{ID: 1, FullName: "Rao, Asha", Email: "asha@example.com", Role: domain.RoleAdmin, PhoneNumber: "98450"},
		{ID: 2, FullName: "Ravi", Email: "ravi@example.com", Role: domain.RoleUser},
		{ID: 3, FullName: "Meera", Email: "meera@example.com", Role: domain.RoleUser},
	}}, nil)

	var empty bytes.Buffer
	assert.ErrorIs(t, view.Export(&empty, export.FormatCSV), views.ErrNothingToExport)
	assert.Zero(t, empty.Len())

	require.NoError(t, view.Load(context.Background()))

	var buf bytes.Buffer
	require.NoError(t, view.Export(&buf, export.FormatCSV))
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\r\n"), "\r\n")
	require.Len(t, lines, len(view.Users)+1)
	for _, line := range lines {
		assert.NotEmpty(t, line)
	}
	assert.Equal(t, `"ID","Full Name","Email","Role","Phone Number"`, lines[0])
	assert.Equal(t, `"1","Rao, Asha","asha@example.com","ADMIN","98450"`, lines[1])
	assert.Equal(t, `"2","Ravi","ravi@example.com","USER",""`, lines[2])
}

func sampleOrders() []domain.Order {
	return []domain.Order{
		{ID: 101, Status: domain.StatusPending, Address: "MG Road", PaymentMethod: "COD", TotalAmount: 499, User: &domain.OrderUser{FullName: "Asha Rao"}},
		{ID: 102, Status: domain.StatusDelivered, Address: "Park St", PaymentMethod: "CARD", TotalAmount: 250, User: &domain.OrderUser{FullName: "Ravi Kumar"}},
		{ID: 210, Status: domain.StatusPending, Address: "Lake Rd"},
	}
}

func TestOrdersView_Filter(t *testing.T) {
	view := views.NewOrdersView(&fakeOrders{items: sampleOrders()}, nil)
	require.NoError(t, view.Load(context.Background()))

	tests := []struct {
		name   string
		query  string
		status domain.OrderStatus
		want   []int
	}{
		{name: "all", want: []int{101, 102, 210}},
		{name: "id", query: "21", want: []int{210}},
		{name: "id prefix", query: "10", want: []int{101, 102, 210}},
		{name: "customer", query: "ravi", want: []int{102}},
		{name: "status only", status: domain.StatusPending, want: []int{101, 210}},
		{name: "status and query", query: "asha", status: domain.StatusDelivered, want: nil},
		{name: "no customer", query: "lake", want: nil},
	}
	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			var got []int
			for _, o := range view.Filter(testCase.query, testCase.status) {
				got = append(got, o.ID)
			}
			assert.Equal(t, testCase.want, got)
		})
	}
}

func TestOrdersView_UpdateStatus(t *testing.T) {
	api := &fakeOrders{items: sampleOrders()}
	publisher := mocks.NewPublisher(t)
	publisher.On("Publish", mock.Anything, mock.MatchedBy(func(e audit.Event) bool {
		return e.Type == audit.ActionStatusChange && e.ResourceID == 101 && e.Detail == "PREPARING"
	})).Return(nil).Once()
	view := views.NewOrdersView(api, audit.NewRecorder(publisher, nil))
	ctx := context.Background()
	require.NoError(t, view.Load(ctx))

	require.NoError(t, view.UpdateStatus(ctx, 101, domain.StatusPreparing))
	assert.Equal(t, domain.StatusPreparing, api.updates[101])

	order, ok := view.Find(101)
	require.True(t, ok)
	assert.Equal(t, domain.StatusPreparing, order.Status)
	assert.Equal(t, "MG Road", order.Address)
	assert.Equal(t, "COD", order.PaymentMethod)
	assert.Equal(t, "Asha Rao", order.CustomerName())
	assert.Equal(t, 499.0, order.TotalAmount)

	err := view.UpdateStatus(ctx, 101, "SHIPPED")
	var validation *views.ValidationError
	assert.ErrorAs(t, err, &validation)
	assert.Len(t, api.updates, 1)

	api.updateErr = &gateway.APIError{Status: 400, Message: "Invalid status"}
	assert.Error(t, view.UpdateStatus(ctx, 102, domain.StatusCancelled))
	assert.Equal(t, "Invalid status", view.Err)
	order, _ = view.Find(102)
	assert.Equal(t, domain.StatusDelivered, order.Status)
}

func TestStatusClass(t *testing.T) {
	assert.Equal(t, "info", views.StatusClass(domain.StatusPending))
	assert.Equal(t, "warning", views.StatusClass(domain.StatusPreparing))
	assert.Equal(t, "success", views.StatusClass(domain.StatusDelivered))
	assert.Equal(t, "danger", views.StatusClass(domain.StatusCancelled))
	assert.Equal(t, "secondary", views.StatusClass("UNKNOWN"))
}

func TestDashboardView_Load(t *testing.T) {
	reports := &fakeReports{
		categories: []domain.CategoryOrders{
			{CategoryName: "Pizza", Orders: []domain.Order{{ID: 1}, {ID: 2}}},
			{CategoryName: "Drinks"},
		},
		total:   1520.75,
		monthly: []domain.RevenuePoint{{Month: 1, Revenue: 800}, {Month: 2, Revenue: 720.75}},
	}
	view := views.NewDashboardView(
		&fakeFoods{items: []domain.Food{{ID: 1}, {ID: 2}, {ID: 3}}},
		&fakeUsers{items: []domain.User{{ID: 1}}},
		&fakeOrders{items: sampleOrders()},
		reports,
	)
	view.Year = 2025

	branches := view.Load(context.Background())
	require.Len(t, branches, 6)
	for _, b := range branches {
		assert.True(t, b.OK(), b.Name)
	}
	assert.Empty(t, view.Err)
	assert.Equal(t, []int{2025}, reports.years)
	assert.Equal(t, views.Summary{Foods: 3, Users: 1, Orders: 3, TotalRevenue: 1520.75}, view.Summary())
	assert.Equal(t, []views.CategoryCount{{Category: "Pizza", Orders: 2}, {Category: "Drinks", Orders: 0}}, view.CategoryCounts())

	var buf bytes.Buffer
	require.NoError(t, view.Export(&buf, export.FormatCSV))
	assert.Equal(t, "\"Month\",\"Revenue\"\r\n\"January\",\"800\"\r\n\"February\",\"720.75\"\r\n", buf.String())
}

func TestDashboardView_PartialFailure(t *testing.T) {
	reports := &fakeReports{
		total: 99,
		err: map[string]error{
			"monthly": &gateway.NetworkError{Err: assert.AnError},
		},
	}
	view := views.NewDashboardView(
		&fakeFoods{items: []domain.Food{{ID: 1}}},
		&fakeUsers{listErr: &gateway.APIError{Status: 500, Message: "boom"}},
		&fakeOrders{},
		reports,
	)

	branches := view.Load(context.Background())

	status := map[string]bool{}
	for _, b := range branches {
		status[b.Name] = b.Failed()
	}
	assert.Equal(t, map[string]bool{
		views.BranchFoods:                false,
		views.BranchUsers:                true,
		views.BranchOrders:               false,
		views.BranchCategoriesWithOrders: false,
		views.BranchTotalRevenue:         false,
		views.BranchMonthlyRevenue:       true,
	}, status)

	assert.Len(t, view.Foods, 1)
	assert.Empty(t, view.Users)
	assert.Equal(t, 99.0, view.TotalRevenue)
	assert.Contains(t, view.Err, views.BranchUsers)
	assert.Contains(t, view.Err, views.BranchMonthlyRevenue)

	assert.ErrorIs(t, view.Export(&bytes.Buffer{}, export.FormatCSV), views.ErrNothingToExport)
}

func TestDashboardView_CategoryOrders(t *testing.T) {
	reports := &fakeReports{byCategory: map[int][]domain.Order{7: {{ID: 11}, {ID: 12}}}}
	view := views.NewDashboardView(&fakeFoods{}, &fakeUsers{}, &fakeOrders{}, reports)

	orders, err := view.CategoryOrders(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, []domain.Order{{ID: 11}, {ID: 12}}, orders)
	assert.Empty(t, view.Err)

	reports.err = map[string]error{"by-category": &gateway.APIError{Status: 404, Message: "Category not found"}}
	orders, err = view.CategoryOrders(context.Background(), 9)
	assert.Error(t, err)
	assert.Nil(t, orders)
	assert.Equal(t, "Category not found", view.Err)
}

func TestMonthLabel(t *testing.T) {
	assert.Equal(t, "March", views.MonthLabel(3))
	assert.Equal(t, "", views.MonthLabel(0))
	assert.Equal(t, "", views.MonthLabel(13))
}

func TestLoginView_Submit(t *testing.T) {
	t.Run("missing fields", func(t *testing.T) {
		auth := &fakeAuth{}
		view := views.NewLoginView(auth, &fakeSession{}, nil)

		_, err := view.Submit(context.Background(), "admin@example.com", "")
		var validation *views.ValidationError
		require.ErrorAs(t, err, &validation)
		assert.Equal(t, "Please enter both email and password.", view.Err)
		assert.Zero(t, auth.calls)
	})

	t.Run("success", func(t *testing.T) {
		session := &fakeSession{}
		publisher := mocks.NewPublisher(t)
		publisher.On("Publish", mock.Anything, auditEvent(audit.ActionLogin, audit.ResourceSession, 0)).Return(nil).Once()
		view := views.NewLoginView(&fakeAuth{resp: &domain.LoginResponse{Token: "jwt", Name: "Kamalesh"}}, session, audit.NewRecorder(publisher, nil))

		resp, err := view.Submit(context.Background(), " admin@example.com ", "secret")
		require.NoError(t, err)
		assert.Equal(t, "Kamalesh", resp.Name)
		assert.Equal(t, "jwt", session.token)
		assert.Equal(t, "Kamalesh", session.name)
	})

	t.Run("backend rejects", func(t *testing.T) {
		session := &fakeSession{}
		view := views.NewLoginView(&fakeAuth{err: &gateway.APIError{Status: 401, Message: "Invalid credentials"}}, session, nil)

		_, err := view.Submit(context.Background(), "admin@example.com", "bad")
		assert.Error(t, err)
		assert.Equal(t, "Invalid credentials", view.Err)
		assert.Empty(t, session.token)
	})

	t.Run("session refuses empty token", func(t *testing.T) {
		view := views.NewLoginView(&fakeAuth{resp: &domain.LoginResponse{}}, &fakeSession{err: assert.AnError}, nil)
		_, err := view.Submit(context.Background(), "admin@example.com", "secret")
		assert.ErrorIs(t, err, assert.AnError)
	})
}
