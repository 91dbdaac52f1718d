package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"

	"food-admin/admin-console/internal/domain"
	"food-admin/admin-console/internal/export"
	"food-admin/admin-console/internal/views"
)

func (a *App) runFoods(ctx context.Context, args []string) error {
	sub, rest := subcommand(args)
	switch sub {
	case "list":
		set := newFlagSet("foods list")
		query := set.String("q", "", "filter by name or description")
		if err := set.Parse(rest); err != nil {
			return usageError(err)
		}
		if err := a.Foods.Load(ctx); err != nil {
			return err
		}
		tw := a.table()
		fmt.Fprintln(tw, "ID\tNAME\tCATEGORY\tPRICE\tRATING\tFLAGS")
		for _, f := range a.Foods.Filter(*query) {
			fmt.Fprintf(tw, "%d\t%s\t%s\t%.2f\t%.1f\t%s\n", f.ID, f.Name, a.Foods.CategoryName(f.CategoryID), f.Price, f.Rating, foodFlags(f))
		}
		return tw.Flush()

	case "get":
		id, _, err := leadingID(rest)
		if err != nil {
			return err
		}
		form, err := a.Foods.Edit(ctx, id)
		if err != nil {
			return err
		}
		tw := a.table()
		fmt.Fprintf(tw, "ID\t%d\nName\t%s\nCategory\t%s\nPrice\t%s\nRating\t%s\nDescription\t%s\nImage\t%s\nPopular\t%t\nNewest\t%t\n",
			form.ID, form.Name, form.CategoryID, form.Price, form.Rating, form.Description, form.ImageURL, form.Popular, form.Newest)
		return tw.Flush()

	case "add", "update":
		form := views.NewFoodForm()
		flagArgs := rest
		if sub == "update" {
			id, remaining, err := leadingID(rest)
			if err != nil {
				return err
			}
			if form, err = a.Foods.Edit(ctx, id); err != nil {
				return err
			}
			flagArgs = remaining
		}

		set := newFlagSet("foods " + sub)
		name := set.String("name", form.Name, "name")
		category := set.String("category", form.CategoryID, "category id")
		price := set.String("price", form.Price, "price")
		description := set.String("description", form.Description, "description")
		image := set.String("image", form.ImageURL, "image url")
		rating := set.String("rating", form.Rating, "rating 0-5")
		popular := set.Bool("popular", form.Popular, "mark as popular")
		newest := set.Bool("newest", form.Newest, "mark as newest")
		if err := set.Parse(flagArgs); err != nil {
			return usageError(err)
		}
		form.Name, form.CategoryID, form.Price = *name, *category, *price
		form.Description, form.ImageURL, form.Rating = *description, *image, *rating
		form.Popular, form.Newest = *popular, *newest

		if err := a.Foods.Save(ctx, form); err != nil {
			return err
		}
		fmt.Fprintf(a.Out, "Saved food %q\n", form.Name)
		return nil

	case "delete":
		return a.deleteWith(rest, "food", func(id int, confirm views.Confirmer) (bool, error) {
			return a.Foods.Delete(ctx, id, confirm)
		})
	}
	return fmt.Errorf("%w: foods list|get|add|update|delete", ErrUsage)
}

func (a *App) runCategories(ctx context.Context, args []string) error {
	sub, rest := subcommand(args)
	switch sub {
	case "list":
		set := newFlagSet("categories list")
		query := set.String("q", "", "filter by name or description")
		if err := set.Parse(rest); err != nil {
			return usageError(err)
		}
		if err := a.Categories.Load(ctx); err != nil {
			return err
		}
		tw := a.table()
		fmt.Fprintln(tw, "ID\tNAME\tDESCRIPTION")
		for _, c := range a.Categories.Filter(*query) {
			fmt.Fprintf(tw, "%d\t%s\t%s\n", c.ID, c.Name, c.Description)
		}
		return tw.Flush()

	case "get":
		id, _, err := leadingID(rest)
		if err != nil {
			return err
		}
		c, err := a.Categories.Get(ctx, id)
		if err != nil {
			return err
		}
		tw := a.table()
		fmt.Fprintf(tw, "ID\t%d\nName\t%s\nDescription\t%s\nImage\t%s\n", c.ID, c.Name, c.Description, c.ImageURL)
		return tw.Flush()

	case "add", "update":
		var form views.CategoryForm
		flagArgs := rest
		if sub == "update" {
			id, remaining, err := leadingID(rest)
			if err != nil {
				return err
			}
			current, err := a.Categories.Get(ctx, id)
			if err != nil {
				return err
			}
			form = views.CategoryForm{ID: current.ID, Name: current.Name, Description: current.Description, ImageURL: current.ImageURL}
			flagArgs = remaining
		}

		set := newFlagSet("categories " + sub)
		set.StringVar(&form.Name, "name", form.Name, "name")
		set.StringVar(&form.Description, "description", form.Description, "description")
		set.StringVar(&form.ImageURL, "image", form.ImageURL, "image url")
		if err := set.Parse(flagArgs); err != nil {
			return usageError(err)
		}

		saved, err := a.Categories.Save(ctx, form)
		if err != nil {
			return err
		}
		fmt.Fprintf(a.Out, "Saved category %d %q\n", saved.ID, saved.Name)
		return nil

	case "delete":
		return a.deleteWith(rest, "category", func(id int, confirm views.Confirmer) (bool, error) {
			return a.Categories.Delete(ctx, id, confirm)
		})
	}
	return fmt.Errorf("%w: categories list|get|add|update|delete", ErrUsage)
}

func (a *App) runUsers(ctx context.Context, args []string) error {
	sub, rest := subcommand(args)
	switch sub {
	case "list":
		set := newFlagSet("users list")
		query := set.String("q", "", "filter by name, email, role or phone")
		if err := set.Parse(rest); err != nil {
			return usageError(err)
		}
		if err := a.Users.Load(ctx); err != nil {
			return err
		}
		tw := a.table()
		fmt.Fprintln(tw, "ID\tNAME\tEMAIL\tROLE\tPHONE")
		for _, u := range a.Users.Filter(*query) {
			fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", u.ID, u.FullName, u.Email, u.Role, u.PhoneNumber)
		}
		return tw.Flush()

	case "get":
		id, _, err := leadingID(rest)
		if err != nil {
			return err
		}
		u, err := a.Users.Get(ctx, id)
		if err != nil {
			return err
		}
		tw := a.table()
		fmt.Fprintf(tw, "ID\t%d\nName\t%s\nEmail\t%s\nRole\t%s\nPhone\t%s\n", u.ID, u.FullName, u.Email, u.Role, u.PhoneNumber)
		return tw.Flush()

	case "add", "update":
		form := views.NewUserForm()
		flagArgs := rest
		if sub == "update" {
			id, remaining, err := leadingID(rest)
			if err != nil {
				return err
			}
			current, err := a.Users.Get(ctx, id)
			if err != nil {
				return err
			}
			form = views.UserForm{ID: current.ID, FullName: current.FullName, Email: current.Email, Role: current.Role, PhoneNumber: current.PhoneNumber}
			flagArgs = remaining
		}

		set := newFlagSet("users " + sub)
		set.StringVar(&form.FullName, "name", form.FullName, "full name")
		set.StringVar(&form.Email, "email", form.Email, "email")
		role := set.String("role", string(form.Role), "USER or ADMIN")
		set.StringVar(&form.PhoneNumber, "phone", form.PhoneNumber, "phone number")
		if err := set.Parse(flagArgs); err != nil {
			return usageError(err)
		}
		form.Role = domain.Role(*role)

		saved, err := a.Users.Save(ctx, form)
		if err != nil {
			return err
		}
		fmt.Fprintf(a.Out, "Saved user %d %q\n", saved.ID, saved.FullName)
		return nil

	case "delete":
		return a.deleteWith(rest, "user", func(id int, confirm views.Confirmer) (bool, error) {
			return a.Users.Delete(ctx, id, confirm)
		})

	case "export":
		set := newFlagSet("users export")
		format := set.String("format", export.FormatCSV, "csv or xlsx")
		output := set.String("o", "", "export file; stdout when empty")
		if err := set.Parse(rest); err != nil {
			return usageError(err)
		}
		if err := a.Users.Load(ctx); err != nil {
			return err
		}
		return a.writeExport(*output, func(w io.Writer) error { return a.Users.Export(w, *format) })
	}
	return fmt.Errorf("%w: users list|get|add|update|delete|export", ErrUsage)
}

func (a *App) runOrders(ctx context.Context, args []string) error {
	sub, rest := subcommand(args)
	switch sub {
	case "list":
		set := newFlagSet("orders list")
		query := set.String("q", "", "filter by order id or customer")
		status := set.String("status", "", "PENDING, PREPARING, DELIVERED or CANCELLED")
		if err := set.Parse(rest); err != nil {
			return usageError(err)
		}
		var filter domain.OrderStatus
		if *status != "" {
			parsed, ok := domain.ParseOrderStatus(*status)
			if !ok {
				return fmt.Errorf("%w: unknown status %q", ErrUsage, *status)
			}
			filter = parsed
		}
		if err := a.Orders.Load(ctx); err != nil {
			return err
		}
		tw := a.table()
		fmt.Fprintln(tw, "ID\tDATE\tCUSTOMER\tITEMS\tTOTAL\tPAYMENT\tSTATUS")
		for _, o := range a.Orders.Filter(*query, filter) {
			date := o.OrderDate
			if placed, ok := o.PlacedAt(); ok {
				date = placed.Format("2006-01-02 15:04")
			}
			fmt.Fprintf(tw, "%d\t%s\t%s\t%d\t%.2f\t%s\t%s (%s)\n",
				o.ID, date, o.CustomerName(), len(o.Items), o.TotalAmount, o.PaymentMethod, o.Status, views.StatusClass(o.Status))
		}
		return tw.Flush()

	case "status":
		id, remaining, err := leadingID(rest)
		if err != nil {
			return err
		}
		if len(remaining) != 1 {
			return fmt.Errorf("%w: orders status ID STATUS", ErrUsage)
		}
		status, ok := domain.ParseOrderStatus(remaining[0])
		if !ok {
			return fmt.Errorf("%w: unknown status %q", ErrUsage, remaining[0])
		}
		if err := a.Orders.Load(ctx); err != nil {
			return err
		}
		if err := a.Orders.UpdateStatus(ctx, id, status); err != nil {
			return err
		}
		fmt.Fprintf(a.Out, "Order %d is now %s\n", id, status)
		return nil

	case "qr":
		id, remaining, err := leadingID(rest)
		if err != nil {
			return err
		}
		set := newFlagSet("orders qr")
		output := set.String("o", "order-"+strconv.Itoa(id)+".png", "png file")
		if err := set.Parse(remaining); err != nil {
			return usageError(err)
		}
		if err := a.Orders.Load(ctx); err != nil {
			return err
		}
		order, ok := a.Orders.Find(id)
		if !ok {
			return fmt.Errorf("order %d not found", id)
		}
		png, err := a.QR.OrderSlip(order)
		if err != nil {
			return fmt.Errorf("render order %d slip: %w", id, err)
		}
		if err := os.WriteFile(*output, png, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", *output, err)
		}
		fmt.Fprintf(a.Out, "Wrote %s\n", *output)
		return nil
	}
	return fmt.Errorf("%w: orders list|status|qr", ErrUsage)
}

func (a *App) deleteWith(args []string, what string, remove func(int, views.Confirmer) (bool, error)) error {
	id, remaining, err := leadingID(args)
	if err != nil {
		return err
	}
	set := newFlagSet("delete " + what)
	yes := set.Bool("yes", false, "skip the confirmation")
	if err := set.Parse(remaining); err != nil {
		return usageError(err)
	}

	deleted, err := remove(id, a.confirmer(*yes))
	if err != nil {
		return err
	}
	if deleted {
		fmt.Fprintf(a.Out, "Deleted %s %d\n", what, id)
	} else {
		fmt.Fprintln(a.Out, "Cancelled")
	}
	return nil
}

func subcommand(args []string) (string, []string) {
	if len(args) == 0 {
		return "list", nil
	}
	return args[0], args[1:]
}

func foodFlags(f domain.Food) string {
	switch {
	case f.Popular && f.Newest:
		return "popular,new"
	case f.Popular:
		return "popular"
	case f.Newest:
		return "new"
	}
	return ""
}
