package cli

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"food-admin/admin-console/internal/audit"
	"food-admin/admin-console/internal/export"
	"food-admin/admin-console/internal/gateway"
	"food-admin/admin-console/internal/resources"
	"food-admin/admin-console/internal/search"
	"food-admin/admin-console/internal/session"
	"food-admin/admin-console/internal/shell"
	"food-admin/admin-console/internal/views"
	"food-admin/config"
)

var ErrUsage = errors.New("usage")

const usage = `usage: admin-console <command> [arguments]

commands:
  login -email EMAIL [-password PASSWORD]
  logout [-yes]
  whoami
  theme [light|dark|toggle]
  dashboard [-year YEAR] [-export csv|xlsx -o FILE] [-category ID]
  search QUERY
  foods list [-q QUERY] | get ID | add [fields] | update ID [fields] | delete ID [-yes]
  categories list [-q QUERY] | get ID | add [fields] | update ID [fields] | delete ID [-yes]
  users list [-q QUERY] | get ID | add [fields] | update ID [fields] | delete ID [-yes] | export [-format csv|xlsx] [-o FILE]
  orders list [-q QUERY] [-status STATUS] | status ID STATUS | qr ID [-o FILE]
  audit [-n COUNT]`

// App is one console process: the shell plus a view per page.
type App struct {
	In     io.Reader
	Out    io.Writer
	Logger *log.Logger

	Session    *session.Session
	Shell      *shell.Shell
	Login      *views.LoginView
	Dashboard  *views.DashboardView
	Foods      *views.FoodsView
	Categories *views.CategoriesView
	Users      *views.UsersView
	Orders     *views.OrdersView
	QR         export.QRGenerator
	AuditFeed  *audit.Consumer

	input *bufio.Reader
}

// New wires the gateway, resource clients and views around one session.
func New(cfg config.Console, store session.Store, publisher audit.Publisher, client gateway.HTTPClient, in io.Reader, out io.Writer, logger *log.Logger) *App {
	if logger == nil {
		logger = log.New(os.Stderr, "[admin-console] ", log.LstdFlags)
	}
	if client == nil {
		client = &http.Client{}
	}

	sess := session.New(store)
	gw := gateway.New(gateway.Config{
		BaseURL:    cfg.APIBaseURL,
		Timeout:    cfg.Timeout,
		AuthScheme: cfg.AuthScheme,
	}, client, sess)
	recorder := audit.NewRecorder(publisher, sess)

	foods := resources.NewFoodClient(gw)
	categories := resources.NewCategoryClient(gw)
	users := resources.NewUserClient(gw)
	orders := resources.NewOrderClient(gw)
	admin := resources.NewAdminClient(gw)
	login := views.NewLoginView(resources.NewAuthClient(gw), sess, recorder)

	return &App{
		In:         in,
		Out:        out,
		Logger:     logger,
		Session:    sess,
		Shell:      shell.New(sess, store, login, search.New(foods, categories, users, orders), recorder),
		Login:      login,
		Dashboard:  views.NewDashboardView(foods, users, orders, admin),
		Foods:      views.NewFoodsView(foods, categories, recorder),
		Categories: views.NewCategoriesView(categories, recorder),
		Users:      views.NewUsersView(users, recorder),
		Orders:     views.NewOrdersView(orders, recorder),
		QR:         export.SlipQRGenerator{},
	}
}

// Run executes one command line against the restored session.
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 || args[0] == "help" || args[0] == "-h" || args[0] == "--help" {
		fmt.Fprintln(a.Out, usage)
		return nil
	}
	if err := a.Shell.Init(ctx); err != nil {
		return fmt.Errorf("restore session: %w", err)
	}

	command, rest := args[0], args[1:]
	var err error
	switch command {
	case "login":
		err = a.runLogin(ctx, rest)
	case "logout":
		err = a.runLogout(ctx, rest)
	case "whoami":
		err = a.runWhoami()
	case "theme":
		err = a.runTheme(ctx, rest)
	default:
		err = a.runPage(ctx, command, rest)
	}

	var apiErr *gateway.APIError
	if errors.As(err, &apiErr) && apiErr.Unauthorized() {
		a.Logger.Printf("the session may have expired; run login again")
	}
	return err
}

func (a *App) runPage(ctx context.Context, command string, args []string) error {
	if err := a.Shell.RequireAuth(); err != nil {
		return err
	}
	if command != "search" {
		if _, err := a.Shell.Navigate(command); err != nil {
			return err
		}
	}
	switch command {
	case "dashboard":
		return a.runDashboard(ctx, args)
	case "search":
		return a.runSearch(ctx, args)
	case "foods":
		return a.runFoods(ctx, args)
	case "categories":
		return a.runCategories(ctx, args)
	case "users":
		return a.runUsers(ctx, args)
	case "orders":
		return a.runOrders(ctx, args)
	case "audit":
		return a.runAudit(ctx, args)
	default:
		return fmt.Errorf("%w: unknown command %q", ErrUsage, command)
	}
}

func (a *App) runLogin(ctx context.Context, args []string) error {
	set := newFlagSet("login")
	email := set.String("email", "", "admin email")
	password := set.String("password", "", "admin password; prompted when empty")
	if err := set.Parse(args); err != nil {
		return usageError(err)
	}
	if *password == "" && *email != "" {
		*password = a.prompt("Password: ")
	}

	resp, err := a.Shell.Login(ctx, *email, *password)
	if err != nil {
		return err
	}
	name := resp.Name
	if name == "" {
		name = *email
	}
	fmt.Fprintf(a.Out, "Signed in as %s\n", name)
	return nil
}

func (a *App) runLogout(ctx context.Context, args []string) error {
	set := newFlagSet("logout")
	yes := set.Bool("yes", false, "skip the confirmation")
	if err := set.Parse(args); err != nil {
		return usageError(err)
	}
	if !a.Shell.LoggedIn() {
		fmt.Fprintln(a.Out, "Not signed in")
		return nil
	}

	out, err := a.Shell.Logout(ctx, a.confirmer(*yes))
	if err != nil {
		return err
	}
	if out {
		fmt.Fprintln(a.Out, "Signed out")
	}
	return nil
}

func (a *App) runWhoami() error {
	if !a.Shell.LoggedIn() {
		fmt.Fprintln(a.Out, "Not signed in")
		return nil
	}
	name := a.Session.Name()
	if name == "" {
		name = "Admin"
	}
	fmt.Fprintf(a.Out, "Signed in as %s\n", name)
	if exp, ok := a.Session.Expiry(); ok {
		fmt.Fprintf(a.Out, "Token expires %s\n", exp.Local().Format("2006-01-02 15:04"))
	}
	return nil
}

func (a *App) runTheme(ctx context.Context, args []string) error {
	switch {
	case len(args) == 0:
	case args[0] == "toggle":
		if _, err := a.Shell.ToggleTheme(ctx); err != nil {
			return err
		}
	default:
		if err := a.Shell.SetTheme(ctx, args[0]); err != nil {
			return err
		}
	}
	fmt.Fprintf(a.Out, "Theme: %s\n", a.Shell.Theme())
	return nil
}

func (a *App) runDashboard(ctx context.Context, args []string) error {
	set := newFlagSet("dashboard")
	year := set.Int("year", a.Dashboard.Year, "revenue year")
	format := set.String("export", "", "write the monthly revenue as csv or xlsx")
	output := set.String("o", "", "export file; stdout when empty")
	category := set.Int("category", 0, "list the orders placed for this category instead")
	if err := set.Parse(args); err != nil {
		return usageError(err)
	}
	if *category > 0 {
		return a.runCategoryOrders(ctx, *category)
	}
	a.Dashboard.Year = *year
	a.Dashboard.Load(ctx)

	if *format != "" {
		return a.writeExport(*output, func(w io.Writer) error { return a.Dashboard.Export(w, *format) })
	}

	if a.Dashboard.Err != "" {
		fmt.Fprintf(a.Out, "! %s\n", a.Dashboard.Err)
	}
	s := a.Dashboard.Summary()
	tw := a.table()
	fmt.Fprintf(tw, "Orders\t%d\n", s.Orders)
	fmt.Fprintf(tw, "Users\t%d\n", s.Users)
	fmt.Fprintf(tw, "Foods\t%d\n", s.Foods)
	fmt.Fprintf(tw, "Total revenue\t%.2f\n", s.TotalRevenue)
	tw.Flush()

	if len(a.Dashboard.MonthlyRevenue) > 0 {
		fmt.Fprintf(a.Out, "\nRevenue %d\n", a.Dashboard.Year)
		tw = a.table()
		for _, p := range a.Dashboard.MonthlyRevenue {
			fmt.Fprintf(tw, "%s\t%.2f\n", views.MonthLabel(p.Month), p.Revenue)
		}
		tw.Flush()
	}
	if counts := a.Dashboard.CategoryCounts(); len(counts) > 0 {
		fmt.Fprintln(a.Out, "\nOrders by category")
		tw = a.table()
		for _, c := range counts {
			fmt.Fprintf(tw, "%s\t%d\n", c.Category, c.Orders)
		}
		tw.Flush()
	}
	return nil
}

func (a *App) runCategoryOrders(ctx context.Context, categoryID int) error {
	orders, err := a.Dashboard.CategoryOrders(ctx, categoryID)
	if err != nil {
		return err
	}
	if len(orders) == 0 {
		fmt.Fprintf(a.Out, "No orders for category %d\n", categoryID)
		return nil
	}
	tw := a.table()
	fmt.Fprintln(tw, "ID\tCUSTOMER\tSTATUS\tTOTAL")
	for _, o := range orders {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%.2f\n", o.ID, o.CustomerName(), o.Status, o.TotalAmount)
	}
	return tw.Flush()
}

func (a *App) runSearch(ctx context.Context, args []string) error {
	report, err := a.Shell.Search(ctx, strings.Join(args, " "))
	if err != nil {
		return err
	}
	for _, b := range report.Branches {
		if b.Failed() {
			fmt.Fprintf(a.Out, "! %s search unavailable: %v\n", b.Name, b.Err)
		}
	}
	if len(report.Results) == 0 {
		fmt.Fprintln(a.Out, "No results")
		return nil
	}
	tw := a.table()
	fmt.Fprintln(tw, "TYPE\tID\tTITLE\tDETAIL\tPAGE")
	for _, r := range report.Results {
		fmt.Fprintf(tw, "%s\t%d\t%s\t%s\t%s\n", r.Type, r.ID, r.Title, r.Subtitle, r.Page)
	}
	return tw.Flush()
}

func (a *App) runAudit(ctx context.Context, args []string) error {
	set := newFlagSet("audit")
	count := set.Int("n", 0, "stop after this many events; 0 follows until interrupted")
	if err := set.Parse(args); err != nil {
		return usageError(err)
	}
	if a.AuditFeed == nil {
		return errors.New("audit trail needs KAFKA_BROKER to be set")
	}

	return a.AuditFeed.Consume(ctx, *count, func(e audit.Event) {
		line := fmt.Sprintf("%s %-13s %-8s", e.Timestamp.Local().Format("2006-01-02 15:04:05"), e.Type, e.Resource)
		if e.ResourceID != 0 {
			line += " #" + strconv.Itoa(e.ResourceID)
		}
		if e.Detail != "" {
			line += " " + e.Detail
		}
		if e.Actor != "" {
			line += " by " + e.Actor
		}
		fmt.Fprintln(a.Out, line)
	})
}

func (a *App) writeExport(path string, write func(io.Writer) error) error {
	if path == "" || path == "-" {
		return write(a.Out)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := write(f); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	fmt.Fprintf(a.Out, "Wrote %s\n", path)
	return nil
}

func (a *App) table() *tabwriter.Writer {
	return tabwriter.NewWriter(a.Out, 0, 4, 2, ' ', 0)
}

func (a *App) reader() *bufio.Reader {
	if a.input == nil {
		in := a.In
		if in == nil {
			in = strings.NewReader("")
		}
		a.input = bufio.NewReader(in)
	}
	return a.input
}

func (a *App) prompt(label string) string {
	fmt.Fprint(a.Out, label)
	line, _ := a.reader().ReadString('\n')
	return strings.TrimRight(line, "\r\n")
}

func (a *App) confirmer(assumeYes bool) views.Confirmer {
	return promptConfirmer{app: a, assumeYes: assumeYes}
}

type promptConfirmer struct {
	app       *App
	assumeYes bool
}

func (c promptConfirmer) Confirm(question string) bool {
	if c.assumeYes {
		return true
	}
	answer := strings.ToLower(strings.TrimSpace(c.app.prompt(question + " [y/N] ")))
	return answer == "y" || answer == "yes"
}

func newFlagSet(name string) *flag.FlagSet {
	set := flag.NewFlagSet(name, flag.ContinueOnError)
	set.SetOutput(io.Discard)
	return set
}

func usageError(err error) error {
	return fmt.Errorf("%w: %v", ErrUsage, err)
}

// leadingID splits "ID [flags...]" into the id and the remaining flags.
func leadingID(args []string) (int, []string, error) {
	if len(args) == 0 {
		return 0, nil, fmt.Errorf("%w: missing id", ErrUsage)
	}
	id, err := strconv.Atoi(args[0])
	if err != nil || id <= 0 {
		return 0, nil, fmt.Errorf("%w: invalid id %q", ErrUsage, args[0])
	}
	return id, args[1:], nil
}

var (
	_ views.Confirmer    = promptConfirmer{}
	_ views.FoodAPI      = (*resources.FoodClient)(nil)
	_ views.CategoryAPI  = (*resources.CategoryClient)(nil)
	_ views.UserAPI      = (*resources.UserClient)(nil)
	_ views.OrderAPI     = (*resources.OrderClient)(nil)
	_ views.ReportAPI    = (*resources.AdminClient)(nil)
	_ views.AuthAPI      = (*resources.AuthClient)(nil)
	_ shell.SessionState = (*session.Session)(nil)
	_ shell.Searcher     = (*search.Searcher)(nil)
)
