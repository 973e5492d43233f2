package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"

	"github.com/kimloan/loanctl/internal/authz"
	"github.com/kimloan/loanctl/internal/config"
	"github.com/kimloan/loanctl/internal/logging"
	"github.com/kimloan/loanctl/internal/menu"
	"github.com/kimloan/loanctl/internal/session"
	"github.com/kimloan/loanctl/internal/state"
	"github.com/kimloan/loanctl/kimloan"
	"golang.org/x/sync/errgroup"
)

var Version = "dev"

const usage = `loanctl - Kim Loans management CLI

Usage:
  loanctl <command> [flags]

Commands:
  login       authenticate and store a session
  logout      end the session locally and server-side
  whoami      show the current user
  menu        show the navigation tree visible to the current user
  users       list users
  branches    list branches
  loans       list loans
  payments    list payments
  inventory   list branch stock levels
  dashboard   show dashboard statistics
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	if err := run(os.Args[1], os.Args[2:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(command string, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.NewLogger(cfg.Environment)
	logger.Debug("loanctl starting",
		slog.String("version", Version),
		slog.String("command", command),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, err := state.Open(cfg.StateDir)
	if err != nil {
		return fmt.Errorf("opening state: %w", err)
	}
	defer store.Close()

	mgr := session.NewManager(cfg.APIURL, &http.Client{Timeout: cfg.HTTPTimeout}, store, logger)
	mgr.OnSessionExpired(func() {
		fmt.Fprintln(os.Stderr, "session expired, run `loanctl login`")
	})
	mgr.Hydrate()

	switch command {
	case "login":
		return runLogin(ctx, cfg, mgr)
	case "logout":
		mgr.Logout(ctx)
		fmt.Println("logged out")
		return nil
	case "whoami":
		return runWhoami(mgr)
	case "menu":
		return runMenu(mgr)
	case "users":
		return runUsers(ctx, mgr, args)
	case "branches":
		return runBranches(ctx, mgr)
	case "loans":
		return runLoans(ctx, mgr, args)
	case "payments":
		return runPayments(ctx, mgr, args)
	case "inventory":
		return runInventory(ctx, mgr, args)
	case "dashboard":
		return runDashboard(ctx, mgr, args)
	default:
		fmt.Fprint(os.Stderr, usage)
		return fmt.Errorf("unknown command %q", command)
	}
}

// requireSession guards a command behind the authorization gate, mapping
// denials to actionable errors.
func requireSession(mgr *session.Manager, permission string) error {
	switch authz.Require(mgr.Current(), permission) {
	case authz.Allow:
		return nil
	case authz.DenyForbidden:
		return fmt.Errorf("your role does not allow this (requires %s)", permission)
	default:
		return fmt.Errorf("not logged in, run `loanctl login`")
	}
}

func runLogin(ctx context.Context, cfg *config.Config, mgr *session.Manager) error {
	username := cfg.Username
	password := cfg.Password

	if username == "" {
		var err error
		if username, err = prompt("Username: "); err != nil {
			return err
		}
	}

	if password == "" {
		var err error
		if password, err = prompt("Password: "); err != nil {
			return err
		}
	}

	if err := mgr.Login(ctx, username, password); err != nil {
		if errors.Is(err, kimloan.ErrCredentialsRejected) {
			return fmt.Errorf("login rejected: check username and password")
		}

		return fmt.Errorf("login failed (is the backend reachable?): %w", err)
	}

	user := mgr.Current().User
	fmt.Printf("logged in as %s %s (%s)\n", user.FirstName, user.LastName, user.Role)

	return nil
}

func prompt(label string) (string, error) {
	fmt.Fprint(os.Stderr, label)

	scanner := bufio.NewScanner(os.Stdin)
	if !scanner.Scan() {
		return "", fmt.Errorf("no input")
	}

	return scanner.Text(), nil
}

func runWhoami(mgr *session.Manager) error {
	snap := mgr.Current()
	if !snap.IsAuthenticated {
		fmt.Println("not logged in")
		return nil
	}

	u := snap.User
	fmt.Printf("%s %s (%s)\nusername: %s\nrole: %s\n", u.FirstName, u.LastName, u.Email, u.Username, u.Role)
	if u.BranchID > 0 {
		fmt.Printf("branch: %d\n", u.BranchID)
	}

	return nil
}

func runMenu(mgr *session.Manager) error {
	items, err := menu.Load()
	if err != nil {
		return err
	}

	visible := menu.ProjectFor(items, mgr.Current())
	if len(visible) == 0 {
		fmt.Println("no menu entries, run `loanctl login`")
		return nil
	}

	printMenu(visible, "")

	return nil
}

func printMenu(items []menu.Item, indent string) {
	for _, item := range items {
		if item.Path != "" {
			fmt.Printf("%s%s  (%s)\n", indent, item.Title, item.Path)
		} else {
			fmt.Printf("%s%s\n", indent, item.Title)
		}

		printMenu(item.Children, indent+"  ")
	}
}

func runUsers(ctx context.Context, mgr *session.Manager, args []string) error {
	fs := flag.NewFlagSet("users", flag.ContinueOnError)
	role := fs.String("role", "", "filter by role")
	branchID := fs.Int64("branch", 0, "filter by branch ID")
	limit := fs.Int("limit", 50, "maximum results")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if err := requireSession(mgr, "users:read"); err != nil {
		return err
	}

	users, err := mgr.API().ListUsers(ctx, kimloan.UserFilter{
		Role:     kimloan.Role(*role),
		BranchID: *branchID,
		Limit:    *limit,
	})
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tUSERNAME\tNAME\tROLE\tACTIVE")

	for _, u := range users {
		fmt.Fprintf(w, "%d\t%s\t%s %s\t%s\t%t\n", u.ID, u.Username, u.FirstName, u.LastName, u.Role, u.IsActive)
	}

	return w.Flush()
}

func runBranches(ctx context.Context, mgr *session.Manager) error {
	if err := requireSession(mgr, "branches:read"); err != nil {
		return err
	}

	branches, err := mgr.API().ListBranches(ctx)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tCODE\tNAME\tUSERS\tGROUPS\tACTIVE LOANS")

	for _, b := range branches {
		fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%d\t%d\n", b.ID, b.Code, b.Name, b.TotalUsers, b.TotalGroups, b.ActiveLoans)
	}

	return w.Flush()
}

func runLoans(ctx context.Context, mgr *session.Manager, args []string) error {
	fs := flag.NewFlagSet("loans", flag.ContinueOnError)
	status := fs.String("status", "", "filter by status (active, completed, arrears)")
	overdue := fs.Bool("overdue", false, "only overdue loans")
	limit := fs.Int("limit", 50, "maximum results")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if err := requireSession(mgr, "loans:read"); err != nil {
		return err
	}

	loans, err := mgr.API().ListLoans(ctx, kimloan.LoanFilter{
		Status:      *status,
		OverdueOnly: *overdue,
		Limit:       *limit,
	})
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "LOAN\tBORROWER\tTOTAL\tBALANCE\tSTATUS\tDUE")

	for _, l := range loans {
		fmt.Fprintf(w, "%s\t%d\t%.2f\t%.2f\t%s\t%s\n", l.LoanNumber, l.BorrowerID, l.TotalAmount, l.Balance, l.Status, l.DueDate)
	}

	return w.Flush()
}

func runPayments(ctx context.Context, mgr *session.Manager, args []string) error {
	fs := flag.NewFlagSet("payments", flag.ContinueOnError)
	loanID := fs.Int64("loan", 0, "filter by loan ID")
	status := fs.String("status", "", "filter by status")
	limit := fs.Int("limit", 50, "maximum results")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if err := requireSession(mgr, "payments:view_history"); err != nil {
		return err
	}

	payments, err := mgr.API().ListPayments(ctx, kimloan.PaymentFilter{
		LoanID: *loanID,
		Status: *status,
		Limit:  *limit,
	})
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "PAYMENT\tLOAN\tAMOUNT\tMETHOD\tSTATUS\tDATE")

	for _, p := range payments {
		fmt.Fprintf(w, "%s\t%d\t%.2f\t%s\t%s\t%s\n", p.PaymentNumber, p.LoanID, p.Amount, p.PaymentMethod, p.Status, p.PaymentDate)
	}

	return w.Flush()
}

func runInventory(ctx context.Context, mgr *session.Manager, args []string) error {
	fs := flag.NewFlagSet("inventory", flag.ContinueOnError)
	branchID := fs.Int64("branch", 0, "scope to one branch")
	status := fs.String("status", "", "filter by stock status (ok, low, critical)")
	product := fs.String("product", "", "filter by product name")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if err := requireSession(mgr, "inventory:read"); err != nil {
		return err
	}

	items, err := mgr.API().ListInventory(ctx, kimloan.InventoryFilter{
		BranchID:    *branchID,
		Status:      *status,
		ProductName: *product,
	})
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tBRANCH\tPRODUCT\tQTY\tREORDER\tSTATUS")

	for _, item := range items {
		fmt.Fprintf(w, "%d\t%d\t%s\t%d\t%d\t%s\n",
			item.ID, item.BranchID, item.ProductName, item.CurrentQuantity, item.ReorderPoint, item.Status)
	}

	return w.Flush()
}

func runDashboard(ctx context.Context, mgr *session.Manager, args []string) error {
	fs := flag.NewFlagSet("dashboard", flag.ContinueOnError)
	branchID := fs.Int64("branch", 0, "scope to one branch")
	daysBack := fs.Int("days", 30, "reporting window in days")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if err := requireSession(mgr, "reports:analytics"); err != nil {
		return err
	}

	api := mgr.API()

	// The three panels are independent; fetch them concurrently.
	var (
		stats   *kimloan.DashboardStats
		pending []kimloan.Payment
		unread  int
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		stats, err = api.Dashboard(gctx, *branchID, *daysBack)

		return err
	})

	g.Go(func() error {
		var err error
		pending, err = api.PendingPayments(gctx)

		return err
	})

	g.Go(func() error {
		var err error
		unread, err = api.UnreadNotifications(gctx)

		return err
	})

	if err := g.Wait(); err != nil {
		return err
	}

	fmt.Printf("Customers: %d  Branches: %d  Loan officers: %d  Groups: %d\n",
		stats.Organization.TotalCustomers,
		stats.Organization.TotalBranches,
		stats.Organization.TotalLoanOfficers,
		stats.Organization.TotalGroups,
	)
	fmt.Printf("Disbursed: %.2f across %d loans  Collected: %.2f  Outstanding: %.2f\n",
		stats.Financial.TotalAmountDisbursed,
		stats.Financial.TotalLoansDisbursed,
		stats.Financial.TotalCollected,
		stats.Financial.OutstandingBalance,
	)
	fmt.Printf("Loans: %d active, %d completed, %d in arrears\n",
		stats.Loans.Active,
		stats.Loans.Completed,
		stats.Loans.Arrears,
	)
	fmt.Printf("Pending payments: %d  Unread notifications: %d\n", len(pending), unread)

	return nil
}
