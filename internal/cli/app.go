package cli

import (
	"bufio"
	"context"
	"database/sql"
	"io"
	"os"
	"time"

	"github.com/dmitrijs2005/mentorhub/internal/config"
	"github.com/dmitrijs2005/mentorhub/internal/kvstore"
	"github.com/dmitrijs2005/mentorhub/internal/logging"
	adminrepo "github.com/dmitrijs2005/mentorhub/internal/repositories/admin"
	"github.com/dmitrijs2005/mentorhub/internal/repositories/applications"
	"github.com/dmitrijs2005/mentorhub/internal/services"
	"github.com/dmitrijs2005/mentorhub/internal/session"
	"github.com/dmitrijs2005/mentorhub/internal/storage"

	_ "modernc.org/sqlite"
)

type App struct {
	config        *config.Config
	log           logging.Logger
	db            *sql.DB
	sessions      *session.Holder
	authService   services.AuthService
	appService    services.ApplicationService
	notifications services.NotificationService
	reader        *bufio.Reader
	out           io.Writer
}

func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	db, err := storage.InitDatabase(ctx, c.DatabasePath)
	if err != nil {
		log.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	store := kvstore.NewSQLiteStore(db)
	sessions := session.NewHolder()

	appRepo := applications.NewKVRepository(store)
	adminRepo := adminrepo.NewKVRepository(store)

	if err := adminRepo.EnsureSeeded(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &App{
		config:        c,
		log:           log,
		db:            db,
		sessions:      sessions,
		authService:   services.NewAuthService(adminRepo, sessions),
		appService:    services.NewApplicationService(appRepo),
		notifications: services.NewNotificationService(appRepo, sessions),
		reader:        bufio.NewReader(os.Stdin),
		out:           os.Stdout,
	}, nil
}

func (a *App) Run(ctx context.Context) {
	defer a.db.Close()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go func() {
		a.StartRefreshWatcher(ctx, a.config.RefreshInterval)
	}()

	printlnFn("Welcome to MentorHub (type 'help' for commands)")

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, scanner, a, a.getStatus)
}

func (a *App) applicantSignedIn() bool {
	_, ok := a.sessions.CurrentApplicant()
	return ok
}

func (a *App) adminSignedIn() bool {
	_, ok := a.sessions.CurrentAdmin()
	return ok
}

func (a *App) getStatus() string {
	if applicant, ok := a.sessions.CurrentApplicant(); ok {
		return "(" + applicant.Name + ")"
	}
	if admin, ok := a.sessions.CurrentAdmin(); ok {
		return "(admin:" + admin.Username + ")"
	}
	return ""
}

// refresh re-renders the signed-in role's dashboard and, for an applicant,
// announces status changes picked up since the previous run. A signed-out
// process refreshes nothing.
func (a *App) refresh(ctx context.Context) {
	if !a.applicantSignedIn() && !a.adminSignedIn() {
		return
	}

	if err := a.Dashboard(ctx); err != nil {
		a.log.Error(ctx, "dashboard refresh failed", "error", err)
	}

	notifs, err := a.notifications.CheckForUpdates(ctx)
	if err != nil {
		a.log.Error(ctx, "refresh tick failed", "error", err)
		return
	}
	for _, n := range notifs {
		printlnFn("Notification: " + n.Message())
	}
}

// StartRefreshWatcher runs refresh on the configured interval until ctx is
// canceled. Each status change is announced exactly once; the diff itself
// lives in the notification service.
func (a *App) StartRefreshWatcher(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			a.refresh(ctx)
		case <-ctx.Done():
			return
		}
	}
}
