package cli

import (
	"bufio"
	"context"
	"database/sql"
	"net/http"
	"os"
	"path/filepath"

	"github.com/adilbek-m/saudalink/internal/client/api"
	"github.com/adilbek-m/saudalink/internal/client/config"
	"github.com/adilbek-m/saudalink/internal/client/models"
	"github.com/adilbek-m/saudalink/internal/client/rates"
	"github.com/adilbek-m/saudalink/internal/client/services"
	"github.com/adilbek-m/saudalink/internal/client/session"
	"github.com/adilbek-m/saudalink/internal/client/storage"
	"github.com/adilbek-m/saudalink/internal/filex"
	"github.com/adilbek-m/saudalink/internal/logging"

	_ "modernc.org/sqlite"
)

// App holds the wired-up client: services on top, the session and local
// database underneath, and the terminal reader the commands prompt through.
type App struct {
	config  *config.Config
	log     logging.Logger
	session *session.Session
	auth    services.AuthService
	catalog services.CatalogService
	pricing services.PricingService
	display models.Currency
	reader  *bufio.Reader
	db      *sql.DB
}

// NewApp builds the application graph from the given config: the sqlite
// database (created under a data subdirectory next to the binary), the
// session restored from it, the API client with auto-refresh, and the rate
// cache backed by the same database.
func NewApp(c *config.Config, log logging.Logger) (*App, error) {

	ctx := context.Background()

	dataDir, err := filex.EnsureSubdDir("data")
	if err != nil {
		return nil, err
	}

	db, err := storage.InitDatabase(ctx, filepath.Join(dataDir, c.DatabasePath))
	if err != nil {
		log.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	kv := storage.NewSQLiteKV(db)
	sess := session.New(kv, storage.SQLiteTxRunner(db))
	if err := sess.Init(ctx); err != nil {
		log.Error(ctx, "error restoring session", "error", err)
		return nil, err
	}

	apiClient, err := api.New(c.APIBaseURL, sess, log)
	if err != nil {
		return nil, err
	}
	apiClient.OnSessionExpired(func() {
		printlnFn("Session expired, please log in again.")
	})

	provider := rates.NewHTTPProvider(c.RatesURL, &http.Client{Timeout: c.HTTPTimeout})
	cache := rates.NewCache(provider, kv, c.RatesTTL, log)
	converter := rates.NewConverter(cache)

	display := models.Currency(c.DisplayCurrency)
	if !display.Valid() {
		return nil, &models.ErrUnsupportedCurrency{Code: display}
	}

	return &App{
		config:  c,
		log:     log,
		session: sess,
		auth:    services.NewAuthService(apiClient, sess),
		catalog: services.NewCatalogService(apiClient),
		pricing: services.NewPricingService(converter),
		display: display,
		reader:  bufio.NewReader(os.Stdin),
		db:      db,
	}, nil
}

// Run starts the REPL and blocks until the user exits.
func (a *App) Run(ctx context.Context) {
	defer a.Close()
	a.Root(ctx)
}

// Close releases the local database.
func (a *App) Close() {
	if a.db != nil {
		_ = a.db.Close()
	}
}

func (a *App) isLoggedIn() bool {
	return a.auth.IsAuthenticated()
}
