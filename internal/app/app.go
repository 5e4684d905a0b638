package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"gorm.io/gorm"

	"github.com/dijana-z/organize-me/internal/auth"
	"github.com/dijana-z/organize-me/internal/config"
	"github.com/dijana-z/organize-me/internal/db"
	grocerydomain "github.com/dijana-z/organize-me/internal/domain/grocery"
	householddomain "github.com/dijana-z/organize-me/internal/domain/household"
	userdomain "github.com/dijana-z/organize-me/internal/domain/user"
	groceryrepo "github.com/dijana-z/organize-me/internal/repository/postgres/grocery"
	householdrepo "github.com/dijana-z/organize-me/internal/repository/postgres/household"
	userrepo "github.com/dijana-z/organize-me/internal/repository/postgres/user"
	"github.com/dijana-z/organize-me/internal/transport/httpserver"
	"github.com/dijana-z/organize-me/internal/transport/httpserver/handler"
	authmw "github.com/dijana-z/organize-me/internal/transport/httpserver/middleware"
	"github.com/dijana-z/organize-me/pkg/logger"
)

type App struct {
	cfg        config.Config
	httpServer *http.Server
	db         *gorm.DB
	log        logger.Logger
}

func New(log logger.Logger) (*App, error) {
	log.Info("app: loading config")
	cfg := config.Load(log)

	if cfg.Auth.JWTSecret == "" {
		return nil, fmt.Errorf("AUTH_JWT_SECRET must be set")
	}

	log.Info("app: initializing database")
	dbConn, err := db.NewPostgres(cfg.DB, log)
	if err != nil {
		return nil, err
	}

	log.Info("app: applying migrations")
	if err := db.Migrate(dbConn); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	users := userdomain.NewService(userrepo.NewPostgres(dbConn))
	households := householddomain.NewService(householdrepo.NewPostgres(dbConn))
	groceries := grocerydomain.NewService(groceryrepo.NewPostgres(dbConn))
	tokens := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)

	if err := seedAdmin(context.Background(), cfg.Admin, users, log); err != nil {
		return nil, fmt.Errorf("seed admin: %w", err)
	}

	log.Info("app: initializing router")
	handlers := handler.New(users, households, groceries, tokens, log)
	tokenAuth := authmw.NewTokenAuth(tokens, users, log)
	router := httpserver.NewRouter(cfg, handlers, tokenAuth)

	return &App{
		cfg:        cfg,
		httpServer: httpserver.New(cfg, router),
		db:         dbConn,
		log:        log,
	}, nil
}

// seedAdmin creates the configured staff+superuser account on first start.
// An existing account with that email is left as-is.
func seedAdmin(ctx context.Context, cfg config.AdminConfig, users *userdomain.Service, log logger.Logger) error {
	if cfg.Email == "" || cfg.Password == "" {
		return nil
	}

	_, err := users.GetByEmail(ctx, cfg.Email)
	if err == nil {
		return nil
	}
	if !errors.Is(err, userdomain.ErrUserNotFound) {
		return err
	}

	admin, err := users.RegisterSuperuser(ctx, userdomain.RegisterInput{
		Email:     cfg.Email,
		Password:  cfg.Password,
		Name:      "Admin",
		Household: cfg.Household,
	})
	if err != nil {
		return err
	}

	log.Info("app: seeded admin user", "user_id", admin.ID)
	return nil
}

func (a *App) HTTPServer() *http.Server {
	return a.httpServer
}

func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	sqlDB, err := a.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
