package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"circula/internal/auth"
	"circula/internal/client"
	"circula/internal/config"
	"circula/internal/logger"
	"circula/internal/repository"
	"circula/internal/server"
	"circula/internal/service"
	"circula/internal/storage"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
	"gorm.io/gorm"
)

func main() {
	// load .env into os.Environ
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found (ok in prod)")
	}

	app := &cli.App{
		Name:   "circula",
		Usage:  "second-hand marketplace API",
		Action: serve,
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "run the HTTP API",
				Action: serve,
			},
			{
				Name:   "migrate",
				Usage:  "create or update the database schema",
				Action: migrate,
			},
			{
				Name:  "promote-admin",
				Usage: "grant the Admin role to an existing account",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "email", Required: true},
				},
				Action: promoteAdmin,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type deps struct {
	cfg    *config.Config
	logger *logrus.Logger
	db     *gorm.DB
}

func setup() (*deps, error) {
	cfg := &config.Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	log, err := logger.New(cfg.Log)
	if err != nil {
		return nil, err
	}

	db, err := client.InitDatabase(cfg.DB, log)
	if err != nil {
		return nil, err
	}

	return &deps{cfg: cfg, logger: log, db: db}, nil
}

func migrate(_ *cli.Context) error {
	d, err := setup()
	if err != nil {
		return err
	}

	if err := client.Migrate(d.db); err != nil {
		return err
	}
	d.logger.Info("schema migrated")
	return nil
}

func promoteAdmin(c *cli.Context) error {
	d, err := setup()
	if err != nil {
		return err
	}

	customerRepo := repository.NewCustomerRepository(d.db)
	userService := service.NewUserService(customerRepo, nil, nil, d.logger)

	if err := userService.PromoteAdmin(c.Context, c.String("email")); err != nil {
		return err
	}
	d.logger.WithField("email", c.String("email")).Info("account promoted to admin")
	return nil
}

func serve(c *cli.Context) error {
	d, err := setup()
	if err != nil {
		return err
	}
	cfg, log, db := d.cfg, d.logger, d.db

	if err := client.Migrate(db); err != nil {
		return err
	}

	images, err := storage.NewImageStore(cfg.Upload)
	if err != nil {
		return err
	}
	tokens := auth.NewTokenManager(cfg.JWT)

	customerRepo := repository.NewCustomerRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	itemRepo := repository.NewItemRepository(db)
	wishlistRepo := repository.NewWishlistRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	cardRepo := repository.NewCardRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	feedbackRepo := repository.NewFeedbackRepository(db)
	reportRepo := repository.NewReportRepository(db)

	services := server.Services{
		User:      service.NewUserService(customerRepo, images, tokens, log),
		Category:  service.NewCategoryService(categoryRepo),
		Item:      service.NewItemService(itemRepo, categoryRepo, customerRepo, images, cfg.HTTP.PublicBaseURL, log),
		Wishlist:  service.NewWishlistService(wishlistRepo, itemRepo),
		Order:     service.NewOrderService(orderRepo, itemRepo, log),
		Payment:   service.NewPaymentService(db, orderRepo, itemRepo, cardRepo, paymentRepo, log),
		Card:      service.NewCardService(cardRepo),
		Feedback:  service.NewFeedbackService(feedbackRepo),
		Purchase:  service.NewPurchaseService(reportRepo, paymentRepo, itemRepo, log),
		Dashboard: service.NewDashboardService(reportRepo),
	}

	serverAddr := cfg.HTTP.Host + ":" + cfg.HTTP.Port

	// Init HTTP server
	srv := server.NewServer(services, tokens, customerRepo, cfg.Upload.Dir, log)

	go func() {
		if err := srv.Start(serverAddr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("HTTP server error")
		}
	}()

	ctx, stop := signal.NotifyContext(c.Context, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	<-ctx.Done()
	log.Info("Signal received, starting graceful shutdown...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("HTTP server shutdown: %w", err)
	}
	return nil
}
