package main

import (
	"context"
	"database/sql"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	jwtware "github.com/gofiber/jwt/v2"
	_ "github.com/jackc/pgx/v5/stdlib"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/darlingboutique/boutique-backend/internal/cart"
	"github.com/darlingboutique/boutique-backend/internal/category"
	"github.com/darlingboutique/boutique-backend/internal/config"
	"github.com/darlingboutique/boutique-backend/internal/logger"
	"github.com/darlingboutique/boutique-backend/internal/middleware"
	"github.com/darlingboutique/boutique-backend/internal/order"
	"github.com/darlingboutique/boutique-backend/internal/payment"
	"github.com/darlingboutique/boutique-backend/internal/product"
	"github.com/darlingboutique/boutique-backend/internal/user"
)

func main() {
	cfg := config.Load()
	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	db := mustOpenDB(cfg.DatabaseURL)
	defer db.Close()

	if err := ensureSchema(db); err != nil {
		logger.L().Fatal("ensure schema", zap.Error(err))
	}

	app := fiber.New()
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,HEAD,PUT,DELETE,PATCH",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
	app.Use(logger.RequestLogger())
	app.Use(middleware.RateLimit())

	productRepo := product.NewPostgresRepository(db)
	productService := product.NewService(productRepo)
	if err := productService.SeedIfEmpty(context.Background()); err != nil {
		logger.L().Warn("seed products", zap.Error(err))
	}
	product.NewHandler(productService).RegisterPublicRoutes(app)

	category.NewHandler().RegisterPublicRoutes(app)

	cartRepo := cart.NewPostgresRepository(db)
	cartService := cart.NewService(cartRepo, productService)
	cart.NewHandler(cartService).RegisterPublicRoutes(app)

	gateway := payment.NewSimulator(cfg.PaymentDelay, nil)
	orderRepo := order.NewPostgresRepository(db)
	orderService := order.NewService(orderRepo, cartRepo, gateway, cfg.PaymentTimeout)
	orderHandler := order.NewHandler(orderService)
	orderHandler.RegisterPublicRoutes(app)

	userRepo := user.NewPostgresRepository(db)
	userService := user.NewService(userRepo)
	userHandler := user.NewHandler(userService)
	userHandler.RegisterPublicRoutes(app)

	app.Get("/api", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "Darling Boutique API is running!"})
	})

	// everything registered below requires a valid bearer token
	app.Use(jwtware.New(jwtware.Config{
		SigningKey: []byte(cfg.JWTSecret),
	}))
	userHandler.RegisterProtectedRoutes(app)
	orderHandler.RegisterProtectedRoutes(app)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.L().Info("starting server", zap.String("addr", cfg.Addr))
		return app.Listen(cfg.Addr)
	})
	g.Go(func() error {
		<-ctx.Done()
		return app.Shutdown()
	})
	if err := g.Wait(); err != nil {
		logger.L().Fatal("server stopped", zap.Error(err))
	}
}

func mustOpenDB(url string) *sql.DB {
	if url == "" {
		logger.L().Fatal("DATABASE_URL is not set")
	}

	db, err := sql.Open("pgx", url)
	if err != nil {
		logger.L().Fatal("open database", zap.Error(err))
	}
	if err := db.Ping(); err != nil {
		logger.L().Fatal("ping database", zap.Error(err))
	}
	return db
}

func ensureSchema(db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS products (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			price DOUBLE PRECISION NOT NULL,
			category TEXT NOT NULL,
			subcategory TEXT NOT NULL,
			image TEXT NOT NULL DEFAULT '',
			description TEXT NOT NULL DEFAULT '',
			in_stock BOOLEAN NOT NULL DEFAULT TRUE,
			rating DOUBLE PRECISION NOT NULL DEFAULT 4.0,
			reviews INT NOT NULL DEFAULT 0,
			created_at TIMESTAMPTZ NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS carts (
			id TEXT PRIMARY KEY,
			user_id TEXT,
			session_id TEXT NOT NULL UNIQUE,
			items JSONB NOT NULL DEFAULT '[]',
			total DOUBLE PRECISION NOT NULL DEFAULT 0,
			created_at TIMESTAMPTZ NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS orders (
			id TEXT PRIMARY KEY,
			order_number TEXT NOT NULL,
			user_id TEXT,
			session_id TEXT,
			items JSONB NOT NULL DEFAULT '[]',
			total DOUBLE PRECISION NOT NULL DEFAULT 0,
			payment_method TEXT NOT NULL,
			phone_number TEXT NOT NULL,
			status TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS orders_session_idx ON orders (session_id)`,
		`CREATE INDEX IF NOT EXISTS orders_user_idx ON orders (user_id)`,
		`CREATE TABLE IF NOT EXISTS users (
			id TEXT PRIMARY KEY,
			email TEXT NOT NULL UNIQUE,
			password TEXT NOT NULL,
			name TEXT NOT NULL,
			phone TEXT NOT NULL DEFAULT '',
			address TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL
		)`,
	}
	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}
