package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"

	"github.com/gin-gonic/gin"

	googleauth "briefbot-backend/internal/auth"
	"briefbot-backend/internal/documents"
	"briefbot-backend/internal/ocr"
	"briefbot-backend/internal/shared/cache"
	rediscache "briefbot-backend/internal/shared/cache/redis"
	"briefbot-backend/internal/shared/config"
	"briefbot-backend/internal/shared/server"
	"briefbot-backend/internal/shared/storage/db"
	"briefbot-backend/internal/shared/storage/object"
	memorystore "briefbot-backend/internal/shared/storage/object/memory"
	s3store "briefbot-backend/internal/shared/storage/object/s3"
	"briefbot-backend/internal/users"
)

// App holds shared dependencies.
type App struct {
	Config config.Config
	Router *gin.Engine
	DB     *sql.DB
	Store  object.ObjectStore
	Cache  cache.Cache
	OCR    ocr.Service

	DocumentsRepo    documents.Repo
	UsersRepo        users.Repo
	DocumentsService *documents.Service
	UsersService     *users.Service
	DocumentsHandler *documents.Handler
	UsersHandler     *users.Handler
	GoogleAuth       *googleauth.GoogleService
}

// Build prepares shared dependencies and wires the router.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	store, err := buildStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	cacheClient, err := buildCache(ctx, cfg)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config: cfg,
		DB:     sqlDB,
		Store:  store,
		Cache:  cacheClient,
		OCR:    buildOCR(cfg),
	}

	buildServices(app)

	app.Router = server.NewRouter(server.RouterDeps{
		Config:           app.Config,
		DocumentsHandler: app.DocumentsHandler,
		UsersHandler:     app.UsersHandler,
		GoogleAuth:       app.GoogleAuth,
	})

	return app, nil
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: DATABASE_URL empty; using in-memory repositories")
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: database connect failed; using in-memory repositories: %v", err)
			return nil, nil
		}
		return nil, err
	}

	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		sqlDB.Close()
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: migrations failed; using in-memory repositories: %v", err)
			return nil, nil
		}
		return nil, err
	}

	return sqlDB, nil
}

func buildStore(ctx context.Context, cfg config.Config) (object.ObjectStore, error) {
	switch cfg.ObjectStoreType {
	case "s3":
		return s3store.New(ctx, s3store.Options{
			Endpoint:  cfg.S3Endpoint,
			Region:    cfg.S3Region,
			Bucket:    cfg.S3Bucket,
			AccessKey: cfg.S3AccessKey,
			SecretKey: cfg.S3SecretKey,
			PathStyle: cfg.S3PathStyle,
		})
	default:
		return memorystore.New(), nil
	}
}

func buildCache(ctx context.Context, cfg config.Config) (cache.Cache, error) {
	if strings.TrimSpace(cfg.RedisAddr) == "" {
		return cache.NewMemory(), nil
	}
	redisCache, err := rediscache.New(ctx, cfg.RedisAddr, cfg.RedisPassword)
	if err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: redis connect failed; using in-memory cache: %v", err)
			return cache.NewMemory(), nil
		}
		return nil, err
	}
	return redisCache, nil
}

func buildOCR(cfg config.Config) ocr.Service {
	switch cfg.OCRProvider {
	case "pdf":
		return ocr.NewPDFText()
	default:
		return ocr.NewMock(ocr.MockOptions{
			MinDelay:  cfg.OCRMinDelay,
			MaxDelay:  cfg.OCRMaxDelay,
			SkipDelay: cfg.OCRNoDelay,
		})
	}
}

func buildServices(app *App) {
	var docRepo documents.Repo
	var userRepo users.Repo
	if app.DB != nil {
		docRepo = &documents.PGRepo{DB: app.DB}
		userRepo = &users.PGRepo{DB: app.DB}
	} else {
		docRepo = documents.NewMemoryRepo()
		userRepo = users.NewMemoryRepo()
	}

	docSvc := &documents.Service{
		Repo:  docRepo,
		Store: app.Store,
		OCR:   app.OCR,
		Cache: app.Cache,
	}
	userSvc := users.NewService(userRepo)

	app.DocumentsRepo = docRepo
	app.UsersRepo = userRepo
	app.DocumentsService = docSvc
	app.UsersService = userSvc
	app.DocumentsHandler = documents.NewHandler(docSvc)
	app.UsersHandler = users.NewHandler(userSvc)
	app.GoogleAuth = googleauth.NewGoogleService(
		app.Config.GoogleClientID,
		app.Config.GoogleClientSecret,
		app.Config.GoogleRedirectURL,
		app.Config.UIRedirectURL,
		userSvc,
	)
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}
