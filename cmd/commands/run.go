package commands

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"memoria"
	"memoria/config"
	"memoria/internal/application/usecase"
	"memoria/internal/infrastructure/database"
	"memoria/internal/infrastructure/minio"
	"memoria/internal/infrastructure/session"
	"memoria/internal/presentation/handler"
	"memoria/internal/presentation/middleware"
	"memoria/pkg/logger"
)

func HandleRun(args []string) {
	if len(args) < 3 {
		ExitOnError(errors.New("at least 1 arguments expected\nuse help command for more information"))
	}

	cfg, err := config.Load(args[2])
	if err != nil {
		ExitOnError(err)
	}

	if err := logger.Init(&cfg.Logger); err != nil {
		ExitOnError(err)
	}

	logger.Info("running memoria", "version", memoria.StringVersion())

	db, err := database.Connect(cfg.DBConfig)
	if err != nil {
		ExitOnError(err)
	}

	memoryStore := database.NewMemoryStore(db)
	settingsStore := database.NewSettingsStore(db)
	userStore := database.NewUserStore(db)

	sessionStore, err := session.New(cfg.Session)
	if err != nil {
		ExitOnError(err)
	}

	minioClient, err := minio.New(&cfg.MinIOClient)
	if err != nil {
		ExitOnError(err)
	}
	blobStore := minio.NewUploader(minioClient.MinioClient, &cfg.MinIOUploader)

	memories := usecase.NewMemories(memoryStore)
	settings := usecase.NewSettings(settingsStore)
	auth := usecase.NewAuth(userStore, sessionStore)
	uploader := usecase.NewUploader(blobStore)

	sessionTTL := time.Duration(cfg.Session.TTLInMinutes) * time.Minute

	authHandler := handler.NewAuthHandler(auth, memories, cfg.Session.CookieName, sessionTTL)
	memoriesHandler := handler.NewMemoriesHandler(memories)
	settingsHandler := handler.NewSettingsHandler(settings)
	uploadHandler := handler.NewUploadHandler(uploader)

	sessionAuth := middleware.NewSessionAuth(auth, cfg.Session.CookieName)

	e := echo.New()
	e.Use(echoMiddleware.CORSWithConfig(echoMiddleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowHeaders:     []string{echo.HeaderAuthorization, echo.HeaderContentType, echo.HeaderContentLength},
		AllowMethods: []string{http.MethodGet, http.MethodPut, http.MethodPatch, http.MethodPost,
			http.MethodDelete, http.MethodHead, http.MethodOptions},
		AllowCredentials: true,
		MaxAge:           86400,
	}))
	e.Use(echoMiddleware.Logger())
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.Secure())
	e.Use(echoMiddleware.BodyLimit("12M"))
	e.Use(echoMiddleware.RateLimiter(echoMiddleware.NewRateLimiterMemoryStore(20)))
	e.Use(sessionAuth.LoadUser)

	e.GET("/health", func(c echo.Context) error {
		return c.String(200, "OK")
	})

	api := e.Group("/api")

	api.POST("/auth/login", authHandler.HandleLogin)
	api.POST("/auth/logout", authHandler.HandleLogout, middleware.RequireAuth)
	api.GET("/auth/status", authHandler.HandleStatus, middleware.RequireAuth)
	api.POST("/auth/create-admin", authHandler.HandleCreateAdmin)
	api.POST("/auth/secret-reveal", authHandler.HandleSecretReveal)

	api.GET("/memories", memoriesHandler.HandleList)
	api.GET("/memories/featured", memoriesHandler.HandleFeatured)
	api.GET("/memories/category", memoriesHandler.HandleByCategory)
	api.POST("/memories/upload", uploadHandler.Handle, middleware.RequireAuth)
	api.GET("/memories/:id", memoriesHandler.HandleGet)
	api.POST("/memories", memoriesHandler.HandleCreate, middleware.RequireAdmin)
	api.PUT("/memories/:id", memoriesHandler.HandleUpdate, middleware.RequireAdmin)
	api.PATCH("/memories/:id", memoriesHandler.HandleUpdate, middleware.RequireAdmin)
	api.DELETE("/memories/:id", memoriesHandler.HandleDelete, middleware.RequireAdmin)

	api.GET("/settings", settingsHandler.HandleGet)
	api.PUT("/settings", settingsHandler.HandleUpdate, middleware.RequireAdmin)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := e.Start(cfg.Default.Address); err != nil && !errors.Is(err, http.ErrServerClosed) {
			ExitOnError(err)
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		ExitOnError(err)
	}

	if err := sessionStore.Close(); err != nil {
		logger.Error("closing session store", "err", err)
	}
	if err := db.Stop(); err != nil {
		logger.Error("closing database", "err", err)
	}
}
