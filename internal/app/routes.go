package app

import (
	"net/http"

	"github.com/akileinonen/maintenance-wizard/internal/auth"
	"github.com/akileinonen/maintenance-wizard/internal/cache"
	"github.com/akileinonen/maintenance-wizard/internal/config"
	"github.com/akileinonen/maintenance-wizard/internal/handlers"
	"github.com/akileinonen/maintenance-wizard/internal/repo"
	"github.com/akileinonen/maintenance-wizard/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/swaggo/swag"
)

// Setup wires repositories, services and handlers onto the router.
func Setup(r *gin.Engine, cfg config.Config, db *pgxpool.Pool, rdb *redis.Client) {
	companyRepo := repo.NewPGCompanyRepo(db)
	userRepo := repo.NewPGUserRepo(db)
	taskRepo := repo.NewPGTaskRepo(db)
	entryRepo := repo.NewPGEntryRepo(db)
	photoRepo := repo.NewPGPhotoRepo(db)

	taskCache := cache.NewTaskCache(rdb, cfg.Redis.DefaultTTL.Duration())
	sessions := auth.NewStore(rdb, cfg.Redis.SessionTTL.Duration())

	userSvc := service.NewUserService(userRepo, companyRepo)
	companySvc := service.NewCompanyService(companyRepo)
	taskSvc := service.NewTaskService(taskRepo, entryRepo, taskCache, cfg.Ledger.BreakHours)
	timesheetSvc := service.NewTimesheetService(taskRepo, entryRepo, userRepo, taskCache, cfg.Ledger.BreakHours)
	photoSvc := service.NewPhotoService(photoRepo, taskRepo)

	authH := handlers.NewAuthHandler(sessions, userSvc)
	companyH := handlers.NewCompanyHandler(companySvc)
	taskH := handlers.NewTaskHandler(taskSvc)
	entryH := handlers.NewEntryHandler(timesheetSvc)
	photoH := handlers.NewPhotoHandler(photoSvc)

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"service": "maintenance-wizard",
			"version": cfg.App.Version,
			"env":     cfg.App.Env,
			"docs":    "/swagger/index.html",
			"health":  "/health",
			"api":     "/api/v1",
		})
	})
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true, "env": cfg.App.Env})
	})
	r.GET("/version", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"version": cfg.App.Version})
	})
	r.GET("/swagger-doc.json", func(c *gin.Context) {
		doc, err := swag.ReadDoc("swagger")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(doc))
	})
	r.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("/swagger-doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
		ginSwagger.PersistAuthorization(true),
	))

	api := r.Group("/api/v1")

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", authH.Register)
		authGroup.POST("/join", authH.Join)
		authGroup.POST("/login", authH.Login)
		authGroup.POST("/logout", authH.Logout)
		authGroup.GET("/me", auth.RequireSession(sessions, userSvc), authH.Me)
	}

	authed := api.Group("", auth.RequireSession(sessions, userSvc))

	company := authed.Group("/company")
	{
		company.GET("", companyH.Get)
		company.POST("/invite", auth.RequireAdmin(), companyH.RotateInvite)
	}

	tasks := authed.Group("/tasks")
	{
		tasks.GET("", taskH.List)
		tasks.GET("/overview", taskH.Overview)
		tasks.GET("/:id", taskH.GetByID)
		tasks.POST("", auth.RequireAdmin(), taskH.Create)
		tasks.PATCH("/:id", auth.RequireAdmin(), taskH.Update)
		tasks.POST("/:id/status", taskH.SetStatus)
		tasks.DELETE("/:id", auth.RequireAdmin(), taskH.Delete)

		tasks.POST("/:id/entries", entryH.Log)
		tasks.GET("/:id/entries", entryH.List)
		tasks.GET("/:id/entries/total", entryH.Total)

		tasks.POST("/:id/photos", photoH.Attach)
		tasks.GET("/:id/photos", photoH.List)
	}
}
