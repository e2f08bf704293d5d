package bootstrap

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/nio-salesdesk/salesdesk-backend/config"
	"github.com/nio-salesdesk/salesdesk-backend/internal/admin"
	httpapi "github.com/nio-salesdesk/salesdesk-backend/internal/api/http"
	"github.com/nio-salesdesk/salesdesk-backend/internal/api/http/middleware"
	"github.com/nio-salesdesk/salesdesk-backend/internal/auth"
	"github.com/nio-salesdesk/salesdesk-backend/internal/chat"
	"github.com/nio-salesdesk/salesdesk-backend/internal/chat/notify"
	"github.com/nio-salesdesk/salesdesk-backend/internal/files"
	"github.com/nio-salesdesk/salesdesk-backend/internal/reporting"
	"github.com/nio-salesdesk/salesdesk-backend/internal/sales"
	"github.com/nio-salesdesk/salesdesk-backend/internal/scripts"
	"github.com/nio-salesdesk/salesdesk-backend/internal/users"
)

type RouterDeps struct {
	ServiceName string
	Cfg         *config.Config
	Firebase    *FirebaseClients
	Redis       *redis.Client
}

// App bundles the router with the pieces main has to manage beyond serving
// requests.
type App struct {
	Router  *gin.Engine
	Admin   *admin.Service
	Sweeper *admin.Sweeper
}

func BuildRouter(dep RouterDeps) *App {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		MaxAge:           12 * time.Hour,
		AllowCredentials: false,
	}))
	r.Use(middleware.RequestIDMiddleware())

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Cfg.App.Version, dep.Firebase.Firestore, dep.Redis)
	healthHandler.RegisterRoutes(r)

	userRepo := users.NewRepo(dep.Firebase.Firestore)
	saleRepo := sales.NewRepo(dep.Firebase.Firestore)
	chatRepo := chat.NewRepo(dep.Firebase.Firestore)
	scriptRepo := scripts.NewRepo(dep.Firebase.Firestore)
	fileStore := files.NewStore(dep.Firebase.Bucket)
	notifier := notify.New(dep.Redis)

	adminStore := admin.NewFirestoreStore(dep.Firebase.Firestore, userRepo, saleRepo, chatRepo)
	adminService := admin.NewService(adminStore, admin.NewFirebaseAuthAdmin(dep.Firebase.Auth), fileStore)
	limiters := admin.NewLimiterStore(dep.Cfg.App.AdminRatePerMinute, dep.Cfg.App.AdminRateBurst, 5*time.Minute)

	api := r.Group("/api/v1")
	api.Use(auth.FirebaseAuthMiddleware(dep.Firebase.Auth))

	users.Register(api, userRepo)
	sales.Register(api, saleRepo, userRepo)
	reporting.Register(api, userRepo, saleRepo)
	chat.Register(api, chatRepo, userRepo, notifier)
	files.Register(api, fileStore)
	scripts.Register(api, scriptRepo)
	admin.Register(api, adminService, limiters)

	return &App{
		Router:  r,
		Admin:   adminService,
		Sweeper: admin.NewSweeper(adminService, dep.Cfg.App.SweeperSchedule),
	}
}
