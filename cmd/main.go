package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"furima_dev_v1_202608/internal/controller"
	"furima_dev_v1_202608/internal/model"
	"furima_dev_v1_202608/internal/repository"
	"furima_dev_v1_202608/internal/router"
	"furima_dev_v1_202608/internal/service"
	"furima_dev_v1_202608/internal/task"
	"furima_dev_v1_202608/pkg/database"
)

func main() {
	// 1. 环境与日志
	_ = godotenv.Load()
	logger := initLogger()
	defer func() { _ = logger.Sync() }()

	// 2. 初始化数据库
	db := initDatabase()

	// 3. 初始化依赖
	deps := initDependencies(db)

	// 4. 启动定时任务
	initTasks(deps)

	// 5. 初始化路由
	r := router.SetupRouter(deps.Controllers, logger)

	// 6. 启动服务
	startServer(r)
}

// ==================== 依赖容器 ====================

// Dependencies 依赖容器
type Dependencies struct {
	DB          *gorm.DB
	Repos       *Repositories
	Services    *Services
	Controllers *router.Controllers
}

// Repositories 仓库集合
type Repositories struct {
	Item     repository.ItemRepository
	User     repository.UserRepository
	Category repository.CategoryRepository
	Evidence repository.TransactionEvidenceRepository
	Shipping repository.ShippingRepository
	Config   repository.ConfigRepository
}

// Services 服务集合
type Services struct {
	System      *service.SystemService
	User        *service.UserService
	Category    *service.CategoryService
	Shipment    *service.ShipmentService
	Item        *service.ItemService
	Transaction *service.TransactionService
}

// ==================== 初始化函数 ====================

// initLogger 初始化 zap，并注册为全局 logger
func initLogger() *zap.Logger {
	var logger *zap.Logger
	var err error
	if getEnv("APP_ENV", "dev") == "prod" {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		log.Fatalf("日志初始化失败: %v", err)
	}
	zap.ReplaceGlobals(logger)
	return logger
}

// initDatabase 初始化数据库
func initDatabase() *gorm.DB {
	dsn := getEnv("DATABASE_DSN",
		"host=localhost user=furima password=furima dbname=furima port=5432 sslmode=disable")
	return database.InitDB(dsn,
		&model.User{},
		&model.Category{},
		&model.Item{},
		&model.TransactionEvidence{},
		&model.Shipping{},
		&model.Config{},
	)
}

// initDependencies 初始化所有依赖
func initDependencies(db *gorm.DB) *Dependencies {
	// -------- Repo 层 --------
	repos := &Repositories{
		Item:     repository.NewItemRepository(db),
		User:     repository.NewUserRepository(db),
		Category: repository.NewCategoryRepository(db),
		Evidence: repository.NewTransactionEvidenceRepository(db),
		Shipping: repository.NewShippingRepository(db),
		Config:   repository.NewConfigRepository(db),
	}

	// -------- Service 层 --------
	services := &Services{
		System:   service.NewSystemService(repos.Config),
		User:     service.NewUserService(repos.User),
		Category: service.NewCategoryService(repos.Category),
		Shipment: service.NewShipmentService(repos.Config),
	}
	services.Item = service.NewItemService(repos.Item, services.User, services.Category)
	services.Transaction = service.NewTransactionService(
		db,
		repos.Item, repos.Evidence, repos.Shipping,
		services.User, services.Category, services.Shipment,
	)

	// -------- Controller 层 --------
	controllers := &router.Controllers{
		System:      controller.NewSystemController(services.System),
		Item:        controller.NewItemController(services.Item, services.Transaction),
		Transaction: controller.NewTransactionController(services.Transaction, services.User),
	}

	return &Dependencies{
		DB:          db,
		Repos:       repos,
		Services:    services,
		Controllers: controllers,
	}
}

// initTasks 初始化定时任务
func initTasks(deps *Dependencies) {
	if getEnv("SHIPPING_SYNC_ENABLED", "true") != "true" {
		return
	}
	shippingTask := task.NewShippingStatusSyncTask(deps.Repos.Shipping, deps.Services.Shipment)
	shippingTask.Start()
}

// ==================== 服务启动 ====================

// startServer 启动服务
func startServer(r *gin.Engine) {
	port := getEnv("SERVER_PORT", "8000")

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}

	// 异步启动服务
	go func() {
		log.Printf("服务启动在 :%s", port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("服务启动失败: %v", err)
		}
	}()

	// 等待退出信号
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("正在关闭服务...")

	// 优雅关闭，最多等待 30 秒
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("服务强制关闭: %v", err)
	}

	log.Println("服务已退出")
}

// ==================== 工具函数 ====================

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
