// Package dependency provides dependency injection for the application.
package dependency

import (
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/ops-tracker/backend/config"
	"github.com/ops-tracker/backend/internal/application/usecase/auth"
	"github.com/ops-tracker/backend/internal/application/usecase/record"
	"github.com/ops-tracker/backend/internal/application/usecase/report"
	"github.com/ops-tracker/backend/internal/infra/server/router"
	"github.com/ops-tracker/backend/internal/integration/adapters"
	"github.com/ops-tracker/backend/internal/integration/entrypoint/controller"
	"github.com/ops-tracker/backend/internal/integration/entrypoint/middleware"
	"github.com/ops-tracker/backend/internal/integration/export"
	"github.com/ops-tracker/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	DB     *gorm.DB
	Router *router.Router
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *Injector {
	// Repositories
	userRepo := persistence.NewUserRepository(db)
	productRepo := persistence.NewProductRepository(db)
	expenseRepo := persistence.NewExpenseRepository(db)
	productionRepo := persistence.NewProductionRepository(db)
	saleRepo := persistence.NewSaleRepository(db)
	reportRepo := persistence.NewReportRepository(db)

	// Adapters/services
	passwordService := adapters.NewPasswordService()
	tokenStore := adapters.NewRedisTokenStore(redisClient)
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry, cfg.JWT.RefreshTokenExpiry, tokenStore)
	rateLimiter := adapters.NewRedisRateLimiter(redisClient)

	// Auth use cases
	registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService)
	loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService, rateLimiter)
	refreshTokenUseCase := auth.NewRefreshTokenUseCase(tokenService)
	logoutUseCase := auth.NewLogoutUserUseCase(tokenService)

	// Record use cases
	createProductUseCase := record.NewCreateProductUseCase(productRepo)
	listProductsUseCase := record.NewListProductsUseCase(productRepo)
	createExpenseUseCase := record.NewCreateExpenseUseCase(expenseRepo)
	listExpensesUseCase := record.NewListExpensesUseCase(expenseRepo)
	createProductionUseCase := record.NewCreateProductionUseCase(productionRepo, productRepo)
	listProductionUseCase := record.NewListProductionUseCase(productionRepo)
	createSaleUseCase := record.NewCreateSaleUseCase(saleRepo, productRepo)
	listSalesUseCase := record.NewListSalesUseCase(saleRepo)

	// Report use cases
	weeklyUseCase := report.NewGetWeeklyReportUseCase(reportRepo)
	dailyUseCase := report.NewGetDailyReportUseCase(reportRepo)
	monthlyUseCase := report.NewGetMonthlyReportUseCase(reportRepo)
	profitabilityUseCase := report.NewGetProductProfitabilityUseCase(reportRepo)
	mostProfitableUseCase := report.NewGetMostProfitableUseCase(reportRepo)
	trendUseCase := report.NewGetDailyTrendUseCase(reportRepo)
	detailedUseCase := report.NewGetDetailedReportUseCase(reportRepo)

	// Controllers
	healthController := controller.NewHealthController(func() bool {
		sqlDB, err := db.DB()
		if err != nil {
			return false
		}
		return sqlDB.Ping() == nil
	})

	authController := controller.NewAuthController(
		registerUseCase,
		loginUseCase,
		refreshTokenUseCase,
		logoutUseCase,
	)

	productController := controller.NewProductController(createProductUseCase, listProductsUseCase)
	expenseController := controller.NewExpenseController(createExpenseUseCase, listExpensesUseCase)
	productionController := controller.NewProductionController(createProductionUseCase, listProductionUseCase)
	saleController := controller.NewSaleController(createSaleUseCase, listSalesUseCase)

	reportController := controller.NewReportController(
		weeklyUseCase,
		dailyUseCase,
		monthlyUseCase,
		profitabilityUseCase,
		mostProfitableUseCase,
		trendUseCase,
		detailedUseCase,
		export.NewExcelExporter(),
	)

	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	r := router.NewRouter(
		healthController,
		authController,
		productController,
		expenseController,
		productionController,
		saleController,
		reportController,
		authMiddleware,
	)

	return &Injector{
		Config: cfg,
		DB:     db,
		Router: r,
	}
}
