package api

import (
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/AkifKA/stock-app-api/docs"
	v1 "github.com/AkifKA/stock-app-api/internal/api/handler/v1"
	"github.com/AkifKA/stock-app-api/internal/api/middleware"
	"github.com/AkifKA/stock-app-api/internal/config"
	"github.com/AkifKA/stock-app-api/internal/repository"
	"github.com/AkifKA/stock-app-api/internal/repository/dao"
	"github.com/AkifKA/stock-app-api/internal/service"
)

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine
}

type handlers struct {
	auth      *v1.AuthHandler
	user      *v1.UserHandler
	category  *v1.CategoryHandler
	brand     *v1.BrandHandler
	product   *v1.ProductHandler
	firm      *v1.FirmHandler
	purchase  *v1.PurchaseHandler
	sale      *v1.SaleHandler
	report    *v1.ReportHandler
	stockFeed *v1.StockFeedHandler
}

// NewServer wires every layer on top of db. events receives a stock event
// after each committed posting and feed serves the live websocket stream.
func NewServer(conf *config.AppConfig, db *gorm.DB, events service.StockEventPublisher, feed v1.StockFeed) *Server {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config: conf,
		Router: engine,
	}

	s.MountMiddlewares()

	h := handlers{
		auth: s.initAuthHandler(db),
		user: s.initUserHandler(db),
	}
	s.initStockHandlers(db, events, feed, &h)
	s.MountHandlers(h)

	return s
}

func (s *Server) initAuthHandler(db *gorm.DB) *v1.AuthHandler {
	userDAO := dao.NewUserDAO(db)
	repo := repository.NewUserRepository(userDAO)
	svc := service.NewAuthService(repo)
	handler := v1.NewAuthHandler(s.Config.API, svc)

	return handler
}

func (s *Server) initUserHandler(db *gorm.DB) *v1.UserHandler {
	userDAO := dao.NewUserDAO(db)
	repo := repository.NewUserRepository(userDAO)
	svc := service.NewUserService(repo)
	handler := v1.NewUserHandler(svc)

	return handler
}

func (s *Server) initStockHandlers(db *gorm.DB, events service.StockEventPublisher, feed v1.StockFeed, h *handlers) {
	catalogRepo := repository.NewCatalogRepository(
		dao.NewCategoryDAO(db),
		dao.NewBrandDAO(db),
		dao.NewProductDAO(db),
		dao.NewFirmDAO(db),
	)
	postingRepo := repository.NewPostingRepository(
		dao.NewLedgerDAO(db),
		dao.NewPurchaseDAO(db),
		dao.NewSaleDAO(db),
	)
	viewRepo := repository.NewViewRepository(dao.NewViewDAO(db))
	tx := dao.NewTransactor(db)

	catalogSvc := service.NewCatalogService(catalogRepo)
	viewSvc := service.NewViewService(viewRepo, postingRepo, catalogRepo)
	purchaseSvc := service.NewPurchaseService(tx, catalogRepo, postingRepo, postingRepo, events)
	saleSvc := service.NewSaleService(tx, catalogRepo, postingRepo, postingRepo, events)
	reportSvc := service.NewReportService(catalogRepo)

	h.category = v1.NewCategoryHandler(catalogSvc, viewSvc)
	h.brand = v1.NewBrandHandler(catalogSvc, viewSvc)
	h.product = v1.NewProductHandler(catalogSvc, viewSvc)
	h.firm = v1.NewFirmHandler(catalogSvc)
	h.purchase = v1.NewPurchaseHandler(purchaseSvc, viewSvc)
	h.sale = v1.NewSaleHandler(saleSvc, viewSvc)
	h.report = v1.NewReportHandler(reportSvc)
	h.stockFeed = v1.NewStockFeedHandler(feed)
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
}

func (s *Server) MountHandlers(h handlers) {
	const basePath = "/api/v1"

	auth := s.Router.Group(basePath)
	{
		auth.POST("/auth/signup", h.auth.HandleSignup)
		auth.POST("/auth/login", h.auth.HandleLogin)
	}

	api := s.Router.Group(basePath, middleware.NewAuthenticator(s.Config.API.JWTSigningKey).VerifyJWT())
	{
		api.GET("/users/:userID", h.user.HandleGetUser)

		api.GET("/categories", h.category.HandleListCategories)
		api.POST("/categories", h.category.HandleCreateCategory)
		api.GET("/categories/:id", h.category.HandleGetCategory)
		api.PUT("/categories/:id", h.category.HandleUpdateCategory)
		api.DELETE("/categories/:id", h.category.HandleDeleteCategory)
		api.GET("/categories/:id/products", h.category.HandleGetCategoryProducts)

		api.GET("/brands", h.brand.HandleListBrands)
		api.POST("/brands", h.brand.HandleCreateBrand)
		api.GET("/brands/:id", h.brand.HandleGetBrand)
		api.PUT("/brands/:id", h.brand.HandleUpdateBrand)
		api.DELETE("/brands/:id", h.brand.HandleDeleteBrand)

		api.GET("/products", h.product.HandleListProducts)
		api.POST("/products", h.product.HandleCreateProduct)
		api.GET("/products/:id", h.product.HandleGetProduct)
		api.PUT("/products/:id", h.product.HandleUpdateProduct)
		api.DELETE("/products/:id", h.product.HandleDeleteProduct)
		api.GET("/products/:id/ledger", h.product.HandleGetProductLedger)

		api.GET("/firms", h.firm.HandleListFirms)
		api.POST("/firms", h.firm.HandleCreateFirm)
		api.GET("/firms/:id", h.firm.HandleGetFirm)
		api.PUT("/firms/:id", h.firm.HandleUpdateFirm)
		api.DELETE("/firms/:id", h.firm.HandleDeleteFirm)

		api.GET("/purchases", h.purchase.HandleListPurchases)
		api.POST("/purchases", h.purchase.HandleCreatePurchase)
		api.GET("/purchases/:id", h.purchase.HandleGetPurchase)

		api.GET("/sales", h.sale.HandleListSales)
		api.POST("/sales", h.sale.HandleCreateSale)
		api.GET("/sales/:id", h.sale.HandleGetSale)

		api.GET("/reports/stock", h.report.HandleStockReport)
		api.GET("/stock/live", h.stockFeed.HandleStockFeed)
	}

	s.Router.GET("/", v1.HandleHealthcheck)

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = basePath
	docs.SwaggerInfo.Title = "Stock App API"
	docs.SwaggerInfo.Description = "Inventory API for categories, brands, products, firms, purchases and sales."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
