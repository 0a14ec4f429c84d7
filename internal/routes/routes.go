package routes

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/laundry-marketplace/internal/audit"
	"github.com/BruksfildServices01/laundry-marketplace/internal/auth"
	"github.com/BruksfildServices01/laundry-marketplace/internal/cache"
	"github.com/BruksfildServices01/laundry-marketplace/internal/config"
	"github.com/BruksfildServices01/laundry-marketplace/internal/handlers"
	"github.com/BruksfildServices01/laundry-marketplace/internal/httperr"
	infraRepo "github.com/BruksfildServices01/laundry-marketplace/internal/infra/repository"
	"github.com/BruksfildServices01/laundry-marketplace/internal/metrics"
	"github.com/BruksfildServices01/laundry-marketplace/internal/middleware"
	"github.com/BruksfildServices01/laundry-marketplace/internal/models"
	"github.com/BruksfildServices01/laundry-marketplace/internal/storage"
	ucChat "github.com/BruksfildServices01/laundry-marketplace/internal/usecase/chat"
	ucOrder "github.com/BruksfildServices01/laundry-marketplace/internal/usecase/order"
	"github.com/BruksfildServices01/laundry-marketplace/internal/validators"
)

// Deps are the process-wide singletons built by main.
type Deps struct {
	DB     *gorm.DB
	Config *config.Config
	Log    *zap.Logger
	Audit  *audit.Dispatcher
	Cache  cache.MerchantCache
	// Images is nil when object storage is not configured; the upload
	// route is then not registered.
	Images      storage.ImageStore
	Emails      validators.DomainChecker
	AuthLimiter *middleware.RateLimiter
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	cfg := d.Config
	db := d.DB

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(
		middleware.RequestLogger(d.Log),
		middleware.Recover(d.Log),
		middleware.Metrics(),
		middleware.CORSMiddleware(cfg.CORSOrigins),
		middleware.Timeout(cfg.RequestTimeout),
	)

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	issuer := auth.NewTokenIssuer(cfg.JWTSecret, cfg.TokenTTL)
	orderRepo := infraRepo.NewOrderGormRepository(db)
	chatRepo := infraRepo.NewChatGormRepository(db)

	authLimiter := d.AuthLimiter
	if authLimiter == nil {
		authLimiter = middleware.NewRateLimiter(cfg.AuthRateLimit, cfg.AuthRateBurst)
	}

	// ======================================================
	// 🧠 USE CASES
	// ======================================================
	createOrderUC := ucOrder.NewCreateOrder(orderRepo, d.Audit)
	listOrdersUC := ucOrder.NewListOrders(orderRepo)
	getOrderUC := ucOrder.NewGetOrder(orderRepo)
	updateOrderStatusUC := ucOrder.NewUpdateOrderStatus(orderRepo, d.Audit)

	roomUC := ucChat.NewGetOrCreateRoom(chatRepo)
	supportRoomUC := ucChat.NewGetOrCreateSupportRoom(chatRepo)
	listRoomsUC := ucChat.NewListRooms(chatRepo)
	listMessagesUC := ucChat.NewListMessages(chatRepo)
	postMessageUC := ucChat.NewPostMessage(chatRepo)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, issuer, d.Emails)
	meHandler := handlers.NewMeHandler(db)
	merchantHandler := handlers.NewMerchantHandler(db, d.Cache, d.Images, d.Audit)
	serviceHandler := handlers.NewServiceHandler(db, d.Audit)

	orderHandler := handlers.NewOrderHandler(
		createOrderUC,
		listOrdersUC,
		getOrderUC,
		updateOrderStatusUC,
	)

	chatHandler := handlers.NewChatHandler(
		roomUC,
		supportRoomUC,
		listRoomsUC,
		listMessagesUC,
		postMessageUC,
	)

	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	authenticated := middleware.AuthMiddleware(issuer, db)
	merchantOrAdmin := middleware.RequireRoles(models.RoleMerchant, models.RoleAdmin)
	userOrAdmin := middleware.RequireRoles(models.RoleUser, models.RoleAdmin)
	adminOnly := middleware.RequireRoles(models.RoleAdmin)

	// ======================================================
	// 🩺 PROBES
	// ======================================================
	health := func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": true}) }
	r.GET("/", health)
	r.GET("/health", health)
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	// ======================================================
	// 🔐 AUTH
	// ======================================================
	authGroup := r.Group("/auth", authLimiter.Handler())
	{
		authGroup.POST("/register", authHandler.Register)
		authGroup.POST("/login", authHandler.Login)
	}

	// ======================================================
	// 👤 USERS
	// ======================================================
	users := r.Group("/users", authenticated)
	{
		users.GET("/me", meHandler.GetMe)
		users.POST("/me/addresses", meHandler.AddAddress)
	}

	// ======================================================
	// 🏪 CATALOG
	// ======================================================
	merchants := r.Group("/merchants")
	{
		merchants.GET("", merchantHandler.List)
		merchants.GET("/my", authenticated, merchantOrAdmin, merchantHandler.ListMine)
		merchants.GET("/:id", merchantHandler.Get)
		merchants.PUT("/:id", authenticated, merchantOrAdmin, merchantHandler.Update)

		if d.Images != nil {
			merchants.PUT("/:id/image", authenticated, merchantOrAdmin, merchantHandler.UploadImage)
		}
	}

	services := r.Group("/services")
	{
		services.GET("", serviceHandler.List)
		services.GET("/merchant/:id", serviceHandler.ListByMerchant)
		services.POST("/merchant/:id", authenticated, merchantOrAdmin, serviceHandler.Create)
		services.PATCH("/:id", authenticated, merchantOrAdmin, serviceHandler.Update)
	}

	// ======================================================
	// 🧺 ORDERS
	// ======================================================
	orders := r.Group("/orders", authenticated)
	{
		orders.POST("", userOrAdmin, orderHandler.Create)
		orders.GET("", userOrAdmin, orderHandler.ListMine())
		orders.GET("/merchant", merchantOrAdmin, orderHandler.ListForMerchant())
		orders.GET("/admin", adminOnly, orderHandler.ListAll())
		orders.GET("/:id", orderHandler.Get)
		orders.PATCH("/:id/status", merchantOrAdmin, orderHandler.UpdateStatus)
	}

	// ======================================================
	// 💬 CHAT
	// ======================================================
	chat := r.Group("/chat", authenticated)
	{
		chat.POST("/rooms", userOrAdmin, chatHandler.CreateRoom)
		chat.POST("/support", userOrAdmin, chatHandler.SupportRoom)
		chat.GET("/rooms", chatHandler.ListRooms)
		chat.GET("/rooms/:id/messages", chatHandler.ListMessages)
		chat.POST("/rooms/:id/messages", chatHandler.PostMessage)
	}

	// ======================================================
	// 🛠️ ADMIN
	// ======================================================
	admin := r.Group("/admin", authenticated, adminOnly)
	{
		admin.GET("/audit-logs", auditLogsHandler.List)
	}

	// The admin console shares the /admin prefix with the API above, and a
	// catch-all route cannot coexist with it, so files are served from the
	// NoRoute fallback.
	r.NoRoute(adminStatic(cfg.AdminDir))
}

func adminStatic(dir string) gin.HandlerFunc {
	files := http.StripPrefix("/admin", http.FileServer(gin.Dir(dir, false)))

	return func(c *gin.Context) {
		path := c.Request.URL.Path
		isRead := c.Request.Method == http.MethodGet || c.Request.Method == http.MethodHead

		if dir != "" && isRead && (path == "/admin" || strings.HasPrefix(path, "/admin/")) {
			files.ServeHTTP(c.Writer, c.Request)
			return
		}

		httperr.NotFound(c, "route_not_found", "Route not found.")
	}
}
