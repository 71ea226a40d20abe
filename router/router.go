package router

import (
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"ledger/api"
	"ledger/config"
	_ "ledger/docs"
	"ledger/middleware"
)

// SetupRouter 设置路由
func SetupRouter(cfg *config.Config) *gin.Engine {
	// 设置运行模式
	gin.SetMode(cfg.Server.Mode)

	r := gin.Default()

	// CORS 中间件
	r.Use(CORSMiddleware())

	// 写操作限流：每 IP 每分钟 120 次
	writeLimit := middleware.WriteRateLimit(120, time.Minute)

	apiGroup := r.Group("/api")
	{
		// 分类
		categoryHandler := api.NewCategoryHandler()
		apiGroup.GET("/categories", categoryHandler.List)
		apiGroup.POST("/categories", writeLimit, categoryHandler.Create)
		apiGroup.PUT("/categories/:id", writeLimit, categoryHandler.Update)
		apiGroup.DELETE("/categories/:id", writeLimit, categoryHandler.Delete)

		// 账户（列表附带推导余额）
		accountHandler := api.NewAccountHandler()
		apiGroup.GET("/accounts", accountHandler.List)
		apiGroup.POST("/accounts", writeLimit, accountHandler.Create)
		apiGroup.PUT("/accounts/:id", writeLimit, accountHandler.Update)
		apiGroup.DELETE("/accounts/:id", writeLimit, accountHandler.Delete)

		// 交易
		transactionHandler := api.NewTransactionHandler()
		apiGroup.GET("/transactions", transactionHandler.List)
		apiGroup.POST("/transactions", writeLimit, transactionHandler.Create)
		apiGroup.POST("/transactions/reorder", writeLimit, transactionHandler.Reorder)
		apiGroup.GET("/transactions/:id", transactionHandler.Get)
		apiGroup.PUT("/transactions/:id", writeLimit, transactionHandler.Update)
		apiGroup.DELETE("/transactions/:id", writeLimit, transactionHandler.Delete)

		// 导出
		exportHandler := api.NewExportHandler()
		apiGroup.GET("/export/csv", exportHandler.ExportCSV)
		apiGroup.GET("/export/excel", exportHandler.ExportExcel)
	}

	// Swagger 文档
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	})

	return r
}

// CORSMiddleware CORS 跨域中间件
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
