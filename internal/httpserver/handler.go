package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	assistantHTTP "butler-assistant/internal/assistant/delivery/http"
)

func (srv HTTPServer) mapHandlers() {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()
	srv.registerDomainRoutes()
}

func (srv HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery())
	srv.gin.Use(srv.mw.Metrics())

	srv.l.Infof(context.Background(), "HTTP server mode: %s (environment %s)", srv.mode, srv.environment)
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	gatherer := srv.gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	srv.gin.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

func (srv HTTPServer) registerDomainRoutes() {
	ctx := context.Background()

	assistantHTTP.RegisterRoutes(srv.gin.Group("/api/v1"), srv.assistantHandler, srv.mw)

	if srv.telegramHandler != nil {
		srv.gin.POST("/webhook/telegram", srv.mw.TelegramSecret(), srv.telegramHandler.HandleWebhook)
		srv.l.Infof(ctx, "Telegram webhook route registered at POST /webhook/telegram")
	} else {
		srv.l.Infof(ctx, "Telegram handler not configured, skipping webhook route")
	}
}
