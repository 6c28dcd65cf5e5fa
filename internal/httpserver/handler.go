package httpserver

import (
	"context"

	"proof-timeline/internal/model"
	recognitionHTTP "proof-timeline/internal/recognition/delivery/http"
	settlementHTTP "proof-timeline/internal/settlement/delivery/http"
	timelineHTTP "proof-timeline/internal/timeline/delivery/http"
	verificationHTTP "proof-timeline/internal/verification/delivery/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (srv HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()

	if err := srv.registerDomainRoutes(); err != nil {
		return err
	}

	return nil
}

func (srv HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Logger(), gin.Recovery(), srv.mw.CORS())

	ctx := context.Background()
	if srv.environment == string(model.EnvironmentProduction) {
		srv.l.Infof(ctx, "CORS mode: production")
	} else {
		srv.l.Infof(ctx, "CORS mode: %s", srv.environment)
	}
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes.
func (srv HTTPServer) registerDomainRoutes() error {
	ctx := context.Background()
	api := srv.gin.Group("/api/v1")

	if srv.recognitionHandler != nil {
		proxy := srv.gin.Group("", srv.mw.RateLimit())
		recognitionHTTP.RegisterRoutes(proxy, srv.recognitionHandler)
		srv.l.Infof(ctx, "Recognition proxy registered at /verify")
	} else {
		srv.l.Infof(ctx, "Recognition handler not configured, skipping /verify")
	}

	if srv.timelineHandler != nil {
		timelineHTTP.RegisterRoutes(api.Group("/timeline"), srv.timelineHandler)
		srv.l.Infof(ctx, "Timeline routes registered at /api/v1/timeline")
	}

	if srv.verificationHandler != nil {
		verificationHTTP.RegisterRoutes(api.Group("/verifications", srv.mw.RateLimit()), srv.verificationHandler)
		srv.l.Infof(ctx, "Verification routes registered at /api/v1/verifications")
	}

	if srv.settlementHandler != nil {
		settlementHTTP.RegisterRoutes(api.Group("/settlements"), srv.settlementHandler)
		srv.l.Infof(ctx, "Settlement routes registered at /api/v1/settlements")
	}

	return nil
}
