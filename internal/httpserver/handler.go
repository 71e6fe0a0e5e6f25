package httpserver

import (
	"context"
	"time"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	accountHTTP "insight-srv/internal/account/delivery/http"
	accountPostgre "insight-srv/internal/account/repository/postgre"
	accountUsecase "insight-srv/internal/account/usecase"
	comparisonHTTP "insight-srv/internal/comparison/delivery/http"
	comparisonUsecase "insight-srv/internal/comparison/usecase"
	exportHTTP "insight-srv/internal/export/delivery/http"
	exportPostgre "insight-srv/internal/export/repository/postgre"
	exportUsecase "insight-srv/internal/export/usecase"
	insightsHTTP "insight-srv/internal/insights/delivery/http"
	insightsProducer "insight-srv/internal/insights/delivery/kafka/producer"
	insightsPostgre "insight-srv/internal/insights/repository/postgre"
	insightsRedis "insight-srv/internal/insights/repository/redis"
	insightsUsecase "insight-srv/internal/insights/usecase"
	"insight-srv/internal/middleware"
)

func (srv *HTTPServer) mapHandlers() error {
	mw := middleware.New(srv.l, srv.jwtManager, srv.cookieConfig, srv.config.InternalConfig.InternalKey, srv.config, srv.encrypter)

	srv.registerMiddlewares(mw)
	srv.registerSystemRoutes()

	ctx := context.Background()
	root := srv.gin.Group("")

	// Account domain
	accountRepo := accountPostgre.New(srv.postgresDB, srv.l)
	accountUC := accountUsecase.New(accountRepo, srv.graphClient, srv.encrypter, srv.l)
	accountHandler := accountHTTP.New(srv.l, accountUC, srv.discord)
	accountHandler.RegisterRoutes(root, mw)
	srv.l.Infof(ctx, "Account domain registered")

	// Insights domain
	insightsRepo := insightsPostgre.New(srv.postgresDB, srv.l)
	cacheRepo := insightsRedis.New(srv.redisClient, srv.l, insightsRedis.Config{
		DashboardTTL: time.Duration(srv.config.Insights.DashboardTTL) * time.Second,
		MediaTTL:     time.Duration(srv.config.Insights.MediaTTL) * time.Second,
	})
	publisher := insightsProducer.New(srv.l, srv.syncRequestProducer, srv.syncCompletedProducer)
	insightsUC := insightsUsecase.New(
		insightsRepo,
		cacheRepo,
		accountUC,
		srv.graphClient,
		publisher,
		srv.l,
		srv.insightsUsecaseConfig(),
	)
	insightsHandler := insightsHTTP.New(srv.l, insightsUC, srv.discord)
	insightsHandler.RegisterRoutes(root, mw)
	srv.l.Infof(ctx, "Insights domain registered")

	// Comparison domain
	comparisonUC := comparisonUsecase.New(insightsRepo, accountUC, srv.l)
	comparisonHandler := comparisonHTTP.New(srv.l, comparisonUC, srv.discord)
	comparisonHandler.RegisterRoutes(root, mw)
	srv.l.Infof(ctx, "Comparison domain registered")

	// Export domain
	exportRepo := exportPostgre.New(srv.postgresDB, srv.l)
	exportUC := exportUsecase.New(exportRepo, insightsRepo, accountUC, srv.minioClient, srv.l, exportUsecase.Config{
		Bucket: srv.config.MinIO.Bucket,
	})
	exportHandler := exportHTTP.New(srv.l, exportUC, srv.discord)
	exportHandler.RegisterRoutes(root, mw)
	srv.l.Infof(ctx, "Export domain registered")

	return nil
}

func (srv *HTTPServer) insightsUsecaseConfig() insightsUsecase.Config {
	cfg := insightsUsecase.DefaultConfig()

	ins := srv.config.Insights
	if ins.LikeWeight > 0 || ins.CommentWeight > 0 || ins.SaveWeight > 0 || ins.ShareWeight > 0 {
		cfg.Weights.Like = ins.LikeWeight
		cfg.Weights.Comment = ins.CommentWeight
		cfg.Weights.Save = ins.SaveWeight
		cfg.Weights.Share = ins.ShareWeight
	}
	if ins.MediaLimit > 0 {
		cfg.MediaLimit = ins.MediaLimit
	}
	if ins.MaxConcurrency > 0 {
		cfg.MaxConcurrency = ins.MaxConcurrency
	}
	if ins.DashboardTTL > 0 {
		cfg.DashboardTTL = time.Duration(ins.DashboardTTL) * time.Second
	}
	if ins.MediaTTL > 0 {
		cfg.MediaTTL = time.Duration(ins.MediaTTL) * time.Second
	}
	return cfg
}

func (srv *HTTPServer) registerMiddlewares(mw middleware.Middleware) {
	srv.gin.Use(middleware.Recovery(srv.l, srv.discord))
	srv.gin.Use(middleware.CORS(middleware.DefaultCORSConfig()))
	srv.gin.Use(mw.Locale())
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	// Swagger UI and docs
	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}
