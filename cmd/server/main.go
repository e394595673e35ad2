package main

import (
	"context"
	"net/http"
	"time"

	"github.com/aws/aws-lambda-go/lambda"
	ginadapter "github.com/awslabs/aws-lambda-go-api-proxy/gin"
	"github.com/gin-gonic/gin"
	_ "github.com/smsdesk/smsdesk/docs/swagger"
	"github.com/smsdesk/smsdesk/internal/api"
	v1 "github.com/smsdesk/smsdesk/internal/api/v1"
	"github.com/smsdesk/smsdesk/internal/auth"
	"github.com/smsdesk/smsdesk/internal/cache"
	"github.com/smsdesk/smsdesk/internal/config"
	"github.com/smsdesk/smsdesk/internal/domain/user"
	"github.com/smsdesk/smsdesk/internal/logger"
	"github.com/smsdesk/smsdesk/internal/phone"
	"github.com/smsdesk/smsdesk/internal/postgres"
	"github.com/smsdesk/smsdesk/internal/rbac"
	"github.com/smsdesk/smsdesk/internal/repository"
	"github.com/smsdesk/smsdesk/internal/sentry"
	"github.com/smsdesk/smsdesk/internal/service"
	"github.com/smsdesk/smsdesk/internal/types"
	"github.com/smsdesk/smsdesk/internal/validator"
	"go.uber.org/fx"
)

// @title smsdesk API
// @version 1.0
// @description Contact management and scheduled SMS viewing
// @BasePath /v1
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Enter the token in the format *Bearer &lt;token&gt;*

func init() {
	// Set UTC timezone for the entire application
	time.Local = time.UTC
}

func main() {
	var opts []fx.Option

	// Core dependencies
	opts = append(opts,
		fx.Provide(
			// Validator
			validator.NewValidator,

			// Config
			config.NewConfig,

			// Logger
			logger.NewLogger,

			// Cache
			cache.NewInMemoryCache,

			// Domain helpers
			phone.NewNormalizer,
			rbac.NewRBACService,
			auth.NewProvider,

			// Repositories
			repository.NewContactRepository,
			repository.NewGroupRepository,
			repository.NewUserRepository,
			repository.NewScheduledSMSRepository,
		),
		// Monitoring
		sentry.Module(),

		// Postgres
		postgres.Module(),
	)

	// Service layer
	opts = append(opts,
		fx.Provide(
			service.NewServiceParams,

			service.NewAuthService,
			service.NewContactService,
			service.NewScheduledSMSService,
		),
	)

	// API
	opts = append(opts,
		fx.Provide(
			provideHandlers,
			provideRouter,
		),
		fx.Invoke(
			startServer,
		),
	)

	app := fx.New(opts...)
	app.Run()
}

func provideHandlers(
	logger *logger.Logger,
	authService service.AuthService,
	contactService service.ContactService,
	scheduledSMSService service.ScheduledSMSService,
) api.Handlers {
	return api.Handlers{
		Health:       v1.NewHealthHandler(logger),
		Auth:         v1.NewAuthHandler(authService, logger),
		Contact:      v1.NewContactHandler(contactService, logger),
		ScheduledSMS: v1.NewScheduledSMSHandler(scheduledSMSService, logger),
	}
}

func provideRouter(
	handlers api.Handlers,
	cfg *config.Configuration,
	logger *logger.Logger,
	authProvider auth.Provider,
	userRepo user.Repository,
	userCache *cache.InMemoryCache,
) *gin.Engine {
	return api.NewRouter(handlers, api.RouterParams{
		Config:    cfg,
		Logger:    logger,
		Auth:      authProvider,
		UserRepo:  userRepo,
		UserCache: userCache,
	})
}

func startServer(
	lc fx.Lifecycle,
	cfg *config.Configuration,
	r *gin.Engine,
	log *logger.Logger,
) {
	mode := cfg.Deployment.Mode
	if mode == "" {
		mode = types.ModeLocal
	}

	switch mode {
	case types.ModeLocal:
		startAPIServer(lc, r, cfg, log)
	case types.ModeAWSLambdaAPI:
		startAWSLambdaAPI(r)
	default:
		log.Fatalf("Unknown deployment mode: %s", mode)
	}
}

func startAPIServer(
	lc fx.Lifecycle,
	r *gin.Engine,
	cfg *config.Configuration,
	log *logger.Logger,
) {
	srv := &http.Server{
		Addr:    cfg.Server.Address,
		Handler: r,
	}

	log.Info("Registering API server start hook")
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Infow("Starting API server...", "address", cfg.Server.Address)
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("Shutting down server...")
			return srv.Shutdown(ctx)
		},
	})
}

func startAWSLambdaAPI(r *gin.Engine) {
	ginLambda := ginadapter.New(r)
	lambda.Start(ginLambda.ProxyWithContext)
}
