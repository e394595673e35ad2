package api

import (
	"github.com/gin-gonic/gin"
	v1 "github.com/smsdesk/smsdesk/internal/api/v1"
	"github.com/smsdesk/smsdesk/internal/auth"
	"github.com/smsdesk/smsdesk/internal/cache"
	"github.com/smsdesk/smsdesk/internal/config"
	"github.com/smsdesk/smsdesk/internal/domain/user"
	"github.com/smsdesk/smsdesk/internal/logger"
	"github.com/smsdesk/smsdesk/internal/rest/middleware"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type Handlers struct {
	Health       *v1.HealthHandler
	Auth         *v1.AuthHandler
	Contact      *v1.ContactHandler
	ScheduledSMS *v1.ScheduledSMSHandler
}

// RouterParams are the collaborators the middleware chain needs
type RouterParams struct {
	Config    *config.Configuration
	Logger    *logger.Logger
	Auth      auth.Provider
	UserRepo  user.Repository
	UserCache *cache.InMemoryCache
}

func NewRouter(handlers Handlers, params RouterParams) *gin.Engine {
	router := gin.Default()
	router.Use(
		middleware.RequestIDMiddleware,
		middleware.CORSMiddleware,
		middleware.SentryMiddleware(params.Config),
		middleware.ErrorHandler(params.Logger),
	)

	router.GET("/health", handlers.Health.Health)

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// v1 routes
	v1Group := router.Group("/v1")
	v1Group.Use(middleware.RateLimitMiddleware(params.Config))
	registerV1Routes(v1Group, handlers, params)

	return router
}

func registerV1Routes(router *gin.RouterGroup, handlers Handlers, params RouterParams) {
	// Public routes
	public := router.Group("/auth")
	{
		public.POST("/login", handlers.Auth.Login)
	}

	private := router.Group("")
	private.Use(middleware.AuthenticateMiddleware(params.Auth, params.UserRepo, params.UserCache, params.Logger))

	groupContacts := private.Group("/groups/:group/contacts")
	{
		groupContacts.GET("", handlers.Contact.ListContacts)
		groupContacts.GET("/create", handlers.Contact.CreateForm)
		groupContacts.POST("", handlers.Contact.CreateContact)
		groupContacts.GET("/:contact/edit", handlers.Contact.EditForm)
		groupContacts.PUT("/:contact", handlers.Contact.UpdateContact)
		groupContacts.PATCH("/:contact", handlers.Contact.UpdateContact)
		groupContacts.DELETE("/:contact", handlers.Contact.DeleteContact)
	}

	contacts := private.Group("/contacts")
	{
		contacts.POST("/bulk-delete", handlers.Contact.BulkDeleteContacts)
		contacts.DELETE("/bulk-delete", handlers.Contact.BulkDeleteContacts)
		contacts.GET("/sample", handlers.Contact.DownloadSample)
	}

	scheduledSMS := private.Group("/scheduled-sms")
	{
		scheduledSMS.GET("", handlers.ScheduledSMS.ListScheduledSMS)
		scheduledSMS.GET("/:id", handlers.ScheduledSMS.GetScheduledSMS)
	}
}
