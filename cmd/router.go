package cmd

import (
	"github.com/ariebrainware/healthghar/config"
	_ "github.com/ariebrainware/healthghar/docs"
	"github.com/ariebrainware/healthghar/endpoint"
	"github.com/ariebrainware/healthghar/metrics"
	"github.com/ariebrainware/healthghar/middleware"
	"github.com/ariebrainware/healthghar/model"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// NewRouter mounts every route over svc.
func NewRouter(svc *middleware.Services, cfg *config.Config) *gin.Engine {
	endpoint.RegisterValidators()

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.Metrics())
	router.Use(middleware.ServicesMiddleware(svc))
	router.Use(middleware.ResolveIdentity())
	router.Use(middleware.EndpointCallLogger())

	router.GET("/", endpoint.Index)
	router.GET("/healthz", endpoint.Healthz)
	router.GET("/metrics", gin.WrapH(metrics.Handler()))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	limited := middleware.RateLimiter(middleware.RateLimitConfig{Limit: cfg.RateLimit, Window: cfg.RateWindow})
	router.POST("/signup", limited, endpoint.Signup)
	router.POST("/login", limited, endpoint.Login)
	router.DELETE("/logout", endpoint.Logout)

	router.GET("/taxonomy", endpoint.GetTaxonomy)
	router.GET("/doctors", endpoint.ListDoctors)
	router.GET("/doctors/:id", endpoint.GetDoctor)
	router.GET("/doctors/:id/slots", endpoint.ListDoctorSlots)
	router.GET("/camps", endpoint.ListCamps)
	router.GET("/packages", endpoint.ListPackages)

	router.GET("/profile", endpoint.GetProfile)
	router.PATCH("/profile", endpoint.UpdateProfile)

	doctor := router.Group("/doctor")
	{
		doctor.GET("/slots", endpoint.ListMySlots)
		doctor.POST("/slots", endpoint.AddSlot)
		doctor.PATCH("/slots/:id", endpoint.UpdateSlot)
		doctor.DELETE("/slots/:id", endpoint.DeleteSlot)
	}

	bookings := router.Group("/bookings")
	{
		bookings.GET("", endpoint.MyBookings)
		bookings.POST("/telehealth", limited, endpoint.BookTelehealth)
		bookings.POST("/home-checkup", limited, endpoint.BookHomeCheckup)
		bookings.POST("/camp", limited, endpoint.BookCamp)
	}
	router.GET("/reports", endpoint.MyReports)

	wiz := router.Group("/wizard")
	{
		wiz.POST("", endpoint.StartWizard)
		wiz.GET("/:id", endpoint.GetWizard)
		wiz.POST("/:id/events", endpoint.WizardEvent)
	}

	adm := router.Group("/admin", middleware.RequireRole(model.RoleAdmin))
	{
		adm.GET("/doctors", endpoint.AdminListDoctors)
		adm.POST("/doctors", endpoint.AdminCreateDoctor)
		adm.PATCH("/doctors/:id", endpoint.AdminUpdateDoctor)
		adm.DELETE("/doctors/:id", endpoint.AdminDeleteDoctor)
		adm.GET("/doctors/:id/slots", endpoint.AdminListSlots)
		adm.POST("/doctors/:id/slots", endpoint.AdminAddSlot)
		adm.PATCH("/slots/:id", endpoint.AdminUpdateSlot)
		adm.DELETE("/slots/:id", endpoint.AdminDeleteSlot)
		adm.GET("/camp-bookings", endpoint.AdminCampBookings)
		adm.GET("/reports", endpoint.AdminListReports)
		adm.PUT("/reports", endpoint.AdminIssueReport)
		adm.GET("/reports/:bookingId", endpoint.AdminGetReport)
	}

	return router
}
