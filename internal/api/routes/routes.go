package routes

import (
	"studio-booking-backend/internal/api/handlers"
	"studio-booking-backend/internal/api/middleware"
	"studio-booking-backend/internal/auth"
	"studio-booking-backend/internal/config"
	"studio-booking-backend/internal/mailer"
	"studio-booking-backend/internal/repository"
	"studio-booking-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) (*gin.Engine, error) {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validator := validator.New()

	// Initialize repositories
	profileRepo := repository.NewProfileRepository(db)
	tenantRepo := repository.NewTenantRepository(db)
	roleRepo := repository.NewRoleRepository(db)
	membershipRepo := repository.NewMembershipRepository(db)
	invitationRepo := repository.NewInvitationRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	onboardingRepo := repository.NewOnboardingRepository(db)

	// Initialize auth primitives
	sessions, err := auth.NewSessionService(cfg.JWTSecret, cfg.AccessTokenTTL(), cfg.RefreshTokenTTL())
	if err != nil {
		return nil, err
	}
	otpStore := auth.NewOTPStore()
	googleClient := auth.NewGoogleClient(cfg.GoogleClientID, cfg.GoogleClientSecret, cfg.GoogleRedirectURL)
	mail := mailer.New(cfg)

	// Initialize services
	authService := service.NewAuthService(profileRepo, roleRepo, sessions, otpStore, googleClient, mail, validator)
	tenantService := service.NewTenantService(tenantRepo, profileRepo, roleRepo, onboardingRepo, sessions, validator)
	invitationService := service.NewInvitationService(invitationRepo, membershipRepo, profileRepo, tenantRepo, roleRepo, onboardingRepo, sessions, mail, validator, cfg)
	teamService := service.NewTeamService(membershipRepo, profileRepo, roleRepo)
	bookingService := service.NewBookingService(bookingRepo, validator)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	authHandler := handlers.NewAuthHandler(authService)
	tenantHandler := handlers.NewTenantHandler(tenantService)
	invitationHandler := handlers.NewInvitationHandler(invitationService)
	teamHandler := handlers.NewTeamHandler(teamService)
	bookingHandler := handlers.NewBookingHandler(bookingService)

	authMiddleware := auth.NewMiddleware(sessions)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Invite endpoint kept at the root with its own permissive CORS so the
	// dashboard can call it cross-origin
	invite := router.Group("/invite-employee", middleware.InviteCORS())
	invite.OPTIONS("", func(c *gin.Context) {})
	invite.POST("", authMiddleware.RequireAdmin(), invitationHandler.InviteEmployee)

	// API routes
	v1 := router.Group("/api/v1")
	{
		authRoutes := v1.Group("/auth")
		{
			authRoutes.POST("/signup", authHandler.SignUp)
			authRoutes.POST("/signin", authHandler.SignIn)
			authRoutes.POST("/signout", authHandler.SignOut)
			authRoutes.GET("/session", authMiddleware.RequireAuth(), authHandler.GetSession)
			authRoutes.POST("/refresh", authHandler.Refresh)
			authRoutes.POST("/reset-password", authHandler.ResetPassword)
			authRoutes.POST("/verify-otp", authHandler.VerifyOTP)
			authRoutes.PUT("/user", authMiddleware.RequireAuth(), authHandler.UpdateUser)
			authRoutes.POST("/check-email", authHandler.CheckEmail)
			authRoutes.GET("/google/start", authHandler.GoogleStart)
			authRoutes.GET("/google/callback", authHandler.GoogleCallback)
		}

		tenants := v1.Group("/tenants", authMiddleware.RequireAuth())
		{
			tenants.POST("", tenantHandler.CreateTenant)
			tenants.GET("", tenantHandler.GetMyTenants)
			tenants.POST("/switch", tenantHandler.SwitchTenant)
		}

		invitations := v1.Group("/invitations")
		{
			// Token lookup is public so the acceptance page can render
			// before the invitee signs in
			invitations.GET("/:token", invitationHandler.GetByToken)
			invitations.POST("/:token/accept", authMiddleware.RequireAuth(), invitationHandler.Accept)
			invitations.GET("", authMiddleware.RequireAdmin(), invitationHandler.GetPending)
		}

		team := v1.Group("/team", authMiddleware.RequireAuth())
		{
			team.GET("/employees", teamHandler.GetEmployees)
		}

		bookings := v1.Group("/bookings", authMiddleware.RequireAuth())
		{
			bookings.GET("", bookingHandler.ListBookings)
			bookings.POST("", bookingHandler.CreateBooking)
		}
	}

	return router, nil
}
