package pkg

import (
	"context"
	"log"

	"EsquadrilhaSite/internal/auth"
	"EsquadrilhaSite/internal/carousel"
	"EsquadrilhaSite/internal/config"
	"EsquadrilhaSite/internal/contact"
	"EsquadrilhaSite/internal/discord"
	"EsquadrilhaSite/internal/enlistment"
	"EsquadrilhaSite/internal/pilot"
	"EsquadrilhaSite/internal/presentation"
	"EsquadrilhaSite/pkg/middleware"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

var EchoModules = fx.Module("echo",
	fx.Provide(NewEchoServer),
	fx.Provide(config.NewMongoDBConfig),
	fx.Provide(config.NewMongoDBClient),
	fx.Provide(config.NewDiscordConfig),
	fx.Provide(discord.NewKeyValue),
	fx.Provide(discord.NewPendingStore),
	fx.Provide(discord.NewNotifier),
	fx.Provide(discord.NewRetryScheduler),
	fx.Provide(func(n *discord.Notifier) presentation.Notifier { return n }),
	fx.Provide(func(n *discord.Notifier) enlistment.Notifier { return n }),
	fx.Provide(func(n *discord.Notifier) contact.Notifier { return n }),
	fx.Provide(auth.NewUserRepository),
	fx.Provide(auth.NewUserService),
	fx.Provide(auth.NewAuthHandler),
	fx.Provide(presentation.NewPresentationRepository),
	fx.Provide(presentation.NewPresentationService),
	fx.Provide(presentation.NewPresentationHandler),
	fx.Provide(enlistment.NewEnlistmentRepository),
	fx.Provide(enlistment.NewEnlistmentService),
	fx.Provide(enlistment.NewEnlistmentHandler),
	fx.Provide(carousel.NewCarouselRepository),
	fx.Provide(carousel.NewCarouselHandler),
	fx.Provide(pilot.NewPilotRepository),
	fx.Provide(pilot.NewPilotHandler),
	fx.Provide(contact.NewContactRepository),
	fx.Provide(contact.NewContactHandler),
	fx.Invoke(RegisterRoutes),
	fx.Invoke(StartRetryScheduler))

func NewEchoServer(lc fx.Lifecycle) *echo.Echo {
	e := echo.New()
	middleware.SetupMiddleware(e)
	port := ":8080"
	log.Println("Server running on http://localhost" + port[1:])
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := e.Start(port); err != nil {
					log.Fatal("Failed to start the server:", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("shutting down the server ...")
			return e.Shutdown(ctx)
		},
	})
	return e
}

// StartRetryScheduler schedules the one-shot pending notification replay.
func StartRetryScheduler(lc fx.Lifecycle, scheduler *discord.RetryScheduler) {
	scheduler.Start(lc)
}

func RegisterRoutes(
	e *echo.Echo,
	authHandler *auth.AuthHandler,
	presentationHandler *presentation.PresentationHandler,
	enlistmentHandler *enlistment.EnlistmentHandler,
	carouselHandler *carousel.CarouselHandler,
	pilotHandler *pilot.PilotHandler,
	contactHandler *contact.ContactHandler,
) {
	e.POST("/register", authHandler.Register)
	e.POST("/login", authHandler.Login)

	// Public site
	e.POST("/presentations", presentationHandler.Request)
	e.GET("/presentations/upcoming", presentationHandler.Upcoming)
	e.POST("/enlistments", enlistmentHandler.Enlist)
	e.POST("/contact", contactHandler.Submit)
	e.GET("/carousel", carouselHandler.List)
	e.GET("/pilots", pilotHandler.List)

	// Operator dashboard
	protected := e.Group("/api")
	protected.Use(middleware.JWTMiddleware)
	protected.GET("/profile", authHandler.Profile)

	protected.GET("/presentations", presentationHandler.List)
	protected.POST("/presentations", presentationHandler.Create)
	protected.PUT("/presentations/:id", presentationHandler.Update)
	protected.PATCH("/presentations/:id/status", presentationHandler.UpdateStatus)
	protected.DELETE("/presentations/:id", presentationHandler.Delete)

	protected.GET("/enlistments", enlistmentHandler.List)
	protected.PATCH("/enlistments/:id/status", enlistmentHandler.UpdateStatus)
	protected.DELETE("/enlistments/:id", enlistmentHandler.Delete)

	protected.POST("/carousel", carouselHandler.Add)
	protected.PATCH("/carousel/:id/order", carouselHandler.Reorder)
	protected.DELETE("/carousel/:id", carouselHandler.Delete)

	protected.POST("/pilots", pilotHandler.Add)
	protected.PUT("/pilots/:id", pilotHandler.Update)
	protected.DELETE("/pilots/:id", pilotHandler.Delete)

	protected.GET("/contact", contactHandler.List)
}
