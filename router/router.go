package router

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"hotel-booking/handlers"
	"hotel-booking/middleware"
)

type Handlers struct {
	Auth     *handlers.AuthHandler
	Rooms    *handlers.RoomHandler
	Bookings *handlers.BookingHandler
	Reviews  *handlers.ReviewHandler
	Images   *handlers.ImageHandler
}

type Options struct {
	CORSOrigins []string
	// Authorize guards /me and, when ProtectBookings is set, the booking routes.
	Authorize       fiber.Handler
	ProtectBookings bool
	// RateLimit is optional.
	RateLimit fiber.Handler
	// AccessLog defaults to fiber's logger middleware on stdout.
	AccessLog fiber.Handler
}

func SetupRoutes(app *fiber.App, h Handlers, opts Options) {
	accessLog := opts.AccessLog
	if accessLog == nil {
		accessLog = logger.New()
	}

	app.Use(recover.New())
	app.Use(middleware.RequestID())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Join(opts.CORSOrigins, ","),
		AllowCredentials: true,
	}))

	api := app.Group("/", accessLog)
	if opts.RateLimit != nil {
		api.Use(opts.RateLimit)
	}
	api.Get("/", handlers.GetRoot)

	//Images
	api.Get("/images", h.Images.GetImages)

	//Auth
	api.Post("/jwt", h.Auth.Login)
	api.Post("/logout", h.Auth.Logout)
	if opts.Authorize != nil {
		api.Get("/me", opts.Authorize, h.Auth.Me)
	}

	//Rooms
	rooms := api.Group("/rooms")
	rooms.Get("/", h.Rooms.GetRooms)
	rooms.Get("/:id", h.Rooms.GetRoom)

	//Bookings
	bookingGuard := func(c *fiber.Ctx) error { return c.Next() }
	if opts.ProtectBookings && opts.Authorize != nil {
		bookingGuard = opts.Authorize
	}
	bookings := api.Group("/bookings", bookingGuard)
	bookings.Get("/", h.Bookings.GetBookings)
	bookings.Get("/room/:room_id", h.Bookings.GetBookingsByRoom)
	bookings.Get("/:id", h.Bookings.GetBookingsByRoomLegacy)
	bookings.Post("/", h.Bookings.CreateBooking)

	booking := api.Group("/booking", bookingGuard)
	booking.Delete("/cancle/:id", h.Bookings.CancelBooking)
	booking.Patch("/update/:id", h.Bookings.UpdateBooking)

	//Reviews
	reviews := api.Group("/reviews")
	reviews.Get("/", h.Reviews.GetReviews)
	reviews.Get("/:review_id", h.Reviews.GetReview)
	reviews.Post("/", h.Reviews.CreateReview)
	api.Get("/eachReview/:id", h.Reviews.GetRoomReviews)
}
