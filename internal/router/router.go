package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v4"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"roomchoice/internal/auth"
	"roomchoice/internal/config"
	"roomchoice/internal/handler"
	"roomchoice/internal/repository"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	tokenStore auth.TokenStoreInterface,
	userRepo repository.UserRepository,
	authHandler *handler.AuthHandler,
	roomHandler *handler.RoomHandler,
	bookingHandler *handler.BookingHandler,
	surveyHandler *handler.SurveyHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/refresh", authHandler.Refresh)
	api.GET("/rooms", roomHandler.ListRooms)

	// Bearer routes: echo-jwt verifies the signature and expiry, then
	// ResolveUser maps the claims to a fresh user record.
	secured := api.Group("", echojwt.WithConfig(echojwt.Config{
		SigningKey:  []byte(cfg.JWTSecret),
		TokenLookup: "header:" + echo.HeaderAuthorization,
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(auth.Claims)
		},
	}), ResolveUser(tokenStore, userRepo))

	secured.GET("/auth/verify", authHandler.Verify)
	secured.POST("/auth/logout", authHandler.Logout)

	secured.GET("/bookings", bookingHandler.ListBookings)
	secured.POST("/bookings", bookingHandler.CreateBooking)
	secured.DELETE("/bookings/:id", bookingHandler.CancelBooking)

	secured.GET("/surveys", surveyHandler.ListSurveys)
	secured.POST("/surveys", surveyHandler.CreateSurvey)
	secured.DELETE("/surveys/:id", surveyHandler.CancelSurvey)

	// Room mutation is admin only; reads stay public.
	admin := secured.Group("", RequireAdmin)
	admin.POST("/rooms", roomHandler.CreateRoom)
	admin.PUT("/rooms/:id", roomHandler.UpdateRoom)
	admin.DELETE("/rooms/:id", roomHandler.DeleteRoom)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
