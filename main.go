package main

import (
	"fmt"
	"log"
	"os"

	"github.com/Hima-Kishore/turf-booking-system/routes"
	"github.com/Hima-Kishore/turf-booking-system/storage"
	"github.com/Hima-Kishore/turf-booking-system/utils"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kataras/iris/v12"
	"github.com/kataras/iris/v12/middleware/jwt"
)

func main() {
	// Only load .env in development
	if os.Getenv("RENDER") == "" {
		godotenv.Load()
	}

	storage.InitializeDB()
	storage.InitializeRedis()

	app := iris.New()
	app.Validator = validator.New()

	// CORS configuration
	app.AllowMethods(iris.MethodOptions)
	app.UseRouter(func(ctx iris.Context) {
		ctx.Header("Access-Control-Allow-Origin", ctx.GetHeader("Origin"))
		ctx.Header("Vary", "Origin")
		ctx.Header("Access-Control-Allow-Credentials", "true")
		ctx.Header("Access-Control-Allow-Headers", "Authorization, Content-Type, X-Requested-With")
		ctx.Header("Access-Control-Allow-Methods", "GET,POST,PATCH,PUT,DELETE,OPTIONS")
		if ctx.Method() == iris.MethodOptions {
			ctx.StatusCode(iris.StatusNoContent)
			return
		}
		ctx.Next()
	})

	app.Use(iris.Compression)

	// JWT Verifiers
	accessTokenVerifier := jwt.NewVerifier(jwt.HS256, []byte(os.Getenv("ACCESS_TOKEN_SECRET")))
	accessTokenVerifier.WithDefaultBlocklist()
	accessTokenVerifierMiddleware := accessTokenVerifier.Verify(func() interface{} {
		return new(utils.AccessToken)
	})

	refreshTokenVerifier := jwt.NewVerifier(jwt.HS256, []byte(os.Getenv("REFRESH_TOKEN_SECRET")))
	refreshTokenVerifier.WithDefaultBlocklist()
	refreshTokenVerifierMiddleware := refreshTokenVerifier.Verify(func() interface{} {
		return new(jwt.Claims)
	})

	refreshTokenVerifier.Extractors = append(refreshTokenVerifier.Extractors, func(ctx iris.Context) string {
		var tokenInput utils.RefreshTokenInput
		err := ctx.ReadJSON(&tokenInput)
		if err != nil {
			return ""
		}
		return tokenInput.RefreshToken
	})

	app.Get("/health", func(ctx iris.Context) {
		ctx.JSON(iris.Map{"status": "ok"})
	})

	auth := app.Party("/api/auth")
	{
		auth.Post("/signup", routes.Signup)
		auth.Post("/login", routes.Login)
		auth.Post("/logout", accessTokenVerifierMiddleware, routes.Logout)
		auth.Post("/refresh", refreshTokenVerifierMiddleware, utils.RefreshToken)
		auth.Get("/profile", accessTokenVerifierMiddleware, utils.UserIDFromTokenMiddleware, routes.GetProfile)
	}

	slots := app.Party("/api/slots")
	{
		slots.Get("/available", routes.GetAvailableSlots)
	}

	bookings := app.Party("/api/bookings", accessTokenVerifierMiddleware, utils.UserIDFromTokenMiddleware)
	{
		bookings.Post("/", routes.CreateBooking)
		bookings.Get("/my", routes.GetMyBookings)
		bookings.Delete("/{id:uint}", routes.CancelBooking)
	}

	reviews := app.Party("/api/reviews")
	{
		reviews.Post("/", accessTokenVerifierMiddleware, utils.UserIDFromTokenMiddleware, routes.CreateReview)
		reviews.Get("/my", accessTokenVerifierMiddleware, utils.UserIDFromTokenMiddleware, routes.GetMyReviews)
		reviews.Put("/{id:uint}", accessTokenVerifierMiddleware, utils.UserIDFromTokenMiddleware, routes.UpdateReview)
		reviews.Delete("/{id:uint}", accessTokenVerifierMiddleware, utils.UserIDFromTokenMiddleware, routes.DeleteReview)
		reviews.Get("/turf/{id:uint}", routes.ListTurfReviews)
		reviews.Get("/turf/{id:uint}/rating", routes.GetTurfRating)
	}

	search := app.Party("/api/search")
	{
		search.Get("/turfs", routes.SearchTurfs)
		search.Get("/cities", routes.GetCities)
	}

	admin := app.Party("/api/admin", accessTokenVerifierMiddleware, utils.AdminOnlyMiddleware)
	{
		admin.Get("/stats", routes.AdminStats)
		admin.Get("/activity", routes.AdminActivity)
		admin.Get("/bookings", routes.AdminListBookings)
		admin.Get("/revenue", routes.AdminRevenueReport)
		admin.Get("/users", routes.AdminListUsers)
		admin.Get("/turfs", routes.AdminListTurfs)
		admin.Post("/turfs", routes.AdminCreateTurf)
		admin.Put("/turfs/{id:uint}", routes.AdminUpdateTurf)
		admin.Delete("/turfs/{id:uint}", routes.AdminDeleteTurf)
		admin.Post("/courts", routes.AdminCreateCourt)
		admin.Put("/courts/{id:uint}", routes.AdminUpdateCourt)
		admin.Delete("/courts/{id:uint}", routes.AdminDeleteCourt)
		admin.Post("/slots/generate", routes.AdminGenerateSlots)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "4000"
	}
	addr := "0.0.0.0:" + port

	fmt.Printf("🚀 Server starting on %s\n", addr)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("❌ Server failed: %v", err)
	}
}
