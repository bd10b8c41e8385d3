package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"placemark/cmd/fx/account_fx"
	"placemark/cmd/fx/blob_fx"
	"placemark/cmd/fx/category_fx"
	"placemark/cmd/fx/controllers_fx"
	"placemark/cmd/fx/db_fx"
	"placemark/cmd/fx/image_fx"
	"placemark/cmd/fx/poi_fx"
	"placemark/internal/api/controllers"
	"placemark/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	app := fx.New(
		db_fx.Module,
		blob_fx.Module,
		account_fx.Module,
		image_fx.Module,
		poi_fx.Module,
		category_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				log.Printf("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	accountController *controllers.AccountController,
	poiController *controllers.POIController,
	categoryController *controllers.CategoryController,
	imageController *controllers.ImageController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r, accountController, poiController, categoryController, imageController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	accountController *controllers.AccountController,
	poiController *controllers.POIController,
	categoryController *controllers.CategoryController,
	imageController *controllers.ImageController) {

	accounts := r.Group("/accounts")
	accounts.POST("/register", accountController.Register)
	accounts.POST("/login", accountController.Login)

	authed := r.Group("/", middleware.JWTAuthMiddleware())

	authed.GET("/settings", accountController.GetSettings)
	authed.PUT("/settings", accountController.UpdateSettings)

	pois := authed.Group("/pois")
	pois.POST("", poiController.CreatePoi)
	pois.GET("", poiController.ListPois)
	pois.GET("/:id", poiController.GetPoiById)
	pois.PUT("/:id", poiController.UpdatePoi)
	pois.DELETE("/:id", poiController.DeletePoi)
	pois.POST("/:id/images", imageController.UploadImage)
	pois.GET("/:id/images", imageController.ListImages)

	authed.GET("/categories", categoryController.ListCategories)
	authed.DELETE("/images/:id", imageController.DeleteImage)

	admin := authed.Group("/", middleware.AdminMiddleware())
	admin.POST("/categories", categoryController.CreateCategory)
	admin.DELETE("/categories/:name", categoryController.DeleteCategory)
	admin.GET("/accounts", accountController.GetAllAccounts)
	admin.DELETE("/accounts/:id", accountController.DeleteAccount)
}
