package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"house-rental-server/routes"
	"house-rental-server/storage"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kataras/iris/v12"
)

func main() {
	godotenv.Load()

	mongoURI := os.Getenv("MONGO_URI")
	if mongoURI == "" {
		log.Fatal("MONGO_URI environment variable is required")
	}
	dbName := os.Getenv("MONGO_DB")
	if dbName == "" {
		dbName = "houserental"
	}
	uploadDir := os.Getenv("UPLOAD_DIR")
	if uploadDir == "" {
		uploadDir = "./uploads"
	}

	startCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	store, err := storage.NewStore(startCtx, mongoURI, dbName)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer store.Close(context.Background())

	if err := store.EnsureIndexes(startCtx); err != nil {
		log.Fatalf("failed to create indexes: %v", err)
	}

	uploads, err := storage.NewUploadStore(uploadDir)
	if err != nil {
		log.Fatalf("failed to prepare upload directory: %v", err)
	}

	app := iris.New()
	app.Validator = validator.New()

	// CORS configuration
	app.AllowMethods(iris.MethodOptions)
	app.UseRouter(func(ctx iris.Context) {
		ctx.Header("Access-Control-Allow-Origin", "*")
		ctx.Header("Access-Control-Allow-Headers", "Authorization, Content-Type")
		ctx.Header("Access-Control-Allow-Methods", "GET,POST,PUT,DELETE,OPTIONS")
		if ctx.Method() == iris.MethodOptions {
			ctx.StatusCode(iris.StatusNoContent)
			return
		}
		ctx.Next()
	})

	app.Use(iris.Compression)

	// Uploaded images are served as static files
	app.HandleDir(storage.PublicUploadPath, iris.Dir(uploads.Dir))

	h := routes.NewHandler(store, uploads)
	h.Register(app)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	addr := ":" + port

	fmt.Printf("House Rental API listening on %s\n", addr)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
