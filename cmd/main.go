package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/mergington/school-gobackend/internal/handlers"
	"github.com/mergington/school-gobackend/internal/services"
	"github.com/mergington/school-gobackend/internal/store"
	"go.uber.org/zap"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	// Load .env
	if err := godotenv.Load(".env"); err != nil {
		logger.Warn("no .env file loaded", zap.Error(err))
	}

	uri := os.Getenv("MONGOURI")
	if uri == "" {
		logger.Fatal("MONGOURI environment variable not set")
	}
	dbName := os.Getenv("MONGO_DBNAME")
	if dbName == "" {
		dbName = "schooldb"
	}

	client, err := store.Connect(context.Background(), uri)
	if err != nil {
		logger.Fatal("failed to connect to MongoDB", zap.Error(err))
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := client.Disconnect(ctx); err != nil {
			logger.Error("error disconnecting from MongoDB", zap.Error(err))
		}
	}()
	logger.Info("connected to MongoDB", zap.String("database", dbName))

	db := client.Database(dbName)
	announcementStore := store.NewMongoAnnouncements(db)
	teacherStore := store.NewMongoTeachers(db)

	announcementService := services.NewAnnouncementService(announcementStore, teacherStore)
	teacherService := services.NewTeacherService(teacherStore)

	announcementHandler := handlers.NewAnnouncementHandler(announcementService, logger)
	teacherHandler := handlers.NewTeacherHandler(teacherService, logger)

	router := handlers.NewRouter(announcementHandler, teacherHandler)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	server := &http.Server{
		Addr:         "0.0.0.0:" + port,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	logger.Info("server running", zap.String("port", port))
	logger.Fatal("server stopped", zap.Error(server.ListenAndServe()))
}
