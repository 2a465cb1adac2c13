package main

import (
	"log"
	"os"

	redisv9 "github.com/redis/go-redis/v9"

	"profiles_backend/internal/app/di"
	"profiles_backend/internal/app/router"
	feedadapters "profiles_backend/internal/feature/feed/adapters"
	feedhandler "profiles_backend/internal/feature/feed/transport/handler"
	feedusecase "profiles_backend/internal/feature/feed/usecase"
	identityadapters "profiles_backend/internal/feature/identity/adapters"
	identityhandler "profiles_backend/internal/feature/identity/transport/handler"
	identityusecase "profiles_backend/internal/feature/identity/usecase"
	infradb "profiles_backend/internal/platform/db"
	infraredis "profiles_backend/internal/platform/redis"
	"profiles_backend/internal/shared/authz"
)

func main() {
	// db
	db := infradb.OpenDB()

	// Redis
	var rdb *redisv9.Client
	if tmp, err := infraredis.NewRedisClient(); err != nil {
		log.Println("[WARN] Redis unavailable. Falling back to the database token store.")
		rdb = nil
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	// Repository
	userRepo := identityadapters.NewUserPostgres(db)
	feedRepo := feedadapters.NewFeedPostgres(db)
	tokenRepo := di.NewTokenRepository(rdb, db)

	// Usecase
	identityUC := identityusecase.NewIdentityUsecase(userRepo, tokenRepo)
	feedUC := feedusecase.NewFeedUsecase(feedRepo)

	// Handler
	guard := authz.NewOwnerGuard()
	authH := identityhandler.NewAuthHandler(identityUC)
	profileH := identityhandler.NewProfileHandler(identityUC, guard)
	feedH := feedhandler.NewFeedHandler(feedUC, guard)

	// ルータ生成
	r := router.NewRouter(authH, profileH, feedH, identityUC)

	addr := ":8080"
	if port := os.Getenv("PORT"); port != "" {
		addr = ":" + port
	}
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
