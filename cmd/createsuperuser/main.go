package main

import (
	"context"
	"flag"
	"log"
	"os"
	"time"

	"profiles_backend/internal/feature/identity/adapters"
	"profiles_backend/internal/feature/identity/usecase"
	infradb "profiles_backend/internal/platform/db"
)

func main() {
	email := flag.String("email", "", "email address for the superuser")
	name := flag.String("name", "", "display name for the superuser")
	flag.Parse()

	// パスワードはシェル履歴に残らないよう環境変数で受け取る
	password := os.Getenv("SUPERUSER_PASSWORD")
	if *email == "" || *name == "" || password == "" {
		log.Fatal("usage: createsuperuser -email <email> -name <name> (password via SUPERUSER_PASSWORD)")
	}

	db := infradb.OpenDB()
	uc := usecase.NewIdentityUsecase(adapters.NewUserPostgres(db), adapters.NewTokenPostgres(db))

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	user, err := uc.CreateSuperuser(ctx, *email, *name, password)
	if err != nil {
		log.Fatal("failed to create superuser: ", err)
	}
	log.Printf("superuser created: id=%d email=%s", user.ID, user.Email)
}
