package router

import (
	feedhandler "profiles_backend/internal/feature/feed/transport/handler"
	identityhandler "profiles_backend/internal/feature/identity/transport/handler"
	"profiles_backend/internal/platform/authmw"
	platformhandler "profiles_backend/internal/platform/http/handler"

	"github.com/gin-gonic/gin"
)

func NewRouter(auth *identityhandler.AuthHandler, profiles *identityhandler.ProfileHandler,
	feed *feedhandler.FeedHandler, resolver authmw.TokenResolver) *gin.Engine {
	r := gin.Default()

	// 認証不要
	// 導通確認用
	r.GET("/healthz", platformhandler.Health)
	// ログイン（トークン発行）
	r.POST("/login", auth.Login)
	// プロフィールの閲覧・検索と新規登録は誰でも可能
	r.GET("/profiles", profiles.List)
	r.POST("/profiles", profiles.Create)
	r.GET("/profiles/:id", profiles.Get)

	// 認証必須のルート
	// r.Group("/") でルートグループを作成
	protected := r.Group("/")
	// authmw.AuthRequired() ミドルウェアを適用
	// → リクエストヘッダーにベアラートークンが必要になる
	protected.Use(authmw.AuthRequired(resolver))
	{
		// プロフィールの変更は所有者のみ（ハンドラ内でガードを評価）
		protected.PUT("/profiles/:id", profiles.Update)
		protected.PATCH("/profiles/:id", profiles.Patch)
		protected.DELETE("/profiles/:id", profiles.Delete)

		// フィードは閲覧も含めて認証必須
		protected.GET("/feed", feed.List)
		protected.POST("/feed", feed.Create)
		protected.GET("/feed/:id", feed.Get)
		protected.PUT("/feed/:id", feed.Update)
		protected.PATCH("/feed/:id", feed.Update)
		protected.DELETE("/feed/:id", feed.Delete)
	}

	return r
}
