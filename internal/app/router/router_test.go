package router

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	feedadapters "profiles_backend/internal/feature/feed/adapters"
	feedentity "profiles_backend/internal/feature/feed/domain/entity"
	feedhandler "profiles_backend/internal/feature/feed/transport/handler"
	feedusecase "profiles_backend/internal/feature/feed/usecase"
	identityadapters "profiles_backend/internal/feature/identity/adapters"
	identityentity "profiles_backend/internal/feature/identity/domain/entity"
	identityhandler "profiles_backend/internal/feature/identity/transport/handler"
	identityusecase "profiles_backend/internal/feature/identity/usecase"
	"profiles_backend/internal/shared/authz"
)

// setupServer builds the full application against an in-memory SQLite
// database, with the database-backed token store standing in for Redis.
func setupServer(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&identityentity.User{},
		&feedentity.FeedItem{},
		&identityadapters.TokenModel{},
	))

	users := identityadapters.NewUserPostgres(db)
	tokens := identityadapters.NewTokenPostgres(db)
	items := feedadapters.NewFeedPostgres(db)

	identity := identityusecase.NewIdentityUsecase(users, tokens)
	feed := feedusecase.NewFeedUsecase(items)
	guard := authz.NewOwnerGuard()

	return NewRouter(
		identityhandler.NewAuthHandler(identity),
		identityhandler.NewProfileHandler(identity, guard),
		feedhandler.NewFeedHandler(feed, guard),
		identity,
	)
}

func request(t *testing.T, r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// signupAndLogin registers a user and returns their bearer token.
func signupAndLogin(t *testing.T, r *gin.Engine, email, name, password string) string {
	t.Helper()

	w := request(t, r, http.MethodPost, "/profiles", "", gin.H{
		"email": email, "name": name, "password": password,
	})
	require.Equal(t, http.StatusCreated, w.Code, "signup failed: %s", w.Body.String())

	w = request(t, r, http.MethodPost, "/login", "", gin.H{
		"email": email, "password": password,
	})
	require.Equal(t, http.StatusOK, w.Code, "login failed: %s", w.Body.String())

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp["token"])
	return resp["token"]
}

func TestServer_Healthz(t *testing.T) {
	r := setupServer(t)

	w := request(t, r, http.MethodGet, "/healthz", "", nil)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestServer_SignupLoginAndPost(t *testing.T) {
	r := setupServer(t)

	token := signupAndLogin(t, r, "u@example.com", "U", "pw123456")
	assert.Len(t, token, 64)

	// ownerを詐称してもトークンの持ち主が所有者になります
	w := request(t, r, http.MethodPost, "/feed", token, gin.H{
		"status_text": "first post", "owner": 999,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var item map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &item))
	assert.Equal(t, "first post", item["status_text"])
	assert.NotEqual(t, float64(999), item["owner"])

	// 発行されたフィードは一覧にも現れます
	w = request(t, r, http.MethodGet, "/feed", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var list []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list, 1)
}

func TestServer_FeedRequiresAuth(t *testing.T) {
	r := setupServer(t)

	w := request(t, r, http.MethodGet, "/feed", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = request(t, r, http.MethodPost, "/feed", "not-a-real-token", gin.H{"status_text": "x"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestServer_OnlyOwnerMayDeleteFeedItem(t *testing.T) {
	r := setupServer(t)

	ownerToken := signupAndLogin(t, r, "owner@example.com", "Owner", "pw123456")
	otherToken := signupAndLogin(t, r, "other@example.com", "Other", "pw123456")

	w := request(t, r, http.MethodPost, "/feed", ownerToken, gin.H{"status_text": "mine"})
	require.Equal(t, http.StatusCreated, w.Code)
	var item map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &item))
	itemID := int(item["id"].(float64))
	path := "/feed/" + strconv.Itoa(itemID)

	// 他人のアイテムは読めるが消せません
	w = request(t, r, http.MethodGet, path, otherToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = request(t, r, http.MethodDelete, path, otherToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = request(t, r, http.MethodDelete, path, ownerToken, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = request(t, r, http.MethodGet, path, ownerToken, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestServer_OnlyOwnerMayModifyProfile(t *testing.T) {
	r := setupServer(t)

	_ = signupAndLogin(t, r, "victim@example.com", "Victim", "pw123456")
	attackerToken := signupAndLogin(t, r, "attacker@example.com", "Attacker", "pw123456")

	// 被害者のプロフィールIDを検索で特定
	w := request(t, r, http.MethodGet, "/profiles?search=victim", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var profiles []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &profiles))
	require.Len(t, profiles, 1)
	victimID := int(profiles[0]["id"].(float64))
	path := "/profiles/" + strconv.Itoa(victimID)

	w = request(t, r, http.MethodPatch, path, attackerToken, gin.H{"name": "Hijacked"})
	assert.Equal(t, http.StatusForbidden, w.Code)

	// 匿名の閲覧は引き続き可能で、名前は変わっていません
	w = request(t, r, http.MethodGet, path, "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var profile map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &profile))
	assert.Equal(t, "Victim", profile["name"])
}

func TestServer_ReloginInvalidatesOldToken(t *testing.T) {
	r := setupServer(t)

	first := signupAndLogin(t, r, "re@example.com", "Re", "pw123456")

	w := request(t, r, http.MethodPost, "/login", "", gin.H{
		"email": "re@example.com", "password": "pw123456",
	})
	require.Equal(t, http.StatusOK, w.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	second := resp["token"]
	require.NotEqual(t, first, second)

	w = request(t, r, http.MethodGet, "/feed", first, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code, "the superseded token must stop working")

	w = request(t, r, http.MethodGet, "/feed", second, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestServer_DuplicateSignupConflicts(t *testing.T) {
	r := setupServer(t)

	w := request(t, r, http.MethodPost, "/profiles", "", gin.H{
		"email": "dup@example.com", "name": "First", "password": "pw123456",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	// ドメイン部分の大文字小文字は正規化されるため、これも衝突します
	w = request(t, r, http.MethodPost, "/profiles", "", gin.H{
		"email": "dup@EXAMPLE.com", "name": "Second", "password": "pw123456",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
}
