// Package usecase はidentityフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"profiles_backend/internal/feature/identity/domain/entity"

	"golang.org/x/crypto/bcrypt"
)

const (
	// minPasswordLength はパスワードの最低文字数を定義します。
	minPasswordLength = 8

	// tokenBytes はベアラートークンの乱数バイト長を定義します（hexで64文字）。
	tokenBytes = 32
)

// UserRepository はユーザーエンティティの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type UserRepository interface {
	// Create は新しいユーザーをストレージに永続化します。
	// 同じメールアドレスのユーザーが既に存在する場合、ErrEmailAlreadyExistsを返します。
	Create(ctx context.Context, user *entity.User) error

	// FindByEmail は指定されたメールアドレスに一致するユーザーを取得します。
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByID は指定されたIDに一致するユーザーを取得します。
	FindByID(ctx context.Context, id uint) (*entity.User, error)

	// Search は名前またはメールアドレスに部分一致するユーザーを取得します（大文字小文字を区別しない）。
	// クエリが空の場合は全ユーザーを返します。
	Search(ctx context.Context, query string) ([]*entity.User, error)

	// Update は既存ユーザーの全フィールドを保存します。
	Update(ctx context.Context, user *entity.User) error

	// Delete は指定されたIDのユーザーを削除します。
	Delete(ctx context.Context, id uint) error
}

// identityUsecase は認証とプロフィール管理のビジネスロジックを実装します。
type identityUsecase struct {
	users  UserRepository
	tokens TokenRepository
}

// NewIdentityUsecase はidentityUsecaseの新しいインスタンスを生成します。
func NewIdentityUsecase(users UserRepository, tokens TokenRepository) *identityUsecase {
	return &identityUsecase{
		users:  users,
		tokens: tokens,
	}
}

// validatePassword はパスワードがセキュリティ要件を満たしているかチェックします。
// 空または未指定のパスワードもここで弾かれます。
func validatePassword(password string) error {
	if len(password) < minPasswordLength {
		return fmt.Errorf("password must be at least %d characters long", minPasswordLength)
	}
	return nil
}

// normalizeEmail はメールアドレスのドメイン部分を小文字に正規化します。
// ローカル部分はそのまま保持されます。空のメールアドレスはErrEmailRequiredを返します。
func normalizeEmail(email string) (string, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return "", ErrEmailRequired
	}
	at := strings.LastIndex(email, "@")
	if at < 0 {
		return email, nil
	}
	return email[:at] + "@" + strings.ToLower(email[at+1:]), nil
}

// Signup はハッシュ化されたパスワードで新規ユーザーを登録します。
// メールアドレスは正規化され、一意性違反はErrEmailAlreadyExistsとして返されます。
func (u *identityUsecase) Signup(ctx context.Context, email, name, password string) (*entity.User, error) {
	normalized, err := normalizeEmail(email)
	if err != nil {
		return nil, err
	}

	// パスワード強度を検証
	if err := validatePassword(password); err != nil {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &entity.User{
		Email:    normalized,
		Name:     name,
		Password: string(hashed),
		IsActive: true,
	}
	if err := u.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// CreateSuperuser は通常のSignupの後、明示的に権限フラグを設定します。
// 権限昇格は通常の登録の副作用として起きてはならないため、独立した操作になっています。
func (u *identityUsecase) CreateSuperuser(ctx context.Context, email, name, password string) (*entity.User, error) {
	user, err := u.Signup(ctx, email, name, password)
	if err != nil {
		return nil, err
	}

	user.IsStaff = true
	user.IsSuperuser = true
	if err := u.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login はユーザーを認証し、成功時にベアラートークンを発行して返します。
// トークンは1ユーザーにつき1つで、再発行すると以前のトークンは無効になります。
// タイミング攻撃を防止するため、ユーザーが存在しない場合でもbcrypt比較を実行します。
func (u *identityUsecase) Login(ctx context.Context, email, password string) (string, error) {
	normalized, err := normalizeEmail(email)
	if err != nil {
		return "", ErrInvalidCredentials
	}

	// メールアドレスでユーザーを検索
	user, findErr := u.users.FindByEmail(ctx, normalized)

	// ユーザーが存在しない場合のタイミング攻撃緩和用ダミーハッシュ
	// bcrypt.CompareHashAndPasswordが常に呼ばれることを保証する
	passwordHash := "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy" // ダミーハッシュ
	if findErr == nil {
		passwordHash = user.Password
	}

	// タイミング攻撃防止のため、常にパスワードを検証
	// 第1引数はハッシュ化パスワード、第2引数は平文パスワード
	compareErr := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password))

	// ユーザー未検出またはパスワード不一致の場合、汎用エラーを返す
	if findErr != nil || compareErr != nil {
		return "", ErrInvalidCredentials
	}

	// 無効化されたアカウントはログイン不可（レコードは残る）
	if !user.IsActive {
		return "", ErrInvalidCredentials
	}

	return u.issueToken(ctx, user.ID)
}

// Resolve はベアラートークンを検証し、紐づくユーザーIDを返します。
// 未知または無効化されたトークンの場合はErrTokenNotFoundを返します。
func (u *identityUsecase) Resolve(ctx context.Context, id string) (uint, error) {
	token, err := u.tokens.FindByID(ctx, id)
	if err != nil {
		return 0, err
	}
	return token.UserID, nil
}

// issueToken は新しいランダムトークンを生成し、ユーザーに紐づけて保存します。
// Saveは同一ユーザーの既存トークンをアトミックに置き換えます。
func (u *identityUsecase) issueToken(ctx context.Context, userID uint) (string, error) {
	buf := make([]byte, tokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}

	token := &entity.Token{
		ID:        hex.EncodeToString(buf),
		UserID:    userID,
		CreatedAt: time.Now(),
	}
	if err := u.tokens.Save(ctx, token); err != nil {
		return "", fmt.Errorf("failed to save token: %w", err)
	}
	return token.ID, nil
}
