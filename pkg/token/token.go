package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TTL はトークンの有効期間。発行時刻から5時間で失効する。
const TTL = 5 * time.Hour

// ErrInvalidToken はトークンが無効であることを示す。
// 署名不一致・構造不正・期限切れは内部では区別されるが、
// 呼び出し側には一律にこのエラーとして返す。
var ErrInvalidToken = errors.New("トークンが無効または期限切れです")

// Service はプロセス共通のシークレットでトークンの発行と検証を行う。
type Service struct {
	// secret はHS256署名用のシークレット。起動時に一度だけ設定され、以後変更されない。
	secret []byte
}

// NewService は指定されたシークレットを使用するトークンサービスを生成する。
func NewService(secret string) *Service {
	return &Service{secret: []byte(secret)}
}

// Sign は任意のキーバリューペイロードを署名付きトークンに変換する。
// ペイロードに発行時刻（iat）と有効期限（exp）を加えてHS256で署名する。
func (s *Service) Sign(payload map[string]any) (string, error) {
	claims := jwt.MapClaims{}
	for k, v := range payload {
		claims[k] = v
	}
	now := time.Now()
	claims["iat"] = jwt.NewNumericDate(now)
	claims["exp"] = jwt.NewNumericDate(now.Add(TTL))

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("トークンの署名に失敗: %w", err)
	}
	return signed, nil
}

// Verify はトークンの署名と有効期限を検証し、元のペイロードを復元する。
// 検証に失敗した場合は原因によらずErrInvalidTokenを返す。
func (s *Service) Verify(tokenString string) (map[string]any, error) {
	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(tokenString, claims, func(_ *jwt.Token) (any, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	if !parsed.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// UID はペイロードからuidクレームを取り出す。
// uidが存在しない、または文字列でない場合は空文字列を返す。
func UID(payload map[string]any) string {
	if uid, ok := payload["uid"].(string); ok {
		return uid
	}
	return ""
}
