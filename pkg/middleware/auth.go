package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nao1215/bookstack/pkg/token"
)

// TokenCookieName は認証トークンを運ぶクッキーの名前。
// トークン発行エンドポイントと認証ゲートで共有する。
const TokenCookieName = "token"

// contextKeyClaims はGinコンテキストに検証済みペイロードを格納するキー。
const contextKeyClaims = "claims"

// contextKeyUID はGinコンテキストに認証済みuidを格納するキー。
const contextKeyUID = "uid"

// CookieAuth はクッキー内の認証トークンを検証するGinミドルウェアを返す。
// 検証に成功した場合のみ後続ハンドラに制御を渡し、コンテキストに
// ペイロードとuidを設定する。失敗時は401で処理を打ち切る。
func CookieAuth(svc *token.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := c.Cookie(TokenCookieName)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "認証トークンがありません",
			})
			return
		}

		payload, err := svc.Verify(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "トークンが無効または期限切れです",
			})
			return
		}

		c.Set(contextKeyClaims, payload)
		c.Set(contextKeyUID, token.UID(payload))
		c.Next()
	}
}

// GetUID はGinコンテキストから認証済みユーザーのuidを取得する。
// CookieAuthミドルウェアが事前に適用されている必要がある。
func GetUID(c *gin.Context) string {
	uid, _ := c.Get(contextKeyUID)
	if id, ok := uid.(string); ok {
		return id
	}
	return ""
}

// GetClaims はGinコンテキストから検証済みトークンペイロードを取得する。
func GetClaims(c *gin.Context) map[string]any {
	claims, _ := c.Get(contextKeyClaims)
	if payload, ok := claims.(map[string]any); ok {
		return payload
	}
	return nil
}
