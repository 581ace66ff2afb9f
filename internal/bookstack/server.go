package bookstack

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nao1215/bookstack/internal/bookstore"
	"github.com/nao1215/bookstack/pkg/middleware"
	"github.com/nao1215/bookstack/pkg/token"
)

// Server はbookStackサービスのHTTPサーバー。
type Server struct {
	// router はGinのHTTPルーター。
	router *gin.Engine
	// port はサーバーのリッスンポート。
	port string
	// books は書籍コレクションへの永続化層。
	books bookstore.Store
	// tokens はベアラートークンの発行・検証サービス。
	tokens *token.Service
}

// NewServer は新しいbookStackサーバーを生成する。
// 永続化層は呼び出し元が構築して注入する。
func NewServer(cfg Config, books bookstore.Store) *Server {
	router := gin.New()
	router.Use(middleware.RequestID())
	router.Use(middleware.Recovery())
	router.Use(gin.Logger())
	router.Use(middleware.CORS([]string{cfg.FrontendURL}))

	s := &Server{
		router: router,
		port:   cfg.Port,
		books:  books,
		tokens: token.NewService(cfg.TokenSecret),
	}
	s.setupRoutes()

	return s
}

// Run はHTTPサーバーを起動する。
func (s *Server) Run() error {
	return s.router.Run(fmt.Sprintf(":%s", s.port))
}

// setupRoutes はAPIルーティングを設定する。
// 認証ゲートは所有者別一覧のみに適用する。単一書籍の取得・作成・
// 更新・削除は元の契約どおり認証なしで公開する。
func (s *Server) setupRoutes() {
	// 死活確認
	s.router.GET("/", s.handleRoot())
	// トークン発行
	s.router.POST("/jwt", s.handleIssueToken())

	// 全書籍一覧（認証不要）
	s.router.GET("/all-books", s.handleListBooks())
	// 所有者別一覧（認証必須。トークンのuidとパスのuidの一致を確認する）
	s.router.GET("/all-books/:uid", middleware.CookieAuth(s.tokens), s.handleListBooksByOwner())

	books := s.router.Group("/my-books")
	{
		// 書籍取得
		books.GET("/:id", s.handleGetBook())
		// 書籍作成
		books.POST("", s.handleCreateBook())
		// 書籍更新（upsert）
		books.PUT("/:id", s.handleUpdateBook())
		// 書籍削除
		books.DELETE("/:id", s.handleDeleteBook())
	}

	// ヘルスチェック
	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "bookstack"})
	})
}

// handleRoot は死活確認用の文字列を返すハンドラを返す。
func (s *Server) handleRoot() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.String(http.StatusOK, "bookStack server is running")
	}
}

// handleIssueToken はトークン発行を処理するハンドラを返す。
// リクエストボディをそのままペイロードとして署名し、
// HTTP-onlyクッキーとしてブラウザに渡す。
func (s *Server) handleIssueToken() gin.HandlerFunc {
	return func(c *gin.Context) {
		var payload map[string]any
		if err := c.ShouldBindJSON(&payload); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("リクエストが不正です: %v", err)})
			return
		}

		signed, err := s.tokens.Sign(payload)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "トークンの生成に失敗しました"})
			log.Printf("トークン生成エラー: %v", err)
			return
		}

		c.SetCookie(middleware.TokenCookieName, signed, int(token.TTL.Seconds()), "/", "", false, true)
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}
