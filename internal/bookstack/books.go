package bookstack

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nao1215/bookstack/internal/bookstore"
	"github.com/nao1215/bookstack/pkg/middleware"
)

// handleListBooks は全書籍の一覧取得を処理するハンドラを返す。
func (s *Server) handleListBooks() gin.HandlerFunc {
	return func(c *gin.Context) {
		books, err := s.books.ListAll(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "書籍一覧の取得に失敗しました"})
			log.Printf("書籍一覧取得エラー: %v", err)
			return
		}
		c.JSON(http.StatusOK, books)
	}
}

// handleListBooksByOwner は所有者別の書籍一覧取得を処理するハンドラを返す。
// 認証済みトークンのuidとパスのuidが一致しない場合は403を返す。
func (s *Server) handleListBooksByOwner() gin.HandlerFunc {
	return func(c *gin.Context) {
		uid := c.Param("uid")
		if middleware.GetUID(c) != uid {
			c.JSON(http.StatusForbidden, gin.H{"error": "この所有者の書籍へのアクセス権がありません"})
			return
		}

		books, err := s.books.ListByOwner(c.Request.Context(), uid)
		if err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "書籍一覧の取得に失敗しました"})
			log.Printf("所有者別一覧取得エラー: uid=%s: %v", uid, err)
			return
		}
		c.JSON(http.StatusOK, books)
	}
}

// handleGetBook は書籍1件の取得を処理するハンドラを返す。
// 書籍が存在しない場合は404ではなくnullボディの200を返す（元の契約を保持）。
func (s *Server) handleGetBook() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		book, err := s.books.GetByID(c.Request.Context(), id)
		if errors.Is(err, bookstore.ErrInvalidID) {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("書籍IDの形式が不正です: %q", id)})
			return
		}
		if err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "書籍の取得に失敗しました"})
			log.Printf("書籍取得エラー: id=%s: %v", id, err)
			return
		}
		c.JSON(http.StatusOK, book)
	}
}

// handleCreateBook は書籍の作成を処理するハンドラを返す。
// リクエストボディのフィールドを検証せずそのまま挿入する。
func (s *Server) handleCreateBook() gin.HandlerFunc {
	return func(c *gin.Context) {
		var book bookstore.Book
		if err := c.ShouldBindJSON(&book); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("リクエストが不正です: %v", err)})
			return
		}

		result, err := s.books.Create(c.Request.Context(), book)
		if err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "書籍の作成に失敗しました"})
			log.Printf("書籍作成エラー: %v", err)
			return
		}
		c.JSON(http.StatusCreated, result)
	}
}

// handleUpdateBook は書籍の更新を処理するハンドラを返す。
// 更新対象は許可フィールドのみで、対象が存在しない場合はupsertされる。
func (s *Server) handleUpdateBook() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var fields bookstore.Book
		if err := c.ShouldBindJSON(&fields); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("リクエストが不正です: %v", err)})
			return
		}

		result, err := s.books.UpsertUpdate(c.Request.Context(), id, fields)
		if errors.Is(err, bookstore.ErrInvalidID) {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("書籍IDの形式が不正です: %q", id)})
			return
		}
		if err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "書籍の更新に失敗しました"})
			log.Printf("書籍更新エラー: id=%s: %v", id, err)
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

// handleDeleteBook は書籍の削除を処理するハンドラを返す。
// 存在しないIDの削除も削除件数0の正常レスポンスになる。
func (s *Server) handleDeleteBook() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		result, err := s.books.DeleteByID(c.Request.Context(), id)
		if errors.Is(err, bookstore.ErrInvalidID) {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("書籍IDの形式が不正です: %q", id)})
			return
		}
		if err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "書籍の削除に失敗しました"})
			log.Printf("書籍削除エラー: id=%s: %v", id, err)
			return
		}
		c.JSON(http.StatusOK, result)
	}
}
