package bookstore

import (
	"context"
	"errors"
)

// Book は書籍ドキュメント。スキーマは固定せず、クライアントが送った
// フィールドをそのまま保持する。_id（storeが採番する識別子）と
// uid（所有者の識別子）のみ規約として存在する。
type Book map[string]any

// ErrInvalidID は識別子が書籍IDの形式（24桁の16進文字列）に
// 合致しないことを示す。
var ErrInvalidID = errors.New("書籍IDの形式が不正です")

// InsertResult は書籍作成の結果。
type InsertResult struct {
	// InsertedID はstoreが採番した新しい書籍ID。
	InsertedID string `json:"insertedId"`
}

// UpdateResult は更新（upsert）の結果。
type UpdateResult struct {
	// MatchedCount は更新対象としてマッチしたドキュメント数。
	MatchedCount int64 `json:"matchedCount"`
	// UpsertedID はupsertで新規作成された場合に採番されたID。
	UpsertedID string `json:"upsertedId,omitempty"`
	// EffectiveID は実際に更新・作成されたドキュメントのID。
	// upsertで新規作成された場合はリクエストのIDと一致しないことがある。
	EffectiveID string `json:"id"`
}

// DeleteResult は削除の結果。
type DeleteResult struct {
	// DeletedCount は削除されたドキュメント数。存在しないIDでは0になる。
	DeletedCount int64 `json:"deletedCount"`
}

// Store は書籍コレクションへの操作を定義する。
// すべての操作は同期的で、失敗は呼び出し元にエラーとして返す。
type Store interface {
	// ListAll は全書籍を返す。順序は実装依存（概ね挿入順）。
	ListAll(ctx context.Context) ([]Book, error)
	// ListByOwner はuidフィールドが一致する書籍を返す。
	ListByOwner(ctx context.Context, uid string) ([]Book, error)
	// GetByID はIDで書籍を1件取得する。存在しない場合は(nil, nil)を返す。
	// ID形式が不正な場合はErrInvalidIDを返す。
	GetByID(ctx context.Context, id string) (Book, error)
	// Create は書籍をそのまま挿入し、採番されたIDを返す。
	Create(ctx context.Context, book Book) (InsertResult, error)
	// UpsertUpdate は許可フィールドのみを部分更新する。
	// 対象が存在しない場合はstoreが新規作成する（upsert）。
	UpsertUpdate(ctx context.Context, id string, fields Book) (UpdateResult, error)
	// DeleteByID はIDで書籍を削除する。
	DeleteByID(ctx context.Context, id string) (DeleteResult, error)
}

// updatableFields はUpsertUpdateで更新を許可するフィールド。
// これ以外の入力フィールドは黙って無視する。
var updatableFields = []string{"photoUrl", "category", "price", "pageRead", "review"}

// filterUpdatableFields は入力から許可フィールドのみを抜き出す。
func filterUpdatableFields(fields Book) Book {
	filtered := Book{}
	for _, key := range updatableFields {
		if v, ok := fields[key]; ok {
			filtered[key] = v
		}
	}
	return filtered
}
