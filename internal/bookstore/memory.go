package bookstore

import (
	"context"
	"fmt"
	"maps"
	"sync"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// MemoryStore はマップ上に書籍を保持するStore実装。
// ハンドラのテストと、MongoDBなしでのローカル開発に使用する。
// IDの形式と各操作の結果はMongoStoreと同じ契約に従う。
type MemoryStore struct {
	mu sync.RWMutex
	// books はID（24桁16進）をキーとする書籍ドキュメント。
	books map[string]Book
	// order は挿入順を保持するIDの列。一覧取得の順序に使用する。
	order []string
}

// コンパイル時にStoreを満たすことを保証する。
var _ Store = (*MemoryStore)(nil)

// NewMemoryStore は空のMemoryStoreを生成する。
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{books: map[string]Book{}}
}

// ListAll は全書籍を挿入順で返す。
func (s *MemoryStore) ListAll(_ context.Context) ([]Book, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	books := make([]Book, 0, len(s.order))
	for _, id := range s.order {
		books = append(books, maps.Clone(s.books[id]))
	}
	return books, nil
}

// ListByOwner はuidフィールドが一致する書籍を挿入順で返す。
func (s *MemoryStore) ListByOwner(_ context.Context, uid string) ([]Book, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	books := []Book{}
	for _, id := range s.order {
		if s.books[id]["uid"] == uid {
			books = append(books, maps.Clone(s.books[id]))
		}
	}
	return books, nil
}

// GetByID はIDで書籍を1件取得する。存在しない場合は(nil, nil)を返す。
func (s *MemoryStore) GetByID(_ context.Context, id string) (Book, error) {
	if _, err := bson.ObjectIDFromHex(id); err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidID, id)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	book, ok := s.books[id]
	if !ok {
		return nil, nil
	}
	return maps.Clone(book), nil
}

// Create は書籍をそのまま挿入し、採番したIDを返す。
func (s *MemoryStore) Create(_ context.Context, book Book) (InsertResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := bson.NewObjectID().Hex()
	stored := maps.Clone(book)
	if stored == nil {
		stored = Book{}
	}
	stored["_id"] = id
	s.books[id] = stored
	s.order = append(s.order, id)
	return InsertResult{InsertedID: id}, nil
}

// UpsertUpdate は許可フィールドのみを部分更新する。
// 対象が存在しない場合は新しいIDを採番してドキュメントを作成する。
func (s *MemoryStore) UpsertUpdate(_ context.Context, id string, fields Book) (UpdateResult, error) {
	if _, err := bson.ObjectIDFromHex(id); err != nil {
		return UpdateResult{}, fmt.Errorf("%w: %q", ErrInvalidID, id)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	set := filterUpdatableFields(fields)

	if book, ok := s.books[id]; ok {
		for key, value := range set {
			book[key] = value
		}
		return UpdateResult{MatchedCount: 1, EffectiveID: id}, nil
	}

	// 存在しないIDへのupsertでは、リクエストのIDではなく新しいIDを採番する
	freshID := bson.NewObjectID().Hex()
	created := maps.Clone(set)
	created["_id"] = freshID
	s.books[freshID] = created
	s.order = append(s.order, freshID)
	return UpdateResult{MatchedCount: 0, UpsertedID: freshID, EffectiveID: freshID}, nil
}

// DeleteByID はIDで書籍を削除する。存在しないIDでは削除件数0を返す。
func (s *MemoryStore) DeleteByID(_ context.Context, id string) (DeleteResult, error) {
	if _, err := bson.ObjectIDFromHex(id); err != nil {
		return DeleteResult{}, fmt.Errorf("%w: %q", ErrInvalidID, id)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.books[id]; !ok {
		return DeleteResult{}, nil
	}
	delete(s.books, id)
	for i, existing := range s.order {
		if existing == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return DeleteResult{DeletedCount: 1}, nil
}
