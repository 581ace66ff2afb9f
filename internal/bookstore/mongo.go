package bookstore

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// databaseName は書籍を保持するMongoDBデータベース名。
const databaseName = "booksDB"

// collectionName は書籍コレクション名。
const collectionName = "books"

// MongoStore はMongoDBを使用するStore実装。
// クライアントは起動時に一度だけ接続され、全リクエストで共有される。
type MongoStore struct {
	// collection は書籍コレクションへのハンドル。
	collection *mongo.Collection
}

// コンパイル時にStoreを満たすことを保証する。
var _ Store = (*MongoStore)(nil)

// NewMongoStore は接続済みクライアントからMongoStoreを生成する。
func NewMongoStore(client *mongo.Client) *MongoStore {
	return &MongoStore{
		collection: client.Database(databaseName).Collection(collectionName),
	}
}

// ListAll は全書籍を返す。
func (s *MongoStore) ListAll(ctx context.Context) ([]Book, error) {
	cursor, err := s.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("書籍一覧の取得に失敗: %w", err)
	}
	books := []Book{}
	if err := cursor.All(ctx, &books); err != nil {
		return nil, fmt.Errorf("書籍一覧のデコードに失敗: %w", err)
	}
	return books, nil
}

// ListByOwner はuidフィールドが一致する書籍を返す。
func (s *MongoStore) ListByOwner(ctx context.Context, uid string) ([]Book, error) {
	cursor, err := s.collection.Find(ctx, bson.M{"uid": uid})
	if err != nil {
		return nil, fmt.Errorf("所有者別の書籍一覧の取得に失敗: %w", err)
	}
	books := []Book{}
	if err := cursor.All(ctx, &books); err != nil {
		return nil, fmt.Errorf("所有者別の書籍一覧のデコードに失敗: %w", err)
	}
	return books, nil
}

// GetByID はIDで書籍を1件取得する。存在しない場合は(nil, nil)を返す。
func (s *MongoStore) GetByID(ctx context.Context, id string) (Book, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidID, id)
	}

	var book Book
	err = s.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&book)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("書籍の取得に失敗: %w", err)
	}
	return book, nil
}

// Create は書籍をそのまま挿入し、採番されたIDを返す。
func (s *MongoStore) Create(ctx context.Context, book Book) (InsertResult, error) {
	result, err := s.collection.InsertOne(ctx, book)
	if err != nil {
		return InsertResult{}, fmt.Errorf("書籍の挿入に失敗: %w", err)
	}

	oid, ok := result.InsertedID.(bson.ObjectID)
	if !ok {
		return InsertResult{}, fmt.Errorf("挿入結果のIDが想定外の型: %T", result.InsertedID)
	}
	return InsertResult{InsertedID: oid.Hex()}, nil
}

// UpsertUpdate は許可フィールドのみを$setで部分更新する。
// 対象が存在しない場合はMongoDBが新規ドキュメントを作成する。
func (s *MongoStore) UpsertUpdate(ctx context.Context, id string, fields Book) (UpdateResult, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return UpdateResult{}, fmt.Errorf("%w: %q", ErrInvalidID, id)
	}

	set := filterUpdatableFields(fields)
	if len(set) == 0 {
		// MongoDBは空の$setを拒否するため、更新可能フィールドが
		// 1つもない場合はマッチ件数の確認のみ行う
		count, err := s.collection.CountDocuments(ctx, bson.M{"_id": oid})
		if err != nil {
			return UpdateResult{}, fmt.Errorf("書籍の存在確認に失敗: %w", err)
		}
		return UpdateResult{MatchedCount: count, EffectiveID: id}, nil
	}

	result, err := s.collection.UpdateOne(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": set},
		options.UpdateOne().SetUpsert(true),
	)
	if err != nil {
		return UpdateResult{}, fmt.Errorf("書籍の更新に失敗: %w", err)
	}

	updateResult := UpdateResult{
		MatchedCount: result.MatchedCount,
		EffectiveID:  id,
	}
	// upsertで新規作成された場合は、storeが採番したIDを正とする
	if result.UpsertedID != nil {
		if upserted, ok := result.UpsertedID.(bson.ObjectID); ok {
			updateResult.UpsertedID = upserted.Hex()
			updateResult.EffectiveID = upserted.Hex()
		}
	}
	return updateResult, nil
}

// DeleteByID はIDで書籍を削除する。存在しないIDでは削除件数0を返す。
func (s *MongoStore) DeleteByID(ctx context.Context, id string) (DeleteResult, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return DeleteResult{}, fmt.Errorf("%w: %q", ErrInvalidID, id)
	}

	result, err := s.collection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return DeleteResult{}, fmt.Errorf("書籍の削除に失敗: %w", err)
	}
	return DeleteResult{DeletedCount: result.DeletedCount}, nil
}
