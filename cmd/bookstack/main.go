// bookStackサーバーのエントリポイント。
// 個人の読書コレクションを管理するCRUD APIを提供する。
package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/nao1215/bookstack/internal/bookstack"
	"github.com/nao1215/bookstack/internal/bookstore"
)

func main() {
	// .envがあれば読み込む。無い場合は環境変数のみを使用する
	_ = godotenv.Load()

	cfg, err := bookstack.LoadConfig()
	if err != nil {
		log.Fatalf("設定の読み込みに失敗: %v", err)
	}

	client, err := mongo.Connect(options.Client().ApplyURI(cfg.MongoURI()))
	if err != nil {
		log.Fatalf("MongoDBへの接続に失敗: %v", err)
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Printf("MongoDB切断エラー: %v", err)
		}
	}()

	if err := client.Ping(context.Background(), nil); err != nil {
		log.Fatalf("MongoDBへの疎通確認に失敗: %v", err)
	}

	server := bookstack.NewServer(cfg, bookstore.NewMongoStore(client))
	log.Printf("bookStackサーバーを起動します: :%s", cfg.Port)
	if err := server.Run(); err != nil {
		log.Fatalf("bookStackサーバーの起動に失敗: %v", err)
	}
}
