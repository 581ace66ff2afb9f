package bookstack

import (
	"fmt"
	"net/url"

	"github.com/caarlos0/env/v11"
)

// Config はbookStackサーバーの環境変数設定。
// 起動時に一度だけ読み込まれ、以後変更されない。
type Config struct {
	// Port はHTTPサーバーのリッスンポート。
	Port string `env:"PORT" envDefault:"5000"`
	// MongoURL はMongoDBの接続URI。DBHost設定時は無視される。
	MongoURL string `env:"MONGODB_URL" envDefault:"mongodb://localhost:27017"`
	// DBHost はMongoDB Atlasのクラスタホスト名。
	DBHost string `env:"DB_HOST"`
	// DBUser はAtlas接続用のユーザー名。
	DBUser string `env:"DB_USER"`
	// DBPass はAtlas接続用のパスワード。
	DBPass string `env:"DB_PASS"`
	// TokenSecret はトークン署名用のシークレット。
	TokenSecret string `env:"ACCESS_TOKEN_SECRET,required,notEmpty"`
	// FrontendURL はCORSで許可するフロントエンドのオリジン。
	FrontendURL string `env:"FRONTEND_URL" envDefault:"http://localhost:3000"`
}

// LoadConfig は環境変数からConfigを構築する。
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("設定の読み込みに失敗: %w", err)
	}
	return cfg, nil
}

// MongoURI は実際に使用するMongoDB接続URIを返す。
// Atlasのホストと資格情報が揃っている場合はmongodb+srv形式のURIを組み立てる。
func (c Config) MongoURI() string {
	if c.DBHost != "" && c.DBUser != "" && c.DBPass != "" {
		return fmt.Sprintf("mongodb+srv://%s:%s@%s/?retryWrites=true&w=majority",
			url.QueryEscape(c.DBUser), url.QueryEscape(c.DBPass), c.DBHost)
	}
	return c.MongoURL
}
