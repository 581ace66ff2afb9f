// Package bookstack は個人の読書コレクションを管理するHTTPサーバーを提供する。
//
// 書籍のCRUDエンドポイントに加えて、トークン発行エンドポイントと
// 所有者別一覧のための認証ゲートを持つ。永続化はbookstoreパッケージに委譲する。
package bookstack
