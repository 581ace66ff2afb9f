// Package bookstore は書籍コレクションへの永続化層を提供する。
//
// 書籍はスキーマを固定しないドキュメントとして保持する。
// 本番ではMongoDBのbooksDBデータベース内のbooksコレクションを使用し、
// テストとDBなしでの開発にはインメモリ実装を使用する。
package bookstore
