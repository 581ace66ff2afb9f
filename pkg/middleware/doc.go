// Package middleware はGinベースのHTTP APIで使用する共通ミドルウェアを提供する。
//
// クッキーで運ばれる認証トークンの検証、パニックリカバリ、
// CORS設定、リクエストIDの付与を含む。
package middleware
