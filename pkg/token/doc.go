// Package token は署名付きベアラートークンの発行と検証を提供する。
//
// 任意のキーバリューペイロードをHS256で署名したトークンに変換し、
// 発行時刻から5時間の固定有効期限を付与する。検証に成功すると
// 元のペイロードを復元できる。
package token
