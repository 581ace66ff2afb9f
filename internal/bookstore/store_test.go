package bookstore

import (
	"reflect"
	"testing"
)

// TestFilterUpdatableFields は更新許可フィールドの抽出を検証する。
func TestFilterUpdatableFields(t *testing.T) {
	t.Parallel()

	t.Run("許可フィールドのみが残ること", func(t *testing.T) {
		t.Parallel()

		input := Book{
			"photoUrl": "https://example.com/dune.jpg",
			"category": "SF",
			"price":    12,
			"pageRead": 100,
			"review":   "砂の惑星",
			"title":    "許可されていないフィールド",
			"_id":      "507f1f77bcf86cd799439011",
			"uid":      "user-1",
		}

		got := filterUpdatableFields(input)
		want := Book{
			"photoUrl": "https://example.com/dune.jpg",
			"category": "SF",
			"price":    12,
			"pageRead": 100,
			"review":   "砂の惑星",
		}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("filterUpdatableFields() = %v, want %v", got, want)
		}
	})

	t.Run("許可フィールドの一部のみ指定した場合は指定分だけ残ること", func(t *testing.T) {
		t.Parallel()

		got := filterUpdatableFields(Book{"price": 20, "title": "Dune"})
		want := Book{"price": 20}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("filterUpdatableFields() = %v, want %v", got, want)
		}
	})

	t.Run("許可フィールドが1つもない場合は空になること", func(t *testing.T) {
		t.Parallel()

		got := filterUpdatableFields(Book{"title": "Dune", "author": "Frank Herbert"})
		if len(got) != 0 {
			t.Errorf("filterUpdatableFields() = %v, want 空", got)
		}
	})
}
