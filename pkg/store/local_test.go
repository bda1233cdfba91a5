package store

import (
	"path/filepath"
	"testing"
)

type record struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func TestLocalRoundTrip(t *testing.T) {
	l := Open(filepath.Join(t.TempDir(), "fallback.json"))

	if err := l.Put("posts", "p1", record{ID: "p1", Name: "二手冰箱"}); err != nil {
		t.Fatalf("Put: %v", err)
	}
	var got record
	if !l.Get("posts", "p1", &got) {
		t.Fatal("Get: 未找到刚写入的记录")
	}
	if got.Name != "二手冰箱" {
		t.Errorf("Name = %q", got.Name)
	}

	if err := l.Delete("posts", "p1"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if l.Get("posts", "p1", &got) {
		t.Error("删除后仍能读到记录")
	}
}

func TestLocalBucketIsolation(t *testing.T) {
	l := Open(filepath.Join(t.TempDir(), "fallback.json"))

	_ = l.Put("posts", "1", record{ID: "1"})
	_ = l.Put("posts", "2", record{ID: "2"})
	_ = l.Put("users", "1", record{ID: "1"})

	if n := l.Len("posts"); n != 2 {
		t.Errorf("posts Len = %d, want 2", n)
	}
	if got := List[record](l, "users"); len(got) != 1 {
		t.Errorf("users List = %d 条, want 1", len(got))
	}
}

func TestLocalReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fallback.json")

	l := Open(path)
	if err := l.Put("config", "announcement", record{ID: "announcement", Name: "欢迎"}); err != nil {
		t.Fatalf("Put: %v", err)
	}

	// 重新打开同一个文件，数据应当还在
	l2 := Open(path)
	var got record
	if !l2.Get("config", "announcement", &got) {
		t.Fatal("重启后记录丢失")
	}
	if got.Name != "欢迎" {
		t.Errorf("Name = %q", got.Name)
	}
}
