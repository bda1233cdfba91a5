package state

import (
	"testing"

	"cityinfo/types"
)

func sampleStore() *Store {
	s := NewStore("北京")
	s.SetPosts([]types.Post{
		{ID: "p1", Title: "地铁口精装两居室", Description: "朝南采光好", Category: types.CategoryHousing, PublishTime: 300, Distance: "0.5km", IsSticky: true},
		{ID: "p2", Title: "急招Java工程师", Description: "支持远程办公", Category: types.CategoryJobs, PublishTime: 200, Distance: "5.2km"},
		{ID: "p3", Title: "山地车转让", Description: "9成新", Category: types.CategorySecondHand, PublishTime: 400, Distance: "2.1km"},
	})
	return s
}

func TestFeedCategoryFilter(t *testing.T) {
	s := sampleStore()

	got := s.Feed(types.FeedQuery{Category: types.CategoryJobs})
	if len(got) != 1 || got[0].ID != "p2" {
		t.Fatalf("分类过滤结果 = %v", ids(got))
	}

	// 切回 ALL 恢复全量
	if got := s.Feed(types.FeedQuery{Category: "ALL"}); len(got) != 3 {
		t.Errorf("ALL 应返回全部, got %d", len(got))
	}
}

func TestFeedSearch(t *testing.T) {
	s := sampleStore()

	got := s.Feed(types.FeedQuery{Search: "远程"})
	if len(got) != 1 || got[0].ID != "p2" {
		t.Fatalf("搜索结果 = %v", ids(got))
	}
	if got := s.Feed(types.FeedQuery{Search: "不存在的词"}); len(got) != 0 {
		t.Errorf("无命中应为空, got %v", ids(got))
	}
}

func TestFeedNewestOrder(t *testing.T) {
	s := sampleStore()

	got := s.Feed(types.FeedQuery{Tab: types.TabNewest})
	want := []string{"p3", "p1", "p2"}
	if !equal(ids(got), want) {
		t.Errorf("最新排序 = %v, want %v", ids(got), want)
	}
}

func TestFeedNearbyOrder(t *testing.T) {
	s := sampleStore()

	got := s.Feed(types.FeedQuery{Tab: types.TabNearby})
	want := []string{"p1", "p3", "p2"}
	if !equal(ids(got), want) {
		t.Errorf("附近排序 = %v, want %v", ids(got), want)
	}
}

func TestFeedRecommendedStickyFirst(t *testing.T) {
	s := sampleStore()

	// p1 置顶，即使不是最新也应排第一
	got := s.Feed(types.FeedQuery{Tab: types.TabRecommended})
	want := []string{"p1", "p3", "p2"}
	if !equal(ids(got), want) {
		t.Errorf("推荐排序 = %v, want %v", ids(got), want)
	}
}

func TestPrependPost(t *testing.T) {
	s := sampleStore()
	s.PrependPost(types.Post{ID: "p4", PublishTime: 500})

	got := s.Feed(types.FeedQuery{Tab: types.TabNewest})
	if got[0].ID != "p4" {
		t.Errorf("新帖应在最前, got %v", ids(got))
	}
}

func TestUpdateAndRemovePost(t *testing.T) {
	s := sampleStore()

	if !s.UpdatePost(types.Post{ID: "p2", Title: "已改标题", PublishTime: 200}) {
		t.Fatal("UpdatePost 应命中 p2")
	}
	p, _ := s.Post("p2")
	if p.Title != "已改标题" {
		t.Errorf("Title = %q", p.Title)
	}

	if !s.RemovePost("p2") {
		t.Fatal("RemovePost 应命中 p2")
	}
	if _, ok := s.Post("p2"); ok {
		t.Error("p2 应已删除")
	}
	if s.RemovePost("p2") {
		t.Error("重复删除应返回 false")
	}
}

func TestSupportConversation(t *testing.T) {
	s := NewStore("北京")

	s.AppendSupport("u1", types.ChatMessage{ID: "m1", Role: types.RoleUser, Content: "房子还在吗", Timestamp: 1})
	s.AppendSupport("u1", types.ChatMessage{ID: "m2", Role: types.RoleAssistant, Content: "在的", Timestamp: 2})

	if got := s.SupportHistory("u1"); len(got) != 2 {
		t.Fatalf("历史条数 = %d", len(got))
	}
	last, ok := s.LastSupportMessage("u1")
	if !ok || last.ID != "m2" {
		t.Errorf("最后一条 = %+v", last)
	}
	if _, ok := s.LastSupportMessage("u2"); ok {
		t.Error("无会话用户不应有最后消息")
	}
}

func TestParseDistance(t *testing.T) {
	cases := map[string]float64{
		"0.5km": 0.5,
		"12km":  12,
		"":      9999,
		"未知":    9999,
	}
	for in, want := range cases {
		if got := parseDistance(in); got != want {
			t.Errorf("parseDistance(%q) = %v, want %v", in, got, want)
		}
	}
}

func ids(posts []types.Post) []string {
	out := make([]string, len(posts))
	for i, p := range posts {
		out[i] = p.ID
	}
	return out
}

func equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
