// Package state 进程内的应用状态。
// 启动时从存储层整体加载，写操作先改内存再异步持久化，
// 读请求全部走这里，不直接打数据库。
package state

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"cityinfo/config"
	"cityinfo/types"
)

type Store struct {
	mu sync.RWMutex

	city         string
	announcement string

	posts      []types.Post
	categories []types.SysCategory
	merchants  map[string]types.Merchant
	services   []types.ServiceItem
	banners    []types.Banner

	support map[string][]types.ChatMessage // 客服会话，key 为用户ID
	direct  map[string][]types.ChatMessage // 普通会话，key 为会话ID
}

// NewAppState 按配置里的兜底城市初始化
func NewAppState(conf *config.Config) *Store {
	return NewStore(conf.App.DefaultCity)
}

func NewStore(defaultCity string) *Store {
	return &Store{
		city:      defaultCity,
		merchants: make(map[string]types.Merchant),
		support:   make(map[string][]types.ChatMessage),
		direct:    make(map[string][]types.ChatMessage),
	}
}

func (s *Store) City() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.city
}

func (s *Store) SetCity(city string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.city = city
}

func (s *Store) Announcement() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.announcement
}

func (s *Store) SetAnnouncement(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.announcement = text
}

func (s *Store) SetPosts(posts []types.Post) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.posts = append([]types.Post(nil), posts...)
}

// PrependPost 新帖插到列表头部，乐观更新
func (s *Store) PrependPost(post types.Post) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.posts = append([]types.Post{post}, s.posts...)
}

func (s *Store) UpdatePost(post types.Post) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.posts {
		if s.posts[i].ID == post.ID {
			s.posts[i] = post
			return true
		}
	}
	return false
}

func (s *Store) RemovePost(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.posts {
		if s.posts[i].ID == id {
			s.posts = append(s.posts[:i], s.posts[i+1:]...)
			return true
		}
	}
	return false
}

func (s *Store) Post(id string) (types.Post, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.posts {
		if s.posts[i].ID == id {
			return s.posts[i], true
		}
	}
	return types.Post{}, false
}

func (s *Store) IncrView(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.posts {
		if s.posts[i].ID == id {
			s.posts[i].ViewCount++
			return
		}
	}
}

// parseDistance 把 "0.5km" 一类的文案转成公里数，缺失视为极远
func parseDistance(s string) float64 {
	if s == "" {
		return 9999
	}
	var sb strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '.' {
			sb.WriteRune(r)
		}
	}
	var v float64
	if _, err := fmt.Sscanf(sb.String(), "%f", &v); err != nil {
		return 9999
	}
	return v
}

// Feed 按分类和关键词过滤，再按所选 Tab 排序
func (s *Store) Feed(q types.FeedQuery) []types.Post {
	s.mu.RLock()
	res := make([]types.Post, 0, len(s.posts))
	search := strings.ToLower(q.Search)
	for _, p := range s.posts {
		if q.Category != "" && q.Category != "ALL" && p.Category != q.Category {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(p.Title), search) &&
			!strings.Contains(strings.ToLower(p.Description), search) {
			continue
		}
		res = append(res, p)
	}
	s.mu.RUnlock()

	switch q.Tab {
	case types.TabNewest:
		sort.SliceStable(res, func(i, j int) bool {
			return res[i].PublishTime > res[j].PublishTime
		})
	case types.TabNearby:
		sort.SliceStable(res, func(i, j int) bool {
			return parseDistance(res[i].Distance) < parseDistance(res[j].Distance)
		})
	default:
		// 推荐：置顶优先，其余按时间
		sort.SliceStable(res, func(i, j int) bool {
			if res[i].IsSticky != res[j].IsSticky {
				return res[i].IsSticky
			}
			return res[i].PublishTime > res[j].PublishTime
		})
	}
	return res
}

func (s *Store) SetCategories(items []types.SysCategory) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.categories = append([]types.SysCategory(nil), items...)
}

func (s *Store) Categories() []types.SysCategory {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]types.SysCategory(nil), s.categories...)
}

func (s *Store) SetMerchants(items []types.Merchant) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.merchants = make(map[string]types.Merchant, len(items))
	for _, m := range items {
		s.merchants[m.ID] = m
	}
}

func (s *Store) Merchant(id string) (types.Merchant, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	m, ok := s.merchants[id]
	return m, ok
}

func (s *Store) Merchants() []types.Merchant {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := make([]types.Merchant, 0, len(s.merchants))
	for _, m := range s.merchants {
		items = append(items, m)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items
}

func (s *Store) SetServices(items []types.ServiceItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.services = append([]types.ServiceItem(nil), items...)
}

func (s *Store) Services(merchantID string) []types.ServiceItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := make([]types.ServiceItem, 0)
	for _, item := range s.services {
		if merchantID == "" || item.MerchantID == merchantID {
			items = append(items, item)
		}
	}
	return items
}

func (s *Store) SetBanners(items []types.Banner) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.banners = append([]types.Banner(nil), items...)
}

func (s *Store) Banners() []types.Banner {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]types.Banner(nil), s.banners...)
}

func (s *Store) SetSupport(convs map[string][]types.ChatMessage) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.support = make(map[string][]types.ChatMessage, len(convs))
	for k, v := range convs {
		s.support[k] = append([]types.ChatMessage(nil), v...)
	}
}

func (s *Store) AppendSupport(userID string, msg types.ChatMessage) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.support[userID] = append(s.support[userID], msg)
}

func (s *Store) SupportHistory(userID string) []types.ChatMessage {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]types.ChatMessage(nil), s.support[userID]...)
}

// LastSupportMessage 该用户客服会话里的最后一条消息
func (s *Store) LastSupportMessage(userID string) (types.ChatMessage, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	msgs := s.support[userID]
	if len(msgs) == 0 {
		return types.ChatMessage{}, false
	}
	return msgs[len(msgs)-1], true
}

// SupportUserIDs 有客服会话的用户，后台会话列表用
func (s *Store) SupportUserIDs() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := make([]string, 0, len(s.support))
	for id := range s.support {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func (s *Store) SetDirect(convs map[string][]types.ChatMessage) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.direct = make(map[string][]types.ChatMessage, len(convs))
	for k, v := range convs {
		s.direct[k] = append([]types.ChatMessage(nil), v...)
	}
}

func (s *Store) AppendDirect(convID string, msg types.ChatMessage) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.direct[convID] = append(s.direct[convID], msg)
}

func (s *Store) DirectHistory(convID string) []types.ChatMessage {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]types.ChatMessage(nil), s.direct[convID]...)
}

// Digest 给客服机器人拼的平台数据摘要：最新帖子和商家概况
func (s *Store) Digest() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var sb strings.Builder
	sb.WriteString("当前平台信息列表:\n")
	limit := len(s.posts)
	if limit > 15 {
		limit = 15
	}
	for _, p := range s.posts[:limit] {
		fmt.Fprintf(&sb, "- [%s] %s 价格:%s 地点:%s 联系电话:%s\n",
			p.Category, p.Title, p.Price, p.Location, p.ContactPhone)
	}
	sb.WriteString("入驻商家:\n")
	for _, id := range sortedKeys(s.merchants) {
		m := s.merchants[id]
		fmt.Fprintf(&sb, "- %s (%s) 评分:%.1f 电话:%s\n", m.Name, m.Address, m.Rating, m.Phone)
	}
	return sb.String()
}

func sortedKeys(m map[string]types.Merchant) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
