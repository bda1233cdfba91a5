package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"cityinfo/config"
	"cityinfo/pkg/log"

	cmap "github.com/orcaman/concurrent-map/v2"
	"go.uber.org/zap"
)

// Local 本地兜底键值存储。
// 远端库不可用时，各实体的读写降级到这里；按 bucket/id 两级寻址，
// 写操作同步落盘到单个 JSON 文件，进程重启后可恢复。
type Local struct {
	path string
	data cmap.ConcurrentMap[string, json.RawMessage]

	mu sync.Mutex // 串行化落盘
}

func NewLocal(conf *config.Config) *Local {
	path := "data/fallback.json"
	if conf.Fallback != nil && conf.Fallback.Path != "" {
		path = conf.Fallback.Path
	}
	return Open(path)
}

func Open(path string) *Local {
	l := &Local{
		path: path,
		data: cmap.New[json.RawMessage](),
	}
	l.load()
	return l
}

func key(bucket, id string) string {
	return bucket + "/" + id
}

func (l *Local) Put(bucket, id string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	l.data.Set(key(bucket, id), raw)
	return l.flush()
}

func (l *Local) Get(bucket, id string, out any) bool {
	raw, ok := l.data.Get(key(bucket, id))
	if !ok {
		return false
	}
	return json.Unmarshal(raw, out) == nil
}

func (l *Local) Delete(bucket, id string) error {
	l.data.Remove(key(bucket, id))
	return l.flush()
}

func (l *Local) Len(bucket string) int {
	n := 0
	prefix := bucket + "/"
	for k := range l.data.Items() {
		if strings.HasPrefix(k, prefix) {
			n++
		}
	}
	return n
}

// List 取出一个 bucket 下的全部对象，顺序不保证，调用方自行排序
func List[T any](l *Local, bucket string) []T {
	prefix := bucket + "/"
	out := make([]T, 0)
	for k, raw := range l.data.Items() {
		if !strings.HasPrefix(k, prefix) {
			continue
		}
		var v T
		if err := json.Unmarshal(raw, &v); err != nil {
			log.L.Warn("local store: broken record", zap.String("key", k), zap.Error(err))
			continue
		}
		out = append(out, v)
	}
	return out
}

func (l *Local) load() {
	content, err := os.ReadFile(l.path)
	if err != nil {
		// 文件不存在属于正常情况（首次启动）
		return
	}
	snapshot := make(map[string]json.RawMessage)
	if err := json.Unmarshal(content, &snapshot); err != nil {
		log.L.Warn("local store: broken snapshot, starting empty", zap.Error(err))
		return
	}
	for k, v := range snapshot {
		l.data.Set(k, v)
	}
}

func (l *Local) flush() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	snapshot := l.data.Items()
	content, err := json.Marshal(snapshot)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(l.path); dir != "." {
		_ = os.MkdirAll(dir, 0o755)
	}
	return os.WriteFile(l.path, content, 0o644)
}
