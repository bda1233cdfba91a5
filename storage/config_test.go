package storage

import "testing"

func TestUnwrapValue(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want string
	}{
		{"裸字符串", "欢迎来到本地生活", "欢迎来到本地生活"},
		{"JSON字符串", `"欢迎"`, "欢迎"},
		{"value包装", `{"value":"欢迎"}`, "欢迎"},
		{"value包装数字", `{"value":2000}`, "2000"},
		{"无value字段的对象", `{"model":"deepseek-chat"}`, `{"model":"deepseek-chat"}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := unwrapValue(tc.raw); got != tc.want {
				t.Errorf("unwrapValue(%q) = %q, want %q", tc.raw, got, tc.want)
			}
		})
	}
}
