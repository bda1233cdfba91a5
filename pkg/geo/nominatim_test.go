package geo

import "testing"

func TestParseCity(t *testing.T) {
	cases := []struct {
		name string
		body string
		want string
	}{
		{
			name: "city 优先",
			body: `{"address":{"city":"杭州市","county":"余杭区"}}`,
			want: "杭州",
		},
		{
			name: "直辖市走 municipality",
			body: `{"address":{"municipality":"北京市","town":"中关村"}}`,
			want: "北京",
		},
		{
			name: "县级兜底",
			body: `{"address":{"county":"颍上县"}}`,
			want: "颍上县",
		},
		{
			name: "无地址",
			body: `{"error":"Unable to geocode"}`,
			want: "",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ParseCity([]byte(tc.body)); got != tc.want {
				t.Fatalf("ParseCity() = %q, want %q", got, tc.want)
			}
		})
	}
}
