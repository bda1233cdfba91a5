package geo

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"cityinfo/config"

	"github.com/tidwall/gjson"
)

const defaultEndpoint = "https://nominatim.openstreetmap.org/reverse"

// Locator 逆地理编码，按经纬度解析展示城市。
// 纯尽力而为：失败调用方回退到默认城市即可。
type Locator struct {
	endpoint string
	client   *http.Client
}

func NewLocator(conf *config.Config) *Locator {
	endpoint := defaultEndpoint
	timeout := 5 * time.Second
	if conf.Geo != nil {
		if conf.Geo.Endpoint != "" {
			endpoint = conf.Geo.Endpoint
		}
		if conf.Geo.TimeoutSec > 0 {
			timeout = time.Duration(conf.Geo.TimeoutSec) * time.Second
		}
	}
	return &Locator{
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
	}
}

func (l *Locator) CityByCoord(ctx context.Context, lat, lng float64) (string, error) {
	url := fmt.Sprintf("%s?format=json&lat=%f&lon=%f&zoom=10&accept-language=zh-CN", l.endpoint, lat, lng)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	resp, err := l.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("nominatim status %d", resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	city := ParseCity(body)
	if city == "" {
		return "", fmt.Errorf("no city in response")
	}
	return city, nil
}

// ParseCity 取 city -> municipality -> town -> county 的第一个非空项，去掉“市”后缀
func ParseCity(body []byte) string {
	addr := gjson.GetBytes(body, "address")
	for _, field := range []string{"city", "municipality", "town", "county"} {
		if v := addr.Get(field).String(); v != "" {
			return strings.TrimSuffix(v, "市")
		}
	}
	return ""
}
