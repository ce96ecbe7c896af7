package request

import (
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

// New builds the shared outbound HTTP client. The timeout bounds every
// upstream call; there is no retry policy.
func New(timeout time.Duration) *resty.Client {
	return resty.New().SetTransport(&http.Transport{
		Proxy: http.ProxyFromEnvironment, // 通用适配环境变量
	}).SetTimeout(timeout)
}
