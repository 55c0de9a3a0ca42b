package env

type K string

const (
	HTTP_PROXY         K = "http_proxy"
	HTTPS_PROXY        K = "https_proxy"
	PROXYSELECT_DEBUG  K = "PROXYSELECT_DEBUG"
	PROXYSELECT_CONFIG K = "PROXYSELECT_CONFIG"
)

func (k K) With(s string) string {
	return string(k) + "=" + s
}
