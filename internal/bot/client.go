package bot

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"net/url"

	"github.com/ppiankov/grammatika/internal/model"
	xproxy "golang.org/x/net/proxy"
)

// NewHTTPClient builds the HTTP client used for Telegram API calls.
// It honors explicit HTTP(S) proxy settings, falls back to the proxy
// environment variables, and supports a SOCKS5 proxy, which takes
// precedence when configured.
func NewHTTPClient(cfg model.TelegramConfig) (*http.Client, error) {
	transport := &http.Transport{
		Proxy: proxyFunc(cfg.HTTPProxy, cfg.HTTPSProxy),
	}

	if cfg.SOCKS5Proxy != "" {
		dialer, err := xproxy.SOCKS5("tcp", cfg.SOCKS5Proxy, nil, xproxy.Direct)
		if err != nil {
			return nil, fmt.Errorf("socks5 proxy %s: %w", cfg.SOCKS5Proxy, err)
		}
		transport.Proxy = nil
		if contextDialer, ok := dialer.(xproxy.ContextDialer); ok {
			transport.DialContext = contextDialer.DialContext
		} else {
			transport.DialContext = func(ctx context.Context, network, addr string) (net.Conn, error) {
				return dialer.Dial(network, addr)
			}
		}
	}

	return &http.Client{
		Timeout:   cfg.Timeout,
		Transport: transport,
	}, nil
}

// proxyFunc creates a proxy function based on configuration.
// If no proxy URLs are provided, falls back to environment variables.
func proxyFunc(httpProxy, httpsProxy string) func(*http.Request) (*url.URL, error) {
	if httpProxy == "" && httpsProxy == "" {
		return http.ProxyFromEnvironment
	}

	return func(req *http.Request) (*url.URL, error) {
		if req.URL.Scheme == "https" && httpsProxy != "" {
			return url.Parse(httpsProxy)
		}
		if httpProxy != "" {
			return url.Parse(httpProxy)
		}
		return http.ProxyFromEnvironment(req)
	}
}
