package systemproxy

import (
	"bufio"
	"context"
	"fmt"
	"net"
	"net/http"
	"net/url"
)

type connectDialer struct {
	proxy   Endpoint
	forward *net.Dialer
}

func (d *connectDialer) DialContext(ctx context.Context, network string, address string) (net.Conn, error) {
	return DialServerViaCONNECT(ctx, address, d.proxy, d.forward)
}

// DialServerViaCONNECT opens a tunnel to addr through the HTTP proxy ep.
func DialServerViaCONNECT(ctx context.Context, addr string, ep Endpoint, forward *net.Dialer) (net.Conn, error) {
	proxyAddr := ep.Address()
	c, err := forward.DialContext(ctx, "tcp", proxyAddr)
	if err != nil {
		return nil, fmt.Errorf("dialing proxy %q failed: %w", proxyAddr, err)
	}
	h := make(http.Header)
	h.Set("Proxy-Connection", "Keep-Alive")
	connect := &http.Request{
		Method: "CONNECT",
		URL:    &url.URL{Opaque: addr},
		Host:   addr,
		Header: h,
	}
	if deadline, ok := ctx.Deadline(); ok {
		_ = c.SetDeadline(deadline)
		defer c.SetDeadline(noDeadline) // nolint
	}
	if err := connect.Write(c); err != nil {
		_ = c.Close()
		return nil, err
	}
	br := bufio.NewReader(c)
	res, err := http.ReadResponse(br, nil)
	if err != nil {
		_ = c.Close()
		return nil, fmt.Errorf("reading HTTP response from CONNECT to %s via proxy %s failed: %w",
			addr, proxyAddr, err)
	}
	if res.StatusCode != 200 {
		_ = c.Close()
		return nil, fmt.Errorf("proxy error from %s while dialing %s: %v", proxyAddr, addr, res.Status)
	}

	// The target speaks first only after the client does for the protocols we
	// tunnel, so nothing may be buffered past the response.
	if br.Buffered() > 0 {
		_ = c.Close()
		return nil, fmt.Errorf("unexpected %d bytes of buffered data from CONNECT proxy %q",
			br.Buffered(), proxyAddr)
	}
	return c, nil
}
