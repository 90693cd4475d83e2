package compiler

// Default local inbound ports, used when neither a flag nor the settings
// file supplies one.
const (
	DefaultHTTPPort  = 1080
	DefaultSocksPort = 1090
)

// UnsetPort marks a port as not supplied. Anything else, zero included,
// is validated as a real value.
const UnsetPort = -1

// Bindings holds the two local inbound ports of the generated document.
type Bindings struct {
	HTTPPort  int
	SocksPort int
}

// ResolveBindings applies defaults for unset ports and enforces range and
// distinctness. Both inbounds always exist, so the ports may never
// collide.
func ResolveBindings(httpPort, socksPort int) (Bindings, error) {
	b := Bindings{HTTPPort: httpPort, SocksPort: socksPort}
	if b.HTTPPort == UnsetPort {
		b.HTTPPort = DefaultHTTPPort
	}
	if b.SocksPort == UnsetPort {
		b.SocksPort = DefaultSocksPort
	}

	if b.HTTPPort < 1 || b.HTTPPort > 65535 {
		return Bindings{}, &InvalidPortError{Field: "http-proxy", Port: b.HTTPPort, Reason: "must be in 1..65535"}
	}
	if b.SocksPort < 1 || b.SocksPort > 65535 {
		return Bindings{}, &InvalidPortError{Field: "socks5-proxy", Port: b.SocksPort, Reason: "must be in 1..65535"}
	}
	if b.HTTPPort == b.SocksPort {
		return Bindings{}, &InvalidPortError{Field: "socks5-proxy", Port: b.SocksPort, Reason: "must differ from http-proxy port"}
	}

	return b, nil
}
