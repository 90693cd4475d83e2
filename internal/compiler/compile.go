package compiler

import (
	"sort"

	"vless2json/internal/link"
)

// Flow applied to reality outbounds when the link carries none.
const defaultRealityFlow = "xtls-rprx-vision-udp443"

// Options control document generation beyond the link itself. They come
// from the settings file and CLI flags, never from globals.
type Options struct {
	Listen   string // inbound listen address
	LogLevel string // loglevel of the emitted document
	Strict   bool   // reject query parameters without a recognized mapping
	Routing  RoutingOptions
}

type RoutingOptions struct {
	BlockPrivate     bool
	BittorrentDirect bool
	ProxyDomains     []string
	DirectDomains    []string
	DirectGeoIPs     []string
}

// DefaultOptions mirror the behavior of the original converter: loopback
// inbounds, warning-level engine logs, and a routing table that keeps
// regional and torrent traffic off the proxy.
func DefaultOptions() Options {
	return Options{
		Listen:   "127.0.0.1",
		LogLevel: "warning",
		Routing: RoutingOptions{
			BlockPrivate:     true,
			BittorrentDirect: true,
			DirectDomains: []string{
				"geosite:cn",
				"domain:cn",
				"domain:xn--fiqs8s",
				"domain:xn--fiqz9s",
				"domain:xn--55qx5d",
				"domain:xn--io0a7i",
				"domain:ru",
				"domain:xn--p1ai",
				"domain:by",
				"domain:xn--90ais",
				"domain:ir",
			},
			DirectGeoIPs: []string{
				"geoip:cn",
				"geoip:ru",
				"geoip:by",
				"geoip:ir",
			},
		},
	}
}

// Build derives the full configuration document from a parsed link and
// resolved bindings. It is deterministic and has no side effects; the
// document only touches disk after every stage has succeeded.
func Build(l *link.Link, b Bindings, opts Options) (*Document, error) {
	if opts.Strict && len(l.Extra) > 0 {
		keys := make([]string, 0, len(l.Extra))
		for k := range l.Extra {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		return nil, &UnsupportedTransportError{
			Param:  keys[0],
			Value:  l.Extra[keys[0]],
			Reason: "no recognized mapping for this parameter (strict mode)",
		}
	}

	stream, err := buildStreamSettings(l)
	if err != nil {
		return nil, err
	}

	flow := l.Flow
	if flow == "" && stream.Security == "reality" {
		flow = defaultRealityFlow
	}

	return &Document{
		Log: LogSettings{
			Access: "none",
			Error:  "",
			Level:  opts.LogLevel,
			DNSLog: false,
		},
		Policy: PolicySettings{
			Levels: map[string]LevelPolicy{
				"0": {StatsUserUplink: true, StatsUserDownlink: true},
			},
			System: SystemPolicy{
				StatsOutboundUplink:   true,
				StatsOutboundDownlink: true,
			},
		},
		API: APISettings{
			Tag:      "api",
			Services: []string{"StatsService"},
		},
		Inbounds: []Inbound{
			inbound("http", b.HTTPPort, opts.Listen),
			inbound("socks", b.SocksPort, opts.Listen),
		},
		Outbounds: []Outbound{
			{
				Tag:      "proxy",
				Protocol: "vless",
				Settings: &OutboundSettings{
					Vnext: []Vnext{{
						Address: l.Address,
						Port:    l.Port,
						Users: []User{{
							ID:         l.UUID,
							Encryption: l.Encryption,
							Flow:       flow,
						}},
					}},
				},
				StreamSettings: stream,
			},
			{Tag: "direct", Protocol: "freedom", Settings: &OutboundSettings{}},
			{Tag: "block", Protocol: "blackhole"},
		},
		Routing: buildRouting(opts.Routing),
	}, nil
}

func inbound(protocol string, port int, listen string) Inbound {
	return Inbound{
		Tag:      protocol,
		Port:     port,
		Listen:   listen,
		Protocol: protocol,
		Sniffing: Sniffing{
			Enabled:      true,
			DestOverride: []string{"http", "tls"},
			RouteOnly:    true,
		},
		Settings: InboundSettings{Auth: "noauth", UDP: true},
	}
}

// buildStreamSettings maps the link's transport/security parameters onto
// exactly one variant per dimension. Values outside the enumerated sets
// are rejected rather than passed through, since the engine would choke
// on them anyway.
func buildStreamSettings(l *link.Link) (*StreamSettings, error) {
	network := l.Network
	if network == "" {
		network = "tcp"
	}
	security := l.Security
	if security == "" {
		security = "reality"
	}

	sc := &StreamSettings{Network: network, Security: security}

	switch security {
	case "none":
	case "tls":
		sc.TLSSettings = &TLSSettings{
			ServerName:    l.SNI,
			Fingerprint:   l.Fingerprint,
			ALPN:          l.ALPN,
			AllowInsecure: l.Insecure,
		}
	case "reality":
		sc.RealitySettings = &RealitySettings{
			Fingerprint: l.Fingerprint,
			ServerName:  l.SNI,
			Show:        false,
			PublicKey:   l.PublicKey,
			ShortID:     l.ShortID,
			SpiderX:     l.SpiderX,
		}
	default:
		return nil, &UnsupportedTransportError{Param: "security", Value: security, Reason: "expected none, tls or reality"}
	}

	switch network {
	case "tcp":
		if l.HeaderType == "http" {
			sc.TCPSettings = &TCPSettings{
				Header: TCPHeader{
					Type: "http",
					Request: &TCPRequest{
						Path:    []string{pathOrRoot(l.Path)},
						Headers: map[string][]string{"Host": {l.Host}},
					},
				},
			}
		}
	case "ws":
		sc.WSSettings = &WebSocketSettings{Path: l.Path}
		if l.Host != "" {
			sc.WSSettings.Headers = map[string]string{"Host": l.Host}
		}
	case "grpc":
		sc.GRPCSettings = &GRPCSettings{
			ServiceName: l.ServiceName,
			Authority:   l.Authority,
			MultiMode:   l.Mode == "multi",
		}
	case "kcp":
		sc.KCPSettings = &KCPSettings{Seed: l.Seed}
	default:
		return nil, &UnsupportedTransportError{Param: "type", Value: network, Reason: "expected tcp, ws, grpc or kcp"}
	}

	return sc, nil
}

func pathOrRoot(p string) string {
	if p == "" {
		return "/"
	}
	return p
}

func buildRouting(r RoutingOptions) RoutingSettings {
	rules := []RoutingRule{
		{Type: "field", InboundTag: []string{"api"}, OutboundTag: "api"},
	}

	if r.BlockPrivate {
		rules = append(rules, RoutingRule{
			Type: "field", IP: []string{"geoip:private"}, OutboundTag: "block",
		})
	}

	if r.BittorrentDirect {
		rules = append(rules,
			RoutingRule{Type: "field", Protocol: []string{"bittorrent"}, OutboundTag: "direct"},
			RoutingRule{Type: "field", Port: "6969,6881-6889", OutboundTag: "direct"},
			RoutingRule{Type: "field", SourcePort: "6881-6889", OutboundTag: "direct"},
		)
	}

	if len(r.ProxyDomains) > 0 {
		rules = append(rules, RoutingRule{
			Type: "field", Domain: r.ProxyDomains, OutboundTag: "proxy",
		})
	}
	if len(r.DirectDomains) > 0 {
		rules = append(rules, RoutingRule{
			Type: "field", Domain: r.DirectDomains, OutboundTag: "direct",
		})
	}
	if len(r.DirectGeoIPs) > 0 {
		rules = append(rules, RoutingRule{
			Type: "field", IP: r.DirectGeoIPs, OutboundTag: "direct",
		})
	}

	return RoutingSettings{DomainStrategy: "AsIs", Rules: rules}
}
