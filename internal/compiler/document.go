package compiler

// Document is the Xray client configuration this tool emits. Field order
// below is the key order of the serialized JSON, so it is fixed.
type Document struct {
	Log       LogSettings     `json:"log"`
	Stats     struct{}        `json:"stats"`
	Policy    PolicySettings  `json:"policy"`
	API       APISettings     `json:"api"`
	Inbounds  []Inbound       `json:"inbounds"`
	Outbounds []Outbound      `json:"outbounds"`
	Routing   RoutingSettings `json:"routing"`
}

type LogSettings struct {
	Access string `json:"access"`
	Error  string `json:"error"`
	Level  string `json:"loglevel"`
	DNSLog bool   `json:"dnsLog"`
}

type PolicySettings struct {
	Levels map[string]LevelPolicy `json:"levels"`
	System SystemPolicy           `json:"system"`
}

type LevelPolicy struct {
	StatsUserUplink   bool `json:"statsUserUplink"`
	StatsUserDownlink bool `json:"statsUserDownlink"`
}

type SystemPolicy struct {
	StatsOutboundUplink   bool `json:"statsOutboundUplink"`
	StatsOutboundDownlink bool `json:"statsOutboundDownlink"`
}

type APISettings struct {
	Tag      string   `json:"tag"`
	Services []string `json:"services"`
}

type Inbound struct {
	Tag      string          `json:"tag"`
	Port     int             `json:"port"`
	Listen   string          `json:"listen"`
	Protocol string          `json:"protocol"`
	Sniffing Sniffing        `json:"sniffing"`
	Settings InboundSettings `json:"settings"`
}

type Sniffing struct {
	Enabled      bool     `json:"enabled"`
	DestOverride []string `json:"destOverride"`
	RouteOnly    bool     `json:"routeOnly"`
}

type InboundSettings struct {
	Auth string `json:"auth"`
	UDP  bool   `json:"udp"`
}

type Outbound struct {
	Tag            string            `json:"tag"`
	Protocol       string            `json:"protocol"`
	Settings       *OutboundSettings `json:"settings,omitempty"`
	StreamSettings *StreamSettings   `json:"streamSettings,omitempty"`
}

type OutboundSettings struct {
	Vnext []Vnext `json:"vnext,omitempty"`
}

type Vnext struct {
	Address string `json:"address"`
	Port    int    `json:"port"`
	Users   []User `json:"users"`
}

type User struct {
	ID         string `json:"id"`
	Encryption string `json:"encryption"`
	Flow       string `json:"flow,omitempty"`
}

type StreamSettings struct {
	Network         string             `json:"network"`
	Security        string             `json:"security"`
	TLSSettings     *TLSSettings       `json:"tlsSettings,omitempty"`
	RealitySettings *RealitySettings   `json:"realitySettings,omitempty"`
	TCPSettings     *TCPSettings       `json:"tcpSettings,omitempty"`
	WSSettings      *WebSocketSettings `json:"wsSettings,omitempty"`
	GRPCSettings    *GRPCSettings      `json:"grpcSettings,omitempty"`
	KCPSettings     *KCPSettings       `json:"kcpSettings,omitempty"`
}

type TLSSettings struct {
	ServerName    string   `json:"serverName,omitempty"`
	Fingerprint   string   `json:"fingerprint,omitempty"`
	ALPN          []string `json:"alpn,omitempty"`
	AllowInsecure bool     `json:"allowInsecure,omitempty"`
}

type RealitySettings struct {
	Fingerprint string `json:"fingerprint"`
	ServerName  string `json:"serverName"`
	Show        bool   `json:"show"`
	PublicKey   string `json:"publicKey"`
	ShortID     string `json:"shortId"`
	SpiderX     string `json:"spiderX,omitempty"`
}

type TCPSettings struct {
	Header TCPHeader `json:"header"`
}

type TCPHeader struct {
	Type    string      `json:"type"`
	Request *TCPRequest `json:"request,omitempty"`
}

type TCPRequest struct {
	Path    []string            `json:"path,omitempty"`
	Headers map[string][]string `json:"headers,omitempty"`
}

type WebSocketSettings struct {
	Path    string            `json:"path,omitempty"`
	Headers map[string]string `json:"headers,omitempty"`
}

type GRPCSettings struct {
	ServiceName string `json:"serviceName,omitempty"`
	Authority   string `json:"authority,omitempty"`
	MultiMode   bool   `json:"multiMode,omitempty"`
}

type KCPSettings struct {
	Seed string `json:"seed,omitempty"`
}

type RoutingSettings struct {
	DomainStrategy string        `json:"domainStrategy"`
	Rules          []RoutingRule `json:"rules"`
}

type RoutingRule struct {
	Type        string   `json:"type"`
	InboundTag  []string `json:"inboundTag,omitempty"`
	Protocol    []string `json:"protocol,omitempty"`
	Domain      []string `json:"domain,omitempty"`
	IP          []string `json:"ip,omitempty"`
	Port        string   `json:"port,omitempty"`
	SourcePort  string   `json:"sourcePort,omitempty"`
	OutboundTag string   `json:"outboundTag"`
}
