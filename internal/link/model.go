package link

// Link is the normalized form of a VLESS share link. It is built once by
// Parse and never mutated afterwards.
type Link struct {
	RawURI  string
	UUID    string
	Address string
	Port    int
	Remarks string

	// Protocol
	Encryption string // "none" unless the link says otherwise
	Flow       string

	// Transport
	Network     string // tcp, ws, grpc, kcp; empty means tcp
	HeaderType  string // none, http
	Host        string // request Host for ws/http-obfs
	Path        string
	Seed        string // kcp
	ServiceName string // grpc
	Mode        string // grpc mode (gun/multi)
	Authority   string // grpc

	// Security (TLS/REALITY)
	Security    string // tls, reality, none; empty means reality
	SNI         string
	Fingerprint string
	ALPN        []string
	Insecure    bool

	// REALITY
	PublicKey string // pbk
	ShortID   string // sid
	SpiderX   string // spx

	// Query parameters with no recognized mapping, keyed by name.
	// Strict mode rejects the link when this is non-empty.
	Extra map[string]string
}
