package link

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// Scheme is the only link scheme this tool compiles.
const Scheme = "vless"

// Parse normalizes a raw VLESS link into a Link. It is a pure function of
// its input: no defaults beyond the link itself are applied here, except
// that VLESS encryption falls back to "none" as the protocol specifies.
func Parse(raw string) (*Link, error) {
	raw = fixIllegalURL(raw)

	parts := strings.SplitN(raw, "://", 2)
	if len(parts) != 2 {
		return nil, &MalformedLinkError{Field: "scheme", Reason: "link must start with " + Scheme + "://"}
	}
	if !strings.EqualFold(parts[0], Scheme) {
		return nil, &MalformedLinkError{Field: "scheme", Reason: "unsupported scheme " + strconv.Quote(parts[0]) + ", expected " + Scheme}
	}

	u, err := url.Parse(raw)
	if err != nil {
		return nil, &MalformedLinkError{Field: "uri", Reason: err.Error()}
	}

	id := u.User.Username()
	if id == "" {
		return nil, &MalformedLinkError{Field: "uuid", Reason: "user id is missing"}
	}
	if _, err := uuid.Parse(id); err != nil {
		return nil, &MalformedLinkError{Field: "uuid", Reason: "user id is not a UUID"}
	}

	host := u.Hostname()
	if host == "" {
		return nil, &MalformedLinkError{Field: "host", Reason: "server address is missing"}
	}

	portStr := u.Port()
	if portStr == "" {
		return nil, &MalformedLinkError{Field: "port", Reason: "server port is missing"}
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, &MalformedLinkError{Field: "port", Reason: "server port is not a number"}
	}
	if port < 1 || port > 65535 {
		return nil, &MalformedLinkError{Field: "port", Reason: "server port must be in 1..65535"}
	}

	// url.Parse tolerates bad escapes in the query; ParseQuery does not.
	q, err := url.ParseQuery(u.RawQuery)
	if err != nil {
		return nil, &MalformedLinkError{Field: "query", Reason: err.Error()}
	}

	l := &Link{
		RawURI:  raw,
		UUID:    id,
		Address: host,
		Port:    port,
		Remarks: u.Fragment,
	}
	parseQueryParams(l, q)

	if l.Encryption == "" {
		l.Encryption = "none"
	}

	return l, nil
}

// parseQueryParams maps the recognized VLESS query parameters onto the
// Link, collecting everything else into Extra. Repeated keys keep the
// first value, matching urllib's parse_qs picking behavior.
func parseQueryParams(l *Link, q url.Values) {
	for key := range q {
		v := q.Get(key)
		switch key {
		case "encryption":
			l.Encryption = v
		case "flow":
			l.Flow = v
		case "type":
			l.Network = v
		case "headerType":
			l.HeaderType = v
		case "host":
			l.Host = v
		case "path":
			l.Path = v
		case "seed":
			l.Seed = v
		case "serviceName":
			l.ServiceName = v
		case "mode":
			l.Mode = v
		case "authority":
			l.Authority = v
		case "security":
			l.Security = v
		case "sni":
			l.SNI = v
		case "fp":
			l.Fingerprint = v
		case "alpn":
			if v != "" {
				l.ALPN = strings.Split(v, ",")
			}
		case "pbk":
			l.PublicKey = v
		case "sid":
			l.ShortID = v
		case "spx":
			l.SpiderX = v
		case "allowInsecure", "insecure", "allow_insecure":
			l.Insecure = v == "1" || v == "true"
		default:
			if l.Extra == nil {
				l.Extra = make(map[string]string)
			}
			l.Extra[key] = v
		}
	}
}

// fixIllegalURL cleans up common issues in copy-pasted links.
func fixIllegalURL(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, "\r", "")
	s = strings.ReplaceAll(s, "\n", "")
	return s
}
