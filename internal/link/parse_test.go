package link

import (
	"errors"
	"testing"
)

const sampleUUID = "11111111-2222-3333-4444-555555555555"

func TestParse_FullLink(t *testing.T) {
	raw := "vless://" + sampleUUID + "@example.com:443?security=tls&type=ws&path=%2Fws&host=cdn.example.com&sni=example.com&fp=chrome&alpn=h2,http/1.1&allowInsecure=1#My%20Node"
	l, err := Parse(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if l.UUID != sampleUUID {
		t.Fatalf("uuid=%q, want=%q", l.UUID, sampleUUID)
	}
	if l.Address != "example.com" || l.Port != 443 {
		t.Fatalf("address/port=%q/%d, want example.com/443", l.Address, l.Port)
	}
	if l.Security != "tls" || l.Network != "ws" {
		t.Fatalf("security/network=%q/%q, want tls/ws", l.Security, l.Network)
	}
	if l.Path != "/ws" {
		t.Fatalf("path=%q, want=%q", l.Path, "/ws")
	}
	if l.Host != "cdn.example.com" || l.SNI != "example.com" || l.Fingerprint != "chrome" {
		t.Fatalf("host/sni/fp=%q/%q/%q", l.Host, l.SNI, l.Fingerprint)
	}
	if len(l.ALPN) != 2 || l.ALPN[0] != "h2" || l.ALPN[1] != "http/1.1" {
		t.Fatalf("alpn=%v, want [h2 http/1.1]", l.ALPN)
	}
	if !l.Insecure {
		t.Fatalf("insecure=false, want=true")
	}
	if l.Remarks != "My Node" {
		t.Fatalf("remarks=%q, want=%q", l.Remarks, "My Node")
	}
	if len(l.Extra) != 0 {
		t.Fatalf("extra=%v, want empty", l.Extra)
	}
}

func TestParse_RealityLink(t *testing.T) {
	raw := "vless://" + sampleUUID + "@1.2.3.4:8443?security=reality&pbk=KEY&sid=0f&spx=%2F&fp=chrome&flow=xtls-rprx-vision"
	l, err := Parse(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if l.Security != "reality" || l.PublicKey != "KEY" || l.ShortID != "0f" {
		t.Fatalf("security/pbk/sid=%q/%q/%q", l.Security, l.PublicKey, l.ShortID)
	}
	if l.SpiderX != "/" {
		t.Fatalf("spx=%q, want=%q", l.SpiderX, "/")
	}
	if l.Flow != "xtls-rprx-vision" {
		t.Fatalf("flow=%q, want=xtls-rprx-vision", l.Flow)
	}
}

func TestParse_EncryptionDefaultsToNone(t *testing.T) {
	l, err := Parse("vless://" + sampleUUID + "@example.com:443")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if l.Encryption != "none" {
		t.Fatalf("encryption=%q, want=none", l.Encryption)
	}
}

func TestParse_SchemeCaseInsensitive(t *testing.T) {
	if _, err := Parse("VLESS://" + sampleUUID + "@example.com:443"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestParse_UnknownParamsCollected(t *testing.T) {
	l, err := Parse("vless://" + sampleUUID + "@example.com:443?foo=bar&headerType=http")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if l.HeaderType != "http" {
		t.Fatalf("headerType=%q, want=http", l.HeaderType)
	}
	if len(l.Extra) != 1 || l.Extra["foo"] != "bar" {
		t.Fatalf("extra=%v, want map[foo:bar]", l.Extra)
	}
}

func TestParse_MalformedLinks(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{"missing prefix", sampleUUID + "@example.com:443"},
		{"wrong scheme", "trojan://" + sampleUUID + "@example.com:443"},
		{"missing uuid", "vless://example.com:443"},
		{"empty uuid", "vless://@example.com:443"},
		{"uuid not a uuid", "vless://not-a-uuid@example.com:443"},
		{"missing host", "vless://" + sampleUUID + "@:443"},
		{"missing port", "vless://" + sampleUUID + "@example.com"},
		{"port zero", "vless://" + sampleUUID + "@example.com:0"},
		{"port out of range", "vless://" + sampleUUID + "@example.com:70000"},
		{"port not numeric", "vless://" + sampleUUID + "@example.com:abc"},
		{"bad query escape", "vless://" + sampleUUID + "@example.com:443?path=%zz"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(tc.raw)
			var me *MalformedLinkError
			if !errors.As(err, &me) {
				t.Fatalf("expected *MalformedLinkError, got %T: %v", err, err)
			}
		})
	}
}

func TestParse_TrimsWhitespace(t *testing.T) {
	l, err := Parse("  vless://" + sampleUUID + "@example.com:443\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if l.Address != "example.com" {
		t.Fatalf("address=%q, want=example.com", l.Address)
	}
}
