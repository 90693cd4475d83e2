package engine

import (
	"testing"

	"vless2json/internal/compiler"
	"vless2json/internal/link"
)

func TestCheck_InvalidJSON(t *testing.T) {
	if err := Check([]byte("{not json")); err == nil {
		t.Fatalf("expected error for invalid JSON")
	}
}

func TestCheck_NoOutbounds(t *testing.T) {
	if err := Check([]byte(`{"inbounds": []}`)); err == nil {
		t.Fatalf("expected error for document without outbounds")
	}
}

func TestCheck_FreedomOutbound(t *testing.T) {
	doc := []byte(`{"outbounds": [{"tag": "direct", "protocol": "freedom", "settings": {}}]}`)
	if err := Check(doc); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCheck_CompiledDocument(t *testing.T) {
	l, err := link.Parse("vless://11111111-2222-3333-4444-555555555555@example.com:443?security=tls&type=tcp#MyNode")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	b, err := compiler.ResolveBindings(compiler.UnsetPort, compiler.UnsetPort)
	if err != nil {
		t.Fatalf("resolve bindings: %v", err)
	}
	built, err := compiler.Build(l, b, compiler.DefaultOptions())
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	data, err := built.Encode()
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	if err := Check(data); err != nil {
		t.Fatalf("engine rejected compiled document: %v", err)
	}
}
