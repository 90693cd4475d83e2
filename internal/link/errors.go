package link

import "fmt"

// MalformedLinkError reports a link that does not satisfy the
// vless://<uuid>@host:port?[query...]#[name] shape.
type MalformedLinkError struct {
	Field  string
	Reason string
}

func (e *MalformedLinkError) Error() string {
	return fmt.Sprintf("malformed link: %s: %s", e.Field, e.Reason)
}
