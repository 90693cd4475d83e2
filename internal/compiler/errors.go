package compiler

import "fmt"

// InvalidPortError reports a local inbound port that is out of range or
// collides with the other inbound.
type InvalidPortError struct {
	Field  string
	Port   int
	Reason string
}

func (e *InvalidPortError) Error() string {
	return fmt.Sprintf("invalid port: %s=%d: %s", e.Field, e.Port, e.Reason)
}

// UnsupportedTransportError reports a query parameter the compiler has no
// mapping for: an unknown network/security value, or (in strict mode) a
// query key outside the recognized set.
type UnsupportedTransportError struct {
	Param  string
	Value  string
	Reason string
}

func (e *UnsupportedTransportError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("unsupported transport: %s: %s", e.Param, e.Reason)
	}
	return fmt.Sprintf("unsupported transport: %s=%q: %s", e.Param, e.Value, e.Reason)
}
