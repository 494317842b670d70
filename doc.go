// Package viewstate encodes and decodes the view state of a request
// browser as a JSON object keyed by the name of the active state.
//
// A [State] is exactly one of four mutually exclusive states. On the wire
// the active state contributes the only key of the encoded object, so key
// presence doubles as the variant discriminator:
//
//	{"empty": true}
//	{"editing": "body"}
//	{"history": {"url": "...", "headers": [...]}}
//	{"list": ["<uuid>", [{"name": "..."}]]}
//
// See the [github.com/httpdeck/go-viewstate/snapshot] package for
// persisting encoded states through a pluggable storage driver.
package viewstate
