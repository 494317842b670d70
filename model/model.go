// Package model holds the plain payload records carried by view states.
// The records have no behavior of their own; the codec treats them as
// opaque values with their own encode and decode contracts.
package model

// Item is a stored request shown in the request list.
type Item struct {
	// Name is the display name of the request.
	Name string `json:"name" msgpack:"name"`
}

// Connection describes the server a history view is scoped to.
type Connection struct {
	// URL is the base URL of the server.
	URL string `json:"url" msgpack:"url"`
	// Headers are the default headers sent with every request, in order.
	Headers []string `json:"headers" msgpack:"headers"`
}
