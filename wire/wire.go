// Package wire is the runtime support package imported by generated CDP
// bindings. It defines the request envelope produced by generated commands,
// the single-shot call protocol error, and the event registry used to decode
// inbound protocol events by tag.
//
// The package is deliberately codec-agnostic: decoders receive raw bytes and
// the generated code chooses the JSON implementation.
package wire

import (
	"errors"
	"fmt"
	"sort"
)

// ErrCallDone is reported when a generated command call is resumed more than
// once. Each call yields exactly one request and accepts exactly one
// response.
var ErrCallDone = errors.New("wire: call already resumed")

// Request is the envelope a generated command hands to the transport.
// Params is nil for commands without parameters, in which case the params
// key is omitted from the encoded form.
type Request struct {
	Method string `json:"method"`
	Params any    `json:"params,omitempty"`
}

// EventDecoder turns the raw payload of an inbound event into its typed
// representation.
type EventDecoder func(data []byte) (any, error)

// Registry maps event tags ("Domain.eventName") to decoders. It is built
// once from the generated per-domain decoder tables and is read-only
// afterwards.
type Registry struct {
	decoders map[string]EventDecoder
}

// NewRegistry merges per-domain decoder tables into a single registry. A tag
// appearing in more than one table is an error: a duplicate would silently
// shadow another domain's event.
func NewRegistry(tables ...map[string]EventDecoder) (*Registry, error) {
	decoders := make(map[string]EventDecoder)
	for _, table := range tables {
		for tag, decode := range table {
			if _, exists := decoders[tag]; exists {
				return nil, fmt.Errorf("wire: duplicate event tag %q", tag)
			}
			decoders[tag] = decode
		}
	}
	return &Registry{decoders: decoders}, nil
}

// Decode looks up the decoder for tag and applies it to data.
func (r *Registry) Decode(tag string, data []byte) (any, error) {
	decode, ok := r.decoders[tag]
	if !ok {
		return nil, fmt.Errorf("wire: unknown event tag %q", tag)
	}
	return decode(data)
}

// Has reports whether the registry can decode events with the given tag.
func (r *Registry) Has(tag string) bool {
	_, ok := r.decoders[tag]
	return ok
}

// Tags returns every registered event tag in sorted order.
func (r *Registry) Tags() []string {
	tags := make([]string, 0, len(r.decoders))
	for tag := range r.decoders {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}
