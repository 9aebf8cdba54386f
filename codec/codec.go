// Package codec layers payload decoding on top of the binget core: a Codec
// unmarshals an opaque frame payload into a Go value, and Frame builds the
// Get computation that extracts one length-prefixed frame from the stream.
package codec

import (
	gojson "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// Codec decodes an opaque payload into a Go value. Implementations must be
// safe for concurrent use.
type Codec interface {
	Name() string
	Unmarshal(data []byte, v any) error
}

// JSON returns the JSON payload codec, backed by goccy/go-json.
func JSON() Codec { return jsonCodec{} }

type jsonCodec struct{}

func (jsonCodec) Name() string { return "json" }

func (jsonCodec) Unmarshal(data []byte, v any) error { return gojson.Unmarshal(data, v) }

// YAML returns the YAML payload codec, backed by gopkg.in/yaml.v3.
func YAML() Codec { return yamlCodec{} }

type yamlCodec struct{}

func (yamlCodec) Name() string { return "yaml" }

func (yamlCodec) Unmarshal(data []byte, v any) error { return yaml.Unmarshal(data, v) }
