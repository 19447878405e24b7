// Package apiconnect wires the salonbook.v1 services to Connect handlers and
// clients. Messages are plain Go structs carried by a JSON codec.
package apiconnect

import (
	"encoding/json"

	"connectrpc.com/connect"
)

// ServiceNamePrefix prefixes every procedure path.
const ServiceNamePrefix = "/salonbook.v1."

// JSONCodec marshals messages with encoding/json. It registers under the
// "json" name, replacing Connect's protobuf JSON codec.
type JSONCodec struct{}

var _ connect.Codec = JSONCodec{}

func (JSONCodec) Name() string { return "json" }

func (JSONCodec) Marshal(msg any) ([]byte, error) {
	return json.Marshal(msg)
}

func (JSONCodec) Unmarshal(data []byte, msg any) error {
	if len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, msg)
}

func handlerOptions(opts []connect.HandlerOption) []connect.HandlerOption {
	return append([]connect.HandlerOption{connect.WithCodec(JSONCodec{})}, opts...)
}

func clientOptions(opts []connect.ClientOption) []connect.ClientOption {
	return append([]connect.ClientOption{connect.WithCodec(JSONCodec{})}, opts...)
}
