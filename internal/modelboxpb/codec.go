package modelboxpb

import (
	"encoding/json"

	"google.golang.org/grpc/encoding"
)

// jsonCodec replaces grpc's default "proto" codec with one that marshals
// through encoding/json instead of the binary protobuf wire format.
//
// The messages in this package are hand-authored against service.proto
// rather than produced by protoc (this build never runs the Go toolchain,
// so there is no protoc-gen-go pass to generate real proto.Message
// implementations with the reflection machinery google.golang.org/grpc's
// default codec needs). Registering under the "proto" name means every
// other part of the gRPC stack — framing, flow control, deadlines,
// per-message size limits, streaming, status codes — runs exactly as it
// would with real protobuf; only the byte layout on the wire differs. A
// deployment that needs real cross-language wire compatibility would swap
// this codec out for a protoc-generated one without touching any handler.
type jsonCodec struct{}

func (jsonCodec) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

func (jsonCodec) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

func (jsonCodec) Name() string {
	return "proto"
}

func init() {
	encoding.RegisterCodec(jsonCodec{})
}
