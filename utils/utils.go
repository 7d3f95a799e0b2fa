package utils

import (
	"github.com/topfreegames/pitaya/v3/pkg/logger"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/types/known/anypb"
)

const typeUrlPrefix = "type.googleapis.com/"

func TypeUrl(src proto.Message) string {
	if src == nil {
		return ""
	}
	return typeUrlPrefix + string(src.ProtoReflect().Descriptor().FullName())
}

func ToAny(msg proto.Message) *anypb.Any {
	data, err := anypb.New(msg)
	if err != nil {
		logger.Log.Errorf("pack %s: %v", TypeUrl(msg), err)
		return nil
	}
	return data
}

// FromAny 解出 Any 中的消息, 类型需已注册
func FromAny(data *anypb.Any) (proto.Message, error) {
	return data.UnmarshalNew()
}

func IsType(data *anypb.Any, name protoreflect.FullName) bool {
	return data.MessageName() == name
}

// ToJSON protojson 编码, indent 为真时多行输出
func ToJSON(msg proto.Message, indent bool) ([]byte, error) {
	opts := protojson.MarshalOptions{EmitUnpopulated: true}
	if indent {
		opts.Multiline = true
		opts.Indent = "  "
	}
	return opts.Marshal(msg)
}
