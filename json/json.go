package json

import (
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/qjpcpu/qjson"
)

var jiter = jsoniter.ConfigFastest

// PrettyMarshal colorful json
func PrettyMarshal(v interface{}) []byte {
	return qjson.PrettyMarshal(v)
}

// Marshal disable html escape
func Marshal(v interface{}) ([]byte, error) {
	data, err := jiter.Marshal(v)
	if err != nil {
		return nil, errors.Wrapf(err, "marshal %T", v)
	}
	return data, nil
}

// Unmarshal same as sys unmarshal
func Unmarshal(data []byte, v interface{}) error {
	if err := jiter.Unmarshal(data, v); err != nil {
		return errors.Wrapf(err, "unmarshal into %T", v)
	}
	return nil
}

// UnsafeMarshalString marshal without error
func UnsafeMarshalString(v interface{}) string {
	data, err := Marshal(v)
	if err != nil {
		return ""
	}
	return string(data)
}
