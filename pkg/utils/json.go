package utils

import (
	jsoniter "github.com/json-iterator/go"
)

// PrettyJson formata um valor para depuração em log.
func PrettyJson(in any) string {
	var buffer []byte
	var err error

	if raw, ok := in.([]byte); ok {
		var decoded any
		if err = jsoniter.Unmarshal(raw, &decoded); err != nil {
			return string(raw)
		}
		in = decoded
	}

	buffer, err = jsoniter.MarshalIndent(in, "", "  ")
	if err != nil {
		return ""
	}

	return string(buffer)
}
