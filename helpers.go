package desktopapi

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrSettingUnset is returned by GetSettingsPropertyResponse.Decode when the
// host sent no value.
var ErrSettingUnset = errors.New("desktopapi: setting has no value")

// Ptr returns a pointer to v.
func Ptr[T any](v T) *T {
	return &v
}

// NewGetSettingsPropertyRequest asks for key. An empty key asks for the whole
// settings document.
func NewGetSettingsPropertyRequest(key string) *GetSettingsPropertyRequest {
	req := &GetSettingsPropertyRequest{}
	if key != "" {
		req.Key = Ptr(key)
	}
	return req
}

// NewUpdateSettingsPropertyRequest sets key to the JSON encoding of value. A
// nil value removes the key.
func NewUpdateSettingsPropertyRequest(key string, value any) (*UpdateSettingsPropertyRequest, error) {
	req := &UpdateSettingsPropertyRequest{Key: Ptr(key)}
	if value == nil {
		return req, nil
	}
	b, err := json.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("encode setting %q: %w", key, err)
	}
	req.Value = Ptr(string(b))
	return req, nil
}

// Decode unmarshals the returned JSON blob into v.
func (m *GetSettingsPropertyResponse) Decode(v any) error {
	if m == nil || m.JsonBlob == nil {
		return ErrSettingUnset
	}
	return json.Unmarshal([]byte(*m.JsonBlob), v)
}

// TextFile builds a WriteFileRequest that replaces path with text.
func TextFile(path, text string) *WriteFileRequest {
	return &WriteFileRequest{Path: path, Text: Ptr(text)}
}

// BinaryFile builds a WriteFileRequest that replaces path with data.
func BinaryFile(path string, data []byte) *WriteFileRequest {
	return &WriteFileRequest{Path: path, Data: data}
}
