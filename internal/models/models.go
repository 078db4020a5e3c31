package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// JSONValue is a generic type to represent any JSON value.
// This can be a string, json.Number, boolean, null, *JSONObject, or JSONArray.
type JSONValue interface{}

// JSONArray represents a JSON array, which is a slice of JSONValues.
type JSONArray []JSONValue

// Member is a single key/value pair of a JSON object.
type Member struct {
	Key   string
	Value JSONValue
}

// JSONObject represents a JSON object. Unlike a plain map it preserves the
// insertion order of its keys, so a decoded document re-encodes with its
// members in the order they appeared on the wire.
type JSONObject struct {
	members []Member
	index   map[string]int
}

// NewObject creates an empty JSONObject.
func NewObject() *JSONObject {
	return &JSONObject{index: make(map[string]int)}
}

// Len returns the number of members.
func (o *JSONObject) Len() int {
	if o == nil {
		return 0
	}
	return len(o.members)
}

// Keys returns the object's keys in insertion order.
func (o *JSONObject) Keys() []string {
	if o == nil {
		return nil
	}
	keys := make([]string, len(o.members))
	for i, m := range o.members {
		keys[i] = m.Key
	}
	return keys
}

// Members returns the underlying member slice in insertion order.
// Callers must not mutate the returned slice.
func (o *JSONObject) Members() []Member {
	if o == nil {
		return nil
	}
	return o.members
}

// Get returns the value stored under key and whether the key exists.
func (o *JSONObject) Get(key string) (JSONValue, bool) {
	if o == nil {
		return nil, false
	}
	i, ok := o.index[key]
	if !ok {
		return nil, false
	}
	return o.members[i].Value, true
}

// Set stores value under key. An existing key keeps its position;
// a new key is appended.
func (o *JSONObject) Set(key string, value JSONValue) {
	if o.index == nil {
		o.index = make(map[string]int)
	}
	if i, ok := o.index[key]; ok {
		o.members[i].Value = value
		return
	}
	o.index[key] = len(o.members)
	o.members = append(o.members, Member{Key: key, Value: value})
}

// UnmarshalJSON decodes data into the object, preserving key order.
// Numbers are decoded as json.Number.
func (o *JSONObject) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	v, err := DecodeValue(dec)
	if err != nil {
		return err
	}
	obj, ok := v.(*JSONObject)
	if !ok {
		return fmt.Errorf("cannot unmarshal %T into JSONObject", v)
	}
	*o = *obj
	return nil
}

// MarshalJSON encodes the object with its members in insertion order.
// HTML escaping is disabled so marker strings like "<...2 more items>"
// stay readable.
func (o *JSONObject) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, m := range o.members {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := marshalNoEscape(m.Key)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := marshalNoEscape(m.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func marshalNoEscape(v interface{}) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// DecodeValue reads a single JSON value from dec into the model domain.
// Objects become *JSONObject (key order preserved), arrays become JSONArray,
// and primitives stay as string, json.Number, bool, or nil. The decoder
// should have UseNumber set; otherwise numbers arrive as float64.
func DecodeValue(dec *json.Decoder) (JSONValue, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return decodeObject(dec)
		case '[':
			return decodeArray(dec)
		default:
			return nil, fmt.Errorf("unexpected delimiter %q", t.String())
		}
	default:
		// string, json.Number, bool, or nil
		return t, nil
	}
}

func decodeObject(dec *json.Decoder) (*JSONObject, error) {
	obj := NewObject()
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("object key is %T, want string", tok)
		}
		val, err := DecodeValue(dec)
		if err != nil {
			return nil, err
		}
		obj.Set(key, val)
	}
	// consume the closing '}'
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return obj, nil
}

func decodeArray(dec *json.Decoder) (JSONArray, error) {
	arr := JSONArray{}
	for dec.More() {
		val, err := DecodeValue(dec)
		if err != nil {
			return nil, err
		}
		arr = append(arr, val)
	}
	// consume the closing ']'
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return arr, nil
}

// Document holds a parsed JSON document in a way that's easy for the
// summarizer and the reports to work with.
type Document struct {
	Root        JSONValue
	RootIsArray bool // True if the root of the JSON is an array vs an object
}
