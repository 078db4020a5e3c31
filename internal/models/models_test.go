package models

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"
)

func TestJSONObject_SetAndGet(t *testing.T) {
	obj := NewObject()
	obj.Set("name", "Ahri")
	obj.Set("level", json.Number("18"))

	v, ok := obj.Get("name")
	if !ok {
		t.Fatalf("Get(name) not found")
	}
	if v != "Ahri" {
		t.Errorf("Get(name) = %v, want Ahri", v)
	}

	if _, ok := obj.Get("missing"); ok {
		t.Errorf("Get(missing) found = true, want false")
	}

	// Overwrite keeps the original position
	obj.Set("name", "Zed")
	wantKeys := []string{"name", "level"}
	if !reflect.DeepEqual(obj.Keys(), wantKeys) {
		t.Errorf("Keys() = %v, want %v", obj.Keys(), wantKeys)
	}
	if obj.Len() != 2 {
		t.Errorf("Len() = %d, want 2", obj.Len())
	}
}

func TestJSONObject_OrderSurvivesRoundTrip(t *testing.T) {
	// Keys deliberately out of lexical order; a map-based decode would
	// scramble them.
	in := `{"zeta": 1, "alpha": {"y": true, "x": null}, "mid": [1, 2]}`

	var obj JSONObject
	if err := json.Unmarshal([]byte(in), &obj); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	wantKeys := []string{"zeta", "alpha", "mid"}
	if !reflect.DeepEqual(obj.Keys(), wantKeys) {
		t.Fatalf("Keys() = %v, want %v", obj.Keys(), wantKeys)
	}

	out, err := json.Marshal(&obj)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	want := `{"zeta":1,"alpha":{"y":true,"x":null},"mid":[1,2]}`
	if string(out) != want {
		t.Errorf("Marshal() = %s, want %s", out, want)
	}
}

func TestJSONObject_MarshalIndentKeepsOrder(t *testing.T) {
	obj := NewObject()
	obj.Set("b", json.Number("2"))
	obj.Set("a", json.Number("1"))

	out, err := json.MarshalIndent(obj, "", "  ")
	if err != nil {
		t.Fatalf("MarshalIndent() error = %v", err)
	}
	if !(strings.Index(string(out), `"b"`) < strings.Index(string(out), `"a"`)) {
		t.Errorf("MarshalIndent() reordered keys: %s", out)
	}
}

func TestDecodeValue_Primitives(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want JSONValue
	}{
		{"string", `"hello"`, "hello"},
		{"number", `42`, json.Number("42")},
		{"float", `3.14`, json.Number("3.14")},
		{"bool", `true`, true},
		{"null", `null`, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dec := json.NewDecoder(strings.NewReader(tt.in))
			dec.UseNumber()
			got, err := DecodeValue(dec)
			if err != nil {
				t.Fatalf("DecodeValue() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("DecodeValue() = %v (%T), want %v (%T)", got, got, tt.want, tt.want)
			}
		})
	}
}

func TestDecodeValue_Nested(t *testing.T) {
	dec := json.NewDecoder(strings.NewReader(`{"tags": ["go", "json"], "meta": {"n": 1}}`))
	dec.UseNumber()
	v, err := DecodeValue(dec)
	if err != nil {
		t.Fatalf("DecodeValue() error = %v", err)
	}
	obj, ok := v.(*JSONObject)
	if !ok {
		t.Fatalf("DecodeValue() = %T, want *JSONObject", v)
	}

	tags, ok := obj.Get("tags")
	if !ok {
		t.Fatalf("tags not found")
	}
	if !reflect.DeepEqual(tags, JSONArray{"go", "json"}) {
		t.Errorf("tags = %v", tags)
	}

	meta, _ := obj.Get("meta")
	metaObj, ok := meta.(*JSONObject)
	if !ok {
		t.Fatalf("meta = %T, want *JSONObject", meta)
	}
	n, _ := metaObj.Get("n")
	if n != json.Number("1") {
		t.Errorf("meta.n = %v, want 1", n)
	}
}
