package anythingllm

import "encoding/json"

// Records returned by the server are decoded twice: into a typed view
// holding the fields the client reads, and into Fields holding the whole
// record as received. Fields is what gets encoded again, so values the
// client does not model still reach callers.

// decodeRecord fills typed and fields from data.
func decodeRecord(data []byte, typed interface{}, fields *Object) error {
	if err := json.Unmarshal(data, typed); err != nil {
		return err
	}
	return json.Unmarshal(data, fields)
}

// encodedRecord returns the value to encode: the received fields when
// present, otherwise the typed view.
func encodedRecord(typed interface{}, fields Object) interface{} {
	if fields != nil {
		return fields
	}
	return typed
}
