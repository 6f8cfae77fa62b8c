package domain

import "encoding/json"

// Optional distinguishes a JSON key that was never supplied from one
// supplied as an explicit null. Present is only true after UnmarshalJSON
// ran for the key; Value stays nil for an explicit null.
type Optional[T any] struct {
	Present bool
	Value   *T
}

func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Present = true
	if string(data) == "null" {
		o.Value = nil
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	o.Value = &v
	return nil
}

func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.Present || o.Value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(*o.Value)
}

// Set marks the field as supplied with a concrete value.
func Set[T any](v T) Optional[T] {
	return Optional[T]{Present: true, Value: &v}
}

// Null marks the field as supplied with an explicit null.
func Null[T any]() Optional[T] {
	return Optional[T]{Present: true}
}
