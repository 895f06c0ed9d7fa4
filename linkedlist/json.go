package linkedlist

import (
	"github.com/kwonsjay/sjsjsds/json"
)

// MarshalJSON encodes values from head to tail as a json array
func (l *LinkedList[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.Values())
}

// UnmarshalJSON replaces the content of list by the decoded array
func (l *LinkedList[T]) UnmarshalJSON(data []byte) error {
	var values []T
	if err := json.Unmarshal(data, &values); err != nil {
		return err
	}
	l.Clear()
	for _, v := range values {
		l.PushValue(v)
	}
	return nil
}
