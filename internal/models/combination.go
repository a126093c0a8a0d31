// internal/models/combination.go
package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// Separator between option values inside a combination key, e.g. "S/Red".
const CombinationKeySeparator = "/"

var ErrCombinationNotFound = errors.New("combination not found")

type CombinationRow struct {
	Name     string `json:"name"`
	SKU      string `json:"sku"`
	Quantity *int   `json:"quantity"`
	InStock  bool   `json:"inStock"`
}

func NewCombinationRow(key string) CombinationRow {
	return CombinationRow{Name: key}
}

// CombinationTable maps combination keys to rows and remembers insertion order,
// which is also the order used when encoding to JSON.
type CombinationTable struct {
	keys []string
	rows map[string]CombinationRow
}

func NewCombinationTable() CombinationTable {
	return CombinationTable{rows: make(map[string]CombinationRow)}
}

func (t CombinationTable) Len() int {
	return len(t.keys)
}

func (t CombinationTable) Keys() []string {
	out := make([]string, len(t.keys))
	copy(out, t.keys)
	return out
}

func (t CombinationTable) Get(key string) (CombinationRow, bool) {
	row, ok := t.rows[key]
	return row, ok
}

// Rows returns the rows in insertion order.
func (t CombinationTable) Rows() []CombinationRow {
	out := make([]CombinationRow, 0, len(t.keys))
	for _, k := range t.keys {
		out = append(out, t.rows[k])
	}
	return out
}

// Put inserts or replaces the row stored under key.
func (t *CombinationTable) Put(key string, row CombinationRow) {
	if t.rows == nil {
		t.rows = make(map[string]CombinationRow)
	}
	if _, exists := t.rows[key]; !exists {
		t.keys = append(t.keys, key)
	}
	t.rows[key] = row
}

// Update applies fn to the row stored under key.
func (t *CombinationTable) Update(key string, fn func(row *CombinationRow)) error {
	row, ok := t.rows[key]
	if !ok {
		return fmt.Errorf("%w: %q", ErrCombinationNotFound, key)
	}
	fn(&row)
	t.rows[key] = row
	return nil
}

func (t CombinationTable) Clone() CombinationTable {
	out := CombinationTable{
		keys: make([]string, len(t.keys)),
		rows: make(map[string]CombinationRow, len(t.rows)),
	}
	copy(out.keys, t.keys)
	for k, row := range t.rows {
		if row.Quantity != nil {
			q := *row.Quantity
			row.Quantity = &q
		}
		out.rows[k] = row
	}
	return out
}

func (t CombinationTable) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range t.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		row, err := json.Marshal(t.rows[k])
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(row)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (t *CombinationTable) UnmarshalJSON(data []byte) error {
	*t = NewCombinationTable()
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("combinations: expected object, got %v", tok)
	}

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("combinations: expected key, got %v", tok)
		}
		var row CombinationRow
		if err := dec.Decode(&row); err != nil {
			return fmt.Errorf("combinations[%s]: %w", key, err)
		}
		t.Put(key, row)
	}

	_, err = dec.Token()
	return err
}
