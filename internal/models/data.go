package models

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

// Data aceita no JSON tanto um timestamp RFC 3339 quanto apenas "aaaa-mm-dd";
// datas sem horário são normalizadas para meia-noite UTC.
type Data struct {
	time.Time
}

func (d *Data) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		d.Time = time.Time{}
		return nil
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		d.Time = t.UTC()
		return nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return fmt.Errorf("data inválida: %q", s)
	}
	d.Time = t
	return nil
}

func (d Data) MarshalJSON() ([]byte, error) {
	if d.Time.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + d.Time.UTC().Format(time.RFC3339) + `"`), nil
}

func (d Data) Value() (driver.Value, error) {
	if d.Time.IsZero() {
		return nil, nil
	}
	return d.Time, nil
}

func (d *Data) Scan(valor interface{}) error {
	switch v := valor.(type) {
	case time.Time:
		d.Time = v
	case nil:
		d.Time = time.Time{}
	default:
		return fmt.Errorf("não foi possível converter %T para Data", valor)
	}
	return nil
}
