package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"sort"
)

// MultilingualText - текст на нескольких языках, ключ - код языка (de, fr, it, rm, en)
type MultilingualText map[string]string

// Get возвращает текст на языке lang, затем на fallback, затем первый непустой
// по алфавиту языков
func (t MultilingualText) Get(lang, fallback string) string {
	if v := t[lang]; v != "" {
		return v
	}
	if v := t[fallback]; v != "" {
		return v
	}
	keys := make([]string, 0, len(t))
	for k := range t {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if t[k] != "" {
			return t[k]
		}
	}
	return ""
}

// IsEmpty - нет ни одного непустого значения
func (t MultilingualText) IsEmpty() bool {
	for _, v := range t {
		if v != "" {
			return false
		}
	}
	return true
}

// SharesValueWith - есть язык, присутствующий в обоих текстах, с одинаковым непустым значением
func (t MultilingualText) SharesValueWith(other MultilingualText) bool {
	for lang, v := range t {
		if v == "" {
			continue
		}
		if ov, ok := other[lang]; ok && ov == v {
			return true
		}
	}
	return false
}

// Scan читает JSONB колонку
func (t *MultilingualText) Scan(src interface{}) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*t = nil
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("unsupported multilingual text source %T", src)
	}
	if len(raw) == 0 {
		*t = nil
		return nil
	}
	var m map[string]string
	if err := json.Unmarshal(raw, &m); err != nil {
		return fmt.Errorf("decode multilingual text: %w", err)
	}
	*t = m
	return nil
}

// Value сериализует текст в JSON для записи в JSONB
func (t MultilingualText) Value() (driver.Value, error) {
	if t == nil {
		return nil, nil
	}
	return json.Marshal(map[string]string(t))
}
