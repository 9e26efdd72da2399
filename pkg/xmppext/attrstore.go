package xmppext

import (
	"fmt"
	"strconv"
)

// AttrStore упорядоченное хранилище именованных атрибутов расширения.
//
// Имена атрибутов уникальны в пределах одного элемента: повторная запись
// под тем же именем заменяет значение, сохраняя исходную позицию
// (last-write-wins). Порядок обхода - порядок первой вставки.
//
// Значения хранятся типизированно (string, bool, целые числа, произвольные
// типы со Stringer), но на проводе всегда представлены строкой.
type AttrStore struct {
	names  []string
	values map[string]interface{}
}

// NewAttrStore создает пустое хранилище атрибутов.
func NewAttrStore() *AttrStore {
	return &AttrStore{
		values: make(map[string]interface{}),
	}
}

// Set записывает атрибут. Значение nil удаляет атрибут.
func (s *AttrStore) Set(name string, value interface{}) {
	if value == nil {
		s.Remove(name)
		return
	}
	if _, ok := s.values[name]; !ok {
		s.names = append(s.names, name)
	}
	s.values[name] = value
}

// Get возвращает значение атрибута как есть или nil, если атрибут не задан.
func (s *AttrStore) Get(name string) interface{} {
	return s.values[name]
}

// GetString возвращает строковое (проводное) представление атрибута.
// Для незаданного атрибута возвращается пустая строка.
func (s *AttrStore) GetString(name string) string {
	v, ok := s.values[name]
	if !ok {
		return ""
	}
	return attrValueString(v)
}

// Has проверяет наличие атрибута.
func (s *AttrStore) Has(name string) bool {
	_, ok := s.values[name]
	return ok
}

// Remove удаляет атрибут. Удаление отсутствующего атрибута - no-op.
func (s *AttrStore) Remove(name string) {
	if _, ok := s.values[name]; !ok {
		return
	}
	delete(s.values, name)
	for i, n := range s.names {
		if n == name {
			s.names = append(s.names[:i], s.names[i+1:]...)
			break
		}
	}
}

// Names возвращает имена атрибутов в порядке вставки.
// Возвращаемый срез нельзя модифицировать.
func (s *AttrStore) Names() []string {
	return s.names
}

// Len возвращает количество атрибутов.
func (s *AttrStore) Len() int {
	return len(s.names)
}

// Clone возвращает независимую копию хранилища.
func (s *AttrStore) Clone() *AttrStore {
	cp := &AttrStore{
		names:  make([]string, len(s.names)),
		values: make(map[string]interface{}, len(s.values)),
	}
	copy(cp.names, s.names)
	for k, v := range s.values {
		cp.values[k] = v
	}
	return cp
}

// attrValueString приводит значение атрибута к проводной строковой форме.
func attrValueString(v interface{}) string {
	switch val := v.(type) {
	case string:
		return val
	case bool:
		return strconv.FormatBool(val)
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case uint32:
		return strconv.FormatUint(uint64(val), 10)
	case uint64:
		return strconv.FormatUint(val, 10)
	case fmt.Stringer:
		return val.String()
	default:
		return fmt.Sprintf("%v", val)
	}
}
