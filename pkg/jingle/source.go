package jingle

import (
	"fmt"
	"strconv"

	"github.com/arzzra/xmpp_ext/pkg/xmppext"
)

// Константы элемента source (Source-Specific Media Attributes in Jingle).
const (
	SourceNamespace = "urn:xmpp:jingle:apps:rtp:ssma:0"
	SourceElement   = "source"

	ssrcAttrName = "ssrc"
	ridAttrName  = "rid"
	nameAttrName = "name"
)

// ssrcMask маска 32-битного беззнакового SSRC.
const ssrcMask = 0xFFFFFFFF

// SSRCNone сентинел "ssrc не задан", отличимый от любого валидного
// замаскированного значения из [0, 2^32-1].
const SSRCNone int64 = -1

// SourceExtension элемент source: RTP источник медиа потока.
//
// Источник идентифицируется числовым SSRC (32 бита без знака, хранится
// замаскированным) и/или строковым rid, может нести человекочитаемое имя
// и упорядоченный список параметров ключ/значение. Транзитный флаг
// injected помечает источники, подставленные управляющим узлом, и не
// входит в проводную форму.
type SourceExtension struct {
	xmppext.BaseExtension

	// injected флаг происхождения источника; сериализации не подлежит,
	// но переносится явным образом при копировании.
	injected bool
}

// NewSourceExtension создает пустой source элемент.
func NewSourceExtension() *SourceExtension {
	return &SourceExtension{BaseExtension: xmppext.NewBase(SourceNamespace, SourceElement)}
}

// SSRC возвращает SSRC источника или SSRCNone, если он не задан.
func (s *SourceExtension) SSRC() int64 {
	raw := s.AttributeAsString(ssrcAttrName)
	if raw == "" {
		return SSRCNone
	}
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return SSRCNone
	}
	return int64(v & ssrcMask)
}

// SetSSRC задает SSRC источника. Значение маскируется 0xFFFFFFFF перед
// записью, что гарантирует стабильный round-trip независимо от знаковой
// интерпретации. SSRCNone удаляет атрибут.
func (s *SourceExtension) SetSSRC(ssrc int64) {
	if ssrc == SSRCNone {
		s.RemoveAttribute(ssrcAttrName)
		return
	}
	s.SetAttribute(ssrcAttrName, strconv.FormatUint(uint64(ssrc)&ssrcMask, 10))
}

// HasSSRC проверяет, задан ли SSRC.
func (s *SourceExtension) HasSSRC() bool {
	return s.AttributeAsString(ssrcAttrName) != ""
}

// Rid возвращает rid источника или "".
func (s *SourceExtension) Rid() string {
	return s.AttributeAsString(ridAttrName)
}

// SetRid задает rid источника. Пустая строка удаляет атрибут.
func (s *SourceExtension) SetRid(rid string) {
	if rid == "" {
		s.RemoveAttribute(ridAttrName)
		return
	}
	s.SetAttribute(ridAttrName, rid)
}

// HasRid проверяет, задан ли rid.
func (s *SourceExtension) HasRid() bool {
	return s.HasAttribute(ridAttrName)
}

// Name возвращает имя источника или "".
func (s *SourceExtension) Name() string {
	return s.AttributeAsString(nameAttrName)
}

// SetName задает имя источника. Пустая строка удаляет атрибут.
func (s *SourceExtension) SetName(name string) {
	if name == "" {
		s.RemoveAttribute(nameAttrName)
		return
	}
	s.SetAttribute(nameAttrName, name)
}

// HasName проверяет, задано ли имя источника.
func (s *SourceExtension) HasName() bool {
	return s.HasAttribute(nameAttrName)
}

// AddParameter добавляет параметр источника.
func (s *SourceExtension) AddParameter(param *ParameterExtension) {
	s.AddChild(param)
}

// Parameters возвращает параметры источника в порядке добавления.
func (s *SourceExtension) Parameters() []*ParameterExtension {
	var out []*ParameterExtension
	for _, child := range s.Children() {
		if param, ok := child.(*ParameterExtension); ok {
			out = append(out, param)
		}
	}
	return out
}

// Parameter возвращает значение параметра с заданным именем или "".
func (s *SourceExtension) Parameter(name string) string {
	for _, param := range s.Parameters() {
		if param.Name() == name {
			return param.Value()
		}
	}
	return ""
}

// SourceEquals проверяет совпадение идентификаторов двух источников.
//
// Если у обоих задан ssrc, источники равны при совпадении ssrc;
// иначе, если у обоих задан rid, равны при совпадении rid. Без общего
// идентифицирующего измерения источники не равны никогда, в том числе
// сами себе: сравнение идентичности требует общего идентификатора.
func (s *SourceExtension) SourceEquals(other *SourceExtension) bool {
	if other == nil {
		return false
	}
	if s.HasSSRC() && other.HasSSRC() {
		return s.SSRC() == other.SSRC()
	}
	if s.HasRid() && other.HasRid() {
		return s.Rid() == other.Rid()
	}
	return false
}

// Injected возвращает флаг происхождения источника.
func (s *SourceExtension) Injected() bool {
	return s.injected
}

// SetInjected задает флаг происхождения источника.
func (s *SourceExtension) SetInjected(injected bool) {
	s.injected = injected
}

// Copy возвращает глубокую копию источника: параметры клонируются,
// флаг injected переносится явно.
func (s *SourceExtension) Copy() *SourceExtension {
	return &SourceExtension{
		BaseExtension: s.CloneBase(),
		injected:      s.injected,
	}
}

// Clone реализует xmppext.ExtensionElement.
func (s *SourceExtension) Clone() xmppext.ExtensionElement {
	return s.Copy()
}

// String возвращает диагностическое представление источника.
func (s *SourceExtension) String() string {
	switch {
	case s.HasRid():
		return "rid=" + s.Rid()
	case s.HasSSRC():
		return "ssrc=" + s.AttributeAsString(ssrcAttrName)
	case s.HasName():
		return "name=" + s.Name()
	default:
		return "[no identifier]"
	}
}

var _ fmt.Stringer = (*SourceExtension)(nil)
