package xmppext

import "strings"

// XMLBuilder построитель XML разметки расширений.
// Аналог цепочечного string builder'а: halfOpen -> атрибуты -> закрытие.
// Атрибутные значения выводятся в одинарных кавычках.
type XMLBuilder struct {
	sb strings.Builder
}

// NewXMLBuilder создает пустой построитель.
func NewXMLBuilder() *XMLBuilder {
	return &XMLBuilder{}
}

// HalfOpenElement начинает открывающий тег: "<name".
func (x *XMLBuilder) HalfOpenElement(name string) *XMLBuilder {
	x.sb.WriteByte('<')
	x.sb.WriteString(name)
	return x
}

// XmlnsAttribute выводит атрибут xmlns. Пустой namespace пропускается.
func (x *XMLBuilder) XmlnsAttribute(namespace string) *XMLBuilder {
	if namespace == "" {
		return x
	}
	return x.Attribute("xmlns", namespace)
}

// Attribute выводит атрибут name='value' с экранированием значения.
func (x *XMLBuilder) Attribute(name, value string) *XMLBuilder {
	x.sb.WriteByte(' ')
	x.sb.WriteString(name)
	x.sb.WriteString("='")
	x.sb.WriteString(escapeAttr(value))
	x.sb.WriteByte('\'')
	return x
}

// RightAngleBracket завершает открывающий тег: ">".
func (x *XMLBuilder) RightAngleBracket() *XMLBuilder {
	x.sb.WriteByte('>')
	return x
}

// CloseEmptyElement завершает тег без содержимого: "/>".
func (x *XMLBuilder) CloseEmptyElement() *XMLBuilder {
	x.sb.WriteString("/>")
	return x
}

// OpenElement выводит открывающий тег целиком: "<name>".
func (x *XMLBuilder) OpenElement(name string) *XMLBuilder {
	x.HalfOpenElement(name)
	return x.RightAngleBracket()
}

// CloseElement выводит закрывающий тег: "</name>".
func (x *XMLBuilder) CloseElement(name string) *XMLBuilder {
	x.sb.WriteString("</")
	x.sb.WriteString(name)
	x.sb.WriteByte('>')
	return x
}

// Element выводит элемент с текстовым содержимым: "<name>text</name>".
func (x *XMLBuilder) Element(name, text string) *XMLBuilder {
	x.OpenElement(name)
	x.Text(text)
	return x.CloseElement(name)
}

// EmptyElement выводит пустой элемент: "<name/>".
func (x *XMLBuilder) EmptyElement(name string) *XMLBuilder {
	x.HalfOpenElement(name)
	return x.CloseEmptyElement()
}

// Text выводит экранированное текстовое содержимое.
func (x *XMLBuilder) Text(text string) *XMLBuilder {
	x.sb.WriteString(escapeText(text))
	return x
}

// Raw выводит готовую разметку без экранирования.
// Используется для вложенных, уже сериализованных элементов.
func (x *XMLBuilder) Raw(markup string) *XMLBuilder {
	x.sb.WriteString(markup)
	return x
}

// String возвращает накопленную разметку.
func (x *XMLBuilder) String() string {
	return x.sb.String()
}

var (
	attrEscaper = strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		"'", "&apos;",
		"\"", "&quot;",
	)
	textEscaper = strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
	)
)

func escapeAttr(s string) string {
	return attrEscaper.Replace(s)
}

func escapeText(s string) string {
	return textEscaper.Replace(s)
}
