package xmppext

import (
	"encoding/xml"
	"io"
	"strings"
)

// EventKind вид текущего события потока токенов.
type EventKind int

const (
	EventNone EventKind = iota
	EventStartElement
	EventEndElement
	EventText
	EventOther
	EventEOF
)

// String возвращает строковое представление вида события.
func (k EventKind) String() string {
	switch k {
	case EventStartElement:
		return "start-element"
	case EventEndElement:
		return "end-element"
	case EventText:
		return "text"
	case EventOther:
		return "other"
	case EventEOF:
		return "eof"
	default:
		return "none"
	}
}

// Parser курсор по потоку XML токенов поверх encoding/xml.
//
// Курсор предоставляет провайдерам контракт входного коллаборатора:
// вид текущего события, локальное имя и namespace текущего элемента,
// текст и операцию продвижения, которая может завершиться ошибкой
// уровня потока. Разбор синхронный и блокирующий: таймауты и отмена -
// забота транспортного слоя.
type Parser struct {
	dec       *xml.Decoder
	kind      EventKind
	name      string
	namespace string
	text      string
	attrs     []xml.Attr
}

// NewParser создает курсор над потоком байт.
func NewParser(r io.Reader) *Parser {
	return &Parser{dec: xml.NewDecoder(r)}
}

// NewParserString создает курсор над готовым XML фрагментом.
func NewParserString(fragment string) *Parser {
	return NewParser(strings.NewReader(fragment))
}

// Advance продвигает курсор к следующему событию.
// В конце потока возвращает io.EOF, вид события становится EventEOF.
func (p *Parser) Advance() error {
	tok, err := p.dec.Token()
	if err != nil {
		p.kind = EventEOF
		p.name = ""
		p.namespace = ""
		p.text = ""
		p.attrs = nil
		return err
	}
	switch t := tok.(type) {
	case xml.StartElement:
		p.kind = EventStartElement
		p.name = t.Name.Local
		p.namespace = t.Name.Space
		p.text = ""
		p.attrs = t.Attr
	case xml.EndElement:
		p.kind = EventEndElement
		p.name = t.Name.Local
		p.namespace = t.Name.Space
		p.text = ""
		p.attrs = nil
	case xml.CharData:
		p.kind = EventText
		p.text = string(t)
		p.attrs = nil
	default:
		p.kind = EventOther
		p.name = ""
		p.namespace = ""
		p.text = ""
		p.attrs = nil
	}
	return nil
}

// Kind возвращает вид текущего события.
func (p *Parser) Kind() EventKind {
	return p.kind
}

// Name возвращает локальное имя текущего элемента.
func (p *Parser) Name() string {
	return p.name
}

// Namespace возвращает namespace текущего элемента.
func (p *Parser) Namespace() string {
	return p.namespace
}

// Text возвращает текст текущего события EventText.
func (p *Parser) Text() string {
	return p.text
}

// Attr возвращает значение атрибута текущего открывающего тега.
// Атрибуты xmlns не учитываются.
func (p *Parser) Attr(name string) (string, bool) {
	for _, a := range p.attrs {
		if isXmlnsAttr(a) {
			continue
		}
		if a.Name.Local == name {
			return a.Value, true
		}
	}
	return "", false
}

// Attrs возвращает атрибуты текущего открывающего тега без xmlns.
func (p *Parser) Attrs() []xml.Attr {
	out := make([]xml.Attr, 0, len(p.attrs))
	for _, a := range p.attrs {
		if isXmlnsAttr(a) {
			continue
		}
		out = append(out, a)
	}
	return out
}

// NextStartElement продвигает курсор до следующего открывающего тега.
// Возвращает io.EOF, если поток закончился раньше.
func (p *Parser) NextStartElement() error {
	for {
		if err := p.Advance(); err != nil {
			return err
		}
		if p.kind == EventStartElement {
			return nil
		}
	}
}

// SkipElement пропускает текущий элемент целиком, включая вложенные
// элементы с тем же именем. Курсор должен стоять на открывающем теге;
// после возврата он стоит на соответствующем закрывающем.
func (p *Parser) SkipElement() error {
	if p.kind != EventStartElement {
		return nil
	}
	depth := 0
	for {
		if err := p.Advance(); err != nil {
			return err
		}
		switch p.kind {
		case EventStartElement:
			depth++
		case EventEndElement:
			if depth == 0 {
				return nil
			}
			depth--
		}
	}
}

func isXmlnsAttr(a xml.Attr) bool {
	return a.Name.Local == "xmlns" || a.Name.Space == "xmlns"
}
