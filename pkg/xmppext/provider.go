package xmppext

import "strings"

// Provider разборщик одного типа расширения.
//
// Parse вызывается с курсором, стоящим на открывающем теге кандидата.
// Контракт результата:
//
//   - (elem, nil)  - элемент распознан и собран; курсор стоит на
//     закрывающем теге элемента;
//   - (nil, nil)   - элемент не распознан (несовпадение namespace/имени,
//     курсор не сдвинут) либо после полного сканирования не хватает
//     обязательных полей; частично собранный экземпляр никогда не
//     возвращается;
//   - (nil, err)   - ошибка уровня потока; Registry поглощает ее и
//     трактует как "экземпляр не произведен".
type Provider interface {
	Parse(p *Parser) (ExtensionElement, error)
}

// ProviderFunc адаптер функции к интерфейсу Provider.
type ProviderFunc func(p *Parser) (ExtensionElement, error)

// Parse реализует Provider.
func (f ProviderFunc) Parse(p *Parser) (ExtensionElement, error) {
	return f(p)
}

// DefaultProvider универсальный провайдер для расширений, чьи поля
// целиком описываются атрибутами открывающего тега и известными
// дочерними элементами.
//
// Атрибуты стартового тега переносятся в хранилище экземпляра как есть.
// Дочерние элементы, для которых в Children зарегистрирован провайдер,
// разбираются рекурсивно; неизвестные дочерние элементы пропускаются
// целиком и ошибкой не считаются. Текстовое содержимое сохраняется.
type DefaultProvider struct {
	// Factory создает пустой экземпляр целевого типа.
	Factory func() Attributed

	// Children провайдеры известных дочерних элементов. Может быть nil.
	Children *Registry

	// Validate проверка обязательных полей после сканирования.
	// Возврат false означает "экземпляр не произведен". Может быть nil.
	Validate func(elem Attributed) bool
}

// Parse реализует Provider.
func (dp *DefaultProvider) Parse(p *Parser) (ExtensionElement, error) {
	elem := dp.Factory()
	if p.Namespace() != elem.Namespace() || p.Name() != elem.ElementName() {
		return nil, nil
	}
	outer := elem.ElementName()

	for _, a := range p.Attrs() {
		elem.SetAttribute(a.Name.Local, a.Value)
	}

	for {
		if err := p.Advance(); err != nil {
			return nil, WrapExtError(ErrorCodeUnexpectedEOF, outer, "поток закончился до закрывающего тега", err)
		}
		switch p.Kind() {
		case EventStartElement:
			if err := dp.parseChild(p, elem); err != nil {
				return nil, err
			}
		case EventText:
			if text := strings.TrimSpace(p.Text()); text != "" {
				elem.SetText(text)
			}
		case EventEndElement:
			// Дочерние элементы потребляются целиком вложенными
			// провайдерами, так что это закрывающий тег outer.
			if dp.Validate != nil && !dp.Validate(elem) {
				return nil, nil
			}
			return elem, nil
		}
	}
}

// parseChild разбирает дочерний элемент через вложенный реестр или
// пропускает его целиком.
func (dp *DefaultProvider) parseChild(p *Parser, elem Attributed) error {
	if dp.Children != nil {
		if prov, ok := dp.Children.Lookup(p.Namespace(), p.Name()); ok {
			child, err := prov.Parse(p)
			if err != nil {
				return err
			}
			if child != nil {
				elem.AddChild(child)
				return nil
			}
			// Провайдер отказался: дочерний элемент уже потреблен
			// либо не сдвинут - во втором случае пропускаем.
			if p.Kind() == EventStartElement {
				return p.SkipElement()
			}
			return nil
		}
	}
	return p.SkipElement()
}
