package xmppext

// ExtensionElement контракт расширения станзы.
//
// Каждый конкретный тип расширения имеет ровно одну фиксированную пару
// (namespace, element), известную на этапе компиляции. ToXML чистая
// операция: не мутирует узел, выводит дочерние элементы в порядке
// добавления и опускает незаданные атрибуты. Clone возвращает полностью
// независимую глубокую копию поддерева.
type ExtensionElement interface {
	// Namespace возвращает XML namespace расширения.
	Namespace() string

	// ElementName возвращает локальное имя корневого элемента.
	ElementName() string

	// ToXML сериализует расширение в XML разметку.
	// enclosing - namespace объемлющего элемента: если он совпадает
	// с namespace расширения, атрибут xmlns не выводится.
	ToXML(enclosing string) string

	// Clone возвращает глубокую копию расширения.
	Clone() ExtensionElement
}

// Attributed расширение с доступным универсальным хранилищем атрибутов
// и дочерних элементов. Используется DefaultProvider для заполнения
// экземпляра из потока токенов.
type Attributed interface {
	ExtensionElement

	SetAttribute(name string, value interface{})
	AddChild(child ExtensionElement)
	SetText(text string)
}

// BaseExtension базовая реализация расширения: identity элемента плюс
// хранилище атрибутов, упорядоченный список дочерних элементов и
// опциональный текст. Встраивается конкретными типами расширений.
//
// Дочерние элементы принадлежат исключительно родителю: общее владение
// не предполагается, глубокая копия дублирует все поддерево.
type BaseExtension struct {
	namespace string
	element   string
	attrs     *AttrStore
	children  []ExtensionElement
	text      string
}

// NewBase создает базовое расширение с заданной парой (namespace, element).
func NewBase(namespace, element string) BaseExtension {
	return BaseExtension{
		namespace: namespace,
		element:   element,
		attrs:     NewAttrStore(),
	}
}

// Namespace возвращает XML namespace расширения.
func (b *BaseExtension) Namespace() string {
	return b.namespace
}

// ElementName возвращает локальное имя элемента.
func (b *BaseExtension) ElementName() string {
	return b.element
}

// SetAttribute записывает атрибут. nil удаляет атрибут.
func (b *BaseExtension) SetAttribute(name string, value interface{}) {
	b.attrs.Set(name, value)
}

// Attribute возвращает значение атрибута как есть или nil.
func (b *BaseExtension) Attribute(name string) interface{} {
	return b.attrs.Get(name)
}

// AttributeAsString возвращает проводную строковую форму атрибута.
func (b *BaseExtension) AttributeAsString(name string) string {
	return b.attrs.GetString(name)
}

// HasAttribute проверяет наличие атрибута.
func (b *BaseExtension) HasAttribute(name string) bool {
	return b.attrs.Has(name)
}

// RemoveAttribute удаляет атрибут.
func (b *BaseExtension) RemoveAttribute(name string) {
	b.attrs.Remove(name)
}

// AttributeNames возвращает имена атрибутов в порядке вставки.
func (b *BaseExtension) AttributeNames() []string {
	return b.attrs.Names()
}

// AddChild добавляет дочерний элемент в конец списка.
func (b *BaseExtension) AddChild(child ExtensionElement) {
	b.children = append(b.children, child)
}

// Children возвращает дочерние элементы в порядке добавления.
// Возвращаемый срез нельзя модифицировать.
func (b *BaseExtension) Children() []ExtensionElement {
	return b.children
}

// SetText задает текстовое содержимое элемента.
func (b *BaseExtension) SetText(text string) {
	b.text = text
}

// Text возвращает текстовое содержимое элемента.
func (b *BaseExtension) Text() string {
	return b.text
}

// ToXML сериализует элемент: атрибуты в порядке вставки, затем текст,
// затем дочерние элементы в порядке добавления.
func (b *BaseExtension) ToXML(enclosing string) string {
	xml := NewXMLBuilder()
	xml.HalfOpenElement(b.element)
	if b.namespace != "" && b.namespace != enclosing {
		xml.XmlnsAttribute(b.namespace)
	}
	for _, name := range b.attrs.Names() {
		xml.Attribute(name, b.attrs.GetString(name))
	}
	if len(b.children) == 0 && b.text == "" {
		xml.CloseEmptyElement()
		return xml.String()
	}
	xml.RightAngleBracket()
	if b.text != "" {
		xml.Text(b.text)
	}
	for _, child := range b.children {
		xml.Raw(child.ToXML(b.namespace))
	}
	xml.CloseElement(b.element)
	return xml.String()
}

// CloneBase возвращает глубокую копию базовой части: атрибуты копируются,
// дочерние элементы клонируются рекурсивно через их Clone.
func (b *BaseExtension) CloneBase() BaseExtension {
	cp := BaseExtension{
		namespace: b.namespace,
		element:   b.element,
		attrs:     b.attrs.Clone(),
		text:      b.text,
	}
	if len(b.children) > 0 {
		cp.children = make([]ExtensionElement, 0, len(b.children))
		for _, child := range b.children {
			cp.children = append(cp.children, child.Clone())
		}
	}
	return cp
}

// GenericExtension расширение без доменной семантики: голый узел с парой
// (namespace, element) и хранилищем. Используется для элементов, у которых
// нет специализированного типа.
type GenericExtension struct {
	BaseExtension
}

// NewGeneric создает универсальное расширение.
func NewGeneric(namespace, element string) *GenericExtension {
	return &GenericExtension{BaseExtension: NewBase(namespace, element)}
}

// Clone возвращает глубокую копию расширения.
func (g *GenericExtension) Clone() ExtensionElement {
	return &GenericExtension{BaseExtension: g.CloneBase()}
}
