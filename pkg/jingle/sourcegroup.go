package jingle

import "github.com/arzzra/xmpp_ext/pkg/xmppext"

// Константы элемента ssrc-group (XEP-0339: Source-Specific Media
// Attributes, группировка источников).
const (
	SourceGroupElement = "ssrc-group"

	semanticsAttrName = "semantics"
)

// Стандартные значения semantics группы источников.
const (
	// SemanticsFID пара источник + его ретрансляция (RTX).
	SemanticsFID = "FID"

	// SemanticsSimulcast набор симулкаст слоев одного потока.
	SemanticsSimulcast = "SIM"

	// SemanticsFEC источник + поток избыточности FEC.
	SemanticsFEC = "FEC-FR"
)

// SourceGroupExtension элемент ssrc-group: связывает несколько RTP
// источников общей семантикой (ретрансляция, симулкаст, FEC).
//
// Порядок источников значим: для FID первым идет основной источник,
// для SIM слои перечисляются от младшего к старшему.
type SourceGroupExtension struct {
	xmppext.BaseExtension
}

// NewSourceGroupExtension создает группу с заданной семантикой.
func NewSourceGroupExtension(semantics string) *SourceGroupExtension {
	g := &SourceGroupExtension{BaseExtension: xmppext.NewBase(SourceNamespace, SourceGroupElement)}
	g.SetSemantics(semantics)
	return g
}

// Semantics возвращает семантику группы или "".
func (g *SourceGroupExtension) Semantics() string {
	return g.AttributeAsString(semanticsAttrName)
}

// SetSemantics задает семантику группы. Пустая строка удаляет атрибут.
func (g *SourceGroupExtension) SetSemantics(semantics string) {
	if semantics == "" {
		g.RemoveAttribute(semanticsAttrName)
		return
	}
	g.SetAttribute(semanticsAttrName, semantics)
}

// AddSource добавляет источник в конец группы.
func (g *SourceGroupExtension) AddSource(src *SourceExtension) {
	g.AddChild(src)
}

// Sources возвращает источники группы в порядке добавления.
func (g *SourceGroupExtension) Sources() []*SourceExtension {
	var out []*SourceExtension
	for _, child := range g.Children() {
		if src, ok := child.(*SourceExtension); ok {
			out = append(out, src)
		}
	}
	return out
}

// Contains проверяет, входит ли источник с таким идентификатором
// в группу (сравнение через SourceEquals).
func (g *SourceGroupExtension) Contains(src *SourceExtension) bool {
	for _, member := range g.Sources() {
		if member.SourceEquals(src) {
			return true
		}
	}
	return false
}

// Copy возвращает глубокую копию группы: источники клонируются.
func (g *SourceGroupExtension) Copy() *SourceGroupExtension {
	return &SourceGroupExtension{BaseExtension: g.CloneBase()}
}

// Clone реализует xmppext.ExtensionElement.
func (g *SourceGroupExtension) Clone() xmppext.ExtensionElement {
	return g.Copy()
}

// NewSourceGroupProvider создает провайдер элемента ssrc-group с
// разбором вложенных source элементов. Группа без семантики не
// производится.
func NewSourceGroupProvider() xmppext.Provider {
	children := xmppext.NewRegistry()
	children.Register(SourceNamespace, SourceElement, NewSourceProvider())
	return &xmppext.DefaultProvider{
		Factory:  func() xmppext.Attributed { return &SourceGroupExtension{BaseExtension: xmppext.NewBase(SourceNamespace, SourceGroupElement)} },
		Children: children,
		Validate: func(elem xmppext.Attributed) bool {
			g, ok := elem.(*SourceGroupExtension)
			return ok && g.Semantics() != ""
		},
	}
}
