package colibri

import (
	"fmt"
	"strings"

	"github.com/arzzra/xmpp_ext/pkg/jingle"
	"github.com/arzzra/xmpp_ext/pkg/xmppext"
)

// Константы colibri2 элемента media.
const (
	Colibri2Namespace = "jitsi:colibri2"
	MediaElement      = "media"

	kindAttrName = "type"
)

// MediaKind вид медиа потока.
type MediaKind string

const (
	MediaKindAudio       MediaKind = "audio"
	MediaKindVideo       MediaKind = "video"
	MediaKindApplication MediaKind = "application"
)

// ParseMediaKind разбирает вид медиа из строкового представления.
func ParseMediaKind(s string) (MediaKind, error) {
	switch MediaKind(strings.ToLower(s)) {
	case MediaKindAudio:
		return MediaKindAudio, nil
	case MediaKindVideo:
		return MediaKindVideo, nil
	case MediaKindApplication:
		return MediaKindApplication, nil
	default:
		return "", xmppext.NewExtError(xmppext.ErrorCodeInvalidValue, MediaElement,
			fmt.Sprintf("неизвестный вид медиа: %q", s))
	}
}

// MediaExtension colibri2 элемент media: обязательный вид медиа плюс
// две упорядоченные коллекции дочерних дескрипторов - payload-type и
// rtp-hdrext.
//
// Наружу экземпляры создаются только через MediaBuilder; построенный
// элемент предполагается замороженным (read/serialize).
type MediaExtension struct {
	xmppext.BaseExtension
}

// newMediaExtension создает пустой media элемент (для провайдера).
func newMediaExtension() *MediaExtension {
	return &MediaExtension{BaseExtension: xmppext.NewBase(Colibri2Namespace, MediaElement)}
}

// Kind возвращает вид медиа. Невалидное или отсутствующее значение
// атрибута возвращается как ошибка.
func (m *MediaExtension) Kind() (MediaKind, error) {
	return ParseMediaKind(m.AttributeAsString(kindAttrName))
}

// PayloadTypes возвращает дескрипторы кодеков в порядке добавления.
func (m *MediaExtension) PayloadTypes() []*jingle.PayloadTypeExtension {
	var out []*jingle.PayloadTypeExtension
	for _, child := range m.Children() {
		if pt, ok := child.(*jingle.PayloadTypeExtension); ok {
			out = append(out, pt)
		}
	}
	return out
}

// RTPHdrExts возвращает дескрипторы RTP header extensions в порядке
// добавления.
func (m *MediaExtension) RTPHdrExts() []*jingle.RTPHdrExtExtension {
	var out []*jingle.RTPHdrExtExtension
	for _, child := range m.Children() {
		if he, ok := child.(*jingle.RTPHdrExtExtension); ok {
			out = append(out, he)
		}
	}
	return out
}

// Clone возвращает глубокую копию элемента.
func (m *MediaExtension) Clone() xmppext.ExtensionElement {
	return &MediaExtension{BaseExtension: m.CloneBase()}
}

// MediaBuilder накапливает поля и собирает неизменяемый media элемент.
//
// Вид медиа - одиночное значение, последняя установка выигрывает.
// Build отклоняет сборку без вида медиа; уже построенные экземпляры
// builder никогда не мутирует.
type MediaBuilder struct {
	kind         MediaKind
	kindSet      bool
	payloadTypes []*jingle.PayloadTypeExtension
	rtpHdrExts   []*jingle.RTPHdrExtExtension
}

// NewMediaBuilder создает пустой builder.
func NewMediaBuilder() *MediaBuilder {
	return &MediaBuilder{}
}

// SetKind задает вид медиа собираемого элемента.
func (b *MediaBuilder) SetKind(kind MediaKind) *MediaBuilder {
	b.kind = kind
	b.kindSet = true
	return b
}

// AddPayloadType добавляет дескриптор кодека.
func (b *MediaBuilder) AddPayloadType(pt *jingle.PayloadTypeExtension) *MediaBuilder {
	b.payloadTypes = append(b.payloadTypes, pt)
	return b
}

// AddRTPHdrExt добавляет дескриптор RTP header extension.
func (b *MediaBuilder) AddRTPHdrExt(he *jingle.RTPHdrExtExtension) *MediaBuilder {
	b.rtpHdrExts = append(b.rtpHdrExts, he)
	return b
}

// Build собирает media элемент. Возвращает ошибку сборки, если вид
// медиа не был задан: этот путь контролируется вызывающим кодом и
// означает дефект программы, а не недоверенный вход.
func (b *MediaBuilder) Build() (*MediaExtension, error) {
	if !b.kindSet {
		return nil, xmppext.NewExtError(xmppext.ErrorCodeBuildIncomplete, MediaElement,
			"вид медиа не задан")
	}
	m := newMediaExtension()
	m.SetAttribute(kindAttrName, string(b.kind))
	for _, pt := range b.payloadTypes {
		m.AddChild(pt)
	}
	for _, he := range b.rtpHdrExts {
		m.AddChild(he)
	}
	return m, nil
}

// NewMediaProvider создает провайдер элемента media с разбором дочерних
// payload-type и rtp-hdrext дескрипторов. Элемент без вида медиа не
// производится.
func NewMediaProvider() xmppext.Provider {
	children := xmppext.NewRegistry()
	children.Register(jingle.RTPNamespace, jingle.PayloadTypeElement, jingle.NewPayloadTypeProvider())
	children.Register(jingle.RTPHdrExtNamespace, jingle.RTPHdrExtElement, jingle.NewRTPHdrExtProvider())
	return &xmppext.DefaultProvider{
		Factory:  func() xmppext.Attributed { return newMediaExtension() },
		Children: children,
		Validate: func(elem xmppext.Attributed) bool {
			m, ok := elem.(*MediaExtension)
			if !ok {
				return false
			}
			_, err := m.Kind()
			return err == nil
		},
	}
}

// RegisterProviders регистрирует провайдеры colibri элементов в реестре.
func RegisterProviders(reg *xmppext.Registry) {
	reg.Register(ColibriNamespace, WebSocketElement, NewWebSocketProvider())
	reg.Register(Colibri2Namespace, MediaElement, NewMediaProvider())
}
