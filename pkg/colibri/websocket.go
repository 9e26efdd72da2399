package colibri

import (
	"strconv"

	"github.com/arzzra/xmpp_ext/pkg/xmppext"
)

// Константы элемента web-socket colibri транспорта.
const (
	ColibriNamespace = "http://jitsi.org/protocol/colibri"
	WebSocketElement = "web-socket"

	urlAttrName    = "url"
	activeAttrName = "active"
)

// WebSocketExtension дескриптор web-socket транспорта: URL точки
// подключения и флаг active, указывающий что удаленная сторона
// будет использовать активное соединение.
type WebSocketExtension struct {
	xmppext.BaseExtension
}

// NewWebSocketExtension создает дескриптор без URL.
func NewWebSocketExtension() *WebSocketExtension {
	return &WebSocketExtension{BaseExtension: xmppext.NewBase(ColibriNamespace, WebSocketElement)}
}

// NewWebSocketExtensionURL создает дескриптор с заданным URL.
func NewWebSocketExtensionURL(url string) *WebSocketExtension {
	ext := NewWebSocketExtension()
	ext.SetURL(url)
	return ext
}

// URL возвращает URL web-socket точки подключения.
func (e *WebSocketExtension) URL() string {
	return e.AttributeAsString(urlAttrName)
}

// SetURL задает URL web-socket точки подключения.
func (e *WebSocketExtension) SetURL(url string) {
	e.SetAttribute(urlAttrName, url)
}

// Active возвращает флаг active. Значение приводится и из булевого,
// и из строкового представления; незаданный атрибут означает false.
func (e *WebSocketExtension) Active() bool {
	switch v := e.Attribute(activeAttrName).(type) {
	case bool:
		return v
	case string:
		active, err := strconv.ParseBool(v)
		return err == nil && active
	default:
		return false
	}
}

// SetActive задает флаг active. false удаляет атрибут.
func (e *WebSocketExtension) SetActive(active bool) {
	if !active {
		e.RemoveAttribute(activeAttrName)
		return
	}
	e.SetAttribute(activeAttrName, true)
}

// Clone возвращает копию дескриптора.
func (e *WebSocketExtension) Clone() xmppext.ExtensionElement {
	return &WebSocketExtension{BaseExtension: e.CloneBase()}
}

// NewWebSocketProvider создает провайдер элемента web-socket.
// Дескриптор без url бесполезен и не производится.
func NewWebSocketProvider() xmppext.Provider {
	return &xmppext.DefaultProvider{
		Factory: func() xmppext.Attributed { return NewWebSocketExtension() },
		Validate: func(elem xmppext.Attributed) bool {
			ws, ok := elem.(*WebSocketExtension)
			return ok && ws.URL() != ""
		},
	}
}
