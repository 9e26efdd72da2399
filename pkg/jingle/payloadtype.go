package jingle

import (
	"strconv"

	"github.com/arzzra/xmpp_ext/pkg/xmppext"
)

// Константы элемента payload-type (XEP-0167: Jingle RTP Sessions).
const (
	PayloadTypeElement = "payload-type"

	ptIDAttrName        = "id"
	ptNameAttrName      = "name"
	ptClockrateAttrName = "clockrate"
	ptChannelsAttrName  = "channels"
)

// PayloadTypeExtension дескриптор кодека медиа потока: числовой payload
// type, имя кодека, тактовая частота и количество каналов.
type PayloadTypeExtension struct {
	xmppext.BaseExtension
}

// NewPayloadTypeExtension создает дескриптор payload-type.
// channels <= 1 не сериализуется: один канал подразумевается по умолчанию.
func NewPayloadTypeExtension(id int, name string, clockrate int, channels int) *PayloadTypeExtension {
	pt := &PayloadTypeExtension{BaseExtension: xmppext.NewBase(RTPNamespace, PayloadTypeElement)}
	pt.SetAttribute(ptIDAttrName, id)
	if name != "" {
		pt.SetAttribute(ptNameAttrName, name)
	}
	if clockrate > 0 {
		pt.SetAttribute(ptClockrateAttrName, clockrate)
	}
	if channels > 1 {
		pt.SetAttribute(ptChannelsAttrName, channels)
	}
	return pt
}

// ID возвращает числовой payload type или -1, если он не задан.
func (pt *PayloadTypeExtension) ID() int {
	return pt.intAttr(ptIDAttrName, -1)
}

// Name возвращает имя кодека.
func (pt *PayloadTypeExtension) Name() string {
	return pt.AttributeAsString(ptNameAttrName)
}

// Clockrate возвращает тактовую частоту кодека или -1.
func (pt *PayloadTypeExtension) Clockrate() int {
	return pt.intAttr(ptClockrateAttrName, -1)
}

// Channels возвращает количество каналов; незаданный атрибут означает 1.
func (pt *PayloadTypeExtension) Channels() int {
	return pt.intAttr(ptChannelsAttrName, 1)
}

// Clone возвращает копию дескриптора.
func (pt *PayloadTypeExtension) Clone() xmppext.ExtensionElement {
	return &PayloadTypeExtension{BaseExtension: pt.CloneBase()}
}

func (pt *PayloadTypeExtension) intAttr(name string, def int) int {
	raw := pt.AttributeAsString(name)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return v
}
