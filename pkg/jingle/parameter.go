package jingle

import "github.com/arzzra/xmpp_ext/pkg/xmppext"

// Константы элемента parameter (XEP-0167: Jingle RTP Sessions).
const (
	RTPNamespace     = "urn:xmpp:jingle:apps:rtp:1"
	ParameterElement = "parameter"

	paramNameAttrName  = "name"
	paramValueAttrName = "value"
)

// ParameterExtension пара ключ/значение, уточняющая источник или
// payload-type (например cname, msid, fmtp параметры).
type ParameterExtension struct {
	xmppext.BaseExtension
}

// NewParameterExtension создает параметр с именем и значением.
func NewParameterExtension(name, value string) *ParameterExtension {
	param := &ParameterExtension{BaseExtension: xmppext.NewBase(RTPNamespace, ParameterElement)}
	if name != "" {
		param.SetAttribute(paramNameAttrName, name)
	}
	if value != "" {
		param.SetAttribute(paramValueAttrName, value)
	}
	return param
}

// Name возвращает имя параметра.
func (p *ParameterExtension) Name() string {
	return p.AttributeAsString(paramNameAttrName)
}

// SetName задает имя параметра.
func (p *ParameterExtension) SetName(name string) {
	p.SetAttribute(paramNameAttrName, name)
}

// Value возвращает значение параметра.
func (p *ParameterExtension) Value() string {
	return p.AttributeAsString(paramValueAttrName)
}

// SetValue задает значение параметра.
func (p *ParameterExtension) SetValue(value string) {
	p.SetAttribute(paramValueAttrName, value)
}

// Clone возвращает копию параметра.
func (p *ParameterExtension) Clone() xmppext.ExtensionElement {
	return &ParameterExtension{BaseExtension: p.CloneBase()}
}
