package jingle

import "github.com/arzzra/xmpp_ext/pkg/xmppext"

// ParameterProvider разбирает элемент parameter.
//
// На проводе parameter встречается как с собственным xmlns, так и без
// него (наследуя namespace родителя), поэтому провайдер сверяет только
// локальное имя, а канонический namespace проставляет сам.
type ParameterProvider struct{}

// Parse реализует xmppext.Provider.
func (ParameterProvider) Parse(p *xmppext.Parser) (xmppext.ExtensionElement, error) {
	if p.Name() != ParameterElement {
		return nil, nil
	}
	param := &ParameterExtension{BaseExtension: xmppext.NewBase(RTPNamespace, ParameterElement)}
	for _, a := range p.Attrs() {
		param.SetAttribute(a.Name.Local, a.Value)
	}
	if err := p.SkipElement(); err != nil {
		return nil, xmppext.WrapExtError(xmppext.ErrorCodeUnexpectedEOF, ParameterElement,
			"поток закончился внутри элемента parameter", err)
	}
	return param, nil
}

// NewSourceProvider создает провайдер элемента source с разбором
// вложенных параметров.
func NewSourceProvider() xmppext.Provider {
	children := xmppext.NewRegistry()
	children.Register(RTPNamespace, ParameterElement, ParameterProvider{})
	children.Register(SourceNamespace, ParameterElement, ParameterProvider{})
	return &xmppext.DefaultProvider{
		Factory:  func() xmppext.Attributed { return NewSourceExtension() },
		Children: children,
	}
}

// NewPayloadTypeProvider создает провайдер элемента payload-type с
// разбором вложенных fmtp параметров.
func NewPayloadTypeProvider() xmppext.Provider {
	children := xmppext.NewRegistry()
	children.Register(RTPNamespace, ParameterElement, ParameterProvider{})
	return &xmppext.DefaultProvider{
		Factory: func() xmppext.Attributed {
			return &PayloadTypeExtension{BaseExtension: xmppext.NewBase(RTPNamespace, PayloadTypeElement)}
		},
		Children: children,
	}
}

// NewRTPHdrExtProvider создает провайдер элемента rtp-hdrext.
func NewRTPHdrExtProvider() xmppext.Provider {
	return &xmppext.DefaultProvider{
		Factory: func() xmppext.Attributed {
			return &RTPHdrExtExtension{BaseExtension: xmppext.NewBase(RTPHdrExtNamespace, RTPHdrExtElement)}
		},
	}
}

// RegisterProviders регистрирует провайдеры jingle элементов в реестре.
func RegisterProviders(reg *xmppext.Registry) {
	reg.Register(SourceNamespace, SourceElement, NewSourceProvider())
	reg.Register(SourceNamespace, SourceGroupElement, NewSourceGroupProvider())
	reg.Register(RTPNamespace, PayloadTypeElement, NewPayloadTypeProvider())
	reg.Register(RTPHdrExtNamespace, RTPHdrExtElement, NewRTPHdrExtProvider())
}
