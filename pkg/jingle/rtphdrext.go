package jingle

import (
	"strconv"

	"github.com/arzzra/xmpp_ext/pkg/xmppext"
)

// Константы элемента rtp-hdrext (XEP-0294: Jingle RTP Header Extensions
// Negotiation).
const (
	RTPHdrExtNamespace = "urn:xmpp:jingle:apps:rtp:rtp-hdrext:0"
	RTPHdrExtElement   = "rtp-hdrext"

	hdrExtIDAttrName  = "id"
	hdrExtURIAttrName = "uri"
)

// RTPHdrExtExtension дескриптор RTP header extension: числовой
// идентификатор и URI, определяющий семантику расширения заголовка.
type RTPHdrExtExtension struct {
	xmppext.BaseExtension
}

// NewRTPHdrExtExtension создает дескриптор rtp-hdrext.
func NewRTPHdrExtExtension(id int, uri string) *RTPHdrExtExtension {
	he := &RTPHdrExtExtension{BaseExtension: xmppext.NewBase(RTPHdrExtNamespace, RTPHdrExtElement)}
	he.SetAttribute(hdrExtIDAttrName, id)
	if uri != "" {
		he.SetAttribute(hdrExtURIAttrName, uri)
	}
	return he
}

// ID возвращает идентификатор header extension или -1.
func (he *RTPHdrExtExtension) ID() int {
	raw := he.AttributeAsString(hdrExtIDAttrName)
	if raw == "" {
		return -1
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return -1
	}
	return v
}

// URI возвращает URI header extension.
func (he *RTPHdrExtExtension) URI() string {
	return he.AttributeAsString(hdrExtURIAttrName)
}

// Clone возвращает копию дескриптора.
func (he *RTPHdrExtExtension) Clone() xmppext.ExtensionElement {
	return &RTPHdrExtExtension{BaseExtension: he.CloneBase()}
}
