// Package sdpneg строит SDP описания сессии из элементов медиа-переговоров:
// colibri2 media дескрипторов и заявленных RTP источников.
//
// Пакет служит мостом между XML сигнализацией и SDP стеком: согласованные
// payload-type и rtp-hdrext дескрипторы превращаются в rtpmap/extmap
// атрибуты, источники - в a=ssrc/a=rid строки соответствующей медиа секции.
package sdpneg

import (
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/pion/sdp/v3"

	"github.com/arzzra/xmpp_ext/pkg/colibri"
	"github.com/arzzra/xmpp_ext/pkg/jingle"
)

// cnameParam имя параметра источника, несущего RTCP CNAME.
const cnameParam = "cname"

// OfferConfig конфигурация построителя SDP offer.
type OfferConfig struct {
	// SessionName имя сессии (s= строка).
	SessionName string

	// UnicastAddress локальный адрес для origin и connection строк.
	UnicastAddress string

	// BasePort порт первой медиа секции; каждая следующая получает +2.
	BasePort int
}

// OfferBuilder накапливает медиа дескрипторы и источники, затем строит
// SDP offer. Построитель не мутирует переданные элементы.
type OfferBuilder struct {
	config  OfferConfig
	medias  []*colibri.MediaExtension
	sources map[colibri.MediaKind][]*jingle.SourceExtension
	logger  *slog.Logger
}

// NewOfferBuilder создает построитель. Конфигурация валидируется,
// незаданный BasePort получает значение по умолчанию.
func NewOfferBuilder(config OfferConfig) (*OfferBuilder, error) {
	if config.UnicastAddress == "" {
		return nil, &SDPError{Code: ErrorCodeInvalidConfig, Message: "UnicastAddress не может быть пустым"}
	}
	if config.SessionName == "" {
		config.SessionName = "conference"
	}
	if config.BasePort == 0 {
		config.BasePort = 49170
	}
	return &OfferBuilder{
		config:  config,
		sources: make(map[colibri.MediaKind][]*jingle.SourceExtension),
		logger:  slog.Default().With(slog.String("component", "sdp_offer_builder")),
	}, nil
}

// AddMedia добавляет согласованный media дескриптор.
func (b *OfferBuilder) AddMedia(m *colibri.MediaExtension) {
	if m != nil {
		b.medias = append(b.medias, m)
	}
}

// AddSource привязывает источник к медиа секциям заданного вида.
func (b *OfferBuilder) AddSource(kind colibri.MediaKind, src *jingle.SourceExtension) {
	if src != nil {
		b.sources[kind] = append(b.sources[kind], src)
	}
}

// CreateOffer строит SDP offer из накопленных дескрипторов.
func (b *OfferBuilder) CreateOffer() (*sdp.SessionDescription, error) {
	if len(b.medias) == 0 {
		return nil, &SDPError{Code: ErrorCodeEmptyOffer, Message: "нет ни одного media дескриптора"}
	}

	offer := &sdp.SessionDescription{
		Version: 0,
		Origin: sdp.Origin{
			Username:       "-",
			SessionID:      uint64(time.Now().UnixNano()),
			SessionVersion: 2,
			NetworkType:    "IN",
			AddressType:    "IP4",
			UnicastAddress: b.config.UnicastAddress,
		},
		SessionName: sdp.SessionName(b.config.SessionName),
		ConnectionInformation: &sdp.ConnectionInformation{
			NetworkType: "IN",
			AddressType: "IP4",
			Address:     &sdp.Address{Address: b.config.UnicastAddress},
		},
		TimeDescriptions: []sdp.TimeDescription{
			{Timing: sdp.Timing{StartTime: 0, StopTime: 0}},
		},
	}

	port := b.config.BasePort
	for _, m := range b.medias {
		kind, err := m.Kind()
		if err != nil {
			return nil, &SDPError{Code: ErrorCodeInvalidKind, Message: "media без валидного вида", Wrapped: err}
		}
		md, err := b.buildMediaDescription(m, kind, port)
		if err != nil {
			return nil, err
		}
		offer.MediaDescriptions = append(offer.MediaDescriptions, md)
		port += 2
	}

	b.logger.Debug("SDP offer построен",
		slog.Int("media_sections", len(offer.MediaDescriptions)))
	return offer, nil
}

// buildMediaDescription строит одну медиа секцию: форматы из payload-type
// дескрипторов, rtpmap/extmap атрибуты, ssrc/rid строки источников.
func (b *OfferBuilder) buildMediaDescription(m *colibri.MediaExtension, kind colibri.MediaKind, port int) (*sdp.MediaDescription, error) {
	payloadTypes := m.PayloadTypes()

	formats := make([]string, 0, len(payloadTypes))
	for _, pt := range payloadTypes {
		if pt.ID() < 0 {
			return nil, &SDPError{
				Code:    ErrorCodeSDPGeneration,
				Message: fmt.Sprintf("payload-type без id в секции %s", kind),
			}
		}
		formats = append(formats, strconv.Itoa(pt.ID()))
	}

	md := &sdp.MediaDescription{
		MediaName: sdp.MediaName{
			Media:   string(kind),
			Port:    sdp.RangedPort{Value: port},
			Protos:  []string{"RTP", "AVP"},
			Formats: formats,
		},
		Attributes: make([]sdp.Attribute, 0),
	}

	for _, pt := range payloadTypes {
		if pt.Name() == "" || pt.Clockrate() <= 0 {
			continue
		}
		rtpmap := fmt.Sprintf("%d %s/%d", pt.ID(), pt.Name(), pt.Clockrate())
		if pt.Channels() > 1 {
			rtpmap += "/" + strconv.Itoa(pt.Channels())
		}
		md.Attributes = append(md.Attributes, sdp.NewAttribute("rtpmap", rtpmap))
	}

	for _, he := range m.RTPHdrExts() {
		if he.ID() < 0 || he.URI() == "" {
			continue
		}
		md.Attributes = append(md.Attributes,
			sdp.NewAttribute("extmap", fmt.Sprintf("%d %s", he.ID(), he.URI())))
	}

	for _, src := range b.sources[kind] {
		switch {
		case src.HasSSRC():
			value := strconv.FormatInt(src.SSRC(), 10)
			if cname := src.Parameter(cnameParam); cname != "" {
				value += " cname:" + cname
			}
			md.Attributes = append(md.Attributes, sdp.NewAttribute("ssrc", value))
		case src.HasRid():
			md.Attributes = append(md.Attributes,
				sdp.NewAttribute("rid", src.Rid()+" recv"))
		}
	}

	return md, nil
}
