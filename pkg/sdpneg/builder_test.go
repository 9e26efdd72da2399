package sdpneg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arzzra/xmpp_ext/pkg/colibri"
	"github.com/arzzra/xmpp_ext/pkg/jingle"
)

func newAudioMedia(t *testing.T) *colibri.MediaExtension {
	t.Helper()
	m, err := colibri.NewMediaBuilder().
		SetKind(colibri.MediaKindAudio).
		AddPayloadType(jingle.NewPayloadTypeExtension(111, "opus", 48000, 2)).
		AddPayloadType(jingle.NewPayloadTypeExtension(0, "PCMU", 8000, 1)).
		AddRTPHdrExt(jingle.NewRTPHdrExtExtension(1, "urn:ietf:params:rtp-hdrext:ssrc-audio-level")).
		Build()
	require.NoError(t, err)
	return m
}

func TestNewOfferBuilder_ConfigValidation(t *testing.T) {
	_, err := NewOfferBuilder(OfferConfig{})
	require.Error(t, err)
	assert.ErrorIs(t, err, &SDPError{Code: ErrorCodeInvalidConfig})

	b, err := NewOfferBuilder(OfferConfig{UnicastAddress: "203.0.113.5"})
	require.NoError(t, err)
	require.NotNil(t, b)
}

func TestCreateOffer_EmptyRejected(t *testing.T) {
	b, err := NewOfferBuilder(OfferConfig{UnicastAddress: "203.0.113.5"})
	require.NoError(t, err)

	_, err = b.CreateOffer()
	require.Error(t, err)
	assert.ErrorIs(t, err, &SDPError{Code: ErrorCodeEmptyOffer})
}

func TestCreateOffer_MediaSection(t *testing.T) {
	b, err := NewOfferBuilder(OfferConfig{
		UnicastAddress: "203.0.113.5",
		SessionName:    "test-conf",
		BasePort:       50000,
	})
	require.NoError(t, err)
	b.AddMedia(newAudioMedia(t))

	offer, err := b.CreateOffer()
	require.NoError(t, err)
	require.Len(t, offer.MediaDescriptions, 1)

	md := offer.MediaDescriptions[0]
	assert.Equal(t, "audio", md.MediaName.Media)
	assert.Equal(t, 50000, md.MediaName.Port.Value)
	// Порядок форматов совпадает с порядком payload-type дескрипторов
	assert.Equal(t, []string{"111", "0"}, md.MediaName.Formats)

	attrs := make(map[string][]string)
	for _, a := range md.Attributes {
		attrs[a.Key] = append(attrs[a.Key], a.Value)
	}
	assert.Equal(t, []string{"111 opus/48000/2", "0 PCMU/8000"}, attrs["rtpmap"])
	assert.Equal(t, []string{"1 urn:ietf:params:rtp-hdrext:ssrc-audio-level"}, attrs["extmap"])
}

func TestCreateOffer_PortsAdvanceByTwo(t *testing.T) {
	video, err := colibri.NewMediaBuilder().
		SetKind(colibri.MediaKindVideo).
		AddPayloadType(jingle.NewPayloadTypeExtension(100, "VP8", 90000, 1)).
		Build()
	require.NoError(t, err)

	b, err := NewOfferBuilder(OfferConfig{UnicastAddress: "203.0.113.5", BasePort: 49170})
	require.NoError(t, err)
	b.AddMedia(newAudioMedia(t))
	b.AddMedia(video)

	offer, err := b.CreateOffer()
	require.NoError(t, err)
	require.Len(t, offer.MediaDescriptions, 2)
	assert.Equal(t, 49170, offer.MediaDescriptions[0].MediaName.Port.Value)
	assert.Equal(t, 49172, offer.MediaDescriptions[1].MediaName.Port.Value)
}

func TestCreateOffer_SourceAttributes(t *testing.T) {
	ssrcSrc := jingle.NewSourceExtension()
	ssrcSrc.SetSSRC(4294967295)
	ssrcSrc.AddParameter(jingle.NewParameterExtension("cname", "user@host"))

	ridSrc := jingle.NewSourceExtension()
	ridSrc.SetRid("r0")

	b, err := NewOfferBuilder(OfferConfig{UnicastAddress: "203.0.113.5"})
	require.NoError(t, err)
	b.AddMedia(newAudioMedia(t))
	b.AddSource(colibri.MediaKindAudio, ssrcSrc)
	b.AddSource(colibri.MediaKindAudio, ridSrc)

	offer, err := b.CreateOffer()
	require.NoError(t, err)

	var ssrcVals, ridVals []string
	for _, a := range offer.MediaDescriptions[0].Attributes {
		switch a.Key {
		case "ssrc":
			ssrcVals = append(ssrcVals, a.Value)
		case "rid":
			ridVals = append(ridVals, a.Value)
		}
	}
	assert.Equal(t, []string{"4294967295 cname:user@host"}, ssrcVals)
	assert.Equal(t, []string{"r0 recv"}, ridVals)
}

func TestCreateOffer_Defaults(t *testing.T) {
	b, err := NewOfferBuilder(OfferConfig{UnicastAddress: "203.0.113.5"})
	require.NoError(t, err)
	b.AddMedia(newAudioMedia(t))

	offer, err := b.CreateOffer()
	require.NoError(t, err)
	assert.Equal(t, "conference", string(offer.SessionName))
	assert.Equal(t, "203.0.113.5", offer.Origin.UnicastAddress)
	assert.Equal(t, 49170, offer.MediaDescriptions[0].MediaName.Port.Value)
}

func TestCreateOffer_Marshal(t *testing.T) {
	b, err := NewOfferBuilder(OfferConfig{UnicastAddress: "203.0.113.5"})
	require.NoError(t, err)
	b.AddMedia(newAudioMedia(t))

	offer, err := b.CreateOffer()
	require.NoError(t, err)

	raw, err := offer.Marshal()
	require.NoError(t, err)
	text := string(raw)
	assert.Contains(t, text, "m=audio 49170 RTP/AVP 111 0")
	assert.Contains(t, text, "a=rtpmap:111 opus/48000/2")
	assert.Contains(t, text, "c=IN IP4 203.0.113.5")
}
