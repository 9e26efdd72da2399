package colibri

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arzzra/xmpp_ext/pkg/xmppext"
)

func TestWebSocket_URL(t *testing.T) {
	ws := NewWebSocketExtensionURL("wss://bridge.example.com/colibri-ws/abc")
	assert.Equal(t, "wss://bridge.example.com/colibri-ws/abc", ws.URL())
	assert.Equal(t,
		"<web-socket xmlns='http://jitsi.org/protocol/colibri' url='wss://bridge.example.com/colibri-ws/abc'/>",
		ws.ToXML(""))
}

func TestWebSocket_ActiveCoercion(t *testing.T) {
	ws := NewWebSocketExtension()
	// Незаданный атрибут - false
	assert.False(t, ws.Active())

	// Булево значение
	ws.SetActive(true)
	assert.True(t, ws.Active())

	// false снимает атрибут
	ws.SetActive(false)
	assert.False(t, ws.HasAttribute("active"))

	// Строковые представления
	cases := map[string]bool{
		"true":  true,
		"TRUE":  true,
		"1":     true,
		"false": false,
		"0":     false,
		"мусор": false,
	}
	for raw, want := range cases {
		ws.SetAttribute("active", raw)
		assert.Equal(t, want, ws.Active(), "active=%q", raw)
	}
}

func TestWebSocket_ActiveSerialized(t *testing.T) {
	ws := NewWebSocketExtensionURL("wss://x")
	ws.SetActive(true)
	assert.Equal(t,
		"<web-socket xmlns='http://jitsi.org/protocol/colibri' url='wss://x' active='true'/>",
		ws.ToXML(""))
}

func TestWebSocket_ProviderRoundTrip(t *testing.T) {
	orig := NewWebSocketExtensionURL("wss://bridge/ws")
	orig.SetActive(true)

	p := xmppext.NewParserString(orig.ToXML(""))
	require.NoError(t, p.NextStartElement())
	elem, err := NewWebSocketProvider().Parse(p)
	require.NoError(t, err)
	require.NotNil(t, elem)

	parsed := elem.(*WebSocketExtension)
	assert.Equal(t, orig.URL(), parsed.URL())
	assert.True(t, parsed.Active())
}

func TestWebSocket_ProviderRejectsMissingURL(t *testing.T) {
	p := xmppext.NewParserString("<web-socket xmlns='http://jitsi.org/protocol/colibri'/>")
	require.NoError(t, p.NextStartElement())
	elem, err := NewWebSocketProvider().Parse(p)
	require.NoError(t, err)
	assert.Nil(t, elem)
}

func TestWebSocket_Clone(t *testing.T) {
	ws := NewWebSocketExtensionURL("wss://x")
	cp := ws.Clone().(*WebSocketExtension)
	cp.SetURL("wss://y")
	assert.Equal(t, "wss://x", ws.URL())
	assert.Equal(t, "wss://y", cp.URL())
}
