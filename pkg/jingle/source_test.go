package jingle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arzzra/xmpp_ext/pkg/xmppext"
)

func TestSource_SSRCMasking(t *testing.T) {
	cases := []struct {
		name string
		in   int64
		want int64
	}{
		{"zero", 0, 0},
		{"small", 12345, 12345},
		{"max uint32", 4294967295, 4294967295},
		{"over 32 bits", 0x1_0000_0001, 1},
		{"negative (not sentinel)", -2, 0xFFFFFFFE},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			src := NewSourceExtension()
			src.SetSSRC(tc.in)
			assert.Equal(t, tc.want, src.SSRC())
			assert.True(t, src.HasSSRC())
		})
	}
}

func TestSource_SSRCSentinel(t *testing.T) {
	src := NewSourceExtension()
	assert.Equal(t, SSRCNone, src.SSRC())
	assert.False(t, src.HasSSRC())

	// Сентинел отличим от любого валидного замаскированного значения
	src.SetSSRC(0xFFFFFFFF)
	assert.NotEqual(t, SSRCNone, src.SSRC())

	// Установка сентинела снимает атрибут
	src.SetSSRC(SSRCNone)
	assert.False(t, src.HasSSRC())
	assert.Equal(t, SSRCNone, src.SSRC())
}

func TestSource_RidAndName(t *testing.T) {
	src := NewSourceExtension()
	assert.False(t, src.HasRid())
	assert.False(t, src.HasName())

	src.SetRid("r0")
	src.SetName("camera-1")
	assert.Equal(t, "r0", src.Rid())
	assert.Equal(t, "camera-1", src.Name())

	src.SetRid("")
	assert.False(t, src.HasRid())
}

func TestSource_SourceEquals(t *testing.T) {
	bySSRC := func(ssrc int64) *SourceExtension {
		s := NewSourceExtension()
		s.SetSSRC(ssrc)
		return s
	}
	byRid := func(rid string) *SourceExtension {
		s := NewSourceExtension()
		s.SetRid(rid)
		return s
	}

	t.Run("общий ssrc выигрывает у различающихся rid", func(t *testing.T) {
		a := bySSRC(100)
		a.SetRid("r1")
		b := bySSRC(100)
		b.SetRid("r2")
		assert.True(t, a.SourceEquals(b))
		assert.True(t, b.SourceEquals(a))
	})

	t.Run("разные ssrc не равны", func(t *testing.T) {
		assert.False(t, bySSRC(1).SourceEquals(bySSRC(2)))
	})

	t.Run("только rid", func(t *testing.T) {
		assert.True(t, byRid("r0").SourceEquals(byRid("r0")))
		assert.False(t, byRid("r0").SourceEquals(byRid("r1")))
	})

	t.Run("без общего идентификатора не равны никогда", func(t *testing.T) {
		empty := NewSourceExtension()
		named := NewSourceExtension()
		named.SetName("only-name")

		assert.False(t, empty.SourceEquals(empty))
		assert.False(t, named.SourceEquals(named))
		assert.False(t, bySSRC(1).SourceEquals(byRid("r0")))
		assert.False(t, byRid("r0").SourceEquals(bySSRC(1)))
	})
}

func TestSource_Parameters(t *testing.T) {
	src := NewSourceExtension()
	src.AddParameter(NewParameterExtension("cname", "abc"))
	src.AddParameter(NewParameterExtension("msid", "m0"))

	params := src.Parameters()
	require.Len(t, params, 2)
	assert.Equal(t, "cname", params[0].Name())
	assert.Equal(t, "abc", src.Parameter("cname"))
	assert.Equal(t, "", src.Parameter("missing"))
}

func TestSource_CopyDeep(t *testing.T) {
	src := NewSourceExtension()
	src.SetSSRC(42)
	src.SetInjected(true)
	src.AddParameter(NewParameterExtension("cname", "abc"))
	src.AddParameter(NewParameterExtension("msid", "m0"))

	cp := src.Copy()

	// Копия структурно равна, но параметры - другие объекты
	require.Len(t, cp.Parameters(), 2)
	assert.True(t, cp.SourceEquals(src))
	assert.True(t, cp.Injected())
	for i := range src.Parameters() {
		assert.NotSame(t, src.Parameters()[i], cp.Parameters()[i])
		assert.Equal(t, src.Parameters()[i].Name(), cp.Parameters()[i].Name())
	}

	// Мутация параметров копии не видна оригиналу
	cp.Parameters()[0].SetValue("changed")
	assert.Equal(t, "abc", src.Parameter("cname"))
}

func TestSource_String(t *testing.T) {
	src := NewSourceExtension()
	assert.Equal(t, "[no identifier]", src.String())

	src.SetName("cam")
	assert.Equal(t, "name=cam", src.String())

	src.SetSSRC(7)
	assert.Equal(t, "ssrc=7", src.String())

	src.SetRid("r0")
	assert.Equal(t, "rid=r0", src.String())
}

func TestSource_ToXML(t *testing.T) {
	src := NewSourceExtension()
	src.SetSSRC(4294967295)
	assert.Equal(t,
		"<source xmlns='urn:xmpp:jingle:apps:rtp:ssma:0' ssrc='4294967295'/>",
		src.ToXML(""))

	src.AddParameter(NewParameterExtension("cname", "abc"))
	assert.Equal(t,
		"<source xmlns='urn:xmpp:jingle:apps:rtp:ssma:0' ssrc='4294967295'>"+
			"<parameter xmlns='urn:xmpp:jingle:apps:rtp:1' name='cname' value='abc'/></source>",
		src.ToXML(""))
}

func TestSource_InjectedNotSerialized(t *testing.T) {
	src := NewSourceExtension()
	src.SetSSRC(1)
	plain := src.ToXML("")

	src.SetInjected(true)
	assert.Equal(t, plain, src.ToXML(""))
}

func parseSource(t *testing.T, fragment string) *SourceExtension {
	t.Helper()
	p := xmppext.NewParserString(fragment)
	require.NoError(t, p.NextStartElement())
	elem, err := NewSourceProvider().Parse(p)
	require.NoError(t, err)
	require.NotNil(t, elem)
	src, ok := elem.(*SourceExtension)
	require.True(t, ok)
	return src
}

func TestSourceProvider_MaxUnsignedSSRC(t *testing.T) {
	src := parseSource(t, "<source xmlns='urn:xmpp:jingle:apps:rtp:ssma:0' ssrc='4294967295'/>")
	assert.Equal(t, int64(4294967295), src.SSRC())
	assert.False(t, src.HasRid())
}

func TestSourceProvider_Parameters(t *testing.T) {
	fragment := "<source xmlns='urn:xmpp:jingle:apps:rtp:ssma:0' ssrc='17' name='cam'>" +
		"<parameter xmlns='urn:xmpp:jingle:apps:rtp:1' name='cname' value='abc'/>" +
		"<parameter name='msid' value='m0'/>" + // наследует namespace родителя
		"</source>"
	src := parseSource(t, fragment)

	assert.Equal(t, int64(17), src.SSRC())
	assert.Equal(t, "cam", src.Name())
	require.Len(t, src.Parameters(), 2)
	assert.Equal(t, "abc", src.Parameter("cname"))
	assert.Equal(t, "m0", src.Parameter("msid"))
}

func TestSourceProvider_RoundTrip(t *testing.T) {
	orig := NewSourceExtension()
	orig.SetSSRC(99)
	orig.SetRid("r9")
	orig.AddParameter(NewParameterExtension("cname", "xyz"))

	parsed := parseSource(t, orig.ToXML(""))
	assert.True(t, parsed.SourceEquals(orig))
	assert.Equal(t, orig.Rid(), parsed.Rid())
	assert.Equal(t, "xyz", parsed.Parameter("cname"))
}
