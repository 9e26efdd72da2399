package xmppext

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBaseExtension_ToXMLEmpty(t *testing.T) {
	ext := NewGeneric("urn:example:test", "item")
	assert.Equal(t, "<item xmlns='urn:example:test'/>", ext.ToXML(""))

	// Совпадающий объемлющий namespace подавляет xmlns
	assert.Equal(t, "<item/>", ext.ToXML("urn:example:test"))
}

func TestBaseExtension_ToXMLAttributesInOrder(t *testing.T) {
	ext := NewGeneric("urn:example:test", "item")
	ext.SetAttribute("b", "2")
	ext.SetAttribute("a", "1")
	ext.SetAttribute("b", "3") // перезапись, позиция прежняя

	assert.Equal(t, "<item xmlns='urn:example:test' b='3' a='1'/>", ext.ToXML(""))
}

func TestBaseExtension_ToXMLChildrenAndText(t *testing.T) {
	ext := NewGeneric("urn:example:test", "parent")
	child := NewGeneric("urn:example:test", "child")
	child.SetText("hello")
	ext.AddChild(child)

	// Дочерний элемент в родительском namespace выводится без xmlns
	assert.Equal(t,
		"<parent xmlns='urn:example:test'><child>hello</child></parent>",
		ext.ToXML(""))
}

func TestBaseExtension_ToXMLEscaping(t *testing.T) {
	ext := NewGeneric("urn:example:test", "item")
	ext.SetAttribute("val", "a<b&c'd")
	ext.SetText("x<y&z")

	assert.Equal(t,
		"<item xmlns='urn:example:test' val='a&lt;b&amp;c&apos;d'>x&lt;y&amp;z</item>",
		ext.ToXML(""))
}

func TestBaseExtension_UnsetAttributeNotSerialized(t *testing.T) {
	ext := NewGeneric("urn:example:test", "item")
	ext.SetAttribute("keep", "1")
	ext.SetAttribute("drop", "2")
	ext.RemoveAttribute("drop")

	assert.Equal(t, "<item xmlns='urn:example:test' keep='1'/>", ext.ToXML(""))
}

func TestBaseExtension_CloneDeep(t *testing.T) {
	ext := NewGeneric("urn:example:test", "parent")
	ext.SetAttribute("a", "1")
	child := NewGeneric("urn:example:test", "child")
	child.SetAttribute("k", "v")
	ext.AddChild(child)

	cp, ok := ext.Clone().(*GenericExtension)
	require.True(t, ok)

	// Мутация копии не видна оригиналу
	cp.SetAttribute("a", "changed")
	cpChild, ok := cp.Children()[0].(*GenericExtension)
	require.True(t, ok)
	cpChild.SetAttribute("k", "changed")

	assert.Equal(t, "1", ext.AttributeAsString("a"))
	assert.Equal(t, "v", child.AttributeAsString("k"))

	// Дочерние элементы копии структурно равны, но это другие объекты
	require.Len(t, cp.Children(), 1)
	assert.NotSame(t, child, cp.Children()[0])
	assert.Equal(t, "changed", cpChild.AttributeAsString("k"))
}

func TestBaseExtension_ToXMLDoesNotMutate(t *testing.T) {
	ext := NewGeneric("urn:example:test", "item")
	ext.SetAttribute("a", "1")

	first := ext.ToXML("")
	second := ext.ToXML("")
	assert.Equal(t, first, second)
}
