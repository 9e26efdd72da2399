package presence

import (
	"crypto/sha1"
	"encoding/hex"

	"github.com/arzzra/xmpp_ext/pkg/xmppext"
)

// Константы presence расширения vcard-temp:x:update (XEP-0153).
// Элемент несет SHA-1 хэш изображения аватара в теге photo.
const (
	VCardUpdateNamespace = "vcard-temp:x:update"
	VCardUpdateElement   = "x"

	photoElement = "photo"
)

// VCardUpdateExtension presence расширение с хэшем аватара.
//
// Хэш выводится из сырых байт изображения односторонним дайджестом
// (SHA-1, hex в нижнем регистре). Сериализованная форма кэшируется и
// пересчитывается только при фактической смене хэша.
type VCardUpdateExtension struct {
	// photoHash hex представление SHA-1 хэша аватара; "" - хэш не задан.
	photoHash string

	// cached кэш сериализованной XML формы.
	cached string
}

// NewVCardUpdateExtension создает расширение с заданным изображением
// аватара. Сначала вычисляется форма с пустым аватаром (на случай
// nil изображения), затем применяется обновление.
func NewVCardUpdateExtension(image []byte) *VCardUpdateExtension {
	ext := &VCardUpdateExtension{}
	ext.recompute()
	ext.UpdateImage(image)
	return ext
}

// UpdateImage обновляет изображение аватара.
//
// Вычисляет дайджест новых байт и сравнивает его по значению с текущим;
// кэш сериализованной формы пересчитывается только при фактическом
// изменении. Возвращает true, если расширение было обновлено.
// nil или пустое изображение сбрасывает хэш.
func (e *VCardUpdateExtension) UpdateImage(image []byte) bool {
	hash := ImageHash(image)
	if hash == e.photoHash {
		return false
	}
	e.photoHash = hash
	e.recompute()
	return true
}

// ImageHash возвращает hex представление SHA-1 хэша изображения в
// нижнем регистре. Для nil или пустого изображения возвращается "".
func ImageHash(image []byte) string {
	if len(image) == 0 {
		return ""
	}
	sum := sha1.Sum(image)
	return hex.EncodeToString(sum[:])
}

// PhotoHash возвращает текущий хэш аватара или "".
func (e *VCardUpdateExtension) PhotoHash() string {
	return e.photoHash
}

// HasPhotoHash проверяет, задан ли хэш аватара.
func (e *VCardUpdateExtension) HasPhotoHash() bool {
	return e.photoHash != ""
}

// recompute пересчитывает кэш сериализованной формы.
func (e *VCardUpdateExtension) recompute() {
	xml := xmppext.NewXMLBuilder()
	xml.HalfOpenElement(VCardUpdateElement)
	xml.XmlnsAttribute(VCardUpdateNamespace)
	xml.RightAngleBracket()
	if e.photoHash == "" {
		xml.EmptyElement(photoElement)
	} else {
		xml.Element(photoElement, e.photoHash)
	}
	xml.CloseElement(VCardUpdateElement)
	e.cached = xml.String()
}

// Namespace возвращает namespace расширения.
func (e *VCardUpdateExtension) Namespace() string {
	return VCardUpdateNamespace
}

// ElementName возвращает локальное имя элемента.
func (e *VCardUpdateExtension) ElementName() string {
	return VCardUpdateElement
}

// ToXML возвращает кэшированную сериализованную форму.
func (e *VCardUpdateExtension) ToXML(enclosing string) string {
	return e.cached
}

// Clone возвращает копию расширения.
func (e *VCardUpdateExtension) Clone() xmppext.ExtensionElement {
	cp := *e
	return &cp
}

// VCardUpdateProvider разбирает элемент x namespace'а vcard-temp:x:update.
// Тег photo опционален: расширение без хэша валидно.
type VCardUpdateProvider struct{}

// Parse реализует xmppext.Provider.
func (VCardUpdateProvider) Parse(p *xmppext.Parser) (xmppext.ExtensionElement, error) {
	if p.Namespace() != VCardUpdateNamespace || p.Name() != VCardUpdateElement {
		return nil, nil
	}

	hash := ""
	err := p.ScanText(VCardUpdateElement, func(tag, text string) {
		if tag == photoElement {
			hash = text
		}
	})
	if err != nil {
		return nil, err
	}

	ext := &VCardUpdateExtension{photoHash: hash}
	ext.recompute()
	return ext, nil
}

// RegisterProviders регистрирует провайдеры presence расширений в реестре.
// Identity регистрируется и под пустым namespace: на проводе элемент
// приходит без собственного xmlns внутри станзы jabber:client.
func RegisterProviders(reg *xmppext.Registry) {
	reg.Register(IdentityNamespace, IdentityElement, IdentityProvider{})
	reg.Register("", IdentityElement, IdentityProvider{})
	reg.Register(VCardUpdateNamespace, VCardUpdateElement, VCardUpdateProvider{})
}
