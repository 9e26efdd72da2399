package presence

import (
	"github.com/arzzra/xmpp_ext/pkg/xmppext"
)

// Identity константы элемента identity presence станзы.
//
// Элемент выглядит так:
//
//	<identity>
//	    <user>
//	        <id>some_unique_id</id>
//	        <name>some_name</name>
//	        <avatar>some_url_to_an_avatar</avatar>
//	    </user>
//	    <group>some_unique_id</group>
//	</identity>
const (
	IdentityNamespace = "jabber:client"
	IdentityElement   = "identity"

	userElement      = "user"
	groupElement     = "group"
	userIDElement    = "id"
	userNameElement  = "name"
	avatarURLElement = "avatar"
)

// IdentityExtension расширение presence с информацией о пользователе
// и его группе. Все четыре поля обязательны: экземпляр с незаполненным
// полем считается невалидным и провайдером не производится.
type IdentityExtension struct {
	userID        string
	userName      string
	userAvatarURL string
	groupID       string
}

// NewIdentityExtension создает identity расширение с ID пользователя,
// его именем, URL аватара и ID группы.
func NewIdentityExtension(userID, userName, userAvatarURL, groupID string) *IdentityExtension {
	return &IdentityExtension{
		userID:        userID,
		userName:      userName,
		userAvatarURL: userAvatarURL,
		groupID:       groupID,
	}
}

// Namespace возвращает namespace элемента identity.
func (e *IdentityExtension) Namespace() string {
	return IdentityNamespace
}

// ElementName возвращает локальное имя элемента identity.
func (e *IdentityExtension) ElementName() string {
	return IdentityElement
}

// UserID возвращает уникальный ID пользователя.
func (e *IdentityExtension) UserID() string {
	return e.userID
}

// UserName возвращает (неуникальное) имя пользователя.
func (e *IdentityExtension) UserName() string {
	return e.userName
}

// UserAvatarURL возвращает URL аватара пользователя.
func (e *IdentityExtension) UserAvatarURL() string {
	return e.userAvatarURL
}

// GroupID возвращает ID группы пользователя.
func (e *IdentityExtension) GroupID() string {
	return e.groupID
}

// ToXML сериализует identity. Namespace jabber:client является
// namespace'ом станзы по умолчанию, поэтому xmlns не выводится.
func (e *IdentityExtension) ToXML(enclosing string) string {
	xml := xmppext.NewXMLBuilder()
	xml.OpenElement(IdentityElement)

	xml.OpenElement(userElement)
	xml.Element(userIDElement, e.userID)
	xml.Element(userNameElement, e.userName)
	xml.Element(avatarURLElement, e.userAvatarURL)
	xml.CloseElement(userElement)

	xml.Element(groupElement, e.groupID)

	xml.CloseElement(IdentityElement)
	return xml.String()
}

// Clone возвращает копию расширения.
func (e *IdentityExtension) Clone() xmppext.ExtensionElement {
	cp := *e
	return &cp
}

// IdentityProvider разбирает элемент identity из потока токенов.
//
// Значения полей извлекаются по имени текущего тега; повторный тег
// перезаписывает значение. Если после полного сканирования любое из
// четырех полей не заполнено, экземпляр не производится.
type IdentityProvider struct{}

// Parse реализует xmppext.Provider.
func (IdentityProvider) Parse(p *xmppext.Parser) (xmppext.ExtensionElement, error) {
	// jabber:client - namespace станзы по умолчанию, поэтому на проводе
	// элемент обычно приходит без собственного xmlns.
	if ns := p.Namespace(); ns != "" && ns != IdentityNamespace {
		return nil, nil
	}
	if p.Name() != IdentityElement {
		return nil, nil
	}

	vals := make(map[string]string, 4)
	err := p.ScanText(IdentityElement, func(tag, text string) {
		switch tag {
		case userIDElement, userNameElement, avatarURLElement, groupElement:
			vals[tag] = text
		}
	})
	if err != nil {
		return nil, err
	}

	userID, okID := vals[userIDElement]
	userName, okName := vals[userNameElement]
	avatarURL, okAvatar := vals[avatarURLElement]
	groupID, okGroup := vals[groupElement]
	if !okID || !okName || !okAvatar || !okGroup {
		return nil, nil
	}
	return NewIdentityExtension(userID, userName, avatarURL, groupID), nil
}
