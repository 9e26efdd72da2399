// Package presence реализует расширения presence станз конференции:
// элемент identity с метаданными пользователя из аутентифицированного
// окружения и элемент vcard-temp:x:update с хэшем аватара (XEP-0153).
package presence
