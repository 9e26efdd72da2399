// Package xmppext реализует базовую модель расширений XMPP станз
// (packet extensions) для сигнализации конференц-сервера.
//
// Пакет предоставляет общий контракт для десятков несвязанных типов
// расширений: единое представление атрибутов и дочерних элементов,
// дисциплину XML round-trip (сериализация/разбор) и протокол диспетчеризации
// провайдеров для превращения входящего потока токенов в типизированный
// граф объектов.
//
// Основные компоненты:
//
//   - AttrStore - упорядоченное хранилище именованных атрибутов
//   - BaseExtension - базовая структура расширения (identity + хранилище)
//   - XMLBuilder - построитель XML разметки расширений
//   - Parser - курсор по потоку XML токенов
//   - Provider - разборщик одного типа расширения
//   - Registry - диспетчеризация провайдеров по (namespace, element)
//
// Разбор устойчив к частично некорректному входу: нераспознанный или
// неполный элемент приводит к отсутствию результата, а не к панике или
// повреждению состояния вызывающей стороны. Ошибки потока поглощаются
// на границе провайдера.
//
// Модель однопоточная: один узел не предполагает конкурентной мутации.
// Типичное использование - build-then-freeze: полностью собрать элемент,
// дальше только читать и сериализовать.
package xmppext
