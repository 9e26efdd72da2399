package xmppext

import (
	"log/slog"
	"sync"
)

// QName квалифицированное имя элемента: пара (namespace, local name).
type QName struct {
	Space string
	Local string
}

// Registry диспетчеризация провайдеров по квалифицированному имени.
//
// Новые типы расширений регистрируются без изменения логики диспетчеризации
// или базовой модели. Регистрация обычно выполняется на старте; поиск
// потокобезопасен.
type Registry struct {
	mu        sync.RWMutex
	providers map[QName]Provider
	logger    *slog.Logger
	metrics   *Metrics
}

// NewRegistry создает пустой реестр провайдеров.
func NewRegistry() *Registry {
	return &Registry{
		providers: make(map[QName]Provider),
		logger:    slog.Default().With(slog.String("component", "ext_registry")),
	}
}

// SetMetrics подключает счетчики разбора. nil выключает сбор метрик.
func (r *Registry) SetMetrics(m *Metrics) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.metrics = m
}

// Register регистрирует провайдер для пары (namespace, local name).
// Повторная регистрация заменяет провайдер.
func (r *Registry) Register(space, local string, prov Provider) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.providers[QName{Space: space, Local: local}] = prov
}

// Lookup возвращает провайдер для пары (namespace, local name).
func (r *Registry) Lookup(space, local string) (Provider, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	prov, ok := r.providers[QName{Space: space, Local: local}]
	return prov, ok
}

// Len возвращает количество зарегистрированных провайдеров.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.providers)
}

// ParseElement разбирает элемент, на открывающем теге которого стоит
// курсор, через зарегистрированный провайдер.
//
// Элемент без провайдера пропускается целиком, результат (nil, nil).
// Ошибки потока и неполные данные поглощаются здесь: вызывающий получает
// (nil, nil), подробности уходят в лог и метрики. Наружу ошибка не
// распространяется, чтобы повреждение XML потока не каскадировало
// вверх по стеку.
func (r *Registry) ParseElement(p *Parser) (ExtensionElement, error) {
	if p.Kind() != EventStartElement {
		if err := p.NextStartElement(); err != nil {
			return nil, err
		}
	}
	space, local := p.Namespace(), p.Name()

	prov, ok := r.Lookup(space, local)
	if !ok {
		r.metrics.IncSkipped(space, local)
		r.logger.Debug("провайдер не зарегистрирован, элемент пропущен",
			slog.String("namespace", space),
			slog.String("element", local))
		if err := p.SkipElement(); err != nil {
			return nil, nil
		}
		return nil, nil
	}

	elem, err := prov.Parse(p)
	if err != nil {
		r.metrics.IncFailed(space, local)
		r.logger.Warn("ошибка разбора расширения",
			slog.String("namespace", space),
			slog.String("element", local),
			slog.String("error", err.Error()))
		return nil, nil
	}
	if elem == nil {
		r.metrics.IncFailed(space, local)
		r.logger.Debug("элемент не произведен: нет обязательных полей или несовпадение",
			slog.String("namespace", space),
			slog.String("element", local))
		// Провайдер мог отказаться не сдвигая курсор.
		if p.Kind() == EventStartElement {
			if err := p.SkipElement(); err != nil {
				return nil, nil
			}
		}
		return nil, nil
	}

	r.metrics.IncParsed(space, local)
	return elem, nil
}
