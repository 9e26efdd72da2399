package xmppext

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics счетчики разбора расширений для внешнего мониторинга.
//
// Счетчики разрезаны по (namespace, element):
//   - parsed  - распознанные и полностью собранные элементы
//   - skipped - элементы без зарегистрированного провайдера
//   - failed  - ошибки потока и неполные элементы (экземпляр не произведен)
//
// Все операции потокобезопасны. Нулевой *Metrics безопасен: все методы
// становятся no-op, что позволяет держать сбор метрик выключенным.
type Metrics struct {
	parsedTotal  *prometheus.CounterVec
	skippedTotal *prometheus.CounterVec
	failedTotal  *prometheus.CounterVec
}

var extLabels = []string{"namespace", "element"}

// NewMetrics создает и регистрирует счетчики в заданном Registerer.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		parsedTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "xmpp",
			Subsystem: "ext",
			Name:      "parsed_total",
			Help:      "Количество распознанных и собранных расширений",
		}, extLabels),
		skippedTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "xmpp",
			Subsystem: "ext",
			Name:      "skipped_total",
			Help:      "Количество элементов без зарегистрированного провайдера",
		}, extLabels),
		failedTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "xmpp",
			Subsystem: "ext",
			Name:      "failed_total",
			Help:      "Количество элементов, не произведенных из-за ошибок или неполных данных",
		}, extLabels),
	}
}

// IncParsed учитывает успешно собранный элемент.
func (m *Metrics) IncParsed(namespace, element string) {
	if m == nil {
		return
	}
	m.parsedTotal.WithLabelValues(namespace, element).Inc()
}

// IncSkipped учитывает пропущенный элемент без провайдера.
func (m *Metrics) IncSkipped(namespace, element string) {
	if m == nil {
		return
	}
	m.skippedTotal.WithLabelValues(namespace, element).Inc()
}

// IncFailed учитывает элемент, не произведенный из-за ошибки или
// неполных данных.
func (m *Metrics) IncFailed(namespace, element string) {
	if m == nil {
		return
	}
	m.failedTotal.WithLabelValues(namespace, element).Inc()
}
