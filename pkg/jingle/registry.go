package jingle

import (
	"log/slog"
	"sync"

	"github.com/pion/rtp"
)

// SourceRegistry реестр заявленных источников медиа сессии.
//
// Управляет источниками, полученными из сигнализации (advertised) и
// подставленными управляющим узлом (injected), устраняет дубликаты по
// SourceEquals и сопоставляет входящие RTP пакеты с заявленными
// источниками по SSRC.
//
// Все операции потокобезопасны. Реестр хранит переданные указатели:
// вызывающая сторона не должна мутировать источник после добавления.
type SourceRegistry struct {
	mu      sync.RWMutex
	sources []*SourceExtension
	logger  *slog.Logger
}

// NewSourceRegistry создает пустой реестр источников.
func NewSourceRegistry() *SourceRegistry {
	return &SourceRegistry{
		logger: slog.Default().With(slog.String("component", "source_registry")),
	}
}

// Add добавляет источник в реестр. Источник с совпадающим
// идентификатором (SourceEquals) уже присутствующего не добавляется;
// возвращается false.
func (r *SourceRegistry) Add(src *SourceExtension) bool {
	if src == nil {
		return false
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.sources {
		if existing.SourceEquals(src) {
			r.logger.Debug("источник уже заявлен, пропуск",
				slog.String("source", src.String()))
			return false
		}
	}
	r.sources = append(r.sources, src)
	return true
}

// Remove удаляет источник с совпадающим идентификатором.
// Возвращает true, если источник был найден и удален.
func (r *SourceRegistry) Remove(src *SourceExtension) bool {
	if src == nil {
		return false
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, existing := range r.sources {
		if existing.SourceEquals(src) {
			r.sources = append(r.sources[:i], r.sources[i+1:]...)
			return true
		}
	}
	return false
}

// MatchSSRC возвращает источник с заданным SSRC или nil.
func (r *SourceRegistry) MatchSSRC(ssrc uint32) *SourceExtension {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, src := range r.sources {
		if src.HasSSRC() && src.SSRC() == int64(ssrc) {
			return src
		}
	}
	return nil
}

// MatchPacket сопоставляет входящий RTP пакет с заявленным источником
// по SSRC заголовка. Возвращает nil, если источник не заявлен.
func (r *SourceRegistry) MatchPacket(pkt *rtp.Packet) *SourceExtension {
	if pkt == nil {
		return nil
	}
	return r.MatchSSRC(pkt.Header.SSRC)
}

// Advertised возвращает источники, заявленные клиентами
// (без injected), в порядке добавления.
func (r *SourceRegistry) Advertised() []*SourceExtension {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*SourceExtension, 0, len(r.sources))
	for _, src := range r.sources {
		if !src.Injected() {
			out = append(out, src)
		}
	}
	return out
}

// All возвращает все источники в порядке добавления.
func (r *SourceRegistry) All() []*SourceExtension {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*SourceExtension, len(r.sources))
	copy(out, r.sources)
	return out
}

// Len возвращает количество источников в реестре.
func (r *SourceRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sources)
}
