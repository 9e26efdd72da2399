package colibri

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"github.com/gorilla/websocket"
)

// RelayDialer устанавливает соединение с web-socket точкой подключения,
// заявленной видеомостом в элементе web-socket.
type RelayDialer struct {
	dialer *websocket.Dialer
	logger *slog.Logger
}

// NewRelayDialer создает dialer с настройками по умолчанию.
func NewRelayDialer() *RelayDialer {
	return &RelayDialer{
		dialer: &websocket.Dialer{
			HandshakeTimeout: 10 * time.Second,
		},
		logger: slog.Default().With(slog.String("component", "relay_dialer")),
	}
}

// Dial подключается к URL из дескриптора. Допускаются только схемы
// ws и wss. Отмена и таймауты управляются переданным контекстом.
func (d *RelayDialer) Dial(ctx context.Context, ext *WebSocketExtension) (*websocket.Conn, error) {
	if ext == nil || ext.URL() == "" {
		return nil, fmt.Errorf("дескриптор web-socket не содержит URL")
	}
	u, err := url.Parse(ext.URL())
	if err != nil {
		return nil, fmt.Errorf("некорректный URL web-socket %q: %w", ext.URL(), err)
	}
	if u.Scheme != "ws" && u.Scheme != "wss" {
		return nil, fmt.Errorf("неподдерживаемая схема web-socket: %s", u.Scheme)
	}

	conn, resp, err := d.dialer.DialContext(ctx, ext.URL(), nil)
	if err != nil {
		if resp != nil {
			_ = resp.Body.Close()
		}
		d.logger.Warn("подключение к web-socket не удалось",
			slog.String("url", ext.URL()),
			slog.String("error", err.Error()))
		return nil, fmt.Errorf("подключение к %s: %w", ext.URL(), err)
	}
	d.logger.Debug("web-socket соединение установлено",
		slog.String("url", ext.URL()),
		slog.Bool("active", ext.Active()))
	return conn, nil
}
