package refresh

import (
	"context"
	"log"
	"time"

	"github.com/jackc/pgx/v5"
)

// Canal NOTIFY disparado pelo trigger instalado na migração.
const pgChannel = "appointments_changed"

const reconnectDelay = 5 * time.Second

// Listener é o produtor push: mantém uma conexão dedicada em LISTEN e
// converte cada NOTIFY em uma invalidação.
type Listener struct {
	databaseURL string
	notifier    *Notifier
}

func NewListener(databaseURL string, notifier *Notifier) *Listener {
	return &Listener{
		databaseURL: databaseURL,
		notifier:    notifier,
	}
}

// Run bloqueia até o contexto encerrar, reconectando em caso de queda.
func (l *Listener) Run(ctx context.Context) {
	for {
		if err := l.listen(ctx); err != nil && ctx.Err() == nil {
			log.Printf("refresh: listener error: %v (reconnecting)", err)
		}

		select {
		case <-ctx.Done():
			return
		case <-time.After(reconnectDelay):
		}
	}
}

func (l *Listener) listen(ctx context.Context) error {
	conn, err := pgx.Connect(ctx, l.databaseURL)
	if err != nil {
		return err
	}
	defer conn.Close(context.Background())

	if _, err := conn.Exec(ctx, "LISTEN "+pgChannel); err != nil {
		return err
	}

	for {
		if _, err := conn.WaitForNotification(ctx); err != nil {
			return err
		}
		l.notifier.Invalidate()
	}
}
