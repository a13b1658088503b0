package refresh

import (
	"context"
	"log"
	"sync"
	"time"

	"gorm.io/gorm"

	"github.com/studiofade/barber-manager/internal/models"
)

// Snapshot é a coleção em memória servida às leituras. Os consumidores
// (busca, dashboard) são funções puras sobre ela, então não há coordenação
// além da troca atômica do ponteiro.
type Snapshot struct {
	Clients      []models.Client
	Appointments []models.Appointment
	LoadedAt     time.Time
}

type Refresher struct {
	db       *gorm.DB
	notifier *Notifier

	mu   sync.RWMutex
	snap Snapshot
}

func NewRefresher(db *gorm.DB, notifier *Notifier) *Refresher {
	return &Refresher{db: db, notifier: notifier}
}

// Run carrega o snapshot inicial e depois recarrega a cada invalidação.
func (r *Refresher) Run(ctx context.Context) {
	r.Reload(ctx)

	for {
		select {
		case <-ctx.Done():
			return
		case <-r.notifier.C():
			r.Reload(ctx)
		}
	}
}

func (r *Refresher) Reload(ctx context.Context) {
	var snap Snapshot

	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&snap.Clients).Error; err != nil {
		log.Printf("refresh: reload clients: %v", err)
		return
	}

	if err := r.db.WithContext(ctx).
		Preload("Client").
		Order("scheduled_at DESC").
		Find(&snap.Appointments).Error; err != nil {
		log.Printf("refresh: reload appointments: %v", err)
		return
	}

	snap.LoadedAt = time.Now()

	r.mu.Lock()
	r.snap = snap
	r.mu.Unlock()
}

func (r *Refresher) Snapshot() Snapshot {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.snap
}
