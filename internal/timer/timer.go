package timer

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound indica que não existe estado de timer para o agendamento.
var ErrNotFound = errors.New("timer: state not found")

// Fração do alvo a partir da qual a conclusão antecipada fica liberada.
const earlyFinishRatio = 0.8

// State é o documento persistido no side-store, chaveado por agendamento.
// Elapsed acumula apenas o tempo já "dobrado" por pausas; enquanto o timer
// roda, o tempo corrente é derivado de StartedAt contra o relógio de parede,
// o que mantém a contagem correta através de reloads e suspensões.
type State struct {
	AppointmentID uint       `json:"appointment_id"`
	Running       bool       `json:"running"`
	Elapsed       int64      `json:"elapsed_seconds"`
	Target        int64      `json:"target_seconds"`
	StartedAt     *time.Time `json:"started_at,omitempty"`
}

// ElapsedAt devolve o tempo decorrido total em segundos no instante now.
func (s *State) ElapsedAt(now time.Time) int64 {
	elapsed := s.Elapsed
	if s.Running && s.StartedAt != nil {
		if d := now.Sub(*s.StartedAt); d > 0 {
			elapsed += int64(d.Seconds())
		}
	}
	return elapsed
}

// Store é o key-value durável onde o estado do timer sobrevive a reloads.
type Store interface {
	// Load devolve (nil, nil) quando não há estado para o agendamento.
	Load(ctx context.Context, appointmentID uint) (*State, error)
	Save(ctx context.Context, state *State) error
	Delete(ctx context.Context, appointmentID uint) error
}

// Clock injetável para testes determinísticos.
type Clock func() time.Time

// Snapshot é a visão de leitura exposta aos chamadores.
type Snapshot struct {
	AppointmentID uint  `json:"appointment_id"`
	Running       bool  `json:"running"`
	Elapsed       int64 `json:"elapsed_seconds"`
	Target        int64 `json:"target_seconds"`

	// Completed sinaliza que o alvo foi atingido; NÃO conclui o agendamento,
	// apenas indica que a conclusão manual é apropriada.
	Completed bool `json:"completed"`

	// EarlyFinish libera o botão de "finalizar antes" a partir de 80% do alvo.
	EarlyFinish bool `json:"early_finish"`
}

type Tracker struct {
	store Store
	clock Clock
}

func NewTracker(store Store, clock Clock) *Tracker {
	if clock == nil {
		clock = time.Now
	}
	return &Tracker{store: store, clock: clock}
}

// Start cria o timer do agendamento ou retoma um estado pausado preservando
// o tempo já decorrido. Só existe um timer lógico por agendamento: chamar
// Start com o timer já rodando é um no-op que apenas devolve o snapshot.
func (t *Tracker) Start(
	ctx context.Context,
	appointmentID uint,
	targetSeconds int64,
) (*Snapshot, error) {

	now := t.clock()

	state, err := t.store.Load(ctx, appointmentID)
	if err != nil {
		return nil, err
	}

	switch {
	case state == nil:
		state = &State{
			AppointmentID: appointmentID,
			Running:       true,
			Elapsed:       0,
			Target:        targetSeconds,
			StartedAt:     &now,
		}

	case !state.Running:
		state.Running = true
		state.StartedAt = &now
		if state.Target == 0 && targetSeconds > 0 {
			state.Target = targetSeconds
		}

	default:
		// já rodando: nada a fazer
	}

	if err := t.store.Save(ctx, state); err != nil {
		return nil, err
	}

	return t.snapshot(state, now), nil
}

// Pause dobra o tempo corrente em Elapsed e para de avançar.
func (t *Tracker) Pause(ctx context.Context, appointmentID uint) (*Snapshot, error) {
	now := t.clock()

	state, err := t.store.Load(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if state == nil {
		return nil, ErrNotFound
	}

	state.Elapsed = state.ElapsedAt(now)
	state.Running = false
	state.StartedAt = nil

	if err := t.store.Save(ctx, state); err != nil {
		return nil, err
	}

	return t.snapshot(state, now), nil
}

// Stop descarta o estado por completo. Não altera o status do agendamento.
func (t *Tracker) Stop(ctx context.Context, appointmentID uint) error {
	return t.store.Delete(ctx, appointmentID)
}

// Snapshot lê o estado atual reconciliado contra o relógio de parede.
func (t *Tracker) Snapshot(ctx context.Context, appointmentID uint) (*Snapshot, error) {
	state, err := t.store.Load(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if state == nil {
		return nil, ErrNotFound
	}

	return t.snapshot(state, t.clock()), nil
}

func (t *Tracker) snapshot(state *State, now time.Time) *Snapshot {
	elapsed := state.ElapsedAt(now)

	completed := state.Target > 0 && elapsed >= state.Target
	early := state.Target > 0 &&
		float64(elapsed) >= float64(state.Target)*earlyFinishRatio

	return &Snapshot{
		AppointmentID: state.AppointmentID,
		Running:       state.Running,
		Elapsed:       elapsed,
		Target:        state.Target,
		Completed:     completed,
		EarlyFinish:   early,
	}
}
