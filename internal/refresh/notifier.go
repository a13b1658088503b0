// Package refresh implementa o ciclo "invalida e recarrega": dois produtores
// independentes (LISTEN/NOTIFY do Postgres e um tick periódico) alimentam um
// único sinal coalescido; o consumidor recarrega o snapshot em memória usado
// pelas leituras de busca e dashboard. Nenhum produtor muta estado.
package refresh

// Notifier coalesce sinais de invalidação: disparos enquanto um refresh ainda
// está pendente colapsam em um só.
type Notifier struct {
	ch chan struct{}
}

func NewNotifier() *Notifier {
	return &Notifier{ch: make(chan struct{}, 1)}
}

func (n *Notifier) Invalidate() {
	select {
	case n.ch <- struct{}{}:
	default:
		// já há um refresh pendente
	}
}

func (n *Notifier) C() <-chan struct{} {
	return n.ch
}
