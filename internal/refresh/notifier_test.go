package refresh

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNotifierDeliversSignal(t *testing.T) {
	n := NewNotifier()
	n.Invalidate()

	select {
	case <-n.C():
	case <-time.After(time.Second):
		t.Fatal("expected a pending signal")
	}
}

func TestNotifierCoalescesBursts(t *testing.T) {
	n := NewNotifier()

	for i := 0; i < 100; i++ {
		n.Invalidate()
	}

	// rajada vira um único sinal pendente
	<-n.C()

	select {
	case <-n.C():
		t.Fatal("expected burst to coalesce into one signal")
	default:
	}
}

func TestNotifierInvalidateNeverBlocks(t *testing.T) {
	n := NewNotifier()

	done := make(chan struct{})
	go func() {
		for i := 0; i < 1000; i++ {
			n.Invalidate()
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Invalidate blocked")
	}

	assert.NotNil(t, n.C())
}
