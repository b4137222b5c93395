package metaclient

import (
	"context"
	"testing"
	"time"

	"github.com/stevetowers08/reporting-workspace-api/internal/config"
	"github.com/stevetowers08/reporting-workspace-api/pkg/requester"
	"github.com/stretchr/testify/assert"
)

func newTestTokenManager() *TokenManager {
	return NewTokenManager(&config.Config{}, requester.New(requester.Options{}), nil)
}

// O loop de renovação é bloqueante e deve ser lançado em goroutine pelo
// composition root. Aqui garantimos os dois lados: a chamada não retorna
// sozinha, e retorna assim que o contexto é cancelado ou o Stop é chamado.
func TestTokenManager_StartAutoRefresh_BloqueiaAteCancelarContexto(t *testing.T) {
	tm := newTestTokenManager()

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		tm.StartAutoRefresh(ctx)
		close(done)
	}()

	select {
	case <-done:
		t.Fatal("StartAutoRefresh retornou antes do contexto ser cancelado")
	case <-time.After(100 * time.Millisecond):
	}

	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("StartAutoRefresh não retornou após o cancelamento do contexto")
	}
}

func TestTokenManager_StartAutoRefresh_EncerraComStopAutoRefresh(t *testing.T) {
	tm := newTestTokenManager()

	done := make(chan struct{})
	go func() {
		tm.StartAutoRefresh(context.Background())
		close(done)
	}()

	tm.StopAutoRefresh()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("StartAutoRefresh não retornou após StopAutoRefresh")
	}

	assert.NotPanics(t, func() {
		// Reconstrói para garantir que um manager novo pode ser encerrado sem iniciar
		newTestTokenManager().StopAutoRefresh()
	})
}
