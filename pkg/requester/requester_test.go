package requester

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRequester(ttl time.Duration) *Requester {
	return New(Options{
		Timeout:     5 * time.Second,
		MaxAttempts: 3,
		BackoffBase: time.Millisecond,
		CacheTTL:    ttl,
	})
}

func TestGet_RetriesOn429AndReturnsBody(t *testing.T) {
	var attempts int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&attempts, 1) == 1 {
			w.WriteHeader(http.StatusTooManyRequests)
			w.Write([]byte(`{"error":{"message":"rate limit"}}`))
			return
		}
		w.Write([]byte(`{"data":[{"impressions":"100"}]}`))
	}))
	defer server.Close()

	r := newTestRequester(time.Minute)

	body, err := r.Get(context.Background(), server.URL, nil)
	require.NoError(t, err)
	assert.Contains(t, string(body), "impressions")
	assert.Equal(t, int32(2), atomic.LoadInt32(&attempts))
}

func TestGet_RetriesOnMetaRateLimitCode613(t *testing.T) {
	var attempts int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&attempts, 1) == 1 {
			// O Graph API devolve rate limit com status 400 e código 613 no corpo
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"error":{"code":613,"message":"Calls to this api have exceeded the rate limit."}}`))
			return
		}
		w.Write([]byte(`{"data":[]}`))
	}))
	defer server.Close()

	r := newTestRequester(time.Minute)

	_, err := r.Get(context.Background(), server.URL, nil)
	require.NoError(t, err)
	assert.Equal(t, int32(2), atomic.LoadInt32(&attempts))
}

func TestGet_DoesNotRetryOn400(t *testing.T) {
	var attempts int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&attempts, 1)
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":{"code":100,"message":"Invalid parameter"}}`))
	}))
	defer server.Close()

	r := newTestRequester(time.Minute)

	_, err := r.Get(context.Background(), server.URL, nil)
	require.Error(t, err)

	reqErr, ok := err.(*RequestError)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, reqErr.StatusCode)
	assert.Equal(t, int32(1), atomic.LoadInt32(&attempts))
}

func TestGet_GivesUpAfterMaxAttempts(t *testing.T) {
	var attempts int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&attempts, 1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	r := newTestRequester(time.Minute)

	_, err := r.Get(context.Background(), server.URL, nil)
	require.Error(t, err)
	assert.Equal(t, int32(3), atomic.LoadInt32(&attempts))
}

func TestGet_ServesFromCacheWithinTTL(t *testing.T) {
	var attempts int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&attempts, 1)
		w.Write([]byte(`{"data":"ok"}`))
	}))
	defer server.Close()

	r := newTestRequester(time.Minute)

	for i := 0; i < 5; i++ {
		body, err := r.Get(context.Background(), server.URL, nil)
		require.NoError(t, err)
		assert.Equal(t, `{"data":"ok"}`, string(body))
	}

	assert.Equal(t, int32(1), atomic.LoadInt32(&attempts))
}

func TestGet_RefetchesAfterTTLExpires(t *testing.T) {
	var attempts int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&attempts, 1)
		w.Write([]byte(`{"data":"ok"}`))
	}))
	defer server.Close()

	r := newTestRequester(20 * time.Millisecond)

	_, err := r.Get(context.Background(), server.URL, nil)
	require.NoError(t, err)

	time.Sleep(50 * time.Millisecond)

	_, err = r.Get(context.Background(), server.URL, nil)
	require.NoError(t, err)

	assert.Equal(t, int32(2), atomic.LoadInt32(&attempts))
}

func TestGet_DeduplicatesConcurrentRequests(t *testing.T) {
	var attempts int32
	release := make(chan struct{})

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&attempts, 1)
		<-release
		w.Write([]byte(`{"data":"ok"}`))
	}))
	defer server.Close()

	r := newTestRequester(time.Minute)

	const concurrent = 8
	var wg sync.WaitGroup
	results := make([]error, concurrent)

	for i := 0; i < concurrent; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			_, results[idx] = r.Get(context.Background(), server.URL, nil)
		}(i)
	}

	// Dar tempo das goroutines se enfileirarem antes de liberar o servidor
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	for _, err := range results {
		assert.NoError(t, err)
	}
	assert.Equal(t, int32(1), atomic.LoadInt32(&attempts))
}

func TestInvalidateCache(t *testing.T) {
	var attempts int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&attempts, 1)
		w.Write([]byte(`{"data":"ok"}`))
	}))
	defer server.Close()

	r := newTestRequester(time.Minute)

	_, err := r.Get(context.Background(), server.URL, nil)
	require.NoError(t, err)

	r.InvalidateCache()

	_, err = r.Get(context.Background(), server.URL, nil)
	require.NoError(t, err)

	assert.Equal(t, int32(2), atomic.LoadInt32(&attempts))
}

func TestPost_DoesNotCache(t *testing.T) {
	var attempts int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&attempts, 1)
		w.Write([]byte(`{"ok":true}`))
	}))
	defer server.Close()

	r := newTestRequester(time.Minute)

	for i := 0; i < 3; i++ {
		_, err := r.Post(context.Background(), server.URL, nil, []byte(`{"query":"select"}`))
		require.NoError(t, err)
	}

	assert.Equal(t, int32(3), atomic.LoadInt32(&attempts))
}
