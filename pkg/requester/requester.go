package requester

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// Requester é o cliente HTTP compartilhado pelos integradores de anúncios.
// Concentra em um único lugar o que cada serviço fazia por conta própria:
// retry com backoff exponencial, deduplicação de requisições em andamento
// e cache em memória com expiração por tempo.
type Requester struct {
	httpClient  *http.Client
	maxAttempts int
	backoffBase time.Duration
	cacheTTL    time.Duration

	cacheMu sync.RWMutex
	cache   map[string]cacheEntry

	inflightMu sync.Mutex
	inflight   map[string]*inflightCall
}

type cacheEntry struct {
	body      []byte
	expiresAt time.Time
}

type inflightCall struct {
	done chan struct{}
	body []byte
	err  error
}

// Options configura o Requester. Valores zero assumem os defaults.
type Options struct {
	Timeout     time.Duration
	MaxAttempts int
	BackoffBase time.Duration
	CacheTTL    time.Duration
}

const (
	defaultTimeout     = 30 * time.Second
	defaultMaxAttempts = 3
	defaultBackoffBase = 500 * time.Millisecond
	defaultCacheTTL    = 5 * time.Minute
)

func New(opts Options) *Requester {
	if opts.Timeout <= 0 {
		opts.Timeout = defaultTimeout
	}
	if opts.MaxAttempts <= 0 {
		opts.MaxAttempts = defaultMaxAttempts
	}
	if opts.BackoffBase <= 0 {
		opts.BackoffBase = defaultBackoffBase
	}
	if opts.CacheTTL <= 0 {
		opts.CacheTTL = defaultCacheTTL
	}

	return &Requester{
		httpClient:  &http.Client{Timeout: opts.Timeout},
		maxAttempts: opts.MaxAttempts,
		backoffBase: opts.BackoffBase,
		cacheTTL:    opts.CacheTTL,
		cache:       make(map[string]cacheEntry),
		inflight:    make(map[string]*inflightCall),
	}
}

// RequestError carrega o status HTTP e o corpo retornado pelo fornecedor,
// para que os integradores possam inspecionar códigos de erro específicos
// (token expirado, rate limit etc).
type RequestError struct {
	StatusCode int
	Body       []byte
	URL        string
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("erro na resposta da API. Status: %d, Corpo: %s", e.StatusCode, string(e.Body))
}

// vendorError é o envelope de erro usado tanto pelo Graph API quanto,
// com campos distintos, pelas demais APIs consultadas
type vendorError struct {
	Error struct {
		Code         int    `json:"code"`
		ErrorSubcode int    `json:"error_subcode"`
		Message      string `json:"message"`
	} `json:"error"`
}

// Códigos do Graph API que indicam limite de requisições atingido.
// O 613 vem com status 400, então o status sozinho não basta.
var metaRateLimitCodes = map[int]bool{
	4:   true,
	17:  true,
	613: true,
}

// shouldRetry decide se vale tentar novamente: 429 e 5xx sempre,
// 4xx somente quando o corpo identifica rate limit do fornecedor.
func shouldRetry(statusCode int, body []byte) bool {
	if statusCode == http.StatusTooManyRequests || statusCode >= 500 {
		return true
	}

	if statusCode == http.StatusBadRequest {
		var ve vendorError
		if err := json.Unmarshal(body, &ve); err == nil {
			return metaRateLimitCodes[ve.Error.Code]
		}
	}

	return false
}

// backoffDelay calcula o tempo de espera antes da tentativa seguinte:
// base * 2^tentativa, com jitter de até 25%
func (r *Requester) backoffDelay(attempt int) time.Duration {
	delay := r.backoffBase * time.Duration(1<<attempt)
	jitter := time.Duration(rand.Int63n(int64(delay) / 4))
	return delay + jitter
}

// Get executa um GET com deduplicação e cache. Requisições idênticas em
// andamento compartilham a mesma resposta; respostas bem-sucedidas ficam
// no cache até o TTL expirar.
func (r *Requester) Get(ctx context.Context, url string, header http.Header) ([]byte, error) {
	key := "GET " + url

	if body, ok := r.fromCache(key); ok {
		return body, nil
	}

	r.inflightMu.Lock()
	if call, exists := r.inflight[key]; exists {
		r.inflightMu.Unlock()
		select {
		case <-call.done:
			return call.body, call.err
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	call := &inflightCall{done: make(chan struct{})}
	r.inflight[key] = call
	r.inflightMu.Unlock()

	body, err := r.do(ctx, http.MethodGet, url, header, nil)

	call.body = body
	call.err = err

	// Guardar no cache antes de liberar os que estão esperando, para que
	// um GET chegando logo em seguida não dispare nova requisição
	if err == nil {
		r.store(key, body)
	}

	close(call.done)

	r.inflightMu.Lock()
	delete(r.inflight, key)
	r.inflightMu.Unlock()

	return body, err
}

// Post executa um POST com retry, sem cache nem deduplicação
func (r *Requester) Post(ctx context.Context, url string, header http.Header, payload []byte) ([]byte, error) {
	return r.do(ctx, http.MethodPost, url, header, payload)
}

// do executa a requisição com até maxAttempts tentativas
func (r *Requester) do(ctx context.Context, method, url string, header http.Header, payload []byte) ([]byte, error) {
	var lastErr error

	for attempt := 0; attempt < r.maxAttempts; attempt++ {
		if attempt > 0 {
			delay := r.backoffDelay(attempt - 1)
			logrus.WithFields(logrus.Fields{
				"attempt": attempt + 1,
				"delay":   delay.String(),
			}).Warn("Repetindo requisição após erro transitório")

			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		body, err := r.doOnce(ctx, method, url, header, payload)
		if err == nil {
			return body, nil
		}

		lastErr = err

		var reqErr *RequestError
		if !isRetryableError(err, &reqErr) {
			return nil, err
		}
	}

	return nil, lastErr
}

func isRetryableError(err error, target **RequestError) bool {
	reqErr, ok := err.(*RequestError)
	if !ok {
		// Erros de transporte (timeout, conexão recusada) valem retry
		return true
	}

	*target = reqErr
	return shouldRetry(reqErr.StatusCode, reqErr.Body)
}

func (r *Requester) doOnce(ctx context.Context, method, url string, header http.Header, payload []byte) ([]byte, error) {
	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar a requisição: %w", err)
	}

	for key, values := range header {
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("erro ao fazer a requisição: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler resposta: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &RequestError{
			StatusCode: resp.StatusCode,
			Body:       body,
			URL:        url,
		}
	}

	return body, nil
}

func (r *Requester) fromCache(key string) ([]byte, bool) {
	r.cacheMu.RLock()
	defer r.cacheMu.RUnlock()

	entry, exists := r.cache[key]
	if !exists || time.Now().After(entry.expiresAt) {
		return nil, false
	}

	return entry.body, true
}

func (r *Requester) store(key string, body []byte) {
	r.cacheMu.Lock()
	defer r.cacheMu.Unlock()

	r.cache[key] = cacheEntry{
		body:      body,
		expiresAt: time.Now().Add(r.cacheTTL),
	}
}

// InvalidateCache remove todas as entradas do cache. Usado após renovação
// de token, já que respostas antigas podem ter vindo com token expirado.
func (r *Requester) InvalidateCache() {
	r.cacheMu.Lock()
	defer r.cacheMu.Unlock()

	r.cache = make(map[string]cacheEntry)
}
