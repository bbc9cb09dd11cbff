package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func doRequest(handler http.Handler, remoteAddr string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/graphql", nil)
	req.RemoteAddr = remoteAddr
	handler.ServeHTTP(rec, req)
	return rec
}

func TestRateLimiter_Redis(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	rl := NewRateLimiter(5, time.Minute, client)
	handler := rl.Limit()(okHandler())

	for i := 0; i < 5; i++ {
		rec := doRequest(handler, "1.2.3.4:1234")
		assert.Equal(t, http.StatusOK, rec.Code, "request %d should be allowed", i)
	}

	rec := doRequest(handler, "1.2.3.4:1234")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("Retry-After"))

	// Another client is counted separately. The source port is ignored.
	rec = doRequest(handler, "5.6.7.8:999")
	assert.Equal(t, http.StatusOK, rec.Code)
	rec = doRequest(handler, "1.2.3.4:5678")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
}

func TestRateLimiter_RedisWindowExpires(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	rl := NewRateLimiter(2, time.Minute, client)
	handler := rl.Limit()(okHandler())

	doRequest(handler, "1.2.3.4:1234")
	doRequest(handler, "1.2.3.4:1234")
	rec := doRequest(handler, "1.2.3.4:1234")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)

	mr.FastForward(time.Minute + time.Second)

	rec = doRequest(handler, "1.2.3.4:1234")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRateLimiter_RedisDown_FailsOpen(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	rl := NewRateLimiter(1, time.Minute, client)
	handler := rl.Limit()(okHandler())

	mr.Close()

	rec := doRequest(handler, "1.2.3.4:1234")
	assert.Equal(t, http.StatusOK, rec.Code)
	rec = doRequest(handler, "1.2.3.4:1234")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRateLimiter_Local(t *testing.T) {
	rl := NewRateLimiter(3, time.Minute, nil)
	handler := rl.Limit()(okHandler())

	for i := 0; i < 3; i++ {
		rec := doRequest(handler, "1.2.3.4:1234")
		assert.Equal(t, http.StatusOK, rec.Code, "request %d should be allowed", i)
	}

	rec := doRequest(handler, "1.2.3.4:1234")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)

	rec = doRequest(handler, "9.9.9.9:1")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestLocalCounter_WindowReset(t *testing.T) {
	c := &localCounter{entries: make(map[string]*windowEntry)}

	n, err := c.Incr(context.Background(), "k", time.Millisecond)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), n)

	time.Sleep(5 * time.Millisecond)

	n, err = c.Incr(context.Background(), "k", time.Millisecond)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), n, "count should reset after the window passes")
}
