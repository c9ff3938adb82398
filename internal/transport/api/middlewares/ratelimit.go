package middlewares

import (
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// idleTTL через сколько неиспользуемый лимитер удаляется.
const idleTTL = 30 * time.Minute

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter ограничивает частоту запросов по ключу: id авторизованного юзера или IP клиента.
// limit запросов на окно window, окно восполняется равномерно.
type RateLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	every     rate.Limit
	burst     int
	now       func() time.Time
	lastSweep time.Time
}

func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	if limit <= 0 {
		limit = 1
	}
	return &RateLimiter{
		visitors: make(map[string]*visitor),
		every:    rate.Every(window / time.Duration(limit)),
		burst:    limit,
		now:      time.Now,
	}
}

// Allow расходует один запрос из лимита ключа key.
func (r *RateLimiter) Allow(key string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	v, ok := r.visitors[key]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(r.every, r.burst)}
		r.visitors[key] = v
	}
	v.lastSeen = now
	allowed := v.limiter.AllowN(now, 1)

	// чистим протухших посетителей по ходу, без отдельной горутины.
	if now.Sub(r.lastSweep) > idleTTL {
		for k, other := range r.visitors {
			if now.Sub(other.lastSeen) > idleTTL {
				delete(r.visitors, k)
			}
		}
		r.lastSweep = now
	}
	return allowed
}

func rateLimitKey(c *gin.Context) string {
	if id, ok := c.Get(CurrentUserIDKey); ok {
		return fmt.Sprintf("user:%v", id)
	}
	return "ip:" + c.ClientIP()
}

// RateLimit ограничивает группу роутов лимитером limiter. 429 при превышении.
func RateLimit(limiter *RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !limiter.Allow(rateLimitKey(c)) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"success": false,
				"message": "Too many requests, please try again later",
			})
			return
		}
		c.Next()
	}
}
