package middlewares

import (
	"net/http"

	"lexbook-service/internal/pkg/constvars"
	"lexbook-service/internal/pkg/utils"

	"golang.org/x/time/rate"
)

// CallbackRateLimit shields the payment callback endpoint from gateway
// retry storms with a process-wide token bucket. Throttled callbacks get
// the FAIL token so the gateway retries later instead of dropping the
// notification.
func (m *Middlewares) CallbackRateLimit(ratePerSecond, burst int) func(http.Handler) http.Handler {
	limiter := rate.NewLimiter(rate.Limit(ratePerSecond), burst)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				m.Log.Warn("payment callback throttled")
				utils.BuildPaymentCallbackResponse(w, constvars.PaymentCallbackFailToken)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
