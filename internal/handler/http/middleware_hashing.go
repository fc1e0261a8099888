package http

import (
	"bytes"
	"io"
	"net/http"

	"github.com/MKhiriev/idea-brand-coach/internal/app"
	"github.com/MKhiriev/idea-brand-coach/internal/logger"
	"github.com/MKhiriev/idea-brand-coach/internal/utils"
)

// verifyHash checks the HashSHA256 header against the HMAC of the raw
// request body. It is a no-op without a hash key and for empty bodies.
// On success the body is restored for the handler.
func (h *Handler) verifyHash(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.hasher == nil || r.Body == nil || r.Body == http.NoBody {
			next.ServeHTTP(w, r)
			return
		}

		log := logger.FromRequest(r)

		body, err := io.ReadAll(io.LimitReader(r.Body, utils.MaxJSONBodyBytes+1))
		if err != nil {
			log.Err(err).Str("func", "Handler.verifyHash").Msg("failed to read request body")
			http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
			return
		}
		r.Body = io.NopCloser(bytes.NewReader(body))

		if len(body) == 0 {
			next.ServeHTTP(w, r)
			return
		}

		signature := r.Header.Get(utils.HashHeader)
		if signature == "" {
			log.Err(ErrMissingHash).Str("func", "Handler.verifyHash").Send()
			http.Error(w, app.MsgHashMismatch, http.StatusBadRequest)
			return
		}

		if !h.hasher.Verify(body, signature) {
			log.Err(ErrHashMismatch).Str("func", "Handler.verifyHash").
				Str("hash from request", signature).
				Str("hashed body", h.hasher.SumHex(body)).
				Send()
			http.Error(w, app.MsgHashMismatch, http.StatusBadRequest)
			return
		}

		next.ServeHTTP(w, r)
	})
}
