package httpserver

import (
	"net"
	"net/http"

	"github.com/davidbz/nepersonaj/internal/domain"
)

// HandleContact forwards a contact form submission.
func (h *Handler) HandleContact(w http.ResponseWriter, r *http.Request) {
	var msg domain.ContactMessage
	if err := decodeJSON(w, r, &msg); err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.contact.Submit(r.Context(), &msg, clientIP(r)); err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, map[string]string{
		"status": "sent",
	})
}

// clientIP returns the sender address. RemoteAddr is rewritten by the
// RealIP middleware only when the proxy is trusted.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
