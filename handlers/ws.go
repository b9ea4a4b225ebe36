package handlers

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
)

// WSHandler pushes change signals to connected clients. Signals carry no
// payload; clients re-fetch the domain they care about.
type WSHandler struct {
	M *melody.Melody
}

func NewWSHandler() *WSHandler {
	m := melody.New()

	m.Config.MaxMessageSize = 1024 * 1024

	// Keep-alive for proxies that drop idle connections
	m.Config.PingPeriod = 30 * time.Second
	m.Config.PongWait = 60 * time.Second

	m.HandleConnect(func(s *melody.Session) {
		domain := s.Request.URL.Query().Get("domain")
		s.Set("domain", domain)
		log.Printf("✅ Client connected (domain filter: %q)", domain)
	})

	m.HandleDisconnect(func(s *melody.Session) {
		domain, _ := s.Get("domain")
		log.Printf("🔌 Client disconnected (domain filter: %v)", domain)
	})

	m.HandleError(func(s *melody.Session, err error) {
		log.Printf("❌ WebSocket error: %v", err)
	})

	return &WSHandler{M: m}
}

// HandleWS upgrades the request. An optional ?domain= query narrows the
// signals the session receives.
func (h *WSHandler) HandleWS(c *gin.Context) {
	if err := h.M.HandleRequest(c.Writer, c.Request); err != nil {
		log.Printf("❌ Failed to upgrade websocket: %v", err)
	}
}

// BroadcastUpdate signals every session listening on the given domain (or
// on everything).
func (h *WSHandler) BroadcastUpdate(domain string) {
	msg := []byte(`{"type": "` + domain + `.updated"}`)

	err := h.M.BroadcastFilter(msg, func(s *melody.Session) bool {
		d, exists := s.Get("domain")
		return !exists || d == "" || d == domain
	})
	if err != nil {
		log.Printf("⚠️ Error broadcasting %s update: %v", domain, err)
	}
}
