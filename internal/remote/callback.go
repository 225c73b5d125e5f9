package remote

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// The authorization page redirects back with the token in the URL fragment,
// which never reaches a server directly. The landing page forwards the
// fragment parameters as query parameters to /capture and replaces the
// visible URL so the token does not linger in the location bar or history.
const landingPage = `<!doctype html>
<html>
<head><meta charset="utf-8"><title>ClinicDesk</title></head>
<body>
<p>Completamento autorizzazione...</p>
<script>
  var h = window.location.hash;
  if (h && h.length > 1) {
    window.location.replace("/capture?" + h.substring(1));
  } else {
    document.body.textContent = "Nessun token ricevuto.";
  }
</script>
</body>
</html>`

const capturedPage = `<!doctype html>
<html>
<head><meta charset="utf-8"><title>ClinicDesk</title></head>
<body><p>Backup remoto collegato. Puoi chiudere questa finestra.</p></body>
</html>`

// CallbackServer is the loopback HTTP endpoint the authorization flow
// redirects to. It captures exactly one token and hands it to WaitToken.
type CallbackServer struct {
	e      *echo.Echo
	log    zerolog.Logger
	tokens chan string
}

// NewCallbackServer builds the server; call Start to begin listening.
func NewCallbackServer(log zerolog.Logger) *CallbackServer {
	s := &CallbackServer{
		e:      echo.New(),
		log:    log.With().Str("component", "callback").Logger(),
		tokens: make(chan string, 1),
	}
	s.e.HideBanner = true
	s.e.HidePort = true

	s.e.GET("/", s.handleLanding)
	s.e.GET("/capture", s.handleCapture)
	return s
}

func (s *CallbackServer) handleLanding(c echo.Context) error {
	return c.HTML(http.StatusOK, landingPage)
}

func (s *CallbackServer) handleCapture(c echo.Context) error {
	token := c.QueryParam("access_token")
	if token == "" {
		return c.String(http.StatusBadRequest, "missing access_token")
	}
	select {
	case s.tokens <- token:
	default:
		// A token was already captured; ignore repeats.
	}
	return c.HTML(http.StatusOK, capturedPage)
}

// Start listens on addr in a background goroutine.
func (s *CallbackServer) Start(addr string) {
	go func() {
		if err := s.e.Start(addr); err != nil && err != http.ErrServerClosed {
			s.log.Error().Err(err).Msg("callback server stopped")
		}
	}()
}

// WaitToken blocks until a token is captured or the context ends.
func (s *CallbackServer) WaitToken(ctx context.Context) (string, error) {
	select {
	case token := <-s.tokens:
		return token, nil
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

// Shutdown stops the listener.
func (s *CallbackServer) Shutdown(ctx context.Context) error {
	return s.e.Shutdown(ctx)
}
