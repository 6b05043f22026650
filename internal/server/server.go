package server

import (
	"context"
	"errors"
	"fmt"
	"image/png"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/reelforge/reelforge/internal/compositor"
	"github.com/reelforge/reelforge/internal/config"
	"github.com/reelforge/reelforge/internal/editor"
	"github.com/reelforge/reelforge/internal/logging"
	"github.com/reelforge/reelforge/internal/media"
	"github.com/reelforge/reelforge/internal/timeline"
)

// Server hosts the browser shell for one editing session: it serves the
// embedded page and the video file, bridges the video element's native
// events into the playback clock over a websocket, and pushes engine
// state back after every mutation or tick.
type Server struct {
	log       *logging.Logger
	cfg       *config.Config
	ed        *editor.Editor
	comp      *compositor.Compositor
	view      *timeline.View
	videoPath string

	upgrader websocket.Upgrader

	mu      sync.Mutex
	clients map[*client]struct{}
}

type client struct {
	conn *websocket.Conn
	mu   sync.Mutex // serializes writes
}

func (c *client) send(v interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.WriteJSON(v)
}

func New(ed *editor.Editor, comp *compositor.Compositor, videoPath string, cfg *config.Config, log *logging.Logger) *Server {
	if log == nil {
		log = logging.NewNop()
	}
	s := &Server{
		log:       log,
		cfg:       cfg,
		ed:        ed,
		comp:      comp,
		view:      timeline.NewView(ed.Store(), ed.Clock()),
		videoPath: videoPath,
		clients:   make(map[*client]struct{}),
	}

	// every store mutation and clock tick fans out to connected shells
	ed.Store().Subscribe(func() { s.broadcast() })
	ed.Clock().OnTick(func(float64) { s.broadcast() })

	return s
}

// Run serves until ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.cfg.ListenAddr,
		Handler: s.routes(),
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	s.log.Infow("editor server listening",
		"addr", s.cfg.ListenAddr,
		"video", s.videoPath,
	)

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

func (s *Server) routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleIndex)
	mux.HandleFunc("/video", s.handleVideo)
	mux.HandleFunc("/overlay.png", s.handleOverlay)
	mux.HandleFunc("/preview.png", s.handlePreview)
	mux.HandleFunc("/ws", s.handleWS)
	return mux
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(indexHTML)
}

func (s *Server) handleVideo(w http.ResponseWriter, r *http.Request) {
	http.ServeFile(w, r, s.videoPath)
}

// handleOverlay renders the caption overlay for the requested time (the
// current playhead when no time is given) as a transparent PNG.
func (s *Server) handleOverlay(w http.ResponseWriter, r *http.Request) {
	t := s.ed.Clock().CurrentTime()
	if raw := r.URL.Query().Get("t"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			http.Error(w, "invalid time", http.StatusBadRequest)
			return
		}
		t = parsed
	}

	surface := compositor.NewSurface(s.cfg.Overlay.Width, s.cfg.Overlay.Height)
	s.comp.RenderFrame(surface, s.ed.Store(), t)

	w.Header().Set("Content-Type", "image/png")
	if err := png.Encode(w, surface); err != nil {
		s.log.Warnw("failed to encode overlay", "error", err)
	}
}

// handlePreview composites the overlay onto the decoded video frame at
// the requested time. Frame extraction failures fall back to the bare
// overlay rather than erroring the request.
func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request) {
	t := s.ed.Clock().CurrentTime()
	if raw := r.URL.Query().Get("t"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			http.Error(w, "invalid time", http.StatusBadRequest)
			return
		}
		t = parsed
	}

	width, height := s.cfg.Overlay.Width, s.cfg.Overlay.Height
	frame, err := media.ExtractFrame(r.Context(), s.videoPath, t, width, height)
	if err != nil {
		s.log.Debugw("frame extraction failed, serving bare overlay",
			"time", t,
			"error", err,
		)
	}

	out := s.comp.Composite(frame, s.ed.Store(), t, width, height)

	w.Header().Set("Content-Type", "image/png")
	if err := png.Encode(w, out); err != nil {
		s.log.Warnw("failed to encode preview", "error", err)
	}
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Warnw("websocket upgrade failed", "error", err)
		return
	}

	c := &client{conn: conn}
	s.mu.Lock()
	s.clients[c] = struct{}{}
	s.mu.Unlock()

	s.log.Debugw("shell connected", "remote", r.RemoteAddr)

	// initial state so the shell can paint before any event fires
	if err := c.send(s.snapshot()); err != nil {
		s.drop(c)
		return
	}

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			s.drop(c)
			return
		}

		ev, err := decodeEvent(data)
		if err != nil {
			s.log.Debugw("ignoring bad event", "error", err)
			continue
		}
		if err := s.apply(ev); err != nil {
			s.log.Debugw("event rejected", "type", ev.Type, "error", err)
		}
	}
}

// apply dispatches one shell event into the engine. Unknown segment ids
// and commands before metadata are non-fatal; the next snapshot simply
// reflects the real state.
func (s *Server) apply(ev Event) error {
	switch ev.Type {
	case "loadedmetadata":
		s.ed.Clock().LoadedMetadata(ev.Duration)
		s.broadcast()
		return nil
	case "timeupdate":
		s.ed.Clock().TimeUpdate(ev.Time)
		return nil
	case "ended":
		s.ed.Clock().Ended()
		return nil
	case "play":
		return s.ed.Clock().Play()
	case "pause":
		return s.ed.Clock().Pause()
	case "toggle":
		err := s.ed.TogglePlayback()
		s.broadcast()
		return err
	case "seek":
		return s.ed.SeekTo(ev.Time)
	case "timeline_click":
		return s.view.Click(ev.X, ev.Width)
	case "add_segment":
		s.ed.AddSegment()
		return nil
	case "delete_segment":
		s.ed.DeleteSegment(ev.ID)
		return nil
	case "update_segment":
		if ev.Patch == nil {
			return fmt.Errorf("update without patch")
		}
		s.ed.Apply(ev.ID, ev.Patch.toUpdate())
		return nil
	default:
		return fmt.Errorf("unknown event type %q", ev.Type)
	}
}

func (s *Server) snapshot() Snapshot {
	clock := s.ed.Clock()
	return Snapshot{
		Type:        "state",
		State:       clock.State(),
		CurrentTime: clock.CurrentTime(),
		Duration:    clock.Duration(),
		Playing:     clock.IsPlaying(),
		Panels:      s.ed.Panels(),
		Timeline:    s.view.Snapshot(),
	}
}

func (s *Server) broadcast() {
	snap := s.snapshot()

	s.mu.Lock()
	clients := make([]*client, 0, len(s.clients))
	for c := range s.clients {
		clients = append(clients, c)
	}
	s.mu.Unlock()

	for _, c := range clients {
		if err := c.send(snap); err != nil {
			s.drop(c)
		}
	}
}

func (s *Server) drop(c *client) {
	s.mu.Lock()
	if _, ok := s.clients[c]; ok {
		delete(s.clients, c)
		_ = c.conn.Close()
	}
	s.mu.Unlock()
}
