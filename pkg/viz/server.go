package viz

import (
	"context"
	"fmt"
	"net/http"
	"sort"
	"sync"
	"time"

	"github.com/julienschmidt/httprouter"
)

type ImageContainer struct {
	name string
	data []byte
}

func (i *ImageContainer) Name() string {
	return i.name
}

func (i *ImageContainer) Data() []byte {
	return i.data
}

type Producer interface {
	Name() string
	GetImage() *ImageContainer
	AddPlotOption(opt PlotOptions)
}

// Server publishes the most recent frame and the registered charts. Frames
// are pushed by the render loop; charts are rendered on request and cached
// for one update interval.
type Server struct {
	mu             sync.RWMutex
	port           int
	srv            *http.Server
	producers      map[string]Producer
	images         map[string]*ImageContainer
	renderedAt     map[string]time.Time
	frame          []byte
	frames         uint64
	updateInterval time.Duration
	enabled        bool
}

func NewServer(port int, updateInterval time.Duration) *Server {
	s := &Server{
		port:           port,
		producers:      make(map[string]Producer),
		images:         make(map[string]*ImageContainer),
		renderedAt:     make(map[string]time.Time),
		updateInterval: updateInterval,
		enabled:        true,
	}
	s.srv = &http.Server{Addr: fmt.Sprintf(":%d", port), Handler: s.Handler()}
	return s
}

func (s *Server) Enable(enable bool) {
	s.mu.Lock()
	s.enabled = enable
	s.mu.Unlock()
}

func (s *Server) SetUpdateInterval(interval time.Duration) {
	s.mu.Lock()
	s.updateInterval = interval
	s.mu.Unlock()
}

func (s *Server) Register(p Producer) {
	s.mu.Lock()
	s.producers[p.Name()] = p
	s.mu.Unlock()
}

// Publish stores frame as the latest PNG. It never blocks on readers.
func (s *Server) Publish(frame []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.enabled {
		return
	}
	s.frame = frame
	s.frames++
}

// Frames returns how many frames have been published.
func (s *Server) Frames() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.frames
}

func (s *Server) Stop(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}

// Run serves until ctx is done or Stop is called.
func (s *Server) Run(ctx context.Context) error {
	go func() {
		<-ctx.Done()
		s.srv.Shutdown(context.Background())
	}()

	err := s.srv.ListenAndServe()
	switch {
	case err == http.ErrServerClosed:
		return nil
	default:
		return err
	}
}

func (s *Server) image(name string) (*ImageContainer, bool) {
	s.mu.RLock()
	p, ok := s.producers[name]
	img, cached := s.images[name]
	fresh := cached && time.Since(s.renderedAt[name]) < s.updateInterval
	s.mu.RUnlock()

	if !ok {
		return nil, false
	}
	if fresh {
		return img, true
	}

	img = p.GetImage()
	if img == nil {
		return nil, false
	}

	s.mu.Lock()
	s.images[name] = img
	s.renderedAt[name] = time.Now()
	s.mu.Unlock()
	return img, true
}

func (s *Server) Handler() http.Handler {
	handler := httprouter.New()

	handler.GET("/", func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		w.Header().Set("Location", "/view")
		w.WriteHeader(http.StatusFound)
	})

	handler.GET("/view", func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		s.mu.RLock()
		names := make([]string, 0, len(s.producers))
		for name := range s.producers {
			names = append(names, name)
		}
		interval := s.updateInterval
		s.mu.RUnlock()
		sort.Strings(names)

		w.Header().Add("Content-Type", "text/html")
		w.Write([]byte(`<html><head><title>Winding</title></head>`))
		w.Write([]byte(fmt.Sprintf(`
		<script type="text/javascript">
			var toggleRefresh = true;
			function toggleOn() {
				toggleRefresh = !toggleRefresh;
			}
			window.onload = function() {
				var frame = document.getElementById('frame');
				setInterval(function() {
					if (toggleRefresh) {
						frame.src = '/frame.png?' + new Date().getTime();
					}
				}, %d);
			}
		</script>`, interval.Milliseconds())))
		w.Write([]byte(`<body style='background-color: black'>`))
		w.Write([]byte(`<button onclick="toggleOn()">Refresh?</button>`))
		w.Write([]byte(`<div><img id="frame" src="/frame.png" /></div>`))

		w.Write([]byte(`<div style="display: flex; flex-direction: row; flex-wrap: wrap">`))
		for _, name := range names {
			w.Write([]byte(fmt.Sprintf(`<div><img src="/img/%s" /></div>`, name)))
		}
		w.Write([]byte(`</div></body></html>`))
	})

	handler.GET("/frame.png", func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		s.mu.RLock()
		frame := s.frame
		s.mu.RUnlock()

		if frame == nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Header().Add("Content-Type", "image/png")
		w.Header().Add("Cache-Control", "no-store")
		w.Write(frame)
	})

	handler.GET("/img/:img", func(w http.ResponseWriter, r *http.Request, params httprouter.Params) {
		img, ok := s.image(params.ByName("img"))
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		w.Header().Add("Content-Type", "image/png")
		w.Write(img.data)
	})

	return handler
}
