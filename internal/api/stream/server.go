// Package stream отдаёт по HTTP статистику сессии и размеченное видео (MJPEG).
package stream

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/mux"

	"posture-monitor/internal/domain/entity"
	"posture-monitor/internal/domain/port"
)

const (
	// FrameInterval как часто поток проверяет новый кадр
	FrameInterval = 33 * time.Millisecond
	boundary      = "frame"
)

// StatsProvider источник статистики сессии
type StatsProvider interface {
	Snapshot() entity.SessionStats
}

// Server HTTP-сервер и Presenter одновременно: Present сохраняет последний кадр
type Server struct {
	stats  StatsProvider
	router *mux.Router

	mu     sync.RWMutex
	latest []byte
	seq    uint64
}

// NewServer создаёт сервер. stats может быть nil.
func NewServer(stats StatsProvider) *Server {
	s := &Server{stats: stats}

	r := mux.NewRouter()
	r.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)
	r.HandleFunc("/status", s.handleStatus).Methods(http.MethodGet)
	r.HandleFunc("/snapshot.jpg", s.handleSnapshot).Methods(http.MethodGet)
	r.HandleFunc("/stream", s.handleStream).Methods(http.MethodGet)
	s.router = r

	return s
}

// Handler возвращает HTTP-обработчик
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe слушает addr до отмены ctx
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("Error shutting down HTTP server: %v", err)
		}
	}()

	log.Printf("HTTP server listening on %s", addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server: %w", err)
	}
	return nil
}

// Present кодирует кадр в JPEG и делает его текущим
func (s *Server) Present(frame port.Frame) error {
	f, ok := frame.(port.JPEGFrame)
	if !ok {
		return fmt.Errorf("stream: unsupported frame type %T", frame)
	}

	data, err := f.JPEG()
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.latest = data
	s.seq++
	s.mu.Unlock()

	return nil
}

// Quit сервер выход не запрашивает
func (s *Server) Quit() bool {
	return false
}

func (s *Server) frame() ([]byte, uint64) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.latest, s.seq
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	var stats entity.SessionStats
	if s.stats != nil {
		stats = s.stats.Snapshot()
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(newStatusResponse(stats)); err != nil {
		log.Printf("Error encoding status: %v", err)
	}
}

func (s *Server) handleSnapshot(w http.ResponseWriter, r *http.Request) {
	data, _ := s.frame()
	if data == nil {
		http.Error(w, "no frame yet", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "image/jpeg")
	w.Write(data)
}

func (s *Server) handleStream(w http.ResponseWriter, r *http.Request) {
	log.Printf("New stream client %s", r.RemoteAddr)

	w.Header().Set("Content-Type", "multipart/x-mixed-replace; boundary="+boundary)
	flusher, _ := w.(http.Flusher)

	ticker := time.NewTicker(FrameInterval)
	defer ticker.Stop()

	var sent uint64
	for {
		if data, seq := s.frame(); data != nil && seq != sent {
			if err := writePart(w, data); err != nil {
				log.Printf("Stream client %s: %v", r.RemoteAddr, err)
				return
			}
			if flusher != nil {
				flusher.Flush()
			}
			sent = seq
		}

		select {
		case <-r.Context().Done():
			log.Printf("Stream client %s disconnected", r.RemoteAddr)
			return
		case <-ticker.C:
		}
	}
}

func writePart(w http.ResponseWriter, data []byte) error {
	header := fmt.Sprintf("--%s\r\nContent-Type: image/jpeg\r\nContent-Length: %d\r\n\r\n", boundary, len(data))
	if _, err := w.Write([]byte(header)); err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return err
	}
	_, err := w.Write([]byte("\r\n"))
	return err
}

var _ port.Presenter = (*Server)(nil)
