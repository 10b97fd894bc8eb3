package themeext

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/ImSingee/go-ex/ee"
	"github.com/fsnotify/fsnotify"
	"github.com/gorilla/websocket"

	"github.com/ImSingee/shopify-cli/internal/lib/ignore"
)

const HotReloadPath = "/hot-reload"

type ServerOptions struct {
	Root    string // theme extension directory
	Host    string // defaults to 127.0.0.1
	Port    int
	Store   string
	ThemeID string
}

// Server serves a theme app extension's files and pushes file changes to
// hot reload clients
type Server struct {
	opts     ServerOptions
	filter   *ignore.Filter
	hub      *hub
	upgrader websocket.Upgrader
}

func NewServer(opts ServerOptions) (*Server, error) {
	if opts.Host == "" {
		opts.Host = "127.0.0.1"
	}

	filter, err := ignore.Load(opts.Root)
	if err != nil {
		return nil, err
	}

	return &Server{
		opts:   opts,
		filter: filter,
		hub:    newHub(),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}, nil
}

// PreviewURL is the storefront URL rendering the host theme
func (s *Server) PreviewURL() string {
	return fmt.Sprintf("https://%s/?preview_theme_id=%s", s.opts.Store, s.opts.ThemeID)
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleIndex)
	mux.HandleFunc(HotReloadPath, s.handleHotReload)
	mux.Handle("/extension/", http.StripPrefix("/extension/", http.HandlerFunc(s.handleFile)))
	return mux
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{
		"store":       s.opts.Store,
		"theme_id":    s.opts.ThemeID,
		"preview_url": s.PreviewURL(),
	})
}

func (s *Server) handleFile(w http.ResponseWriter, r *http.Request) {
	rel := filepath.FromSlash(strings.TrimPrefix(r.URL.Path, "/"))
	if rel == "" || !filepath.IsLocal(rel) || s.filter.Ignored(rel, false) {
		http.NotFound(w, r)
		return
	}

	p := filepath.Join(s.opts.Root, rel)
	info, err := os.Stat(p)
	if err != nil || info.IsDir() {
		http.NotFound(w, r)
		return
	}

	http.ServeFile(w, r, p)
}

func (s *Server) handleHotReload(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Debug("Hot reload upgrade failed", "error", err)
		return
	}
	s.hub.add(conn)

	go func() {
		defer s.hub.remove(conn)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

// Run serves until ctx is done
func (s *Server) Run(ctx context.Context, stdout io.Writer) error {
	addr := net.JoinHostPort(s.opts.Host, strconv.Itoa(s.opts.Port))
	l, err := net.Listen("tcp", addr)
	if err != nil {
		return ee.Wrapf(err, "cannot listen on %s", addr)
	}

	watcher, err := s.watch(ctx, stdout)
	if err != nil {
		_ = l.Close()
		return err
	}
	defer watcher.Close()

	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		s.hub.closeAll()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	_, _ = fmt.Fprintf(stdout, "Serving %s at http://%s\n", s.opts.Root, l.Addr().String())
	_, _ = fmt.Fprintf(stdout, "Preview your theme app extension at %s\n", s.PreviewURL())

	err = srv.Serve(l)
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

func (s *Server) watch(ctx context.Context, stdout io.Writer) (*fsnotify.Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, ee.Wrap(err, "cannot create file watcher")
	}

	if err := s.addDirs(watcher, s.opts.Root); err != nil {
		_ = watcher.Close()
		return nil, err
	}

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if change, ok := s.handleEvent(watcher, event); ok {
					_, _ = fmt.Fprintf(stdout, "%s %s\n", change.Type, change.Path)
					s.hub.broadcast(change)
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				slog.Warn("File watcher error", "error", err)
			}
		}
	}()

	return watcher, nil
}

func (s *Server) addDirs(watcher *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if s.filter.Ignored(path, true) {
			return filepath.SkipDir
		}

		if err := watcher.Add(path); err != nil {
			return ee.Wrapf(err, "cannot watch %s", path)
		}
		return nil
	})
}

func (s *Server) handleEvent(watcher *fsnotify.Watcher, event fsnotify.Event) (Change, bool) {
	rel, err := filepath.Rel(s.opts.Root, event.Name)
	if err != nil {
		return Change{}, false
	}

	switch {
	case event.Has(fsnotify.Remove), event.Has(fsnotify.Rename):
		if s.filter.Ignored(rel, false) {
			return Change{}, false
		}
		return Change{Type: "remove", Path: filepath.ToSlash(rel)}, true
	case event.Has(fsnotify.Create), event.Has(fsnotify.Write):
		info, err := os.Stat(event.Name)
		if err != nil {
			return Change{}, false
		}
		if s.filter.Ignored(rel, info.IsDir()) {
			return Change{}, false
		}
		if info.IsDir() {
			if err := s.addDirs(watcher, event.Name); err != nil {
				slog.Warn("Cannot watch new directory", "path", event.Name, "error", err)
			}
			return Change{}, false
		}
		return Change{Type: "update", Path: filepath.ToSlash(rel)}, true
	default:
		return Change{}, false
	}
}
