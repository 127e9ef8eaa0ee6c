package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/spf13/cobra"

	httpadapter "svw.info/sudoku-solver/internal/adapters/http"
	"svw.info/sudoku-solver/internal/hint"
	"svw.info/sudoku-solver/internal/infrastructure/storage"
	"svw.info/sudoku-solver/internal/ports"
	"svw.info/sudoku-solver/internal/usecase"
	"svw.info/sudoku-solver/internal/validator"
)

// statusWriter captures HTTP status and bytes written.
type statusWriter struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	n, err := w.ResponseWriter.Write(b)
	w.bytes += n
	return n, err
}

// requestLogger logs method, path, status, bytes, and duration.
func requestLogger(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w}
		next.ServeHTTP(sw, r)
		logger.Info("http",
			"method", r.Method,
			"path", r.URL.Path,
			"status", sw.status,
			"bytes", sw.bytes,
			"dur", time.Since(start).Round(time.Millisecond),
		)
	})
}

func newServeCommand() *cobra.Command {
	var (
		addr        string
		solverKind  string
		strategies  string
		maxDepth    int
		storageKind string
		storagePath string
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the JSON solving API",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := pickSolver(solverKind, strategies, maxDepth)
			if err != nil {
				return err
			}
			var st ports.Storage
			switch strings.ToLower(storageKind) {
			case "fs":
				st = storage.NewFS(storagePath)
			case "sqlite":
				db, err := storage.NewSQLite(storagePath)
				if err != nil {
					return err
				}
				defer db.Close()
				st = db
			default:
				return fmt.Errorf("unknown storage %q", storageKind)
			}

			uc := usecase.NewService(s, validator.New(), hint.New(), st)
			mux := http.NewServeMux()
			httpadapter.New(uc).Register(mux)

			srv := &http.Server{
				Addr:              addr,
				Handler:           requestLogger(logger, mux),
				ReadHeaderTimeout: 5 * time.Second,
			}
			logger.Info("listening", "addr", addr, "solver", s.Name(), "storage", storageKind)
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				return err
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().StringVar(&solverKind, "solver", "engine", "solver to use: engine|dlx")
	cmd.Flags().StringVar(&strategies, "strategies", "", "comma-separated strategy identifiers (default: all)")
	cmd.Flags().IntVar(&maxDepth, "max-depth", 0, "backtracking depth limit (0 = unbounded)")
	cmd.Flags().StringVar(&storageKind, "storage", "sqlite", "puzzle storage backend: sqlite|fs")
	cmd.Flags().StringVar(&storagePath, "storage-path", "./sudoku.db", "database file or directory")
	return cmd
}
