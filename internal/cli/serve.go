package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"bayplan/pkg/errors"
	"bayplan/pkg/layout"
	"bayplan/pkg/model"
	"bayplan/pkg/project"
	"bayplan/pkg/render/sink"
)

// newServeCmd creates the serve command: a read-only HTTP preview of a
// design file. Useful for pointing a browser at a drawing while editing the
// TOML in another window.
func newServeCmd() *cobra.Command {
	var addr string
	var style string

	cmd := &cobra.Command{
		Use:   "serve [design file]",
		Short: "Serve a read-only HTTP preview of the design file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), args[0], addr, style)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "127.0.0.1:8473", "listen address")
	cmd.Flags().StringVar(&style, "style", styleWorkshop, "drawing style: workshop (default), blueprint")

	return cmd
}

// groupSummary is the list-endpoint shape: identity plus the derived
// measurements a picker needs, nothing editable.
type groupSummary struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	NumBays     int     `json:"num_bays"`
	TotalWidth  float64 `json:"total_width"`
	TotalHeight float64 `json:"total_height"`
	Shelves     int     `json:"shelves"`
	Dividers    int     `json:"dividers"`
	Bins        int     `json:"bins"`
	Valid       bool    `json:"valid"`
}

func runServe(ctx context.Context, input, addr, styleName string) error {
	logger := loggerFromContext(ctx)

	style, err := resolveStyle(styleName)
	if err != nil {
		return err
	}
	proj, err := project.Load(input)
	if err != nil {
		return err
	}

	find := func(w http.ResponseWriter, r *http.Request) *model.BayGroup {
		g, err := proj.Find(chi.URLParam(r, "id"))
		if err != nil {
			http.Error(w, errors.UserMessage(err), http.StatusNotFound)
			return nil
		}
		return g
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	r.Get("/groups", func(w http.ResponseWriter, _ *http.Request) {
		out := make([]groupSummary, len(proj.Groups))
		for i, g := range proj.Groups {
			out[i] = groupSummary{
				ID:          g.ID,
				Name:        g.Name,
				NumBays:     g.NumBays,
				TotalWidth:  g.TotalWidth(),
				TotalHeight: g.TotalHeight,
				Shelves:     g.ShelfCount(),
				Dividers:    g.DividerCount(),
				Bins:        g.BinCount(),
				Valid:       len(model.Validate(g)) == 0,
			}
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(out); err != nil {
			logger.Errorf("Encode group list: %v", err)
		}
	})

	r.Get("/groups/{id}", func(w http.ResponseWriter, req *http.Request) {
		g := find(w, req)
		if g == nil {
			return
		}
		if errs := model.Validate(g); len(errs) > 0 {
			http.Error(w, fmt.Sprintf("group %q is invalid: %v", g.Name, errs.Messages()), http.StatusUnprocessableEntity)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		if err := sink.WriteJSON(layout.Compose(g), w); err != nil {
			logger.Errorf("Encode drawing: %v", err)
		}
	})

	r.Get("/groups/{id}/drawing.svg", func(w http.ResponseWriter, req *http.Request) {
		g := find(w, req)
		if g == nil {
			return
		}
		if errs := model.Validate(g); len(errs) > 0 {
			http.Error(w, fmt.Sprintf("group %q is invalid: %v", g.Name, errs.Messages()), http.StatusUnprocessableEntity)
			return
		}
		w.Header().Set("Content-Type", "image/svg+xml")
		if _, err := w.Write(sink.RenderSVG(layout.Compose(g), sink.WithStyle(style))); err != nil {
			logger.Errorf("Write drawing: %v", err)
		}
	})

	srv := &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	logger.Infof("Serving %s on http://%s", input, addr)
	logger.Infof("Endpoints: /groups, /groups/{id}, /groups/{id}/drawing.svg")
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
