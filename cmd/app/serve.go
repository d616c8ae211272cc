package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/0x0FACED/go-branching/pkg/branching"
	"github.com/0x0FACED/go-branching/pkg/logger"
	"github.com/0x0FACED/go-branching/pkg/preview"
	"github.com/0x0FACED/go-branching/static"
	"github.com/spf13/cobra"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// maxPreviewSide caps the domain a browser request may ask for.
const maxPreviewSide = 5000

// previewRequest holds the parameters of one preview run.
type previewRequest struct {
	params branching.Params
	seed   int64
}

func defaultPreview() previewRequest {
	return previewRequest{
		params: branching.Params{
			SizeX:         1000,
			SizeY:         1000,
			Radius:        20,
			ChildrenLimit: 3,
			Angle:         90,
		},
	}
}

func newServeCmd(a *app) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve an interactive preview page",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context(), addr, a.log)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")

	return cmd
}

func newMux(log *logger.ZapLogger) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/", diagramHandler)
	mux.HandleFunc("/lines", linesHandler(log))
	return mux
}

func serve(ctx context.Context, addr string, log *logger.ZapLogger) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           newMux(log),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		log.Info("[http] Server started", zap.String("addr", addr))
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		log.Info("[http] Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}

// parsePreview reads the sampler parameters from r, falling back to the
// preview defaults for missing fields.
func parsePreview(r *http.Request) (previewRequest, error) {
	req := defaultPreview()
	if err := r.ParseForm(); err != nil {
		return req, err
	}

	var err error
	parseFloat := func(name string, dst *float64) {
		v := r.FormValue(name)
		if v == "" {
			return
		}
		f, perr := strconv.ParseFloat(v, 64)
		if perr != nil {
			err = multierr.Append(err, fmt.Errorf("%s: %w", name, perr))
			return
		}
		*dst = f
	}
	parseInt := func(name string, dst *int64) {
		v := r.FormValue(name)
		if v == "" {
			return
		}
		n, perr := strconv.ParseInt(v, 10, 64)
		if perr != nil {
			err = multierr.Append(err, fmt.Errorf("%s: %w", name, perr))
			return
		}
		*dst = n
	}

	children := int64(req.params.ChildrenLimit)
	parseFloat("width", &req.params.SizeX)
	parseFloat("height", &req.params.SizeY)
	parseFloat("radius", &req.params.Radius)
	parseInt("children", &children)
	parseFloat("angle", &req.params.Angle)
	parseInt("seed", &req.seed)
	req.params.ChildrenLimit = int(children)

	if req.params.SizeX > maxPreviewSide || req.params.SizeY > maxPreviewSide {
		err = multierr.Append(err, fmt.Errorf("preview domain is limited to %d per side", maxPreviewSide))
	}
	if err != nil {
		return req, err
	}

	return req, req.params.Validate()
}

func (req previewRequest) run(log *logger.ZapLogger) (*branching.Sampler, error) {
	r, seed := rng(req.seed)
	s, err := branching.New(req.params, branching.WithRand(r), branching.WithLogger(log))
	if err != nil {
		return nil, err
	}
	log.Info("[http] Sampling", zap.Int64("seed", seed))
	s.Fill()
	return s, nil
}

// http handler of the page with the chart and the parameter form
func diagramHandler(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	req, err := parsePreview(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	log := logger.New()
	defer log.ClearLogs()

	sampler, err := req.run(log)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	p := req.params
	fmt.Fprintln(w, static.Form(
		formatFloat(p.SizeX),
		formatFloat(p.SizeY),
		formatFloat(p.Radius),
		strconv.Itoa(p.ChildrenLimit),
		formatFloat(p.Angle),
		strconv.FormatInt(req.seed, 10),
	))

	if err := preview.Chart(sampler).Render(w); err != nil {
		log.Error("[http] Chart rendering failed", zap.Error(err))
	}

	fmt.Fprintln(w, static.Part2)
	fmt.Fprintln(w, log.HTML())
	fmt.Fprintln(w, static.Part3)
}

// linesHandler streams the segment records for the requested parameters.
func linesHandler(log *logger.ZapLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, err := parsePreview(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		sampler, err := req.run(log)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		if err := branching.WriteLines(w, sampler.Segments()); err != nil {
			log.Error("[http] Writing segments failed", zap.Error(err))
		}
	}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
