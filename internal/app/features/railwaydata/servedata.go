// internal/app/features/railwaydata/servedata.go
package railwaydata

import (
	"net/http"

	sectioncontrollerstore "github.com/dalemusser/railops/internal/app/store/sectioncontrollers"
	stationstore "github.com/dalemusser/railops/internal/app/store/stations"
	trainstore "github.com/dalemusser/railops/internal/app/store/trains"
	"github.com/dalemusser/railops/internal/app/system/respond"
	"github.com/dalemusser/railops/internal/app/system/timeouts"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// ServeAll handles GET /api/data: the full contents of all three
// collections. The reads are independent and run concurrently; the first
// failure cancels the others.
func (h *Handler) ServeAll(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Read(), h.Log, "read rail data")
	defer cancel()

	var resp dataResponse
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		resp.SectionControllers, err = sectioncontrollerstore.New(h.DB).List(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		resp.Stations, err = stationstore.New(h.DB).List(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		resp.Trains, err = trainstore.New(h.DB).List(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		h.Log.Error("read rail data failed", zap.Error(err))
		respond.ErrorWith(w, err, h.diagnostics(err))
		return
	}

	h.Log.Debug("rail data read",
		zap.Int("section_controllers", len(resp.SectionControllers)),
		zap.Int("stations", len(resp.Stations)),
		zap.Int("trains", len(resp.Trains)))

	if resp.empty() {
		resp.Message = emptyMessage
	}
	respond.OK(w, resp)
}

// diagnostics fills the stack and connectivity hint outside prod.
func (h *Handler) diagnostics(err error) respond.ErrorBody {
	if !h.Diagnostics {
		return respond.ErrorBody{}
	}
	body := respond.ErrorBody{Stack: respond.Stack(err), MongoURI: uriMissingHint}
	if h.MongoURISet {
		body.MongoURI = uriSetHint
	}
	return body
}
