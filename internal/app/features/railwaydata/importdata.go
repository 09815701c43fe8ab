// internal/app/features/railwaydata/importdata.go
package railwaydata

import (
	"net/http"

	sectioncontrollerstore "github.com/dalemusser/railops/internal/app/store/sectioncontrollers"
	stationstore "github.com/dalemusser/railops/internal/app/store/stations"
	trainstore "github.com/dalemusser/railops/internal/app/store/trains"
	"github.com/dalemusser/railops/internal/app/system/metrics"
	"github.com/dalemusser/railops/internal/app/system/respond"
	"github.com/dalemusser/railops/internal/app/system/timeouts"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// HandleImport handles POST /api/data.
//
// Section controllers, stations and trains are inserted in that order, one
// bulk insert each, skipping arrays that are absent or empty. There is no
// transaction: if a later insert fails, earlier ones stay committed and the
// caller gets a 500.
func (h *Handler) HandleImport(w http.ResponseWriter, r *http.Request) {
	var req importRequest
	if err := respond.DecodeJSON(r, &req); err != nil {
		h.Log.Error("decode import body failed", zap.Error(err))
		respond.Error(w, err)
		return
	}

	log := h.Log.With(zap.String("import_id", uuid.NewString()))

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Batch(), log, "import rail data")
	defer cancel()

	if len(req.SectionControllers) > 0 {
		if _, err := sectioncontrollerstore.New(h.DB).InsertMany(ctx, req.SectionControllers); err != nil {
			log.Error("insert section controllers failed", zap.Error(err))
			respond.Error(w, err)
			return
		}
		metrics.RecordInserted(sectioncontrollerstore.Collection, len(req.SectionControllers))
	}

	if len(req.Stations) > 0 {
		if _, err := stationstore.New(h.DB).InsertMany(ctx, req.Stations); err != nil {
			log.Error("insert stations failed", zap.Error(err))
			respond.Error(w, err)
			return
		}
		metrics.RecordInserted(stationstore.Collection, len(req.Stations))
	}

	if len(req.Trains) > 0 {
		if _, err := trainstore.New(h.DB).InsertMany(ctx, req.Trains); err != nil {
			log.Error("insert trains failed", zap.Error(err))
			respond.Error(w, err)
			return
		}
		metrics.RecordInserted(trainstore.Collection, len(req.Trains))
	}

	log.Info("rail data imported",
		zap.Int("section_controllers", len(req.SectionControllers)),
		zap.Int("stations", len(req.Stations)),
		zap.Int("trains", len(req.Trains)))
	respond.Message(w, importedMessage)
}
