// internal/app/features/users/users.go
package users

import (
	"net/http"

	userstore "github.com/dalemusser/railops/internal/app/store/users"
	"github.com/dalemusser/railops/internal/app/system/metrics"
	"github.com/dalemusser/railops/internal/app/system/respond"
	"github.com/dalemusser/railops/internal/app/system/timeouts"
	"github.com/dalemusser/railops/internal/domain/models"
	"go.uber.org/zap"
)

const deletedMessage = "All users deleted successfully"

// ServeList handles GET /users: every user as a JSON array, [] if none.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Read(), h.Log, "list users")
	defer cancel()

	list, err := userstore.New(h.DB).List(ctx)
	if err != nil {
		h.Log.Error("list users failed", zap.Error(err))
		respond.Error(w, err)
		return
	}
	respond.OK(w, list)
}

// HandleCreate handles POST /users. The body is stored without validation
// and the stored record, including its _id, is echoed back with 200.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var u models.User
	if err := respond.DecodeJSON(r, &u); err != nil {
		h.Log.Error("decode user failed", zap.Error(err))
		respond.Error(w, err)
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Write(), h.Log, "create user")
	defer cancel()

	created, err := userstore.New(h.DB).Create(ctx, u)
	if err != nil {
		h.Log.Error("create user failed", zap.Error(err))
		respond.Error(w, err)
		return
	}
	metrics.RecordInserted(userstore.Collection, 1)

	h.Log.Info("user created", zap.String("user_id", created.ID.Hex()))
	respond.OK(w, created)
}

// HandleDeleteAll handles DELETE /users. It wipes the whole collection.
func (h *Handler) HandleDeleteAll(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Write(), h.Log, "delete users")
	defer cancel()

	n, err := userstore.New(h.DB).DeleteAll(ctx)
	if err != nil {
		h.Log.Error("delete users failed", zap.Error(err))
		respond.Error(w, err)
		return
	}
	metrics.RecordDeleted(userstore.Collection, n)

	h.Log.Info("users deleted", zap.Int64("count", n))
	respond.Message(w, deletedMessage)
}
