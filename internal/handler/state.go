package handler

import (
	"net/http"

	"saas-sim/internal/simerr"
	"saas-sim/internal/store"

	"github.com/labstack/echo/v4"
)

// StateHandler persists and restores the whole simulator state, either
// as a JSON file on disk or as a named snapshot row in the database.
type StateHandler struct {
	store       *store.Store
	snapshots   store.SnapshotRepository
	defaultPath string
}

func NewStateHandler(st *store.Store, snapshots store.SnapshotRepository, defaultPath string) *StateHandler {
	return &StateHandler{store: st, snapshots: snapshots, defaultPath: defaultPath}
}

type stateRequest struct {
	// Path selects a JSON file target. Name selects a database snapshot
	// instead; when both are set, Name wins.
	Path string `json:"path"`
	Name string `json:"name"`
}

func (h *StateHandler) Save(c echo.Context) error {
	var req stateRequest
	if err := c.Bind(&req); err != nil {
		return writeError(c, errBadBody(err))
	}

	if req.Name != "" {
		if h.snapshots == nil {
			return writeError(c, simerr.API("Snapshot storage is not configured."))
		}
		if err := h.snapshots.Save(c.Request().Context(), req.Name, h.store); err != nil {
			return writeError(c, simerr.API("Saving snapshot '%s' failed: %v", req.Name, err))
		}
		return c.JSON(http.StatusOK, echo.Map{"status": "ok", "name": req.Name})
	}

	path := req.Path
	if path == "" {
		path = h.defaultPath
	}
	if err := h.store.SaveJSON(path); err != nil {
		return writeError(c, simerr.API("Saving state to '%s' failed: %v", path, err))
	}
	return c.JSON(http.StatusOK, echo.Map{"status": "ok", "path": path})
}

func (h *StateHandler) Load(c echo.Context) error {
	var req stateRequest
	if err := c.Bind(&req); err != nil {
		return writeError(c, errBadBody(err))
	}

	if req.Name != "" {
		if h.snapshots == nil {
			return writeError(c, simerr.API("Snapshot storage is not configured."))
		}
		if err := h.snapshots.Load(c.Request().Context(), req.Name, h.store); err != nil {
			return writeError(c, simerr.API("Loading snapshot '%s' failed: %v", req.Name, err))
		}
		return c.JSON(http.StatusOK, echo.Map{"status": "ok", "name": req.Name})
	}

	path := req.Path
	if path == "" {
		path = h.defaultPath
	}
	if err := h.store.LoadJSON(path); err != nil {
		return writeError(c, simerr.API("Loading state from '%s' failed: %v", path, err))
	}
	return c.JSON(http.StatusOK, echo.Map{"status": "ok", "path": path})
}
