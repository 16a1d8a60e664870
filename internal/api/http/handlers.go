package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/fypaccletsgo2025/EatooAdmin/internal/docstore"
	"github.com/fypaccletsgo2025/EatooAdmin/internal/domain"
	"github.com/fypaccletsgo2025/EatooAdmin/internal/merge"
	"github.com/fypaccletsgo2025/EatooAdmin/internal/service"

	"github.com/gorilla/mux"
)

type Handler struct {
	Admin service.AdminServiceInterface
}

func NewHandler(admin service.AdminServiceInterface) *Handler {
	return &Handler{Admin: admin}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/restaurant-requests", h.getOwnerRequests).Methods("GET")
	r.HandleFunc("/user-submissions", h.getUserSubmissions).Methods("GET")
	r.HandleFunc("/manage-restaurants", h.getManageRestaurants).Methods("GET")
	r.HandleFunc("/dashboard-metrics", h.getDashboardMetrics).Methods("GET")

	r.HandleFunc("/contact-user-submission", h.contactUserSubmission).Methods("POST")
	r.HandleFunc("/approve-user-submission", h.approveUserSubmission).Methods("POST")
	r.HandleFunc("/reject-user-submission", h.rejectUserSubmission).Methods("POST")
	r.HandleFunc("/approve-restaurant-request", h.approveOwnerRequest).Methods("POST")
	r.HandleFunc("/reject-restaurant-request", h.rejectOwnerRequest).Methods("POST")
	r.HandleFunc("/remove-restaurant", h.removeRestaurant).Methods("POST")

	r.HandleFunc("/restaurants/{id}/qrcode", h.getListingQRCode).Methods("GET")
}

type actionRequest struct {
	DocumentID string         `json:"documentId"`
	Reason     string         `json:"reason"`
	Overrides  map[string]any `json:"overrides"`
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"ok":        true,
		"status":    "healthy",
		"service":   "eatoo-admin",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func (h *Handler) getOwnerRequests(w http.ResponseWriter, r *http.Request) {
	documents, err := h.Admin.ListOwnerRequests(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"ok": true, "documents": documents})
}

func (h *Handler) getUserSubmissions(w http.ResponseWriter, r *http.Request) {
	pending, contacted, err := h.Admin.ListUserSubmissions(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"ok": true, "pending": pending, "contacted": contacted})
}

func (h *Handler) getManageRestaurants(w http.ResponseWriter, r *http.Request) {
	live, contacted, err := h.Admin.ManageRestaurants(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"ok": true, "live": live, "contacted": contacted})
}

func (h *Handler) getDashboardMetrics(w http.ResponseWriter, r *http.Request) {
	metrics, err := h.Admin.DashboardMetrics(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"ok":                true,
		"stats":             metrics.Stats,
		"recentRestaurants": metrics.RecentRestaurants,
		"ownerQueue":        metrics.OwnerQueue,
		"userQueue":         metrics.UserQueue,
	})
}

func (h *Handler) contactUserSubmission(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeAction(w, r)
	if !ok {
		return
	}
	if err := h.Admin.ContactSubmission(r.Context(), req.DocumentID); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"ok": true, "message": "Submission marked as contacted."})
}

func (h *Handler) approveUserSubmission(w http.ResponseWriter, r *http.Request) {
	h.approve(w, r, domain.CollectionUserSubmissions, "%s moved to live restaurants.")
}

func (h *Handler) approveOwnerRequest(w http.ResponseWriter, r *http.Request) {
	h.approve(w, r, domain.CollectionOwnerRequests, "%s approved and moved to live restaurants.")
}

func (h *Handler) approve(w http.ResponseWriter, r *http.Request, sourceCollection, messageTemplate string) {
	req, ok := decodeAction(w, r)
	if !ok {
		return
	}
	restaurant, err := h.Admin.Promote(r.Context(), sourceCollection, req.DocumentID, req.Overrides, messageTemplate)
	if err != nil {
		writeError(w, err)
		return
	}
	name, _ := restaurant.Fields["name"].(string)
	writeJSON(w, http.StatusOK, map[string]any{
		"ok":         true,
		"message":    fmt.Sprintf(messageTemplate, name),
		"restaurant": restaurant,
	})
}

func (h *Handler) rejectUserSubmission(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeAction(w, r)
	if !ok {
		return
	}
	if err := h.Admin.RejectSubmission(r.Context(), domain.CollectionUserSubmissions, req.DocumentID, req.Reason); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"ok": true, "message": "Submission rejected."})
}

func (h *Handler) rejectOwnerRequest(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeAction(w, r)
	if !ok {
		return
	}
	if err := h.Admin.RejectSubmission(r.Context(), domain.CollectionOwnerRequests, req.DocumentID, req.Reason); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"ok": true, "message": "Restaurant request rejected."})
}

func (h *Handler) removeRestaurant(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeAction(w, r)
	if !ok {
		return
	}
	if err := h.Admin.RemoveRestaurant(r.Context(), req.DocumentID, req.Reason); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"ok": true, "message": "Restaurant removed from the catalog."})
}

func (h *Handler) getListingQRCode(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	png, err := h.Admin.ListingQRCode(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}

func decodeAction(w http.ResponseWriter, r *http.Request) (actionRequest, bool) {
	var req actionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"ok": false, "message": "Invalid JSON payload."})
		return actionRequest{}, false
	}
	if req.DocumentID == "" {
		writeJSON(w, http.StatusBadRequest, map[string]any{"ok": false, "message": "documentId is required."})
		return actionRequest{}, false
	}
	return req, true
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

// writeError maps the error taxonomy onto HTTP statuses. Store failures stay
// behind a generic message; the details go to the server log only.
func writeError(w http.ResponseWriter, err error) {
	var verr *merge.ValidationError
	switch {
	case errors.As(err, &verr):
		writeJSON(w, http.StatusBadRequest, map[string]any{"ok": false, "message": verr.Error()})
	case errors.Is(err, service.ErrUnknownCollection):
		writeJSON(w, http.StatusBadRequest, map[string]any{"ok": false, "message": "Unknown collection."})
	case errors.Is(err, docstore.ErrNotFound):
		writeJSON(w, http.StatusNotFound, map[string]any{"ok": false, "message": "Document not found."})
	case errors.Is(err, docstore.ErrConflict):
		writeJSON(w, http.StatusConflict, map[string]any{"ok": false, "message": "Restaurant already exists for this submission."})
	default:
		log.Printf("internal error: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]any{"ok": false, "message": "Internal server error."})
	}
}
