package httpx

import (
	"context"
	"net/http"

	"github.com/target/ticketdesk-api/internal/domain/model"
)

// NutritionServiceInterface defines the image analysis operation.
type NutritionServiceInterface interface {
	Analyze(ctx context.Context, req model.ImageRequest) (model.NutritionResponse, error)
}

// NutritionHandlers serves the food image analysis endpoint.
type NutritionHandlers struct {
	Svc NutritionServiceInterface
}

// AnalyzeImage handles POST /analyze-image.
func (h *NutritionHandlers) AnalyzeImage(w http.ResponseWriter, r *http.Request) {
	var req model.ImageRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	resp, err := h.Svc.Analyze(r.Context(), req)
	if err != nil {
		WriteError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, resp)
}
