package image

import (
	"encoding/json"
	"net/http"

	"github.com/fluxgen/service/internal/response"
)

// Handler holds HTTP handlers for image generation endpoints.
type Handler struct {
	svc *Service
}

// NewHandler creates a new image Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

type generateRequest struct {
	Prompt string `json:"prompt" example:"a cat on a roof at sunset"`
}

type generateResponse struct {
	ImageURL string `json:"image_url" example:"https://images.example.com/generated_image_1756200000.png"`
}

// Generate godoc
//
//	@Summary		Generate an image
//	@Description	Generate an image from a text prompt and return the public URL of the uploaded PNG.
//	@Tags			images
//	@Accept			json
//	@Produce		json
//	@Param			request	body		generateRequest	true	"Prompt"
//	@Success		200		{object}	generateResponse
//	@Failure		400		{object}	response.ErrorBody
//	@Failure		500		{object}	response.ErrorBody
//	@Router			/generate [post]
func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}
	if req.Prompt == "" {
		response.BadRequest(w, "prompt is required")
		return
	}

	url, err := h.svc.Generate(r.Context(), req.Prompt)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, generateResponse{ImageURL: url})
}
