package dispatch_board_get

import (
	"encoding/json"
	"net/http"

	"dispatch/internal/generated/dto"
	"dispatch/internal/handlers/rest/view"
	"dispatch/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	board, err := h.service.Board(r.Context())
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	buckets := make(map[string]string, len(board.Buckets))
	for courierID, bucket := range board.Buckets {
		buckets[courierID] = bucket.String()
	}

	links := make([]dto.BoardLink, len(board.Links))
	for i, link := range board.Links {
		links[i] = dto.BoardLink{
			CourierID:       link.CourierID,
			DeliveryID:      link.DeliveryID,
			Pickup:          view.AddressDTO(link.Pickup),
			CourierLocation: view.GeoPointDTO(link.CourierLocation),
		}
	}

	response := dto.Board{
		Buckets: buckets,
		Links:   links,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
