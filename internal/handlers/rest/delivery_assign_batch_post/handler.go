package delivery_assign_batch_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"dispatch/internal/generated/dto"
	"dispatch/internal/service/assignment"
	"dispatch/internal/service/courier"
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
	var assignBatchDTO dto.DeliveryAssignBatchRequest
	err := json.NewDecoder(r.Body).Decode(&assignBatchDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	assigned, err := h.service.AssignBatch(r.Context(), assignBatchDTO.Tag, assignBatchDTO.CourierID)
	if err != nil {
		switch {
		case errors.Is(err, assignment.ErrInvalidTag),
			errors.Is(err, assignment.ErrInvalidCourierID):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, assignment.ErrDeliveryNotFound),
			errors.Is(err, courier.ErrCourierNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, assignment.ErrAlreadyAssigned):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.DeliveryAssignBatchResponse{
		Tag:       assignBatchDTO.Tag,
		CourierID: assignBatchDTO.CourierID,
		Assigned:  assigned,
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
