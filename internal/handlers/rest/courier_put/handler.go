package courier_put

import (
	"encoding/json"
	"errors"
	"net/http"

	"dispatch/internal/entities"
	"dispatch/internal/generated/dto"
	"dispatch/internal/handlers/rest/view"
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
	var courierUpdateDTO dto.CourierUpdate
	err := json.NewDecoder(r.Body).Decode(&courierUpdateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	courierModifyEntity := entities.CourierModify{
		ID:       &courierUpdateDTO.ID,
		Name:     courierUpdateDTO.Name,
		Phone:    courierUpdateDTO.Phone,
		Email:    courierUpdateDTO.Email,
		IsActive: courierUpdateDTO.IsActive,
		Verified: courierUpdateDTO.Verified,
	}
	if courierUpdateDTO.Vehicle != nil {
		courierModifyEntity.Vehicle = &entities.Vehicle{
			Type:     courierUpdateDTO.Vehicle.Type,
			Plate:    courierUpdateDTO.Vehicle.Plate,
			Model:    courierUpdateDTO.Vehicle.Model,
			Color:    courierUpdateDTO.Vehicle.Color,
			Verified: courierUpdateDTO.Vehicle.Verified,
		}
	}
	if courierUpdateDTO.ReportedStatus != nil {
		reported := entities.CourierReportedStatus(*courierUpdateDTO.ReportedStatus)
		courierModifyEntity.ReportedStatus = &reported
	}

	updated, err := h.service.UpdateCourier(r.Context(), courierModifyEntity)
	if err != nil {
		switch {
		case errors.Is(err, courier.ErrMissingRequiredFields),
			errors.Is(err, courier.ErrInvalidName),
			errors.Is(err, courier.ErrInvalidPhone),
			errors.Is(err, courier.ErrInvalidStatus):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, courier.ErrCourierNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, courier.ErrConflict):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := view.CourierDTO(updated)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
