package courier_post

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
	var courierCreateDTO dto.CourierCreate
	err := json.NewDecoder(r.Body).Decode(&courierCreateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	courierModifyEntity := entities.CourierModify{
		Name:     &courierCreateDTO.Name,
		Phone:    &courierCreateDTO.Phone,
		Email:    courierCreateDTO.Email,
		IsActive: courierCreateDTO.IsActive,
	}
	if courierCreateDTO.Vehicle != nil {
		courierModifyEntity.Vehicle = &entities.Vehicle{
			Type:     courierCreateDTO.Vehicle.Type,
			Plate:    courierCreateDTO.Vehicle.Plate,
			Model:    courierCreateDTO.Vehicle.Model,
			Color:    courierCreateDTO.Vehicle.Color,
			Verified: courierCreateDTO.Vehicle.Verified,
		}
	}
	if courierCreateDTO.ReportedStatus != nil {
		reported := entities.CourierReportedStatus(*courierCreateDTO.ReportedStatus)
		courierModifyEntity.ReportedStatus = &reported
	}

	created, err := h.service.CreateCourier(r.Context(), courierModifyEntity)
	if err != nil {
		switch {
		case errors.Is(err, courier.ErrMissingRequiredFields),
			errors.Is(err, courier.ErrInvalidName),
			errors.Is(err, courier.ErrInvalidPhone),
			errors.Is(err, courier.ErrInvalidStatus):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, courier.ErrConflict):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := view.CourierDTO(created)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
