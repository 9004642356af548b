package delivery_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"dispatch/internal/entities"
	"dispatch/internal/generated/dto"
	"dispatch/internal/handlers/rest/view"
	"dispatch/internal/service/delivery"
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
	var deliveryCreateDTO dto.DeliveryCreate
	err := json.NewDecoder(r.Body).Decode(&deliveryCreateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	pickup := view.AddressEntity(deliveryCreateDTO.Pickup)
	dropoff := view.AddressEntity(deliveryCreateDTO.Dropoff)
	deliveryModifyEntity := entities.DeliveryModify{
		CustomerID:    &deliveryCreateDTO.CustomerID,
		Pickup:        &pickup,
		Dropoff:       &dropoff,
		GoodsType:     &deliveryCreateDTO.GoodsType,
		GoodsSize:     &deliveryCreateDTO.GoodsSize,
		Cost:          &deliveryCreateDTO.Cost,
		TrackingID:    deliveryCreateDTO.TrackingID,
		ReceiverPhone: &deliveryCreateDTO.ReceiverPhone,
	}

	created, err := h.service.CreateDelivery(r.Context(), deliveryModifyEntity)
	if err != nil {
		switch {
		case errors.Is(err, delivery.ErrMissingRequiredFields):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := view.DeliveryDTO(created)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
