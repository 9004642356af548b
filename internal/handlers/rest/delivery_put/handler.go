package delivery_put

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
	var deliveryUpdateDTO dto.DeliveryUpdate
	err := json.NewDecoder(r.Body).Decode(&deliveryUpdateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	deliveryModifyEntity := entities.DeliveryModify{
		ID:            &deliveryUpdateDTO.ID,
		GoodsType:     deliveryUpdateDTO.GoodsType,
		GoodsSize:     deliveryUpdateDTO.GoodsSize,
		Cost:          deliveryUpdateDTO.Cost,
		TrackingID:    deliveryUpdateDTO.TrackingID,
		ReceiverPhone: deliveryUpdateDTO.ReceiverPhone,
	}
	if deliveryUpdateDTO.Pickup != nil {
		pickup := view.AddressEntity(*deliveryUpdateDTO.Pickup)
		deliveryModifyEntity.Pickup = &pickup
	}
	if deliveryUpdateDTO.Dropoff != nil {
		dropoff := view.AddressEntity(*deliveryUpdateDTO.Dropoff)
		deliveryModifyEntity.Dropoff = &dropoff
	}

	updated, err := h.service.UpdateDelivery(r.Context(), deliveryModifyEntity)
	if err != nil {
		switch {
		case errors.Is(err, delivery.ErrInvalidDeliveryID),
			errors.Is(err, delivery.ErrMissingRequiredFields):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, delivery.ErrDeliveryNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := view.DeliveryDTO(updated)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
