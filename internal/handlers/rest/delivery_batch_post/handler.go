package delivery_batch_post

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
	var batchCreateDTO dto.BatchCreateRequest
	err := json.NewDecoder(r.Body).Decode(&batchCreateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	items := make([]entities.BatchItem, len(batchCreateDTO.Items))
	for i, item := range batchCreateDTO.Items {
		items[i] = entities.BatchItem{
			Dropoff:       view.AddressEntity(item.Dropoff),
			ReceiverPhone: item.ReceiverPhone,
		}
	}
	batchEntity := entities.BatchCreate{
		CustomerID: batchCreateDTO.CustomerID,
		Pickup:     view.AddressEntity(batchCreateDTO.Pickup),
		GoodsType:  batchCreateDTO.GoodsType,
		GoodsSize:  batchCreateDTO.GoodsSize,
		Cost:       batchCreateDTO.Cost,
		Items:      items,
	}

	created, err := h.service.CreateBatch(r.Context(), batchEntity)
	if err != nil {
		switch {
		case errors.Is(err, delivery.ErrMissingRequiredFields),
			errors.Is(err, delivery.ErrEmptyBatch):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	// все элементы партии делят один tag
	response := dto.BatchCreateResponse{
		Deliveries: view.DeliveryDTOList(created),
	}
	if len(created) > 0 && created[0].Tag != nil {
		response.Tag = *created[0].Tag
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
