package deliveries_get

import (
	"encoding/json"
	"net/http"
	"strconv"

	"dispatch/internal/entities"
	"dispatch/internal/handlers/rest/view"
	"dispatch/pkg/logger"

	"github.com/AlekSi/pointer"
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
	filter, err := parseFilter(r)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	deliveryEntities, err := h.service.ListDeliveries(r.Context(), filter)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	response := view.DeliveryDTOList(deliveryEntities)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

func parseFilter(r *http.Request) (entities.DeliveryFilter, error) {
	query := r.URL.Query()

	var filter entities.DeliveryFilter
	if v := query.Get("status_class"); v != "" {
		class := entities.StatusClass(v)
		if class.Statuses() == nil {
			return entities.DeliveryFilter{}, strconv.ErrSyntax
		}
		filter.StatusClass = &class
	}
	if v := query.Get("customer_id"); v != "" {
		filter.CustomerID = pointer.ToString(v)
	}
	if v := query.Get("courier_id"); v != "" {
		filter.CourierID = pointer.ToString(v)
	}
	if v := query.Get("tag"); v != "" {
		filter.Tag = pointer.ToString(v)
	}
	if v := query.Get("has_tag"); v != "" {
		hasTag, err := strconv.ParseBool(v)
		if err != nil {
			return entities.DeliveryFilter{}, err
		}
		filter.HasTag = &hasTag
	}
	return filter, nil
}
