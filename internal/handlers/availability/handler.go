package availability

import (
	"net/http"

	"resort/infras/otel"
	"resort/internal/domains/availability/model"
	"resort/internal/domains/availability/model/dto"
	"resort/internal/domains/availability/service"
	"resort/shared/constant"
	gDto "resort/shared/dto"
	"resort/shared/validator"
	"resort/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Availability
	otel    otel.Otel
}

func New(service service.Availability, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Route("/availability", func(r chi.Router) {
		r.Get("/blocks", handler.GetBlocks)
		r.Post("/blocks", handler.CreateBlock)
		r.Delete("/blocks/{id}", handler.DeleteBlock)
		r.Get("/{roomCategoryId}", handler.GetCalendar)
	})
}

// GetCalendar returns per-night blocked and available room counts for a
// category. Public endpoint backing the booking date picker.
func (handler *Handler) GetCalendar(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCalendar")
	defer scope.End()

	roomCategoryID := chi.URLParam(r, "roomCategoryId")

	req := dto.CalendarRequest{
		StartDate: r.URL.Query().Get("start_date"),
		EndDate:   r.URL.Query().Get("end_date"),
	}

	res, err := handler.service.Calendar(ctx, roomCategoryID, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get availability calendar")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

func (handler *Handler) GetBlocks(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBlocks")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
	}

	if roomCategoryID := r.URL.Query().Get(model.FieldRoomCategoryID); roomCategoryID != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldRoomCategoryID,
			Operator: gDto.FilterOperatorEq,
			Value:    roomCategoryID,
			Table:    model.TableName,
		})
	}

	res, err := handler.service.GetBlocks(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get blocked dates")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// CreateBlock takes rooms out of inventory for a date range.
func (handler *Handler) CreateBlock(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateBlock")
	defer scope.End()

	req := dto.CreateBlockRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.CreateBlock(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create blocked dates")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Blocked dates created successfully")

	response.WithMessage(w, http.StatusCreated, "Blocked dates created successfully")
}

func (handler *Handler) DeleteBlock(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteBlock")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.DeleteBlock(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete blocked date")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Blocked date deleted successfully")

	response.WithMessage(w, http.StatusOK, "Blocked date deleted successfully")
}
