package rates

import (
	"net/http"

	"resort/infras/otel"
	"resort/internal/domains/rates/model"
	"resort/internal/domains/rates/model/dto"
	"resort/internal/domains/rates/service"
	"resort/shared"
	"resort/shared/constant"
	gDto "resort/shared/dto"
	"resort/shared/validator"
	"resort/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Rates
	otel    otel.Otel
}

func New(service service.Rates, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Route("/rates", func(r chi.Router) {
		r.Get("/seasons", handler.GetSeasons)
		r.Post("/seasons", handler.CreateSeason)
		r.Put("/seasons/{id}", handler.UpdateSeason)
		r.Delete("/seasons/{id}", handler.DeleteSeason)

		r.Get("/meal-plans", handler.GetMealPlans)
		r.Post("/meal-plans", handler.CreateMealPlan)
		r.Put("/meal-plans/{id}", handler.UpdateMealPlan)
		r.Delete("/meal-plans/{id}", handler.DeleteMealPlan)

		r.Get("/taxes", handler.GetTaxes)
		r.Post("/taxes", handler.CreateTax)
		r.Put("/taxes/{id}", handler.UpdateTax)
		r.Delete("/taxes/{id}", handler.DeleteTax)
	})
}

func activeFilter(r *http.Request, table string) gDto.FilterGroup {
	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
	}

	if active := shared.ConvertStringToBool(r.URL.Query().Get(model.FieldActive)); active != nil {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldActive,
			Operator: gDto.FilterOperatorEq,
			Value:    *active,
			Table:    table,
		})
	}

	return filterGroup
}

func (handler *Handler) GetSeasons(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSeasons")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	res, err := handler.service.GetSeasons(ctx, queryParams, activeFilter(r, model.SeasonTableName))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get seasons")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

func (handler *Handler) CreateSeason(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateSeason")
	defer scope.End()

	req := dto.CreateSeasonRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.CreateSeason(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create season")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Season created successfully")

	response.WithMessage(w, http.StatusCreated, "Season created successfully")
}

func (handler *Handler) UpdateSeason(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateSeason")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateSeasonRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.UpdateSeason(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update season")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Season updated successfully")

	response.WithMessage(w, http.StatusOK, "Season updated successfully")
}

func (handler *Handler) DeleteSeason(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteSeason")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.DeleteSeason(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete season")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Season deleted successfully")

	response.WithMessage(w, http.StatusOK, "Season deleted successfully")
}

func (handler *Handler) GetMealPlans(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMealPlans")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	res, err := handler.service.GetMealPlans(ctx, queryParams, activeFilter(r, model.MealPlanTableName))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get meal plans")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

func (handler *Handler) CreateMealPlan(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateMealPlan")
	defer scope.End()

	req := dto.CreateMealPlanRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.CreateMealPlan(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create meal plan")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Meal plan created successfully")

	response.WithMessage(w, http.StatusCreated, "Meal plan created successfully")
}

func (handler *Handler) UpdateMealPlan(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateMealPlan")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateMealPlanRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.UpdateMealPlan(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update meal plan")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Meal plan updated successfully")

	response.WithMessage(w, http.StatusOK, "Meal plan updated successfully")
}

func (handler *Handler) DeleteMealPlan(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteMealPlan")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.DeleteMealPlan(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete meal plan")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Meal plan deleted successfully")

	response.WithMessage(w, http.StatusOK, "Meal plan deleted successfully")
}

func (handler *Handler) GetTaxes(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTaxes")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	res, err := handler.service.GetTaxes(ctx, queryParams, activeFilter(r, model.TaxTableName))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get taxes")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

func (handler *Handler) CreateTax(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateTax")
	defer scope.End()

	req := dto.CreateTaxRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.CreateTax(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create tax")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Tax created successfully")

	response.WithMessage(w, http.StatusCreated, "Tax created successfully")
}

func (handler *Handler) UpdateTax(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateTax")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateTaxRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.UpdateTax(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update tax")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Tax updated successfully")

	response.WithMessage(w, http.StatusOK, "Tax updated successfully")
}

func (handler *Handler) DeleteTax(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteTax")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.DeleteTax(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete tax")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Tax deleted successfully")

	response.WithMessage(w, http.StatusOK, "Tax deleted successfully")
}
