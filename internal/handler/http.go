package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/SergeyBogomolovv/restaurant-order-bot/internal/entities"
	"github.com/SergeyBogomolovv/restaurant-order-bot/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type OrderReader interface {
	OpenOrders() []entities.Order
	OpenOrder(id string) (entities.Order, error)
}

type StatsReader interface {
	Summary(ctx context.Context, period entities.Period) (entities.Stats, error)
	LoggedOrder(ctx context.Context, orderID string) (entities.OrderLogEntry, error)
}

type HTTPHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	orders   OrderReader
	stats    StatsReader
}

func NewHTTPHandler(logger *slog.Logger, orders OrderReader, stats StatsReader) *HTTPHandler {
	return &HTTPHandler{
		logger:   logger.With(slog.String("handler", "http")),
		validate: validator.New(),
		orders:   orders,
		stats:    stats,
	}
}

func (h *HTTPHandler) Init(r chi.Router) {
	r.Get("/orders", h.ListOpenOrders)
	r.Get("/orders/{order_id}", h.GetOpenOrder)
	r.Get("/order-log/{order_id}", h.GetLoggedOrder)
	r.Get("/stats/{period}", h.GetStats)
}

// ListOpenOrders возвращает открытые заказы.
// @Summary      Открытые заказы
// @Description  Возвращает заказы, ожидающие действий кассира, в порядке поступления
// @Tags         orders
// @Success      200  {array}   Order
// @Router       /orders [get]
func (h *HTTPHandler) ListOpenOrders(w http.ResponseWriter, r *http.Request) {
	orders := h.orders.OpenOrders()

	res := make([]Order, 0, len(orders))
	for _, o := range orders {
		res = append(res, OrderEntityToJSON(o))
	}
	utils.WriteJSON(w, res, http.StatusOK)
}

// GetOpenOrder возвращает открытый заказ по ID.
// @Summary      Получить открытый заказ
// @Tags         orders
// @Param        order_id   path      string  true  "Идентификатор заказа"
// @Success      200  {object}  Order
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      404  {object}  utils.ErrorResponse "Заказ не найден"
// @Router       /orders/{order_id} [get]
func (h *HTTPHandler) GetOpenOrder(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "order_id")

	if err := h.validate.Var(orderID, "required,max=64"); err != nil {
		utils.WriteParamError(w, "order_id", err)
		return
	}

	order, err := h.orders.OpenOrder(orderID)
	if errors.Is(err, entities.ErrOrderNotFound) {
		utils.WriteError(w, "order not found", http.StatusNotFound)
		return
	}
	if err != nil {
		h.logger.ErrorContext(r.Context(), "failed to get order", slog.Any("error", err), slog.String("order_id", orderID))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

// GetLoggedOrder возвращает запись журнала заказов.
// @Summary      Запись журнала заказов
// @Description  Заказ попадает в журнал, когда кассир выбирает время приготовления
// @Tags         orders
// @Param        order_id   path      string  true  "Идентификатор заказа"
// @Success      200  {object}  OrderLog
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      404  {object}  utils.ErrorResponse "Заказ не найден"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /order-log/{order_id} [get]
func (h *HTTPHandler) GetLoggedOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	orderID := chi.URLParam(r, "order_id")

	if err := h.validate.Var(orderID, "required,max=64"); err != nil {
		utils.WriteParamError(w, "order_id", err)
		return
	}

	entry, err := h.stats.LoggedOrder(ctx, orderID)
	if errors.Is(err, entities.ErrOrderNotFound) {
		utils.WriteError(w, "order not found", http.StatusNotFound)
		return
	}
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to get order log", slog.Any("error", err), slog.String("order_id", orderID))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, OrderLogEntityToJSON(entry), http.StatusOK)
}

// GetStats возвращает количество заказов и выручку за период.
// @Summary      Статистика за период
// @Tags         stats
// @Param        period   path      string  true  "Период" Enums(today, yesterday, this_month, last_month, this_year, last_year, all)
// @Success      200  {object}  Stats
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /stats/{period} [get]
func (h *HTTPHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	period := chi.URLParam(r, "period")

	if err := h.validate.Var(period, "required,oneof=today yesterday this_month last_month this_year last_year all"); err != nil {
		utils.WriteParamError(w, "period", err)
		return
	}

	stats, err := h.stats.Summary(ctx, entities.Period(period))
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to get stats", slog.Any("error", err), slog.String("period", period))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, StatsEntityToJSON(entities.Period(period), stats), http.StatusOK)
}
