package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	request "servicedesk/internal/adapter/http/dto/request"
	response "servicedesk/internal/adapter/http/dto/response"
	"servicedesk/internal/adapter/http/middleware"
	"servicedesk/internal/domain/entities"
	"servicedesk/internal/usecase"
	"servicedesk/internal/usecase/interfaces"
	"servicedesk/pkg"

	"github.com/gin-gonic/gin"
)

// ProcurementHandler handles HTTP requests for purchase-request memos,
// purchase orders and purchase-order payments.

type ProcurementHandler struct {
	usecase usecase.IProcurementUseCase
}

func NewProcurementHandler(uc usecase.IProcurementUseCase) *ProcurementHandler {
	return &ProcurementHandler{usecase: uc}
}

func (h *ProcurementHandler) CreateMemo(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	var payload request.MemoCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidPayload)
		return
	}

	view, err := h.usecase.CreateMemo(c.Request.Context(), user.ID, payload.ToInput())
	if err != nil {
		respondError(c, mapProcurementError(err))
		return
	}
	c.JSON(http.StatusCreated, view)
}

func (h *ProcurementHandler) GetMemo(c *gin.Context) {
	view, err := h.usecase.GetMemoByKey(c.Request.Context(), c.Param("key"))
	if err != nil {
		respondError(c, mapProcurementError(err))
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *ProcurementHandler) ListMemos(c *gin.Context) {
	query := usecase.MemoListQuery{
		Filter: interfaces.MemoFilter{
			Status:        entities.MemoStatus(c.Query("status")),
			RequestedByID: c.Query("requested_by"),
		},
		Search: c.Query("search"),
		Page:   pageParams(c),
	}

	page, err := h.usecase.ListMemos(c.Request.Context(), query)
	if err != nil {
		respondError(c, mapProcurementError(err))
		return
	}
	respondList(c, page.Count, query.Page, page.Results)
}

func (h *ProcurementHandler) UpdateMemo(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	var payload request.MemoUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidPayload)
		return
	}

	view, err := h.usecase.UpdateMemo(c.Request.Context(), c.Param("key"), user.ID, payload.ToPatch())
	if err != nil {
		respondError(c, mapProcurementError(err))
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *ProcurementHandler) DeleteMemo(c *gin.Context) {
	if err := h.usecase.DeleteMemo(c.Request.Context(), c.Param("key")); err != nil {
		respondError(c, mapProcurementError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ProcurementHandler) CreatePurchaseOrder(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	var payload request.PurchaseOrderCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidPayload)
		return
	}

	view, err := h.usecase.CreatePurchaseOrder(c.Request.Context(), user.ID, payload.ToInput())
	if err != nil {
		respondError(c, mapProcurementError(err))
		return
	}
	c.JSON(http.StatusCreated, view)
}

func (h *ProcurementHandler) GetPurchaseOrder(c *gin.Context) {
	view, err := h.usecase.GetPurchaseOrderByKey(c.Request.Context(), c.Param("key"))
	if err != nil {
		respondError(c, mapProcurementError(err))
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *ProcurementHandler) ListPurchaseOrders(c *gin.Context) {
	query := usecase.PurchaseOrderListQuery{
		Filter: interfaces.PurchaseOrderFilter{
			Status:        entities.PurchaseOrderStatus(c.Query("status")),
			VendorID:      c.Query("vendor"),
			RequestedByID: c.Query("requested_by"),
		},
		Search: c.Query("search"),
		Page:   pageParams(c),
	}

	page, err := h.usecase.ListPurchaseOrders(c.Request.Context(), query)
	if err != nil {
		respondError(c, mapProcurementError(err))
		return
	}
	respondList(c, page.Count, query.Page, page.Results)
}

func (h *ProcurementHandler) UpdatePurchaseOrder(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	var payload request.PurchaseOrderUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidPayload)
		return
	}

	view, err := h.usecase.UpdatePurchaseOrder(c.Request.Context(), c.Param("key"), user.ID, payload.ToPatch())
	if err != nil {
		respondError(c, mapProcurementError(err))
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *ProcurementHandler) DeletePurchaseOrder(c *gin.Context) {
	if err := h.usecase.DeletePurchaseOrder(c.Request.Context(), c.Param("key")); err != nil {
		respondError(c, mapProcurementError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

// PayPurchaseOrder creates/approves a payment for the PO in the path.
func (h *ProcurementHandler) PayPurchaseOrder(c *gin.Context) {
	key := c.Param("key")
	log.Printf("[procurement][handler] pay start po=%s", key)

	providerPayload, err := readProviderPayload(c)
	if err != nil {
		log.Printf("[procurement][handler] invalid payload po=%s err=%v", key, err)
		respondError(c, pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest))
		return
	}

	created, err := h.usecase.PayPurchaseOrder(c.Request.Context(), key, providerPayload)
	if err != nil {
		log.Printf("[procurement][handler] pay failed po=%s err=%v", key, err)
		respondError(c, mapProcurementError(err))
		return
	}
	log.Printf("[procurement][handler] pay success po=%s payment_id=%s status=%s", key, created.ID, created.Status)

	c.JSON(http.StatusCreated, response.FromProcurementPayment(created))
}

// GetLatestPayment returns the most recent payment for a PO.
func (h *ProcurementHandler) GetLatestPayment(c *gin.Context) {
	key := c.Param("key")

	payments, err := h.usecase.ListPayments(c.Request.Context(), key)
	if err != nil {
		respondError(c, mapProcurementError(err))
		return
	}

	latest := payments[0]
	for _, p := range payments[1:] {
		if p.Date.After(latest.Date) {
			latest = p
		}
	}
	c.JSON(http.StatusOK, response.FromProcurementPayment(latest))
}

// ListPayments returns the full payment history for a PO.
func (h *ProcurementHandler) ListPayments(c *gin.Context) {
	payments, err := h.usecase.ListPayments(c.Request.Context(), c.Param("key"))
	if err != nil {
		respondError(c, mapProcurementError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromProcurementPayments(payments))
}

// readProviderPayload accepts either a bare provider JSON body or the
// {"provider_payload": {...}} envelope.
func readProviderPayload(c *gin.Context) (json.RawMessage, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, errors.New("request body is not valid json")
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if wrapped, ok := envelope["provider_payload"]; ok {
			if len(strings.TrimSpace(string(wrapped))) == 0 || strings.TrimSpace(string(wrapped)) == "null" {
				return nil, errors.New("provider_payload cannot be empty")
			}
			return wrapped, nil
		}
	}

	return json.RawMessage(raw), nil
}

func mapProcurementError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrMemoNotFound):
		return pkg.NewDomainErrorSimple("MEMO_NOT_FOUND", "Memo not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPurchaseOrderNotFound):
		return pkg.NewDomainErrorSimple("PURCHASE_ORDER_NOT_FOUND", "Purchase order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrVendorNotFound):
		return pkg.NewDomainErrorSimple("VENDOR_NOT_FOUND", "Vendor not found", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrMemoNotApproved):
		return pkg.NewDomainErrorSimple("MEMO_NOT_APPROVED", "Memo not approved", http.StatusConflict)
	case errors.Is(err, usecase.ErrPurchaseOrderNotPayable):
		return pkg.NewDomainErrorSimple("PURCHASE_ORDER_NOT_PAYABLE", "Purchase order not payable in its current status", http.StatusConflict)
	case errors.Is(err, usecase.ErrIllegalTransition):
		return pkg.NewDomainErrorSimple("ILLEGAL_TRANSITION", "Status transition not allowed", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidMemoInput),
		errors.Is(err, usecase.ErrInvalidPurchaseOrderInput),
		errors.Is(err, usecase.ErrInvalidPaymentPayload),
		errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrPaymentGatewayUnavailable):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAVAILABLE", "Payment provider not configured", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
