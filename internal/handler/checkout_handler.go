package handler

import (
	"errors"
	"net/http"

	"github.com/TTJ-s/qr-annujoom/internal/checkout"
	"github.com/TTJ-s/qr-annujoom/internal/i18n"
	"github.com/TTJ-s/qr-annujoom/internal/payment"
	"github.com/gin-gonic/gin"
)

type CheckoutHandler struct {
	ctrl *checkout.Controller
}

func NewCheckoutHandler(ctrl *checkout.Controller) *CheckoutHandler {
	return &CheckoutHandler{ctrl: ctrl}
}

// Quote validates the form and returns the per-method fee breakdown for the
// method selection screen. Order creation is never reached from here.
func (h *CheckoutHandler) Quote(c *gin.Context) {
	var form checkout.Form
	if err := c.ShouldBindJSON(&form); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	flow := h.ctrl.NewFlow(sessionID(c))
	if err := flow.Submit(c.Request.Context(), form); err != nil {
		h.writeFlowError(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "ok", QuoteResponse{Quotes: h.ctrl.Quotes(form.Amount)})
}

type orderRequest struct {
	checkout.Form
	Method string `json:"method"`
}

// CreateOrder runs one attempt up to the gateway hand-off: validate, create
// the order, and return the widget options or redirect URL.
func (h *CheckoutHandler) CreateOrder(c *gin.Context) {
	var req orderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	method, err := payment.ParseMethod(req.Method)
	if err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	flow := h.ctrl.NewFlow(sessionID(c))
	if err := flow.Submit(c.Request.Context(), req.Form); err != nil {
		h.writeFlowError(c, err)
		return
	}

	invocation, err := flow.Choose(c.Request.Context(), method)
	if err != nil {
		h.writeFlowError(c, err)
		return
	}

	order := flow.Order()
	SuccessResponse(c, http.StatusCreated, "ok", OrderResponse{
		DonationID: order.DonationID,
		OrderID:    order.PaymentID,
		Quote:      flow.Quote(),
		Invocation: invocation,
	})
}

// Verify is the gateway success callback: signature check, backend
// verification, settle the donation, clear the referral.
func (h *CheckoutHandler) Verify(c *gin.Context) {
	var result payment.Result
	if err := c.ShouldBindJSON(&result); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}
	result.Kind = payment.ResultSuccess

	campaignID, err := h.ctrl.Complete(c.Request.Context(), sessionID(c), result)
	if err != nil {
		h.writeFlowError(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "ok", VerifyResponse{
		CampaignID: campaignID,
		Banner:     i18n.Resolve(i18n.MsgDonationThanks, language(c)),
	})
}

// Cancel is the gateway cancellation/failure event. The form survives on the
// client; the attempt simply returns to idle with a message.
func (h *CheckoutHandler) Cancel(c *gin.Context) {
	LocalizedErrorResponse(c, http.StatusOK, i18n.MsgPaymentCancelled, language(c))
}

func (h *CheckoutHandler) writeFlowError(c *gin.Context, err error) {
	lang := language(c)

	var fe *checkout.FlowError
	if errors.As(err, &fe) {
		LocalizedErrorResponse(c, http.StatusUnprocessableEntity, fe.Message, lang)
		return
	}
	if errors.Is(err, checkout.ErrUnknownOrder) {
		ErrorResponse(c, http.StatusNotFound, err.Error())
		return
	}
	ErrorResponse(c, http.StatusInternalServerError, err.Error())
}
