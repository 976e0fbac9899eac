package controllers

import (
	"bytes"
	"io"
	"net/http"

	"lexbook-service/internal/app/contracts"
	"lexbook-service/internal/pkg/constvars"
	"lexbook-service/internal/pkg/dto/requests"
	"lexbook-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type PaymentController struct {
	Log             *zap.Logger
	CallbackUsecase contracts.PaymentCallbackUsecase
}

func NewPaymentController(logger *zap.Logger, callbackUsecase contracts.PaymentCallbackUsecase) *PaymentController {
	return &PaymentController{
		Log:             logger,
		CallbackUsecase: callbackUsecase,
	}
}

// HandlePayAnyWayCallback accepts a gateway notification on any HTTP
// method. The gateway may deliver the MNT_* parameters in the query
// string or as a form body depending on merchant settings, so both are
// merged before handing off to the usecase. The response is always
// HTTP 200 with a bare SUCCESS or FAIL body.
func (ctrl *PaymentController) HandlePayAnyWayCallback(w http.ResponseWriter, r *http.Request) {
	request, err := buildCallbackRequest(r)
	if err != nil {
		ctrl.Log.Warn("error parsing payment callback payload", zap.Error(err))
		utils.BuildPaymentCallbackResponse(w, constvars.PaymentCallbackFailToken)
		return
	}

	token := ctrl.CallbackUsecase.HandleCallback(r.Context(), request)
	utils.BuildPaymentCallbackResponse(w, token)
}

func buildCallbackRequest(r *http.Request) (*requests.PaymentCallback, error) {
	body, err := io.ReadAll(io.LimitReader(r.Body, 1<<20))
	if err != nil {
		return nil, err
	}
	r.Body = io.NopCloser(bytes.NewReader(body))

	// ParseForm merges the query string with an url-encoded body.
	if err := r.ParseForm(); err != nil {
		return nil, err
	}

	rawPayload := body
	if len(rawPayload) == 0 {
		rawPayload = []byte(r.URL.RawQuery)
	}

	return &requests.PaymentCallback{
		MerchantID:    r.Form.Get(constvars.PaymentParamMerchantID),
		TransactionID: r.Form.Get(constvars.PaymentParamTransactionID),
		OperationID:   r.Form.Get(constvars.PaymentParamOperationID),
		Amount:        r.Form.Get(constvars.PaymentParamAmount),
		CurrencyCode:  r.Form.Get(constvars.PaymentParamCurrencyCode),
		SubscriberID:  r.Form.Get(constvars.PaymentParamSubscriberID),
		TestMode:      r.Form.Get(constvars.PaymentParamTestMode),
		Signature:     r.Form.Get(constvars.PaymentParamSignature),
		RawPayload:    rawPayload,
	}, nil
}
