package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"lexbook-service/internal/pkg/constvars"
	"lexbook-service/internal/pkg/dto/requests"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeCallbackUsecase struct {
	token    string
	received *requests.PaymentCallback
}

func (f *fakeCallbackUsecase) HandleCallback(ctx context.Context, request *requests.PaymentCallback) string {
	f.received = request
	return f.token
}

func callbackValues() url.Values {
	values := url.Values{}
	values.Set(constvars.PaymentParamMerchantID, "74730556")
	values.Set(constvars.PaymentParamTransactionID, "apt123|1700000000000")
	values.Set(constvars.PaymentParamOperationID, "op-42")
	values.Set(constvars.PaymentParamAmount, "10.00")
	values.Set(constvars.PaymentParamCurrencyCode, "RUB")
	values.Set(constvars.PaymentParamSubscriberID, "client@example.com")
	values.Set(constvars.PaymentParamTestMode, "0")
	values.Set(constvars.PaymentParamSignature, "deadbeef")
	return values
}

func TestHandlePayAnyWayCallback(t *testing.T) {
	t.Run("GET Query Parameters", func(t *testing.T) {
		usecase := &fakeCallbackUsecase{token: constvars.PaymentCallbackSuccessToken}
		ctrl := NewPaymentController(zap.NewNop(), usecase)

		values := callbackValues()
		req := httptest.NewRequest(http.MethodGet, "/payanyway/callback?"+values.Encode(), nil)
		rec := httptest.NewRecorder()
		ctrl.HandlePayAnyWayCallback(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "SUCCESS", rec.Body.String())
		assert.Contains(t, rec.Header().Get(constvars.HeaderContentType), "text/plain")

		require.NotNil(t, usecase.received)
		assert.Equal(t, "74730556", usecase.received.MerchantID)
		assert.Equal(t, "apt123|1700000000000", usecase.received.TransactionID)
		assert.Equal(t, "op-42", usecase.received.OperationID)
		assert.Equal(t, values.Encode(), string(usecase.received.RawPayload))
	})

	t.Run("POST Form Body", func(t *testing.T) {
		usecase := &fakeCallbackUsecase{token: constvars.PaymentCallbackSuccessToken}
		ctrl := NewPaymentController(zap.NewNop(), usecase)

		values := callbackValues()
		req := httptest.NewRequest(http.MethodPost, "/payanyway/callback", strings.NewReader(values.Encode()))
		req.Header.Set(constvars.HeaderContentType, "application/x-www-form-urlencoded")
		rec := httptest.NewRecorder()
		ctrl.HandlePayAnyWayCallback(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "SUCCESS", rec.Body.String())

		require.NotNil(t, usecase.received)
		assert.Equal(t, "apt123|1700000000000", usecase.received.TransactionID)
		// Raw body is archived verbatim.
		assert.Equal(t, values.Encode(), string(usecase.received.RawPayload))
	})

	t.Run("FAIL Token Still Returns 200", func(t *testing.T) {
		usecase := &fakeCallbackUsecase{token: constvars.PaymentCallbackFailToken}
		ctrl := NewPaymentController(zap.NewNop(), usecase)

		req := httptest.NewRequest(http.MethodGet, "/payanyway/callback?"+callbackValues().Encode(), nil)
		rec := httptest.NewRecorder()
		ctrl.HandlePayAnyWayCallback(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "FAIL", rec.Body.String())
	})

	t.Run("Empty Request Reaches Usecase As Ping", func(t *testing.T) {
		usecase := &fakeCallbackUsecase{token: constvars.PaymentCallbackSuccessToken}
		ctrl := NewPaymentController(zap.NewNop(), usecase)

		req := httptest.NewRequest(http.MethodGet, "/payanyway/callback", nil)
		rec := httptest.NewRecorder()
		ctrl.HandlePayAnyWayCallback(rec, req)

		assert.Equal(t, "SUCCESS", rec.Body.String())
		require.NotNil(t, usecase.received)
		assert.Empty(t, usecase.received.TransactionID)
	})
}
