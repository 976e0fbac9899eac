package payments

import (
	"crypto/md5"
	"encoding/hex"
	"net/url"
	"strconv"
	"time"

	"lexbook-service/internal/app/config"
	"lexbook-service/internal/app/contracts"
	"lexbook-service/internal/pkg/constvars"
)

type linkBuilder struct {
	cfg config.PayAnyWay
	now func() time.Time
}

func NewLinkBuilder(cfg config.PayAnyWay) contracts.PaymentLinkBuilder {
	return &linkBuilder{cfg: cfg, now: time.Now}
}

// NewTransactionID appends a millisecond timestamp so a client retrying the
// same appointment produces a distinct gateway transaction.
func (b *linkBuilder) NewTransactionID(appointmentID string) string {
	millis := strconv.FormatInt(b.now().UnixMilli(), 10)
	return appointmentID + constvars.TransactionIDSeparator + millis
}

func (b *linkBuilder) PaymentURL(transactionID, subscriberID, description string) string {
	signature := PaymentLinkSignature(
		b.cfg.MerchantID,
		transactionID,
		b.cfg.Amount,
		b.cfg.CurrencyCode,
		subscriberID,
		b.cfg.TestMode,
		b.cfg.IntegrityCode,
	)

	params := url.Values{}
	params.Set(constvars.PaymentParamMerchantID, b.cfg.MerchantID)
	params.Set(constvars.PaymentParamAmount, b.cfg.Amount)
	params.Set(constvars.PaymentParamTransactionID, transactionID)
	params.Set(constvars.PaymentParamCurrencyCode, b.cfg.CurrencyCode)
	params.Set(constvars.PaymentParamTestMode, b.cfg.TestMode)
	params.Set(constvars.PaymentParamDescription, description)
	params.Set(constvars.PaymentParamSubscriberID, subscriberID)
	params.Set(constvars.PaymentParamSuccessURL, b.cfg.BaseURL+"/payment/success")
	params.Set(constvars.PaymentParamFailURL, b.cfg.BaseURL+"/payment/fail")
	params.Set(constvars.PaymentParamSignature, signature)

	return b.cfg.GatewayURL + "?" + params.Encode()
}

// PaymentLinkSignature is the MD5 the gateway checks on the assistant URL:
// merchantID + transactionID + amount + currencyCode + subscriberID +
// testMode + integrityCode, hex-encoded lowercase.
func PaymentLinkSignature(merchantID, transactionID, amount, currencyCode, subscriberID, testMode, integrityCode string) string {
	raw := merchantID + transactionID + amount + currencyCode + subscriberID + testMode + integrityCode
	sum := md5.Sum([]byte(raw))
	return hex.EncodeToString(sum[:])
}

// CallbackSignature differs from the link signature only by the gateway's
// operation id inserted after the transaction id.
func CallbackSignature(merchantID, transactionID, operationID, amount, currencyCode, subscriberID, testMode, integrityCode string) string {
	raw := merchantID + transactionID + operationID + amount + currencyCode + subscriberID + testMode + integrityCode
	sum := md5.Sum([]byte(raw))
	return hex.EncodeToString(sum[:])
}
