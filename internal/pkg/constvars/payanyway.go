package constvars

// PayAnyWay (MONETA.RU assistant) wire constants. The gateway recognizes
// exactly two literal response tokens on its Pay URL; everything else is
// treated as a delivery failure and retried.
const (
	PaymentCallbackSuccessToken = "SUCCESS"
	PaymentCallbackFailToken    = "FAIL"
)

const (
	PaymentParamMerchantID    = "MNT_ID"
	PaymentParamTransactionID = "MNT_TRANSACTION_ID"
	PaymentParamOperationID   = "MNT_OPERATION_ID"
	PaymentParamAmount        = "MNT_AMOUNT"
	PaymentParamCurrencyCode  = "MNT_CURRENCY_CODE"
	PaymentParamSubscriberID  = "MNT_SUBSCRIBER_ID"
	PaymentParamTestMode      = "MNT_TEST_MODE"
	PaymentParamSignature     = "MNT_SIGNATURE"
	PaymentParamDescription   = "MNT_DESCRIPTION"
	PaymentParamSuccessURL    = "MNT_SUCCESS_URL"
	PaymentParamFailURL       = "MNT_FAIL_URL"
)

// TransactionIDSeparator joins the appointment id with a millisecond
// timestamp inside MNT_TRANSACTION_ID. The timestamp only makes retried
// payment attempts unique; the callback side discards it.
const TransactionIDSeparator = "|"
