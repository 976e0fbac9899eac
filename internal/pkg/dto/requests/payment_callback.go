package requests

// PaymentCallback carries the MNT_* parameters of a PayAnyWay gateway
// notification, merged from the query string or the form body.
type PaymentCallback struct {
	MerchantID    string
	TransactionID string
	OperationID   string
	Amount        string
	CurrencyCode  string
	SubscriberID  string
	TestMode      string
	Signature     string

	// RawPayload is the notification exactly as received, kept for the
	// reconciliation archive.
	RawPayload []byte
}
