package models

const (
	AppointmentStatusPending   = "pending"
	AppointmentStatusConfirmed = "confirmed"
	AppointmentStatusCancelled = "cancelled"
)

type Appointment struct {
	ID          string `bson:"_id,omitempty"`
	TimeSlotID  string `bson:"timeSlotId"`
	ClientName  string `bson:"clientName"`
	ClientEmail string `bson:"clientEmail"`
	ClientPhone string `bson:"clientPhone,omitempty"`
	Comment     string `bson:"comment,omitempty"`
	Status      string `bson:"status"`

	// TransactionID is the merchant-side identifier sent to the payment
	// gateway, PaymentID the gateway operation id reported back on confirm.
	TransactionID string `bson:"transactionId,omitempty"`
	PaymentID     string `bson:"paymentId,omitempty"`

	TimeModel `bson:",inline"`
}
