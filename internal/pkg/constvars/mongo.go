package constvars

const (
	MongoCollectionUsers        = "users"
	MongoCollectionLawyers      = "lawyers"
	MongoCollectionTimeSlots    = "time_slots"
	MongoCollectionAppointments = "appointments"
)
