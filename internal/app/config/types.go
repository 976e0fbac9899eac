package config

type (
	DriverConfig struct {
		MongoDB  MongoDB
		Redis    Redis
		RabbitMQ RabbitMQ
		Minio    Minio
		Logger   Logger
	}
	MongoDB struct {
		Port     string
		Host     string
		DbName   string
		Username string
		Password string
	}
	Redis struct {
		Host     string
		Port     string
		Password string
	}
	RabbitMQ struct {
		Port     string
		Host     string
		Username string
		Password string
	}
	Minio struct {
		Port       string
		Host       string
		Username   string
		Password   string
		BucketName string
		UseSSL     bool
	}
	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}

	InternalConfig struct {
		App       App
		JWT       JWT
		PayAnyWay PayAnyWay
	}
	App struct {
		Env                       string
		Port                      string
		Version                   string
		Address                   string
		EndpointPrefix            string
		MaxRequests               int
		ShutdownTimeout           int
		MaxTimeRequestsPerSeconds int
		RabbitMQBookingQueue      string
		CallbackRatePerSecond     int
		CallbackBurst             int
	}
	JWT struct {
		Secret        string
		ExpTimeInHour int
	}
	PayAnyWay struct {
		MerchantID    string
		IntegrityCode string
		GatewayURL    string
		CurrencyCode  string
		Amount        string
		TestMode      string
		BaseURL       string

		// StrictSignature makes a callback signature mismatch fatal instead
		// of advisory. Default is the legacy-permissive behavior.
		StrictSignature bool
	}
)
