package constvars

const (
	RegexEmail        = `^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`
	RegexAlphanumeric = `^[a-zA-Z0-9]+$`
	RegexDateYYYYMMDD = `^\d{4}-\d{2}-\d{2}$`
	RegexTimeHHMM     = `^\d{2}:\d{2}$`

	RegexContainAtLeastOneSpecialChar = `.*[!@#$%^&*(),.?":{}|<>].*`
	RegexContainAtLeastOneUppercase   = `.*[A-Z].*`

	// RegexPhoneNumberGeneral matches E.164 with the leading '+'.
	RegexPhoneNumberGeneral = `^\+[1-9]\d{9,14}$`
)
