package model

// SmsDeliveryUpdate is a delivery status callback from Twilio.
type SmsDeliveryUpdate struct {
	SmsSid        string
	SmsStatus     string
	MessageStatus string
	To            string
	MessageSid    string
	AccountSid    string
	From          string
	ApiVersion    string
	ErrorCode     *int
	ErrorMessage  *string
}

// IsError mirrors Twilio's convention that a zero code means no error.
func (u SmsDeliveryUpdate) IsError() bool {
	if u.ErrorCode != nil && *u.ErrorCode != 0 {
		return true
	}
	return u.ErrorMessage != nil && *u.ErrorMessage != ""
}
