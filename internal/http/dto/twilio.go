package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/Primesh-FL/FormSG/internal/model"
)

type TwilioSignatureHeader struct {
	Signature string `header:"X-Twilio-Signature" binding:"required"`
}

// TwilioSmsUpdateRequest is Twilio's status callback body. Twilio sends more
// parameters than listed here; they are ignored.
type TwilioSmsUpdateRequest struct {
	SmsSid        string           `form:"SmsSid" json:"SmsSid" binding:"required"`
	SmsStatus     string           `form:"SmsStatus" json:"SmsStatus" binding:"required"`
	MessageStatus string           `form:"MessageStatus" json:"MessageStatus" binding:"required"`
	To            string           `form:"To" json:"To" binding:"required"`
	MessageSid    string           `form:"MessageSid" json:"MessageSid" binding:"required"`
	AccountSid    string           `form:"AccountSid" json:"AccountSid" binding:"required"`
	From          string           `form:"From" json:"From" binding:"required"`
	ApiVersion    string           `form:"ApiVersion" json:"ApiVersion" binding:"required"`
	ErrorCode     *TwilioErrorCode `form:"ErrorCode" json:"ErrorCode"`
	ErrorMessage  *string          `form:"ErrorMessage" json:"ErrorMessage" binding:"omitnil,min=1"`
}

// TwilioErrorCode is a numeric ErrorCode parameter. Form posts carry it as
// text, so "30003" and "30003.0" both parse; blanks and fractions do not.
type TwilioErrorCode int

// UnmarshalParam implements gin's binding.BindUnmarshaler.
func (e *TwilioErrorCode) UnmarshalParam(param string) error {
	param = strings.TrimSpace(param)
	if param == "" {
		return fmt.Errorf("ErrorCode must be a number")
	}
	f, err := strconv.ParseFloat(param, 64)
	if err != nil {
		return fmt.Errorf("ErrorCode must be a number: %w", err)
	}
	if f != math.Trunc(f) || math.IsInf(f, 0) || f > math.MaxInt32 || f < math.MinInt32 {
		return fmt.Errorf("ErrorCode must be an integer, got %q", param)
	}
	*e = TwilioErrorCode(f)
	return nil
}

func (e *TwilioErrorCode) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		return e.UnmarshalParam(s)
	}
	return e.UnmarshalParam(string(data))
}

func (r *TwilioSmsUpdateRequest) ToModel() model.SmsDeliveryUpdate {
	var errorCode *int
	if r.ErrorCode != nil {
		code := int(*r.ErrorCode)
		errorCode = &code
	}
	return model.SmsDeliveryUpdate{
		SmsSid:        r.SmsSid,
		SmsStatus:     r.SmsStatus,
		MessageStatus: r.MessageStatus,
		To:            r.To,
		MessageSid:    r.MessageSid,
		AccountSid:    r.AccountSid,
		From:          r.From,
		ApiVersion:    r.ApiVersion,
		ErrorCode:     errorCode,
		ErrorMessage:  r.ErrorMessage,
	}
}
