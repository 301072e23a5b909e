package webhook

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/twilio/twilio-go/client"

	"github.com/Primesh-FL/FormSG/common/logger"
	"github.com/Primesh-FL/FormSG/core/config"
	"github.com/Primesh-FL/FormSG/internal/http/dto"
	"github.com/Primesh-FL/FormSG/internal/service"
)

type TwilioWebhookHandler struct {
	smsService service.SmsDeliveryService
	validator  *client.RequestValidator // nil when signatures are not verified
	publicURL  string
}

// NewTwilioWebhookHandler builds the SMS status callback handler. Signatures
// are checked against publicURL plus the request URI, which must match the
// callback URL configured on the Twilio message.
func NewTwilioWebhookHandler(smsService service.SmsDeliveryService, cfg config.TwilioConfig, publicURL string) *TwilioWebhookHandler {
	h := &TwilioWebhookHandler{
		smsService: smsService,
		publicURL:  publicURL,
	}
	if cfg.SignatureVerificationEnabled() {
		v := client.NewRequestValidator(cfg.AuthToken)
		h.validator = &v
	}
	return h
}

func (h *TwilioWebhookHandler) HandleSmsUpdate(c *gin.Context) {
	ctx := logger.WithLogFields(c.Request.Context(), logger.LogFields{
		Component: "formsg.webhook.twilio",
	})

	var header dto.TwilioSignatureHeader
	if err := c.ShouldBindHeader(&header); err != nil {
		slog.WarnContext(ctx, "twilio webhook without signature")
		c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: "x-twilio-signature header is required"})
		return
	}

	var req dto.TwilioSmsUpdateRequest
	if err := c.ShouldBind(&req); err != nil {
		slog.WarnContext(ctx, "invalid twilio webhook body", "error", err)
		c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: err.Error()})
		return
	}

	if h.validator != nil {
		params := make(map[string]string, len(c.Request.PostForm))
		for key, values := range c.Request.PostForm {
			if len(values) > 0 {
				params[key] = values[0]
			}
		}
		if !h.validator.Validate(h.publicURL+c.Request.URL.RequestURI(), params, header.Signature) {
			slog.WarnContext(ctx, "twilio signature mismatch", "message_sid", req.MessageSid)
			c.JSON(http.StatusForbidden, dto.MessageResponse{Message: "Invalid Twilio signature"})
			return
		}
	}

	if err := h.smsService.RecordUpdate(ctx, req.ToModel()); err != nil {
		slog.ErrorContext(ctx, "failed to record sms update", "error", err)
		c.JSON(http.StatusInternalServerError, dto.MessageResponse{Message: "Failed to record update"})
		return
	}

	c.String(http.StatusOK, http.StatusText(http.StatusOK))
}
