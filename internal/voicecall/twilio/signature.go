package twilio

import (
	"net/url"

	"github.com/twilio/twilio-go/client"
)

const SignatureHeader = "X-Twilio-Signature"

// Validator checks X-Twilio-Signature against the URL Twilio requested and the
// posted form.
type Validator struct {
	validator client.RequestValidator
}

func NewValidator(authToken string) *Validator {
	return &Validator{validator: client.NewRequestValidator(authToken)}
}

func (v *Validator) Validate(requestURL string, form url.Values, signature string) bool {
	if signature == "" {
		return false
	}
	params := make(map[string]string, len(form))
	for key := range form {
		params[key] = form.Get(key)
	}
	return v.validator.Validate(requestURL, params, signature)
}
