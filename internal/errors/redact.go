package errors

import "regexp"

// apiKeyParam matches key=<value> query parameters inside URLs that the
// HTTP client echoes back in transport errors.
var apiKeyParam = regexp.MustCompile(`([?&]key=)[^&\s"']+`)

const redactedValue = "REDACTED"

// RedactMessage masks API key query parameters in msg.
func RedactMessage(msg string) string {
	return apiKeyParam.ReplaceAllString(msg, "${1}"+redactedValue)
}

type redactedError struct {
	msg string
	err error
}

func (e *redactedError) Error() string { return e.msg }

func (e *redactedError) Unwrap() error { return e.err }

// RedactSecrets returns err with API keys masked in its message. The original
// error stays reachable through errors.Is and errors.As.
func RedactSecrets(err error) error {
	if err == nil {
		return nil
	}
	msg := err.Error()
	redacted := RedactMessage(msg)
	if redacted == msg {
		return err
	}
	return &redactedError{msg: redacted, err: err}
}
