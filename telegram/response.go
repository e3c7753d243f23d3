package telegram

import (
	"encoding/json"
	"fmt"

	"github.com/botwire/botwire/errors"
)

// APIError is a failed method call as reported inside the response
// envelope.
type APIError struct {
	Description     string
	Code            int64
	RetryAfter      int64
	MigrateToChatID int64
}

func (e *APIError) Error() string {
	if e.RetryAfter > 0 {
		return fmt.Sprintf("telegram: %s (code %d, retry after %ds)", e.Description, e.Code, e.RetryAfter)
	}
	return fmt.Sprintf("telegram: %s (code %d)", e.Description, e.Code)
}

// UnwrapResponse strips the standard method-call envelope
// {ok, result, error_code, description, parameters} from an
// already-parsed document and returns the inner result, still generic and
// ready for Decode. A false ok comes back as *APIError. The envelope
// itself performs no I/O here; fetching it is the caller's business.
func UnwrapResponse(doc any) (any, error) {
	m, ok := doc.(map[string]any)
	if !ok {
		return nil, errors.TypeMismatch(errors.PhaseDecode, nil, "response object", fmt.Sprintf("%T", doc))
	}

	okRaw, present := m["ok"]
	if !present {
		return nil, errors.MissingField(errors.PhaseDecode, []string{"ok"}, "ok")
	}
	okVal, isBool := okRaw.(bool)
	if !isBool {
		return nil, errors.TypeMismatch(errors.PhaseDecode, []string{"ok"}, "bool", fmt.Sprintf("%T", okRaw))
	}

	if okVal {
		result, present := m["result"]
		if !present {
			return nil, errors.MissingField(errors.PhaseDecode, []string{"result"}, "result")
		}
		return result, nil
	}

	apiErr := &APIError{}
	if raw, ok := m["error_code"]; ok {
		code, err := envelopeInt(raw, "error_code")
		if err != nil {
			return nil, err
		}
		apiErr.Code = code
	}
	if raw, ok := m["description"]; ok {
		desc, isStr := raw.(string)
		if !isStr {
			return nil, errors.TypeMismatch(errors.PhaseDecode, []string{"description"}, "string", fmt.Sprintf("%T", raw))
		}
		apiErr.Description = desc
	}
	if raw, ok := m["parameters"]; ok {
		v, err := Decode(raw, "response_parameters")
		if err != nil {
			return nil, err
		}
		if ra, ok := v.Field("retry_after"); ok {
			apiErr.RetryAfter = ra.Int()
		}
		if mig, ok := v.Field("migrate_to_chat_id"); ok {
			apiErr.MigrateToChatID = mig.Int()
		}
	}
	return nil, apiErr
}

func envelopeInt(raw any, field string) (int64, error) {
	switch n := raw.(type) {
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return 0, errors.TypeMismatch(errors.PhaseDecode, []string{field}, "integer", n.String())
		}
		return i, nil
	case int64:
		return n, nil
	case int:
		return int64(n), nil
	case float64:
		return int64(n), nil
	default:
		return 0, errors.TypeMismatch(errors.PhaseDecode, []string{field}, "integer", fmt.Sprintf("%T", raw))
	}
}
