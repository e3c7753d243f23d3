package telegram

import (
	"errors"
	"testing"
)

func TestUnwrapResponse_OK(t *testing.T) {
	doc := parseFixture(t, `{
		"ok": true,
		"result": {"message_id": 7, "date": 1, "chat": {"id": 1, "type": "private"}}
	}`)

	result, err := UnwrapResponse(doc)
	if err != nil {
		t.Fatalf("UnwrapResponse failed: %v", err)
	}
	msg, err := DecodeMessage(result)
	if err != nil {
		t.Fatalf("DecodeMessage failed: %v", err)
	}
	if msg.MessageID != 7 {
		t.Errorf("MessageID = %d, want 7", msg.MessageID)
	}
}

func TestUnwrapResponse_Error(t *testing.T) {
	doc := parseFixture(t, `{
		"ok": false,
		"error_code": 429,
		"description": "Too Many Requests: retry after 14",
		"parameters": {"retry_after": 14}
	}`)

	_, err := UnwrapResponse(doc)
	if err == nil {
		t.Fatal("expected API error")
	}
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error is %T, want *APIError", err)
	}
	if apiErr.Code != 429 || apiErr.RetryAfter != 14 {
		t.Errorf("apiErr = %+v", apiErr)
	}
	if apiErr.Description == "" {
		t.Error("Description should be set")
	}
}

func TestUnwrapResponse_Migration(t *testing.T) {
	doc := parseFixture(t, `{
		"ok": false,
		"error_code": 400,
		"description": "Bad Request: group chat was upgraded to a supergroup chat",
		"parameters": {"migrate_to_chat_id": -1009876543210}
	}`)

	_, err := UnwrapResponse(doc)
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error is %T, want *APIError", err)
	}
	if apiErr.MigrateToChatID != -1009876543210 {
		t.Errorf("MigrateToChatID = %d", apiErr.MigrateToChatID)
	}
}

func TestUnwrapResponse_Malformed(t *testing.T) {
	if _, err := UnwrapResponse("not an object"); err == nil {
		t.Fatal("expected error for non-object envelope")
	}
	if _, err := UnwrapResponse(map[string]any{"result": 1}); err == nil {
		t.Fatal("expected error when ok is missing")
	}
	if _, err := UnwrapResponse(map[string]any{"ok": true}); err == nil {
		t.Fatal("expected error when result is missing")
	}
}
