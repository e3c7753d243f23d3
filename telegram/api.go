package telegram

import (
	"github.com/botwire/botwire/codec"
)

// Decode checks doc against the named catalog definition.
func Decode(doc any, typeName string) (*codec.Value, error) {
	return codec.NewDecoder(Registry()).Decode(doc, typeName)
}

// DecodeStrict is Decode with undeclared fields treated as errors.
func DecodeStrict(doc any, typeName string) (*codec.Value, error) {
	return codec.NewDecoder(Registry(), codec.WithStrictFields()).Decode(doc, typeName)
}

func DecodeUpdate(doc any) (*Update, error) {
	var u Update
	if err := decodeInto(doc, "update", &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func DecodeMessage(doc any) (*Message, error) {
	var m Message
	if err := decodeInto(doc, "message", &m); err != nil {
		return nil, err
	}
	return &m, nil
}

func DecodeChat(doc any) (*Chat, error) {
	var c Chat
	if err := decodeInto(doc, "chat", &c); err != nil {
		return nil, err
	}
	return &c, nil
}

func DecodeChatMember(doc any) (*ChatMember, error) {
	var m ChatMember
	if err := decodeInto(doc, "chat_member", &m); err != nil {
		return nil, err
	}
	return &m, nil
}

func DecodeUserProfilePhotos(doc any) (*UserProfilePhotos, error) {
	var p UserProfilePhotos
	if err := decodeInto(doc, "user_profile_photos", &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func DecodeWebhookInfo(doc any) (*WebhookInfo, error) {
	var w WebhookInfo
	if err := decodeInto(doc, "webhook_info", &w); err != nil {
		return nil, err
	}
	return &w, nil
}

func DecodeFile(doc any) (*File, error) {
	var f File
	if err := decodeInto(doc, "file", &f); err != nil {
		return nil, err
	}
	return &f, nil
}

func decodeInto(doc any, typeName string, target any) error {
	return codec.NewDecoder(Registry()).DecodeInto(doc, typeName, target)
}
