package telegram

import (
	"fmt"
	"sync"

	"github.com/botwire/botwire/schema"
)

var (
	registry     *schema.Registry
	registryOnce sync.Once
)

// Registry returns the shared Bot API catalog, compiled on first use. The
// catalog is static, so a build failure is a programming error and panics.
func Registry() *schema.Registry {
	registryOnce.Do(func() {
		reg, err := buildCatalog()
		if err != nil {
			panic(fmt.Sprintf("telegram: catalog build failed: %v", err))
		}
		registry = reg
	})
	return registry
}

func buildCatalog() (*schema.Registry, error) {
	b := schema.NewBuilder()

	registerCore(b)
	registerMedia(b)
	registerKeyboards(b)
	registerInline(b)
	registerUpdates(b)
	registerInput(b)
	registerEnums(b)

	return b.Build()
}

func registerCore(b *schema.Builder) {
	b.Entity("user",
		schema.F("id", schema.Int()),
		schema.F("is_bot", schema.Bool()),
		schema.F("first_name", schema.String()),
		schema.Opt("last_name", schema.String()),
		schema.Opt("username", schema.String()),
		schema.Opt("language_code", schema.String()),
	)

	// The wire tag discriminates chat kinds; each kind is its own member
	// with the tag pinned.
	b.Entity("chat_private",
		schema.F("id", schema.Int()),
		schema.Const("type", "private"),
		schema.Opt("username", schema.String()),
		schema.Opt("first_name", schema.String()),
		schema.Opt("last_name", schema.String()),
		schema.Opt("photo", schema.Ref("chat_photo")),
	)
	b.Entity("chat_group",
		schema.F("id", schema.Int()),
		schema.Const("type", "group"),
		schema.F("title", schema.String()),
		schema.Opt("all_members_are_administrators", schema.Bool()),
		schema.Opt("photo", schema.Ref("chat_photo")),
		schema.Opt("pinned_message", schema.Ref("message")),
	)
	b.Entity("chat_supergroup",
		schema.F("id", schema.Int()),
		schema.Const("type", "supergroup"),
		schema.F("title", schema.String()),
		schema.Opt("username", schema.String()),
		schema.Opt("description", schema.String()),
		schema.Opt("invite_link", schema.String()),
		schema.Opt("sticker_set_name", schema.String()),
		schema.Opt("can_set_sticker_set", schema.Bool()),
		schema.Opt("photo", schema.Ref("chat_photo")),
		schema.Opt("pinned_message", schema.Ref("message")),
	)
	b.Entity("chat_channel",
		schema.F("id", schema.Int()),
		schema.Const("type", "channel"),
		schema.F("title", schema.String()),
		schema.Opt("username", schema.String()),
		schema.Opt("description", schema.String()),
		schema.Opt("invite_link", schema.String()),
		schema.Opt("photo", schema.Ref("chat_photo")),
		schema.Opt("pinned_message", schema.Ref("message")),
	)
	b.Variant("chat", "chat_private", "chat_group", "chat_supergroup", "chat_channel")

	b.Entity("chat_photo",
		schema.F("small_file_id", schema.String()),
		schema.F("big_file_id", schema.String()),
	)

	b.Entity("message",
		schema.F("message_id", schema.Int()),
		schema.F("date", schema.Int()),
		schema.F("chat", schema.Ref("chat")),
		schema.Opt("from", schema.Ref("user")),
		schema.Opt("forward_from", schema.Ref("user")),
		schema.Opt("forward_from_chat", schema.Ref("chat")),
		schema.Opt("forward_from_message_id", schema.Int()),
		schema.Opt("forward_signature", schema.String()),
		schema.Opt("forward_date", schema.Int()),
		schema.Opt("reply_to_message", schema.Ref("message")),
		schema.Opt("edit_date", schema.Int()),
		schema.Opt("media_group_id", schema.String()),
		schema.Opt("author_signature", schema.String()),
		schema.Opt("text", schema.String()),
		schema.Opt("entities", schema.Seq(schema.Ref("message_entity"))),
		schema.Opt("caption_entities", schema.Seq(schema.Ref("message_entity"))),
		schema.Opt("audio", schema.Ref("audio")),
		schema.Opt("document", schema.Ref("document")),
		schema.Opt("animation", schema.Ref("animation")),
		schema.Opt("photo", schema.Seq(schema.Ref("photo_size"))),
		schema.Opt("sticker", schema.Ref("sticker")),
		schema.Opt("video", schema.Ref("video")),
		schema.Opt("voice", schema.Ref("voice")),
		schema.Opt("video_note", schema.Ref("video_note")),
		schema.Opt("caption", schema.String()),
		schema.Opt("contact", schema.Ref("contact")),
		schema.Opt("location", schema.Ref("location")),
		schema.Opt("venue", schema.Ref("venue")),
		schema.Opt("new_chat_members", schema.Seq(schema.Ref("user"))),
		schema.Opt("left_chat_member", schema.Ref("user")),
		schema.Opt("new_chat_title", schema.String()),
		schema.Opt("new_chat_photo", schema.Seq(schema.Ref("photo_size"))),
		schema.Opt("delete_chat_photo", schema.Bool()),
		schema.Opt("group_chat_created", schema.Bool()),
		schema.Opt("supergroup_chat_created", schema.Bool()),
		schema.Opt("channel_chat_created", schema.Bool()),
		schema.Opt("migrate_to_chat_id", schema.Int()),
		schema.Opt("migrate_from_chat_id", schema.Int()),
		schema.Opt("pinned_message", schema.Ref("message")),
		schema.Opt("reply_markup", schema.Ref("inline_keyboard_markup")),
	)

	b.Entity("message_entity",
		schema.F("type", schema.Ref("message_entity_kind")),
		schema.F("offset", schema.Int()),
		schema.F("length", schema.Int()),
		schema.Opt("url", schema.String()),
		schema.Opt("user", schema.Ref("user")),
	)

	b.Entity("contact",
		schema.F("phone_number", schema.String()),
		schema.F("first_name", schema.String()),
		schema.Opt("last_name", schema.String()),
		schema.Opt("user_id", schema.Int()),
		schema.Opt("vcard", schema.String()),
	)
	b.Entity("location",
		schema.F("longitude", schema.Float()),
		schema.F("latitude", schema.Float()),
	)
	b.Entity("venue",
		schema.F("location", schema.Ref("location")),
		schema.F("title", schema.String()),
		schema.F("address", schema.String()),
		schema.Opt("foursquare_id", schema.String()),
		schema.Opt("foursquare_type", schema.String()),
	)

	b.Entity("file",
		schema.F("file_id", schema.String()),
		schema.Opt("file_size", schema.Int()),
		schema.Opt("file_path", schema.String()),
	)
	b.Entity("user_profile_photos",
		schema.F("total_count", schema.Int()),
		schema.F("photos", schema.Seq(schema.Seq(schema.Ref("photo_size")))),
	)
	b.Entity("webhook_info",
		schema.F("url", schema.String()),
		schema.F("has_custom_certificate", schema.Bool()),
		schema.F("pending_update_count", schema.Int()),
		schema.Opt("last_error_date", schema.Int()),
		schema.Opt("last_error_message", schema.String()),
		schema.Opt("max_connections", schema.Int()),
		schema.Opt("allowed_updates", schema.Seq(schema.String())),
	)
	b.Entity("chat_member",
		schema.F("user", schema.Ref("user")),
		schema.F("status", schema.Ref("chat_member_status")),
		schema.Opt("until_date", schema.Int()),
		schema.Opt("can_be_edited", schema.Bool()),
		schema.Opt("can_change_info", schema.Bool()),
		schema.Opt("can_post_messages", schema.Bool()),
		schema.Opt("can_edit_messages", schema.Bool()),
		schema.Opt("can_delete_messages", schema.Bool()),
		schema.Opt("can_invite_users", schema.Bool()),
		schema.Opt("can_restrict_members", schema.Bool()),
		schema.Opt("can_pin_messages", schema.Bool()),
		schema.Opt("can_promote_members", schema.Bool()),
		schema.Opt("can_send_messages", schema.Bool()),
		schema.Opt("can_send_media_messages", schema.Bool()),
		schema.Opt("can_send_other_messages", schema.Bool()),
		schema.Opt("can_add_web_page_previews", schema.Bool()),
	)
	b.Entity("response_parameters",
		schema.Opt("migrate_to_chat_id", schema.Int()),
		schema.Opt("retry_after", schema.Int()),
	)
}

func registerMedia(b *schema.Builder) {
	b.Entity("photo_size",
		schema.F("file_id", schema.String()),
		schema.F("width", schema.Int()),
		schema.F("height", schema.Int()),
		schema.Opt("file_size", schema.Int()),
	)
	b.Entity("audio",
		schema.F("file_id", schema.String()),
		schema.F("duration", schema.Int()),
		schema.Opt("performer", schema.String()),
		schema.Opt("title", schema.String()),
		schema.Opt("mime_type", schema.String()),
		schema.Opt("file_size", schema.Int()),
		schema.Opt("thumb", schema.Ref("photo_size")),
	)
	b.Entity("document",
		schema.F("file_id", schema.String()),
		schema.Opt("thumb", schema.Ref("photo_size")),
		schema.Opt("file_name", schema.String()),
		schema.Opt("mime_type", schema.String()),
		schema.Opt("file_size", schema.Int()),
	)
	b.Entity("video",
		schema.F("file_id", schema.String()),
		schema.F("width", schema.Int()),
		schema.F("height", schema.Int()),
		schema.F("duration", schema.Int()),
		schema.Opt("thumb", schema.Ref("photo_size")),
		schema.Opt("mime_type", schema.String()),
		schema.Opt("file_size", schema.Int()),
	)
	b.Entity("animation",
		schema.F("file_id", schema.String()),
		schema.F("width", schema.Int()),
		schema.F("height", schema.Int()),
		schema.F("duration", schema.Int()),
		schema.Opt("thumb", schema.Ref("photo_size")),
		schema.Opt("file_name", schema.String()),
		schema.Opt("mime_type", schema.String()),
		schema.Opt("file_size", schema.Int()),
	)
	b.Entity("voice",
		schema.F("file_id", schema.String()),
		schema.F("duration", schema.Int()),
		schema.Opt("mime_type", schema.String()),
		schema.Opt("file_size", schema.Int()),
	)
	b.Entity("video_note",
		schema.F("file_id", schema.String()),
		schema.F("length", schema.Int()),
		schema.F("duration", schema.Int()),
		schema.Opt("thumb", schema.Ref("photo_size")),
		schema.Opt("file_size", schema.Int()),
	)
	b.Entity("sticker",
		schema.F("file_id", schema.String()),
		schema.F("width", schema.Int()),
		schema.F("height", schema.Int()),
		schema.Opt("thumb", schema.Ref("photo_size")),
		schema.Opt("emoji", schema.String()),
		schema.Opt("set_name", schema.String()),
		schema.Opt("mask_position", schema.Ref("mask_position")),
		schema.Opt("file_size", schema.Int()),
	)
	b.Entity("mask_position",
		schema.F("point", schema.String()),
		schema.F("x_shift", schema.Float()),
		schema.F("y_shift", schema.Float()),
		schema.F("scale", schema.Float()),
	)
	b.Entity("sticker_set",
		schema.F("name", schema.String()),
		schema.F("title", schema.String()),
		schema.F("contains_masks", schema.Bool()),
		schema.F("stickers", schema.Seq(schema.Ref("sticker"))),
	)
}

func registerKeyboards(b *schema.Builder) {
	b.Entity("keyboard_button",
		schema.F("text", schema.String()),
		schema.Opt("request_contact", schema.Bool()),
		schema.Opt("request_location", schema.Bool()),
	)
	b.Entity("reply_keyboard_markup",
		schema.F("keyboard", schema.Seq(schema.Seq(schema.Ref("keyboard_button")))),
		schema.Opt("resize_keyboard", schema.Bool()),
		schema.Opt("one_time_keyboard", schema.Bool()),
		schema.Opt("selective", schema.Bool()),
	)
	b.Entity("reply_keyboard_remove",
		schema.F("remove_keyboard", schema.Bool()),
		schema.Opt("selective", schema.Bool()),
	)
	b.Entity("force_reply",
		schema.F("force_reply", schema.Bool()),
		schema.Opt("selective", schema.Bool()),
	)
	b.Entity("inline_keyboard_markup",
		schema.F("inline_keyboard", schema.Seq(schema.Seq(schema.Ref("inline_keyboard_button")))),
	)

	// An inline keyboard button is text plus exactly one action; which
	// action is told apart purely by field presence.
	b.Entity("ikb_url",
		schema.F("text", schema.String()),
		schema.F("url", schema.String()),
	)
	b.Entity("ikb_callback_data",
		schema.F("text", schema.String()),
		schema.F("callback_data", schema.String()),
	)
	b.Entity("ikb_switch_inline_query",
		schema.F("text", schema.String()),
		schema.F("switch_inline_query", schema.String()),
	)
	b.Entity("ikb_switch_inline_query_current_chat",
		schema.F("text", schema.String()),
		schema.F("switch_inline_query_current_chat", schema.String()),
	)
	b.Entity("ikb_pay",
		schema.F("text", schema.String()),
		schema.F("pay", schema.Bool()),
	)
	b.Entity("ikb_login_url",
		schema.F("text", schema.String()),
		schema.F("login_url", schema.Ref("login_url")),
	)
	b.Variant("inline_keyboard_button",
		"ikb_url",
		"ikb_callback_data",
		"ikb_switch_inline_query",
		"ikb_switch_inline_query_current_chat",
		"ikb_pay",
		"ikb_login_url",
	)

	b.Entity("login_url",
		schema.F("url", schema.String()),
		schema.Opt("forward_text", schema.String()),
		schema.Opt("bot_username", schema.String()),
		schema.Opt("request_write_access", schema.Bool()),
	)
}

func registerInline(b *schema.Builder) {
	b.Entity("inline_query",
		schema.F("id", schema.String()),
		schema.F("from", schema.Ref("user")),
		schema.F("query", schema.String()),
		schema.F("offset", schema.String()),
		schema.Opt("location", schema.Ref("location")),
	)
	b.Entity("chosen_inline_result",
		schema.F("result_id", schema.String()),
		schema.F("from", schema.Ref("user")),
		schema.F("query", schema.String()),
		schema.Opt("location", schema.Ref("location")),
		schema.Opt("inline_message_id", schema.String()),
	)
	b.Entity("callback_query",
		schema.F("id", schema.String()),
		schema.F("from", schema.Ref("user")),
		schema.F("chat_instance", schema.String()),
		schema.Opt("message", schema.Ref("message")),
		schema.Opt("inline_message_id", schema.String()),
		schema.Opt("data", schema.String()),
		schema.Opt("game_short_name", schema.String()),
	)
}

func registerUpdates(b *schema.Builder) {
	b.Entity("update",
		schema.F("update_id", schema.Int()),
		schema.Opt("message", schema.Ref("message")),
		schema.Opt("edited_message", schema.Ref("message")),
		schema.Opt("channel_post", schema.Ref("message")),
		schema.Opt("edited_channel_post", schema.Ref("message")),
		schema.Opt("inline_query", schema.Ref("inline_query")),
		schema.Opt("chosen_inline_result", schema.Ref("chosen_inline_result")),
		schema.Opt("callback_query", schema.Ref("callback_query")),
	)

	// The payload half of an update, stripped of update_id. Each member
	// wraps one payload field, so presence alone resolves the group.
	b.Entity("upd_message", schema.F("message", schema.Ref("message")))
	b.Entity("upd_edited_message", schema.F("edited_message", schema.Ref("message")))
	b.Entity("upd_channel_post", schema.F("channel_post", schema.Ref("message")))
	b.Entity("upd_edited_channel_post", schema.F("edited_channel_post", schema.Ref("message")))
	b.Entity("upd_inline_query", schema.F("inline_query", schema.Ref("inline_query")))
	b.Entity("upd_chosen_inline_result", schema.F("chosen_inline_result", schema.Ref("chosen_inline_result")))
	b.Entity("upd_callback_query", schema.F("callback_query", schema.Ref("callback_query")))
	b.Variant("update_content",
		"upd_message",
		"upd_edited_message",
		"upd_channel_post",
		"upd_edited_channel_post",
		"upd_inline_query",
		"upd_chosen_inline_result",
		"upd_callback_query",
	)
}

func registerInput(b *schema.Builder) {
	b.Entity("input_text_message_content",
		schema.F("message_text", schema.String()),
		schema.Opt("parse_mode", schema.Ref("parse_mode")),
		schema.Opt("disable_web_page_preview", schema.Bool()),
	)
	b.Entity("input_location_message_content",
		schema.F("latitude", schema.Float()),
		schema.F("longitude", schema.Float()),
	)
	// Venue content carries every location field plus three of its own;
	// the strict superset rule picks it over location content.
	b.Entity("input_venue_message_content",
		schema.F("latitude", schema.Float()),
		schema.F("longitude", schema.Float()),
		schema.F("title", schema.String()),
		schema.F("address", schema.String()),
		schema.Opt("foursquare_id", schema.String()),
	)
	b.Entity("input_contact_message_content",
		schema.F("phone_number", schema.String()),
		schema.F("first_name", schema.String()),
		schema.Opt("last_name", schema.String()),
	)
	b.Variant("input_message_content",
		"input_text_message_content",
		"input_location_message_content",
		"input_venue_message_content",
		"input_contact_message_content",
	)

	b.Entity("input_media_photo",
		schema.Const("type", "photo"),
		schema.F("media", schema.String()),
		schema.Opt("caption", schema.String()),
		schema.Opt("parse_mode", schema.Ref("parse_mode")),
	)
	b.Entity("input_media_video",
		schema.Const("type", "video"),
		schema.F("media", schema.String()),
		schema.Opt("thumb", schema.String()),
		schema.Opt("caption", schema.String()),
		schema.Opt("parse_mode", schema.Ref("parse_mode")),
		schema.Opt("width", schema.Int()),
		schema.Opt("height", schema.Int()),
		schema.Opt("duration", schema.Int()),
		schema.Opt("supports_streaming", schema.Bool()),
	)
	b.Entity("input_media_animation",
		schema.Const("type", "animation"),
		schema.F("media", schema.String()),
		schema.Opt("thumb", schema.String()),
		schema.Opt("caption", schema.String()),
		schema.Opt("parse_mode", schema.Ref("parse_mode")),
		schema.Opt("width", schema.Int()),
		schema.Opt("height", schema.Int()),
		schema.Opt("duration", schema.Int()),
	)
	b.Entity("input_media_audio",
		schema.Const("type", "audio"),
		schema.F("media", schema.String()),
		schema.Opt("thumb", schema.String()),
		schema.Opt("caption", schema.String()),
		schema.Opt("parse_mode", schema.Ref("parse_mode")),
		schema.Opt("duration", schema.Int()),
		schema.Opt("performer", schema.String()),
		schema.Opt("title", schema.String()),
	)
	b.Entity("input_media_document",
		schema.Const("type", "document"),
		schema.F("media", schema.String()),
		schema.Opt("thumb", schema.String()),
		schema.Opt("caption", schema.String()),
		schema.Opt("parse_mode", schema.Ref("parse_mode")),
	)
	b.Variant("input_media",
		"input_media_photo",
		"input_media_video",
		"input_media_animation",
		"input_media_audio",
		"input_media_document",
	)
}

// All three enums are open: the API grows values without notice, and
// unknown strings decode and survive round trips verbatim.
func registerEnums(b *schema.Builder) {
	b.OpenEnum("message_entity_kind",
		"mention", "hashtag", "cashtag", "bot_command", "url", "email",
		"phone_number", "bold", "italic", "code", "pre", "text_link",
		"text_mention",
	)
	b.OpenEnum("chat_member_status",
		"creator", "administrator", "member", "restricted", "left", "kicked",
	)
	b.OpenEnum("parse_mode", "Markdown", "MarkdownV2", "HTML")
}
