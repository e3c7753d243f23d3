package telegram

// Go mirrors of the catalog entities, for the reflection decode path.
// Nested entities are pointers so absence stays observable; scalar
// optionals fall back to their zero values.

type Update struct {
	UpdateID           int64               `tg:"update_id"`
	Message            *Message            `tg:"message"`
	EditedMessage      *Message            `tg:"edited_message"`
	ChannelPost        *Message            `tg:"channel_post"`
	EditedChannelPost  *Message            `tg:"edited_channel_post"`
	InlineQuery        *InlineQuery        `tg:"inline_query"`
	ChosenInlineResult *ChosenInlineResult `tg:"chosen_inline_result"`
	CallbackQuery      *CallbackQuery      `tg:"callback_query"`
}

type User struct {
	ID           int64  `tg:"id"`
	IsBot        bool   `tg:"is_bot"`
	FirstName    string `tg:"first_name"`
	LastName     string `tg:"last_name"`
	Username     string `tg:"username"`
	LanguageCode string `tg:"language_code"`
}

// Chat covers every chat kind; Type tells them apart and fields not
// carried by a kind stay zero.
type Chat struct {
	ID            int64      `tg:"id"`
	Type          string     `tg:"type"`
	Title         string     `tg:"title"`
	Username      string     `tg:"username"`
	FirstName     string     `tg:"first_name"`
	LastName      string     `tg:"last_name"`
	Description   string     `tg:"description"`
	InviteLink    string     `tg:"invite_link"`
	Photo         *ChatPhoto `tg:"photo"`
	PinnedMessage *Message   `tg:"pinned_message"`
}

type ChatPhoto struct {
	SmallFileID string `tg:"small_file_id"`
	BigFileID   string `tg:"big_file_id"`
}

type Message struct {
	MessageID             int64                 `tg:"message_id"`
	Date                  int64                 `tg:"date"`
	Chat                  *Chat                 `tg:"chat"`
	From                  *User                 `tg:"from"`
	ForwardFrom           *User                 `tg:"forward_from"`
	ForwardFromChat       *Chat                 `tg:"forward_from_chat"`
	ForwardFromMessageID  int64                 `tg:"forward_from_message_id"`
	ForwardDate           int64                 `tg:"forward_date"`
	ReplyToMessage        *Message              `tg:"reply_to_message"`
	EditDate              int64                 `tg:"edit_date"`
	MediaGroupID          string                `tg:"media_group_id"`
	AuthorSignature       string                `tg:"author_signature"`
	Text                  string                `tg:"text"`
	Entities              []MessageEntity       `tg:"entities"`
	CaptionEntities       []MessageEntity       `tg:"caption_entities"`
	Audio                 *Audio                `tg:"audio"`
	Document              *Document             `tg:"document"`
	Animation             *Animation            `tg:"animation"`
	Photo                 []PhotoSize           `tg:"photo"`
	Sticker               *Sticker              `tg:"sticker"`
	Video                 *Video                `tg:"video"`
	Voice                 *Voice                `tg:"voice"`
	VideoNote             *VideoNote            `tg:"video_note"`
	Caption               string                `tg:"caption"`
	Contact               *Contact              `tg:"contact"`
	Location              *Location             `tg:"location"`
	Venue                 *Venue                `tg:"venue"`
	NewChatMembers        []User                `tg:"new_chat_members"`
	LeftChatMember        *User                 `tg:"left_chat_member"`
	NewChatTitle          string                `tg:"new_chat_title"`
	NewChatPhoto          []PhotoSize           `tg:"new_chat_photo"`
	DeleteChatPhoto       bool                  `tg:"delete_chat_photo"`
	GroupChatCreated      bool                  `tg:"group_chat_created"`
	SupergroupChatCreated bool                  `tg:"supergroup_chat_created"`
	ChannelChatCreated    bool                  `tg:"channel_chat_created"`
	MigrateToChatID       int64                 `tg:"migrate_to_chat_id"`
	MigrateFromChatID     int64                 `tg:"migrate_from_chat_id"`
	PinnedMessage         *Message              `tg:"pinned_message"`
	ReplyMarkup           *InlineKeyboardMarkup `tg:"reply_markup"`
}

type MessageEntity struct {
	Type   string `tg:"type"`
	Offset int64  `tg:"offset"`
	Length int64  `tg:"length"`
	URL    string `tg:"url"`
	User   *User  `tg:"user"`
}

type PhotoSize struct {
	FileID   string `tg:"file_id"`
	Width    int64  `tg:"width"`
	Height   int64  `tg:"height"`
	FileSize int64  `tg:"file_size"`
}

type Audio struct {
	FileID    string     `tg:"file_id"`
	Duration  int64      `tg:"duration"`
	Performer string     `tg:"performer"`
	Title     string     `tg:"title"`
	MimeType  string     `tg:"mime_type"`
	FileSize  int64      `tg:"file_size"`
	Thumb     *PhotoSize `tg:"thumb"`
}

type Document struct {
	FileID   string     `tg:"file_id"`
	Thumb    *PhotoSize `tg:"thumb"`
	FileName string     `tg:"file_name"`
	MimeType string     `tg:"mime_type"`
	FileSize int64      `tg:"file_size"`
}

type Video struct {
	FileID   string     `tg:"file_id"`
	Width    int64      `tg:"width"`
	Height   int64      `tg:"height"`
	Duration int64      `tg:"duration"`
	Thumb    *PhotoSize `tg:"thumb"`
	MimeType string     `tg:"mime_type"`
	FileSize int64      `tg:"file_size"`
}

type Animation struct {
	FileID   string     `tg:"file_id"`
	Width    int64      `tg:"width"`
	Height   int64      `tg:"height"`
	Duration int64      `tg:"duration"`
	Thumb    *PhotoSize `tg:"thumb"`
	FileName string     `tg:"file_name"`
	MimeType string     `tg:"mime_type"`
	FileSize int64      `tg:"file_size"`
}

type Voice struct {
	FileID   string `tg:"file_id"`
	Duration int64  `tg:"duration"`
	MimeType string `tg:"mime_type"`
	FileSize int64  `tg:"file_size"`
}

type VideoNote struct {
	FileID   string     `tg:"file_id"`
	Length   int64      `tg:"length"`
	Duration int64      `tg:"duration"`
	Thumb    *PhotoSize `tg:"thumb"`
	FileSize int64      `tg:"file_size"`
}

type Contact struct {
	PhoneNumber string `tg:"phone_number"`
	FirstName   string `tg:"first_name"`
	LastName    string `tg:"last_name"`
	UserID      int64  `tg:"user_id"`
	VCard       string `tg:"vcard"`
}

type Location struct {
	Longitude float64 `tg:"longitude"`
	Latitude  float64 `tg:"latitude"`
}

type Venue struct {
	Location     *Location `tg:"location"`
	Title        string    `tg:"title"`
	Address      string    `tg:"address"`
	FoursquareID string    `tg:"foursquare_id"`
}

type Sticker struct {
	FileID       string        `tg:"file_id"`
	Width        int64         `tg:"width"`
	Height       int64         `tg:"height"`
	Thumb        *PhotoSize    `tg:"thumb"`
	Emoji        string        `tg:"emoji"`
	SetName      string        `tg:"set_name"`
	MaskPosition *MaskPosition `tg:"mask_position"`
	FileSize     int64         `tg:"file_size"`
}

type MaskPosition struct {
	Point  string  `tg:"point"`
	XShift float64 `tg:"x_shift"`
	YShift float64 `tg:"y_shift"`
	Scale  float64 `tg:"scale"`
}

type StickerSet struct {
	Name          string    `tg:"name"`
	Title         string    `tg:"title"`
	ContainsMasks bool      `tg:"contains_masks"`
	Stickers      []Sticker `tg:"stickers"`
}

type File struct {
	FileID   string `tg:"file_id"`
	FileSize int64  `tg:"file_size"`
	FilePath string `tg:"file_path"`
}

type UserProfilePhotos struct {
	TotalCount int64         `tg:"total_count"`
	Photos     [][]PhotoSize `tg:"photos"`
}

type WebhookInfo struct {
	URL                  string   `tg:"url"`
	HasCustomCertificate bool     `tg:"has_custom_certificate"`
	PendingUpdateCount   int64    `tg:"pending_update_count"`
	LastErrorDate        int64    `tg:"last_error_date"`
	LastErrorMessage     string   `tg:"last_error_message"`
	MaxConnections       int64    `tg:"max_connections"`
	AllowedUpdates       []string `tg:"allowed_updates"`
}

type ChatMember struct {
	User      *User  `tg:"user"`
	Status    string `tg:"status"`
	UntilDate int64  `tg:"until_date"`
}

type LoginURL struct {
	URL                string `tg:"url"`
	ForwardText        string `tg:"forward_text"`
	BotUsername        string `tg:"bot_username"`
	RequestWriteAccess bool   `tg:"request_write_access"`
}

type InlineKeyboardMarkup struct {
	InlineKeyboard [][]InlineKeyboardButton `tg:"inline_keyboard"`
}

// InlineKeyboardButton flattens the pressed-action union: exactly one of
// the action fields is set after a decode.
type InlineKeyboardButton struct {
	Text                         string    `tg:"text"`
	URL                          string    `tg:"url"`
	CallbackData                 string    `tg:"callback_data"`
	SwitchInlineQuery            *string   `tg:"switch_inline_query"`
	SwitchInlineQueryCurrentChat *string   `tg:"switch_inline_query_current_chat"`
	Pay                          bool      `tg:"pay"`
	LoginURL                     *LoginURL `tg:"login_url"`
}

type InlineQuery struct {
	ID       string    `tg:"id"`
	From     *User     `tg:"from"`
	Query    string    `tg:"query"`
	Offset   string    `tg:"offset"`
	Location *Location `tg:"location"`
}

type ChosenInlineResult struct {
	ResultID        string    `tg:"result_id"`
	From            *User     `tg:"from"`
	Query           string    `tg:"query"`
	Location        *Location `tg:"location"`
	InlineMessageID string    `tg:"inline_message_id"`
}

type CallbackQuery struct {
	ID              string   `tg:"id"`
	From            *User    `tg:"from"`
	ChatInstance    string   `tg:"chat_instance"`
	Message         *Message `tg:"message"`
	InlineMessageID string   `tg:"inline_message_id"`
	Data            string   `tg:"data"`
	GameShortName   string   `tg:"game_short_name"`
}

type ResponseParameters struct {
	MigrateToChatID int64 `tg:"migrate_to_chat_id"`
	RetryAfter      int64 `tg:"retry_after"`
}
