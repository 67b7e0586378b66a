package bot

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	log "github.com/sirupsen/logrus"

	"github.com/Rusik2379/FinansistFrol/internal/flow"
)

// Handler adapts Telegram updates to the conversation engine and renders the
// engine's replies back as messages with reply keyboards.
type Handler struct {
	api      *tgbotapi.BotAPI
	engine   *flow.Engine
	sessions *flow.Sessions
}

func NewHandler(api *tgbotapi.BotAPI, engine *flow.Engine, sessions *flow.Sessions) *Handler {
	return &Handler{api: api, engine: engine, sessions: sessions}
}

func (h *Handler) HandleUpdate(ctx context.Context, upd tgbotapi.Update) {
	msg := upd.Message
	if msg == nil || msg.From == nil {
		return
	}
	// The ledger is personal; ignore group chatter.
	if !msg.Chat.IsPrivate() {
		return
	}

	in := flow.Inbound{
		UserID:    msg.From.ID,
		Handle:    msg.From.UserName,
		FirstName: msg.From.FirstName,
		LastName:  msg.From.LastName,
		Text:      msg.Text,
	}

	sess := h.sessions.Get(in.UserID)
	replies, err := h.engine.Handle(ctx, sess, in)
	if err != nil {
		log.WithError(err).WithField("user_id", in.UserID).Error("failed to handle message")
		h.send(msg.Chat.ID, flow.Reply{Text: "❌ Что-то пошло не так. Попробуйте еще раз."})
		return
	}
	for _, r := range replies {
		h.send(msg.Chat.ID, r)
	}
}

func (h *Handler) send(chatID int64, r flow.Reply) {
	m := tgbotapi.NewMessage(chatID, r.Text)
	if r.HTML {
		m.ParseMode = tgbotapi.ModeHTML
	}
	switch {
	case len(r.Keyboard) > 0:
		rows := make([][]tgbotapi.KeyboardButton, 0, len(r.Keyboard))
		for _, row := range r.Keyboard {
			btns := make([]tgbotapi.KeyboardButton, 0, len(row))
			for _, label := range row {
				btns = append(btns, tgbotapi.NewKeyboardButton(label))
			}
			rows = append(rows, btns)
		}
		m.ReplyMarkup = tgbotapi.NewReplyKeyboard(rows...)
	case r.RemoveKeyboard:
		m.ReplyMarkup = tgbotapi.NewRemoveKeyboard(false)
	}

	if _, err := h.api.Send(m); err != nil {
		log.WithError(err).WithField("chat_id", chatID).Error("failed to send message")
	}
}
