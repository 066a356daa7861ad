package bot

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/nahuelkryc0405/Black-Jack-Game/internal/config"
	"github.com/nahuelkryc0405/Black-Jack-Game/internal/game"
	"github.com/nahuelkryc0405/Black-Jack-Game/internal/player"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Sender is the part of *tgbotapi.BotAPI the handlers use.
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

type Handler struct {
	bot        Sender
	cfg        *config.Config
	players    player.Repository
	tables     *Tables
	newSession func() *game.Session
}

func NewHandler(bot Sender, cfg *config.Config, repo player.Repository) *Handler {
	return &Handler{
		bot:        bot,
		cfg:        cfg,
		players:    repo,
		tables:     NewTables(),
		newSession: cfg.NewSession,
	}
}

// ============== HELPERS ==============

func (h *Handler) send(chatID int64, text string) {
	if _, err := h.bot.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
		log.Printf("Failed to send message: %v", err)
	}
}

func (h *Handler) sendWithKeyboard(chatID int64, text string, kb tgbotapi.InlineKeyboardMarkup) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = kb
	if _, err := h.bot.Send(msg); err != nil {
		log.Printf("Failed to send message: %v", err)
	}
}

func (h *Handler) answerCallback(id, text string) {
	if _, err := h.bot.Request(tgbotapi.NewCallback(id, text)); err != nil {
		log.Printf("Failed to answer callback: %v", err)
	}
}

func (h *Handler) getPlayer(chatID int64) (*player.Player, error) {
	return h.players.GetOrCreate(chatID, h.cfg.StartingBankroll)
}

func (h *Handler) savePlayer(p *player.Player) {
	if err := h.players.Save(p); err != nil {
		log.Printf("Failed to save player: %v", err)
	}
}

// table returns the chat's table; a new session starts from the stored bankroll.
func (h *Handler) table(p *player.Player) *Table {
	return h.tables.GetOrCreate(p.ChatID, func() *game.Session {
		s := h.newSession()
		s.Bankroll = p.Bankroll
		return s
	})
}

// ============== FORMATTING ==============

func formatCards(cards []game.Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = c.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func formatGameStatus(s game.Snapshot) string {
	dealerDisplay := fmt.Sprintf("%s (%d)", formatCards(s.Dealer), s.DealerTotal)
	if s.HoleHidden && len(s.Dealer) > 0 {
		dealerDisplay = fmt.Sprintf("[%s, ?] (%d)", s.Dealer[0], s.DealerTotal)
	}

	return fmt.Sprintf("🎴 You: %s (%d)\n🃏 Dealer: %s",
		formatCards(s.Player), s.PlayerTotal, dealerDisplay)
}

func resultText(o game.Outcome) string {
	switch o {
	case game.PlayerBlackjack:
		return "🎰 BLACKJACK! 🎰"
	case game.PlayerWin:
		return "🎉 You win!"
	case game.DealerBust:
		return "🎉 Dealer busts, you win!"
	case game.DealerWin:
		return "😔 Dealer wins!"
	case game.PlayerBust:
		return "💥 Bust!"
	case game.Push:
		return "🤝 Push!"
	default:
		return o.String()
	}
}

func formatGameEnd(s game.Snapshot, delta float64) string {
	return fmt.Sprintf("%s\n\n%s\n💰 %+g\n💵 Bankroll: %g",
		formatGameStatus(s), resultText(s.Outcome), delta, s.Bankroll)
}

// ============== COMMANDS ==============

func (h *Handler) HandleStart(chatID int64) {
	p, err := h.getPlayer(chatID)
	if err != nil {
		h.send(chatID, "❌ Error. Try again later.")
		return
	}

	h.send(chatID, fmt.Sprintf(
		"🎰 Welcome to Blackjack!\n\n"+
			"💵 Bankroll: %g\n\n"+
			"/play — deal a hand\n"+
			"/balance — statistics\n"+
			"/top — leaderboard\n"+
			"/help — rules",
		p.Bankroll))
}

func (h *Handler) HandleHelp(chatID int64) {
	rules := h.cfg.Rules()
	h.send(chatID, fmt.Sprintf(
		"📖 Blackjack rules:\n\n"+
			"🎯 Beat the dealer's total without going over 21\n\n"+
			"📊 Values:\n"+
			"• 2-10 — face value\n"+
			"• J, Q, K — 10\n"+
			"• A — 11 or 1\n\n"+
			"🎮 Actions:\n"+
			"• Hit — take a card\n"+
			"• Stand — stop\n\n"+
			"🃏 Single deck, dealer %s\n"+
			"💰 Fixed bet %g\n"+
			"🎰 Blackjack pays %g:1",
		rules.DealerRule, rules.FixedBet, rules.BlackjackPays))
}

func (h *Handler) HandleBalance(chatID int64) {
	p, err := h.getPlayer(chatID)
	if err != nil {
		h.send(chatID, "❌ Error")
		return
	}

	h.send(chatID, fmt.Sprintf(
		"💰 Bankroll: %g\n\n"+
			"📊 Statistics:\n"+
			"🎮 Rounds: %d\n"+
			"✅ Wins: %d (%.1f%%)\n"+
			"🎰 Blackjacks: %d\n"+
			"❌ Losses: %d\n"+
			"🤝 Pushes: %d",
		p.Bankroll, p.Rounds, p.Wins, p.WinRate(), p.Blackjacks, p.Losses, p.Pushes))
}

func (h *Handler) HandleTop(chatID int64) {
	stats, err := h.players.GetTopByBankroll(10)
	if err != nil {
		h.send(chatID, "❌ Error")
		return
	}

	if len(stats) == 0 {
		h.send(chatID, "🏆 Nobody has played yet!")
		return
	}

	var sb strings.Builder
	sb.WriteString("🏆 Top players:\n\n")

	medals := []string{"🥇", "🥈", "🥉"}
	for i, s := range stats {
		medal := fmt.Sprintf("%d.", i+1)
		if i < 3 {
			medal = medals[i]
		}
		sb.WriteString(fmt.Sprintf("%s %g 💰 | %d rounds (%.0f%%)\n",
			medal, s.Bankroll, s.Rounds, s.WinRate))
	}

	h.send(chatID, sb.String())
}

func (h *Handler) HandlePlay(chatID int64) {
	p, err := h.getPlayer(chatID)
	if err != nil {
		h.send(chatID, "❌ Error")
		return
	}

	t := h.table(p)
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.InRound() {
		h.sendWithKeyboard(chatID,
			"⏳ Finish the current hand first\n\n"+formatGameStatus(t.Session.Snapshot(t.Round)),
			GameKeyboard())
		return
	}

	r, err := t.Session.StartRound()
	var ibe *game.InsufficientBankrollError
	if errors.As(err, &ibe) {
		h.send(chatID, fmt.Sprintf("❌ Not enough funds! Bankroll: %g, bet: %g", ibe.Bankroll, ibe.Bet))
		return
	}
	if err != nil {
		log.Printf("chat %d: start round: %v", chatID, err)
		h.send(chatID, "❌ Error")
		return
	}

	if err := r.Deal(); err != nil {
		log.Printf("chat %d: deal: %v", chatID, err)
		h.send(chatID, "❌ Error")
		return
	}
	t.Round = r

	if !t.InRound() {
		h.finish(chatID, t, p)
		return
	}

	h.sendWithKeyboard(chatID,
		fmt.Sprintf("💰 Bet: %g | Bankroll: %g\n\n%s",
			r.Bet, t.Session.Bankroll, formatGameStatus(t.Session.Snapshot(r))),
		GameKeyboard())
}

// finish settles the resolved round and stores the new bankroll.
func (h *Handler) finish(chatID int64, t *Table, p *player.Player) {
	delta, err := t.Session.Settle(t.Round)
	if err != nil {
		log.Printf("chat %d: settle: %v", chatID, err)
		h.send(chatID, "❌ Error")
		return
	}

	snap := t.Session.Snapshot(t.Round)
	p.Record(snap.Outcome, t.Session.Bankroll)
	h.savePlayer(p)

	h.sendWithKeyboard(chatID, formatGameEnd(snap, delta), EndGameKeyboard(t.Session.Rules.FixedBet))
}

// ============== CALLBACKS ==============

func (h *Handler) HandleCallback(callback *tgbotapi.CallbackQuery) {
	chatID := callback.Message.Chat.ID
	data := callback.Data

	p, err := h.getPlayer(chatID)
	if err != nil {
		h.answerCallback(callback.ID, "Error")
		return
	}

	switch data {
	case CallbackPlayAgain:
		h.answerCallback(callback.ID, "")
		h.HandlePlay(chatID)
		return

	case CallbackBalance:
		h.answerCallback(callback.ID, fmt.Sprintf("💵 %g", h.table(p).Session.Bankroll))
		return
	}

	decision, err := game.ParseDecision(data)
	if err != nil {
		log.Printf("chat %d: %v", chatID, err)
		h.answerCallback(callback.ID, "Unknown action")
		return
	}

	t := h.tables.Get(chatID)
	if t == nil {
		h.answerCallback(callback.ID, "No hand in play")
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.InRound() {
		h.answerCallback(callback.ID, "No hand in play")
		return
	}

	h.handleDecision(chatID, t, p, decision)
	h.answerCallback(callback.ID, "")
}

func (h *Handler) handleDecision(chatID int64, t *Table, p *player.Player, d game.Decision) {
	if err := t.Round.Apply(d); err != nil {
		log.Printf("chat %d: %s: %v", chatID, d, err)
		h.send(chatID, "❌ Error")
		return
	}

	if !t.InRound() {
		h.finish(chatID, t, p)
		return
	}

	h.sendWithKeyboard(chatID, formatGameStatus(t.Session.Snapshot(t.Round)), GameKeyboard())
}

// ============== MESSAGES ==============

func (h *Handler) HandleMessage(msg *tgbotapi.Message) {
	chatID := msg.Chat.ID
	parts := strings.Fields(msg.Text)

	if len(parts) == 0 {
		return
	}

	switch strings.ToLower(parts[0]) {
	case "/start":
		h.HandleStart(chatID)
	case "/help":
		h.HandleHelp(chatID)
	case "/play":
		h.HandlePlay(chatID)
	case "/balance":
		h.HandleBalance(chatID)
	case "/top":
		h.HandleTop(chatID)
	}
}
