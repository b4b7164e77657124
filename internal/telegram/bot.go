package telegram

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/armctay85/FitMunch-sub002/internal/config"
	"github.com/armctay85/FitMunch-sub002/internal/metrics"
	"github.com/armctay85/FitMunch-sub002/internal/pantry"
	"github.com/armctay85/FitMunch-sub002/internal/planner"
	"github.com/armctay85/FitMunch-sub002/internal/shopping"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Bot wraps the Telegram API around the planner and shopping pipeline.
type Bot struct {
	api          *tgbotapi.BotAPI
	mealPlanner  *planner.Planner
	builder      *shopping.Builder
	metricsStore *metrics.Store
	cfg          *config.Config

	planRepo   *planner.PlanRepository
	listRepo   *shopping.Repository
	pantryRepo *pantry.Repository
}

// NewBot initializes the Telegram Bot and sets the Webhook.
func NewBot(
	cfg *config.Config,
	mealPlanner *planner.Planner,
	builder *shopping.Builder,
	metricsStore *metrics.Store,
	planRepo *planner.PlanRepository,
	listRepo *shopping.Repository,
	pantryRepo *pantry.Repository,
) (*Bot, error) {
	bot, err := tgbotapi.NewBotAPI(cfg.TelegramBotToken)
	if err != nil {
		return nil, fmt.Errorf("failed to init telegram api: %w", err)
	}

	log.Printf("Authorized on account %s", bot.Self.UserName)

	webhookURL := cfg.TelegramWebhookURL
	wh, _ := tgbotapi.NewWebhook(webhookURL)
	resp, err := bot.Request(wh)
	if err != nil {
		return nil, fmt.Errorf("failed to set webhook to %s: %w", webhookURL, err)
	}
	log.Printf("Webhook set response: %s", resp.Description)

	return &Bot{
		api:          bot,
		mealPlanner:  mealPlanner,
		builder:      builder,
		metricsStore: metricsStore,
		cfg:          cfg,
		planRepo:     planRepo,
		listRepo:     listRepo,
		pantryRepo:   pantryRepo,
	}, nil
}

// RegisterHandlers registers the webhook handler with the default HTTP mux.
func (b *Bot) RegisterHandlers() {
	http.HandleFunc("/webhook", b.handleWebhook)
	http.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})
}

func (b *Bot) handleWebhook(w http.ResponseWriter, r *http.Request) {
	update, err := b.api.HandleUpdate(r)
	if err != nil {
		log.Printf("Error parsing update: %v", err)
		return
	}

	if update.Message == nil {
		return
	}

	isAllowed := false
	for _, id := range b.cfg.TelegramAllowedUserIDs {
		if update.Message.From.ID == id {
			isAllowed = true
			break
		}
	}

	if !isAllowed {
		log.Printf("⚠️ Unauthorized access attempt from UserID: %d (@%s)", update.Message.From.ID, update.Message.From.UserName)
		return
	}

	go b.processMessage(update.Message)
}

func (b *Bot) processMessage(msg *tgbotapi.Message) {
	cmd, arg := splitCommand(msg.Text)

	switch cmd {
	case "/start", "/help":
		b.reply(msg.Chat.ID, helpText)
	case "/plan":
		b.handlePlanRequest(msg, arg)
	case "/shopping":
		b.handleShoppingRequest(msg)
	case "/pantry":
		b.handlePantryList(msg)
	case "/have":
		b.handlePantryAdd(msg, arg)
	case "/used":
		b.handlePantryRemove(msg, arg)
	case "/metrics":
		b.handleMetricsCommand(msg.Chat.ID)
	default:
		// Anything else reads as a planning request.
		b.handlePlanRequest(msg, msg.Text)
	}
}

const helpText = `🥗 *FitMunch*

/plan <goal> - generate a meal plan (e.g. /plan lean muscle, 2200 kcal)
/shopping - build a shopping list from your latest plan
/pantry - show what you already have
/have <item> - mark an item as owned
/used <item> - remove an item from the pantry
/metrics - usage and health report`

func splitCommand(text string) (string, string) {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "/") {
		return "", text
	}
	cmd, arg, _ := strings.Cut(text, " ")
	return cmd, strings.TrimSpace(arg)
}

func (b *Bot) handlePlanRequest(msg *tgbotapi.Message, goal string) {
	if goal == "" {
		b.reply(msg.Chat.ID, "Tell me your goal, e.g. `/plan high protein, 3 days`")
		return
	}

	statusText := "🧑‍🍳 *Thinking...* \n(Generating your meal plan)"
	replyMsg := tgbotapi.NewMessage(msg.Chat.ID, statusText)
	replyMsg.ParseMode = "Markdown"
	sentMsg, err := b.api.Send(replyMsg)
	if err != nil {
		log.Printf("Failed to send initial reply: %v", err)
		return
	}

	ctx := context.Background()
	userID := fmt.Sprintf("%d", msg.From.ID)

	log.Printf("Generating plan for request: %s", goal)

	plan, meta, err := b.mealPlanner.GeneratePlan(ctx, planner.PlanRequest{
		UserID: userID,
		Goal:   goal,
	})

	// Record metrics even if it errored.
	if err := b.metricsStore.RecordMeta(meta); err != nil {
		log.Printf("Warning: failed to record metrics: %v", err)
	}

	if err != nil {
		log.Printf("Error generating plan: %v", err)
		safeErr := strings.ReplaceAll(err.Error(), "`", "'")
		b.edit(msg.Chat.ID, sentMsg.MessageID, fmt.Sprintf("❌ *Error generating plan:*\n```\n%v\n```", safeErr))
		return
	}

	planJSON, err := json.Marshal(plan)
	if err == nil {
		if _, err := b.planRepo.Save(ctx, userID, planJSON); err != nil {
			log.Printf("Warning: failed to save meal plan for user %s: %v", userID, err)
		}
	}

	b.edit(msg.Chat.ID, sentMsg.MessageID, formatPlanMarkdown(plan))
}

func (b *Bot) handleShoppingRequest(msg *tgbotapi.Message) {
	ctx := context.Background()
	userID := fmt.Sprintf("%d", msg.From.ID)

	stored, err := b.planRepo.LatestByUserID(ctx, userID)
	if err != nil {
		log.Printf("Error loading latest plan for %s: %v", userID, err)
		b.reply(msg.Chat.ID, "❌ Error loading your latest plan.")
		return
	}
	if stored == nil {
		b.reply(msg.Chat.ID, "No meal plan yet. Generate one with /plan first.")
		return
	}

	plan := &shopping.MealPlan{}
	if err := json.Unmarshal(stored.PlanData, plan); err != nil {
		log.Printf("Error parsing stored plan %d: %v", stored.ID, err)
		b.reply(msg.Chat.ID, "❌ Your stored plan could not be read.")
		return
	}

	owned, err := b.pantryRepo.List(ctx, userID)
	if err != nil {
		log.Printf("Warning: failed to load pantry for %s: %v", userID, err)
	}

	list, err := b.builder.Build(plan, owned)
	if err != nil {
		log.Printf("Error building shopping list: %v", err)
		b.reply(msg.Chat.ID, "❌ Error building your shopping list.")
		return
	}

	if _, err := b.listRepo.Save(ctx, userID, stored.ID, list); err != nil {
		log.Printf("Warning: failed to save shopping list for %s: %v", userID, err)
	}

	b.reply(msg.Chat.ID, formatListMarkdown(list))
}

func (b *Bot) handlePantryList(msg *tgbotapi.Message) {
	ctx := context.Background()
	userID := fmt.Sprintf("%d", msg.From.ID)

	items, err := b.pantryRepo.List(ctx, userID)
	if err != nil {
		log.Printf("Error listing pantry for %s: %v", userID, err)
		b.reply(msg.Chat.ID, "❌ Error loading your pantry.")
		return
	}

	if len(items) == 0 {
		b.reply(msg.Chat.ID, "Your pantry is empty. Add items with `/have <item>`.")
		return
	}

	var sb strings.Builder
	sb.WriteString("🏠 *Pantry*\n\n")
	for _, item := range items {
		sb.WriteString(fmt.Sprintf("• %s\n", item))
	}
	b.reply(msg.Chat.ID, sb.String())
}

func (b *Bot) handlePantryAdd(msg *tgbotapi.Message, item string) {
	ctx := context.Background()
	userID := fmt.Sprintf("%d", msg.From.ID)

	if err := b.pantryRepo.Add(ctx, userID, item); err != nil {
		log.Printf("Error adding pantry item for %s: %v", userID, err)
		b.reply(msg.Chat.ID, "❌ Could not add that item. Usage: `/have rice`")
		return
	}
	b.reply(msg.Chat.ID, fmt.Sprintf("✅ Added *%s* to your pantry.", item))
}

func (b *Bot) handlePantryRemove(msg *tgbotapi.Message, item string) {
	ctx := context.Background()
	userID := fmt.Sprintf("%d", msg.From.ID)

	if err := b.pantryRepo.Remove(ctx, userID, item); err != nil {
		log.Printf("Error removing pantry item for %s: %v", userID, err)
		b.reply(msg.Chat.ID, "❌ Could not remove that item.")
		return
	}
	b.reply(msg.Chat.ID, fmt.Sprintf("🗑 Removed *%s* from your pantry.", item))
}

func (b *Bot) handleMetricsCommand(chatID int64) {
	usage, err := b.metricsStore.GetDailyUsage(7)
	if err != nil {
		b.reply(chatID, "❌ Error fetching metrics.")
		return
	}

	health := metrics.GetSysHealth("data")

	var sb strings.Builder
	sb.WriteString("📊 *Usage & Health Report*\n\n")

	sb.WriteString("🗓 *Recent LLM Activity*\n")
	if len(usage) == 0 {
		sb.WriteString("_No data yet_\n")
	}
	for _, d := range usage {
		sb.WriteString(fmt.Sprintf("• *%s*: %d tokens (%d execs)\n", d.Date, d.TotalPrompt+d.TotalCompletion, d.TotalExecution))
	}

	sb.WriteString("\n🧠 *System Health*\n")
	sb.WriteString(fmt.Sprintf("• RAM: %dMB (Alloc) / %dMB (Sys)\n", health.AllocMB, health.SysMB))
	sb.WriteString(fmt.Sprintf("• Goroutines: %d\n", health.Goroutines))
	sb.WriteString(fmt.Sprintf("• Disk Data: %s\n", health.DataDirSize))

	b.reply(chatID, sb.String())
}

func formatPlanMarkdown(plan *shopping.MealPlan) string {
	var sb strings.Builder
	name := plan.Name
	if name == "" {
		name = "Meal Plan"
	}
	sb.WriteString(fmt.Sprintf("📅 *%s*\n\n", name))

	for _, day := range plan.Days {
		sb.WriteString(fmt.Sprintf("*%s*\n", day.Label))
		slots := []struct {
			label string
			meal  *shopping.Meal
		}{
			{"Breakfast", day.Meals.Breakfast},
			{"Lunch", day.Meals.Lunch},
			{"Dinner", day.Meals.Dinner},
			{"Snack", day.Meals.Snack},
		}
		for _, s := range slots {
			if s.meal == nil {
				continue
			}
			sb.WriteString(fmt.Sprintf("  %s: %s\n", s.label, s.meal.Name))
		}
		sb.WriteString("\n")
	}

	sb.WriteString("_Build the shopping list with /shopping_")
	return sb.String()
}

func formatListMarkdown(list *shopping.List) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("🛒 *%s*\n\n", list.Name))

	for _, aisle := range list.AisleOrder {
		sb.WriteString(fmt.Sprintf("*%s*\n", aisle))
		for _, item := range list.ByAisle[aisle] {
			sb.WriteString(fmt.Sprintf("• %s %s - $%.2f/%s\n", item.Name, item.Qty, item.EstimatedPrice, item.Unit))
		}
		sb.WriteString("\n")
	}

	sb.WriteString(fmt.Sprintf("*%d items, est. $%.2f*", list.ItemCount, list.TotalEstimated))
	return sb.String()
}

func (b *Bot) reply(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = "Markdown"
	if _, err := b.api.Send(msg); err != nil {
		log.Printf("Failed to send message: %v", err)
	}
}

func (b *Bot) edit(chatID int64, messageID int, text string) {
	edit := tgbotapi.NewEditMessageText(chatID, messageID, text)
	edit.ParseMode = "Markdown"
	if _, err := b.api.Send(edit); err != nil {
		log.Printf("Failed to edit message: %v", err)
	}
}
