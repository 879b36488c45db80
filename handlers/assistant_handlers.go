package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"app/config"
	"app/database"
	"app/models"
	"app/parser"
	"app/utils"
)

// TextGenerator produces one assistant reply for a prompt. The Gemini client
// is the default implementation; tests swap in a stub.
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// Generator is the text generator used by the assistant handlers.
var Generator TextGenerator = geminiGenerator{}

type geminiGenerator struct{}

func (geminiGenerator) GenerateText(ctx context.Context, prompt string) (string, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(config.AppConfig.GeminiAPIKey))
	if err != nil {
		return "", fmt.Errorf("failed to create AI client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel("gemini-1.5-pro")
	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("failed to generate analysis: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("empty response from model")
	}
	return fmt.Sprint(resp.Candidates[0].Content.Parts[0]), nil
}

// HandleAssistantChat answers a merchant's analytics question and returns the
// reply both as raw text and as a structured ParsedResponse.
// POST /api/v1/assistant/chat
func HandleAssistantChat(c *fiber.Ctx) error {
	var req models.AssistantChatRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid request"})
	}
	if req.Prompt == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Prompt is required"})
	}

	merchantID, _ := c.Locals("userID").(string)

	analysisPrompt := fmt.Sprintf(
		`You are a helpful AI assistant for a restaurant business. Report amounts in EGP. The merchant asked: "%s". Provide a concise analysis of their sales, orders and menu performance.`,
		req.Prompt,
	)

	reply, err := Generator.GenerateText(c.Context(), analysisPrompt)
	if err != nil {
		log.Printf("Error generating analysis: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to generate analysis"})
	}

	parsed := parser.ParseResponse(reply)

	storeChatMessage(c.Context(), merchantID, "user", req.Prompt, nil)
	storeChatMessage(c.Context(), merchantID, "assistant", reply, parsed)

	return c.JSON(fiber.Map{
		"success":          true,
		"reply":            reply,
		"parsed":           parsed,
		"hasVisualContent": parser.HasVisualContent(parsed),
	})
}

// HandleAssistantHistory returns the merchant's conversation, newest first.
// GET /api/v1/assistant/history?page=&pageSize=
func HandleAssistantHistory(c *fiber.Ctx) error {
	merchantID, _ := c.Locals("userID").(string)
	page := c.QueryInt("page", 1)
	pageSize := c.QueryInt("pageSize", 20)

	db := database.GetDB()
	ctx := context.Background()

	var total int
	if err := db.QueryRow(ctx, `SELECT COUNT(*) FROM chat_messages WHERE merchant_id = $1`, merchantID).Scan(&total); err != nil {
		log.Printf("Error counting chat messages: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to load history"})
	}

	pagination := utils.CreatePagination(total, page, pageSize)
	offset := (pagination.CurrentPage - 1) * pagination.PageSize

	query := `
        SELECT id, merchant_id, role, content, parsed, created_at
        FROM chat_messages
        WHERE merchant_id = $1
        ORDER BY created_at DESC
        LIMIT $2 OFFSET $3
    `
	rows, err := db.Query(ctx, query, merchantID, pagination.PageSize, offset)
	if err != nil {
		log.Printf("Error querying chat messages: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to load history"})
	}
	defer rows.Close()

	messages := []models.ChatMessage{}
	for rows.Next() {
		var msg models.ChatMessage
		var parsedJSON []byte
		if err := rows.Scan(&msg.ID, &msg.MerchantID, &msg.Role, &msg.Content, &parsedJSON, &msg.CreatedAt); err != nil {
			continue
		}
		if len(parsedJSON) > 0 {
			var parsed models.ParsedResponse
			if err := json.Unmarshal(parsedJSON, &parsed); err == nil {
				msg.Parsed = &parsed
			}
		}
		messages = append(messages, msg)
	}

	return c.JSON(fiber.Map{
		"success":    true,
		"data":       messages,
		"pagination": pagination,
	})
}

// storeChatMessage persists one conversation turn. Persistence is
// best-effort: a failed insert is logged and never fails the chat response.
func storeChatMessage(ctx context.Context, merchantID, role, content string, parsed *models.ParsedResponse) {
	db := database.GetDB()
	if db == nil || merchantID == "" {
		return
	}

	var parsedJSON []byte
	if parsed != nil {
		var err error
		parsedJSON, err = json.Marshal(parsed)
		if err != nil {
			log.Printf("Error serializing parsed response: %v", err)
			parsedJSON = nil
		}
	}

	query := `
        INSERT INTO chat_messages (merchant_id, role, content, parsed)
        VALUES ($1, $2, $3, $4)
    `
	if _, err := db.Exec(ctx, query, merchantID, role, content, parsedJSON); err != nil {
		log.Printf("Error storing chat message: %v", err)
	}
}
