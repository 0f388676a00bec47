package ai

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"regexp"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// AIService holds the Gemini client and the read-only database connection
// the model is allowed to query.
type AIService struct {
	Client *genai.Client
	DB     *sql.DB
}

// NewAIService initializes the Gemini client.
func NewAIService(apiKey string, dbReadOnly *sql.DB) (*AIService, error) {
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &AIService{Client: client, DB: dbReadOnly}, nil
}

// GenerateResponse answers a stock question. The model may call the
// run_readonly_sql tool against the inventory schema; anything that is not
// a SELECT is refused before it reaches the database.
func (s *AIService) GenerateResponse(ctx context.Context, userMessage string, modelName string) (string, int, error) {
	if modelName == "" {
		modelName = "gemini-1.5-flash" // Fallback default
	}
	model := s.Client.GenerativeModel(modelName)

	sqlTool := &genai.Tool{
		FunctionDeclarations: []*genai.FunctionDeclaration{
			{
				Name:        "run_readonly_sql",
				Description: "Executes a READ-ONLY SQL query (SELECT only) to answer questions about battery stock.",
				Parameters: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"query": {
							Type:        genai.TypeString,
							Description: "The MySQL SELECT query to execute.",
						},
					},
					Required: []string{"query"},
				},
			},
		},
	}
	model.Tools = []*genai.Tool{sqlTool}

	schemaContext := s.getSchemaDefinition()
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(fmt.Sprintf(`
			You are the BatteryBuddy stock assistant.
			Access: MySQL database (run_readonly_sql).
			Schema: %s
			Rules: SELECT only. Be concise. An item is low on stock when quantity <= low_stock_threshold.
		`, schemaContext))},
	}

	cs := model.StartChat()
	res, err := cs.SendMessage(ctx, genai.Text(userMessage))
	if err != nil {
		return "", 0, fmt.Errorf("error sending message: %w", err)
	}

	totalTokens := 0
	if res.UsageMetadata != nil {
		totalTokens += int(res.UsageMetadata.TotalTokenCount)
	}

	// Loop for Function Calls
	for {
		if len(res.Candidates) == 0 || len(res.Candidates[0].Content.Parts) == 0 {
			return "No response.", totalTokens, nil
		}
		part := res.Candidates[0].Content.Parts[0]

		funcCall, ok := part.(genai.FunctionCall)
		if !ok {
			// It's text. We're done.
			return fmt.Sprintf("%v", part), totalTokens, nil
		}

		if funcCall.Name != "run_readonly_sql" {
			return "", totalTokens, fmt.Errorf("unknown function: %s", funcCall.Name)
		}

		query, ok := funcCall.Args["query"].(string)
		if !ok {
			return "", totalTokens, fmt.Errorf("invalid query argument")
		}
		log.Printf("AI running SQL: %s", query)

		sqlResult, sqlErr := s.runReadOnlyQuery(query)
		if sqlErr != nil {
			sqlResult = fmt.Sprintf("SQL Error: %v", sqlErr)
		}

		res, err = cs.SendMessage(ctx, genai.FunctionResponse{
			Name:     "run_readonly_sql",
			Response: map[string]interface{}{"result": sqlResult},
		})
		if err != nil {
			return "", totalTokens, fmt.Errorf("tool response error: %w", err)
		}
		if res.UsageMetadata != nil {
			totalTokens = int(res.UsageMetadata.TotalTokenCount)
		}
	}
}

// Forbidden statement keywords, matched on word boundaries so column names
// like updated_at are not mistaken for an UPDATE.
var forbiddenSQL = regexp.MustCompile(`\b(UPDATE|DELETE|DROP|INSERT|ALTER|TRUNCATE)\b`)

// validateReadOnlyQuery admits a single SELECT statement and nothing else.
func validateReadOnlyQuery(query string) error {
	normalized := strings.ToUpper(strings.TrimSpace(query))
	if !strings.HasPrefix(normalized, "SELECT") {
		return fmt.Errorf("security violation: only SELECT queries are allowed")
	}
	if forbiddenSQL.MatchString(normalized) {
		return fmt.Errorf("security violation: modify operations are not allowed")
	}
	return nil
}

// runReadOnlyQuery executes the model's SELECT and returns the rows as JSON.
func (s *AIService) runReadOnlyQuery(query string) (string, error) {
	if err := validateReadOnlyQuery(query); err != nil {
		return "", err
	}
	rows, err := s.DB.Query(query)
	if err != nil {
		return "", err
	}
	defer rows.Close()

	columns, _ := rows.Columns()
	count := len(columns)
	tableData := []map[string]interface{}{}
	for rows.Next() {
		values := make([]interface{}, count)
		valuePtrs := make([]interface{}, count)
		for i := range columns {
			valuePtrs[i] = &values[i]
		}
		rows.Scan(valuePtrs...)
		entry := make(map[string]interface{})
		for i, col := range columns {
			var v interface{}
			val := values[i]
			if b, ok := val.([]byte); ok {
				v = string(b)
			} else {
				v = val
			}
			entry[col] = v
		}
		tableData = append(tableData, entry)
	}
	jsonData, err := json.Marshal(tableData)
	if err != nil {
		return "", err
	}
	return string(jsonData), nil
}

func (s *AIService) getSchemaDefinition() string {
	return `
	- battery_items (id, brand, model, battery_type, location, quantity, low_stock_threshold, updated_at)
	- settings (setting_key, setting_value) -- 'battery_types' holds the configured type labels as a JSON array
	`
}
