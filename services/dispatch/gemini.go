// File: services/dispatch/gemini.go
package dispatch

import (
	"context"
	"fmt"
	"strings"

	genai "github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const systemInstruction = `You are a customer service assistant for a scientific research company.
You help customers with:
- Equipment booking and scheduling
- Order status inquiries
- Protocol questions
- Technical support

Always prioritize safety and accuracy. If unsure about protocols or safety procedures,
escalate to human experts. Use the available functions to take actions.`

// GeminiOracle is the Gemini-backed oracle with the action schema declared
// as function-calling tools.
type GeminiOracle struct {
	model *genai.GenerativeModel
}

func NewGeminiOracle(apiKey string) (*GeminiOracle, error) {
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := client.GenerativeModel("models/gemini-1.5-pro")
	model.SetTemperature(0.3)
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(systemInstruction)},
	}
	model.Tools = []*genai.Tool{{FunctionDeclarations: actionDeclarations()}}
	// The oracle decides autonomously whether to call a function.
	model.ToolConfig = &genai.ToolConfig{
		FunctionCallingConfig: &genai.FunctionCallingConfig{
			Mode: genai.FunctionCallingAuto,
		},
	}
	return &GeminiOracle{model: model}, nil
}

// Complete performs the single oracle round trip. The reply carries either
// natural-language content, a function call, or both.
func (g *GeminiOracle) Complete(ctx context.Context, prompt Prompt) (*OracleReply, error) {
	var sb strings.Builder
	if prompt.KnowledgeContext != "" {
		fmt.Fprintf(&sb, "Knowledge base context: %s\n", prompt.KnowledgeContext)
	}
	fmt.Fprintf(&sb, "Customer ID: %s\nQuery: %s", prompt.CustomerID, prompt.Query)

	resp, err := g.model.GenerateContent(ctx, genai.Text(sb.String()))
	if err != nil {
		return nil, fmt.Errorf("gemini generate error: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, fmt.Errorf("gemini returned no candidates")
	}

	reply := &OracleReply{}
	var content strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		switch p := part.(type) {
		case genai.Text:
			content.WriteString(string(p))
		case genai.FunctionCall:
			if reply.Call == nil {
				reply.Call = &FunctionCall{Name: p.Name, Args: p.Args}
			}
		}
	}
	reply.Content = content.String()
	return reply, nil
}
