// File: services/dispatch/schema.go
package dispatch

import genai "github.com/google/generative-ai-go/genai"

// actionDeclarations is the fixed schema of callable actions declared to the
// oracle on every request.
func actionDeclarations() []*genai.FunctionDeclaration {
	return []*genai.FunctionDeclaration{
		{
			Name:        ActionScheduleEquipment,
			Description: "Book laboratory equipment for a customer",
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"equipment_id":   {Type: genai.TypeString},
					"customer_id":    {Type: genai.TypeString},
					"start_time":     {Type: genai.TypeString},
					"duration_hours": {Type: genai.TypeInteger},
					"purpose":        {Type: genai.TypeString},
				},
				Required: []string{"equipment_id", "customer_id", "start_time", "duration_hours"},
			},
		},
		{
			Name:        ActionCheckOrderStatus,
			Description: "Check the status of a customer order",
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"order_id":    {Type: genai.TypeString},
					"customer_id": {Type: genai.TypeString},
				},
				Required: []string{"order_id", "customer_id"},
			},
		},
		{
			Name:        ActionSearchKnowledge,
			Description: "Search protocols and FAQ",
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"query": {Type: genai.TypeString},
				},
				Required: []string{"query"},
			},
		},
	}
}
