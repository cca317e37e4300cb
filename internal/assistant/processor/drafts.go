package processor

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"ialynk-server/internal/clients/completion"
	"ialynk-server/internal/observability"
)

const draftsSystemPrompt = "Tu es un assistant immobilier professionnel."

const draftsPrompt = `Tu es l'assistant IA d'une agence immobilière française (IALynk).

Analyse le message ci-dessous et génère EXACTEMENT ce JSON :

{
  "short": "réponse courte",
  "neutral": "réponse neutre professionnelle",
  "formal": "réponse très formelle et complète"
}

Règles :
- Ne change JAMAIS le format JSON.
- Pas de texte avant ou après.
- Les réponses doivent être adaptées au contexte immobilier.
- Utilise le prénom du contact si disponible.
- Pas de phrases trop longues pour la réponse courte.
- La version formelle doit être impeccable et structurée.

Message reçu :
%q

Informations contact :
%s`

const draftsTemperature = 0.4

// Drafts holds three suggested replies to an incoming message.
type Drafts struct {
	Short   string `json:"short"`
	Neutral string `json:"neutral"`
	Formal  string `json:"formal"`
}

// DraftReplies asks the model for a short, a neutral and a formal answer to message.
// contact is free-form context shown to the model as JSON.
func (p *AssistantProcessor) DraftReplies(ctx context.Context, message string, contact map[string]any) (Drafts, error) {
	contactJSON := []byte("null")
	if len(contact) > 0 {
		var err error
		contactJSON, err = json.MarshalIndent(contact, "", "  ")
		if err != nil {
			return Drafts{}, fmt.Errorf("failed to marshal contact: %w", err)
		}
	}

	raw, err := p.completer.Complete(ctx, completion.Request{
		SystemPrompt: draftsSystemPrompt,
		Messages: []completion.Message{{
			Role:    completion.RoleUser,
			Content: fmt.Sprintf(draftsPrompt, message, contactJSON),
		}},
		Temperature: completion.Float(draftsTemperature),
	})
	if err != nil {
		p.logger.Error(ctx, "failed to complete reply drafts", err)
		return Drafts{}, fmt.Errorf("%w: %w", ErrCompletionFailed, err)
	}

	drafts, err := ParseDrafts(raw)
	if err != nil {
		p.logger.Error(observability.WithFields(ctx, observability.Field{Key: "raw_response", Value: raw}),
			"model returned unusable reply drafts", err)
		return Drafts{}, err
	}
	return drafts, nil
}

// ParseDrafts extracts the drafts object from a model answer, tolerating markdown
// code fences and text around the object.
func ParseDrafts(raw string) (Drafts, error) {
	body := strings.TrimSpace(raw)
	body = strings.TrimPrefix(body, "```json")
	body = strings.TrimPrefix(body, "```")
	body = strings.TrimSuffix(body, "```")

	start := strings.Index(body, "{")
	end := strings.LastIndex(body, "}")
	if start < 0 || end < start {
		return Drafts{}, ErrInvalidDraftResponse
	}

	var drafts Drafts
	if err := json.Unmarshal([]byte(body[start:end+1]), &drafts); err != nil {
		return Drafts{}, fmt.Errorf("%w: %w", ErrInvalidDraftResponse, err)
	}
	if drafts.Short == "" && drafts.Neutral == "" && drafts.Formal == "" {
		return Drafts{}, ErrInvalidDraftResponse
	}
	return drafts, nil
}
