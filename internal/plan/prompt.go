package plan

import (
	"fmt"
	"sort"
	"strings"

	"github.com/fbarrientos/autoeval/internal/llm"
	"github.com/fbarrientos/autoeval/internal/scoring"
)

const summarySystemPrompt = `Actúa como un coach educativo experto en el marco DigCompEdu. Eres conciso y alentador.`

// summarySchema constrains the summary response to one paragraph field.
var summarySchema = &llm.Schema{
	Name:        "plan-summary",
	Description: "Párrafo de resumen del plan de desarrollo profesional.",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"resumen": map[string]any{
				"type":        "string",
				"description": "Párrafo de análisis del perfil, máximo 80 palabras.",
			},
		},
		"required": []string{"resumen"},
	},
}

func buildSummaryUserMessage(results []scoring.AreaResult) string {
	var b strings.Builder

	b.WriteString("Basado en los siguientes resultados de un docente:\n")
	for _, r := range results {
		b.WriteString(fmt.Sprintf("- %s: Puntuación %.2f (Nivel %s)\n", r.Area.Title, r.Score, r.Tier.Label()))
	}

	lowest := make([]scoring.AreaResult, len(results))
	copy(lowest, results)
	sort.SliceStable(lowest, func(i, j int) bool { return lowest[i].Score < lowest[j].Score })
	if len(lowest) > 4 {
		lowest = lowest[:4]
	}
	names := make([]string, len(lowest))
	for i, r := range lowest {
		names[i] = "**" + r.Area.Title + "**"
	}
	areasToImprove := strings.Join(names, ", ")

	b.WriteString(`
Analiza el perfil y escribe un único párrafo de resumen (máximo 80 palabras). Tu respuesta DEBE seguir esta estructura:
1. Comienza con una frase general sobre el perfil (ej. "Tu perfil muestra un desarrollo equilibrado en un nivel de integración..." o "Tu perfil muestra fortalezas claras en...").
`)
	b.WriteString(fmt.Sprintf("2. Identifica las áreas con menor puntuación como la principal oportunidad de crecimiento. Usa la siguiente frase casi textual: \"Por otro lado, las áreas de %s representan tu mayor oportunidad de crecimiento...\". Usa **negrita** para los nombres de las áreas.\n", areasToImprove))
	b.WriteString(`3. Termina con la frase de cierre: "Las recomendaciones a continuación te ayudarán a fortalecer tus competencias.".

No incluyas encabezados. Devuelve el párrafo en el campo "resumen".`)

	return b.String()
}

const areaSystemPrompt = `Eres un coach experto en desarrollo profesional para docentes, especializado en competencias digitales.`

// areaSchema constrains an area response to a next-level description
// plus a short list of concrete actions.
var areaSchema = &llm.Schema{
	Name:        "plan-area",
	Description: "Plan de desarrollo para un área de competencia digital.",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"descripcion": map[string]any{
				"type":        "string",
				"description": "Descripción de 1-2 frases del siguiente nivel de competencia al que aspirar.",
			},
			"tareas": map[string]any{
				"type":        "array",
				"minItems":    2,
				"maxItems":    3,
				"items":       map[string]any{"type": "string"},
				"description": "Acciones o estrategias concretas para mejorar.",
			},
		},
		"required": []string{"descripcion", "tareas"},
	},
}

func buildAreaUserMessage(r scoring.AreaResult) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Área de competencia: %q.\n", r.Area.Title))
	b.WriteString(fmt.Sprintf("Un docente ha obtenido el nivel %q con una puntuación de %.2f sobre 5. Su nivel se describe como: %q.\n",
		r.Tier.Label(), r.Score, r.Tier.Description()))

	b.WriteString(`
Genera un plan de desarrollo conciso y accionable para esta área específica:
- En el campo "descripcion", una descripción de 1-2 frases del siguiente nivel de competencia al que debe aspirar. Por ejemplo: "Para progresar al siguiente nivel, deberías enfocarte en aplicar estas tecnologías de manera más colaborativa y creativa.".
- En el campo "tareas", una lista de 2 o 3 acciones o estrategias concretas para mejorar. Por ejemplo: "Explora herramientas de trabajo en equipo como Google Docs o Microsoft Teams para co-crear materiales con colegas.".

No añadas introducciones, conclusiones ni formato markdown.`)

	return b.String()
}
