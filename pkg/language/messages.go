package language

import "github.com/ugnislab/flowgen/pkg/models"

// Labels are the localized section titles attached to generation responses.
type Labels struct {
	Title             string `json:"title"`
	AnalysisTitle     string `json:"analysis_title"`
	WorkflowTitle     string `json:"workflow_title"`
	InstructionsTitle string `json:"instructions_title"`
	ExplanationTitle  string `json:"explanation_title"`
	ErrorsTitle       string `json:"errors_title"`
}

var generationLabels = map[models.Language]Labels{
	models.LanguageLatvian: {
		Title:             "Workflow Ģenerēšanas Rezultāts",
		AnalysisTitle:     "Vaicājuma Analīze",
		WorkflowTitle:     "Ģenerētais Workflow",
		InstructionsTitle: "Uzstādīšanas Instrukcijas",
		ExplanationTitle:  "Paskaidrojums",
		ErrorsTitle:       "Kļūdas",
	},
	models.LanguageRussian: {
		Title:             "Результат Генерации Workflow",
		AnalysisTitle:     "Анализ Запроса",
		WorkflowTitle:     "Сгенерированный Workflow",
		InstructionsTitle: "Инструкции по Установке",
		ExplanationTitle:  "Объяснение",
		ErrorsTitle:       "Ошибки",
	},
	models.LanguageEnglish: {
		Title:             "Workflow Generation Result",
		AnalysisTitle:     "Query Analysis",
		WorkflowTitle:     "Generated Workflow",
		InstructionsTitle: "Setup Instructions",
		ExplanationTitle:  "Explanation",
		ErrorsTitle:       "Errors",
	},
}

var statusMessages = map[models.Language]map[string]string{
	models.LanguageLatvian: {
		"workflow_generated": "Workflow veiksmīgi ģenerēts",
		"workflow_uploaded":  "Workflow veiksmīgi augšupielādēts",
		"generation_failed":  "Workflow ģenerēšana neizdevās",
		"connection_error":   "Savienojuma kļūda",
		"no_results":         "Nav atrasti līdzīgi workflow jūsu vaicājumam.",
	},
	models.LanguageRussian: {
		"workflow_generated": "Workflow успешно сгенерирован",
		"workflow_uploaded":  "Workflow успешно загружен",
		"generation_failed":  "Не удалось сгенерировать workflow",
		"connection_error":   "Ошибка соединения",
		"no_results":         "Не найдено похожих workflow для вашего запроса.",
	},
	models.LanguageEnglish: {
		"workflow_generated": "Workflow generated successfully",
		"workflow_uploaded":  "Workflow uploaded successfully",
		"generation_failed":  "Failed to generate workflow",
		"connection_error":   "Connection error",
		"no_results":         "No similar workflows found for your query.",
	},
}

// GenerationLabels returns the response labels for lang, falling back to
// English for unknown languages.
func GenerationLabels(lang models.Language) Labels {
	if labels, ok := generationLabels[lang]; ok {
		return labels
	}

	return generationLabels[models.LanguageEnglish]
}

// StatusMessage returns the localized message for key, or the key itself when
// no translation exists.
func StatusMessage(lang models.Language, key string) string {
	messages, ok := statusMessages[lang]
	if !ok {
		messages = statusMessages[models.LanguageEnglish]
	}

	if msg, ok := messages[key]; ok {
		return msg
	}

	return key
}
