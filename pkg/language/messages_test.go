package language

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ugnislab/flowgen/pkg/models"
)

func TestGenerationLabelsFallBackToEnglish(t *testing.T) {
	assert.Equal(t, "Анализ Запроса", GenerationLabels(models.LanguageRussian).AnalysisTitle)
	assert.Equal(t, "Vaicājuma Analīze", GenerationLabels(models.LanguageLatvian).AnalysisTitle)
	assert.Equal(t, "Query Analysis", GenerationLabels(models.Language("de")).AnalysisTitle)
}

func TestStatusMessage(t *testing.T) {
	assert.Equal(t, "Workflow veiksmīgi ģenerēts", StatusMessage(models.LanguageLatvian, "workflow_generated"))
	assert.Equal(t, "Failed to generate workflow", StatusMessage(models.Language("de"), "generation_failed"))

	// Unknown keys come back verbatim so callers never lose information.
	assert.Equal(t, "something_else", StatusMessage(models.LanguageEnglish, "something_else"))
}
