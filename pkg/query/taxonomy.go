package query

import "github.com/ugnislab/flowgen/pkg/models"

// Taxonomy maps category -> tag -> closed synonym list for one language.
// Tags are language-independent; only the synonyms differ per language.
type Taxonomy map[string]map[string][]string

var taxonomies = map[models.Language]Taxonomy{
	models.LanguageLatvian: {
		models.CategoryActions: {
			"create":  {"izveidot", "radīt", "uztaisīt", "veidot", "taisīt", "gatavot"},
			"send":    {"nosūtīt", "sūtīt", "pārsūtīt", "atsūtīt"},
			"receive": {"saņemt", "iegūt", "dabūt"},
			"process": {"apstrādāt", "pārstrādāt", "analizēt"},
			"save":    {"saglabāt", "ierakstīt", "uzglabāt"},
			"delete":  {"dzēst", "noņemt", "likvidēt"},
		},
		models.CategoryServices: {
			"telegram": {"telegram", "telegramm", "tg"},
			"email":    {"epasts", "e-pasts", "elektroniskais pasts", "mails", "vēstule"},
			"sms":      {"sms", "īsziņa", "tekstziņa"},
			"slack":    {"slack", "slacks"},
			"discord":  {"discord", "diskords"},
			"whatsapp": {"whatsapp", "whats app", "vatsaps"},
		},
		models.CategoryObjects: {
			"bot":         {"bots", "botu", "botam", "automatizācija"},
			"appointment": {"tikšanās", "pieraksts", "rezervācija", "tikšanos", "sanāksme"},
			"database":    {"datu bāze", "datubāze", "db", "bāze", "dati"},
			"api":         {"api", "interfeiss", "savienojums", "saskarnes"},
			"webhook":     {"webhook", "web hook", "tīmekļa āķis", "āķis"},
			"form":        {"forma", "anketa", "veidlapa"},
			"file":        {"fails", "dokuments", "datne"},
			"image":       {"attēls", "bilde", "foto", "grafika"},
		},
		models.CategoryDataTypes: {
			"text":   {"teksts", "vārdi", "ziņa"},
			"number": {"skaitlis", "numurs", "cifra"},
			"date":   {"datums", "laiks", "diena"},
			"json":   {"json", "dati", "objekts"},
		},
	},
	models.LanguageRussian: {
		models.CategoryActions: {
			"create":  {"создать", "сделать", "построить", "генерировать", "формировать"},
			"send":    {"отправить", "послать", "переслать"},
			"receive": {"получить", "принять", "взять"},
			"process": {"обработать", "переработать", "анализировать"},
			"save":    {"сохранить", "записать", "зафиксировать"},
			"delete":  {"удалить", "стереть", "убрать"},
		},
		models.CategoryServices: {
			"telegram": {"телеграм", "telegram", "тг"},
			"email":    {"email", "почта", "письмо", "мейл", "электронная почта"},
			"sms":      {"sms", "смс", "сообщение"},
			"slack":    {"slack", "слак"},
			"discord":  {"discord", "дискорд"},
			"whatsapp": {"whatsapp", "whats app", "ватсап"},
		},
		models.CategoryObjects: {
			"bot":         {"бот", "бота", "боту", "автоматизация"},
			"appointment": {"встреча", "запись", "бронирование", "резервация"},
			"database":    {"база данных", "бд", "база", "данные"},
			"api":         {"api", "интерфейс", "апи"},
			"webhook":     {"webhook", "веб-хук", "хук"},
			"form":        {"форма", "анкета", "бланк"},
			"file":        {"файл", "документ", "данные"},
			"image":       {"изображение", "картинка", "фото", "рисунок"},
		},
		models.CategoryDataTypes: {
			"text":   {"текст", "слова", "сообщение"},
			"number": {"число", "номер", "цифра"},
			"date":   {"дата", "время", "день"},
			"json":   {"json", "данные", "объект"},
		},
	},
	models.LanguageEnglish: {
		models.CategoryActions: {
			"create":  {"create", "make", "build", "generate", "construct", "develop"},
			"send":    {"send", "dispatch", "transmit", "forward"},
			"receive": {"receive", "get", "obtain", "fetch"},
			"process": {"process", "handle", "analyze", "parse"},
			"save":    {"save", "store", "record", "persist"},
			"delete":  {"delete", "remove", "erase", "destroy"},
		},
		models.CategoryServices: {
			"telegram": {"telegram", "tg"},
			"email":    {"email", "mail", "message", "e-mail"},
			"sms":      {"sms", "text message", "text"},
			"slack":    {"slack"},
			"discord":  {"discord"},
			"whatsapp": {"whatsapp", "whats app"},
		},
		models.CategoryObjects: {
			"bot":         {"bot", "chatbot", "automation"},
			"appointment": {"appointment", "booking", "reservation", "meeting", "schedule"},
			"database":    {"database", "db", "storage", "data"},
			"api":         {"api", "interface", "endpoint"},
			"webhook":     {"webhook", "web hook", "hook"},
			"form":        {"form", "survey", "questionnaire"},
			"file":        {"file", "document", "attachment"},
			"image":       {"image", "picture", "photo", "graphic"},
		},
		models.CategoryDataTypes: {
			"text":   {"text", "string", "message"},
			"number": {"number", "integer", "digit"},
			"date":   {"date", "time", "datetime"},
			"json":   {"json", "data", "object"},
		},
	},
}

// TaxonomyFor returns the keyword taxonomy for lang, defaulting to English.
func TaxonomyFor(lang models.Language) Taxonomy {
	if t, ok := taxonomies[lang]; ok {
		return t
	}

	return taxonomies[models.LanguageEnglish]
}
