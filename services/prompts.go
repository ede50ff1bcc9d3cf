package services

import (
	"fmt"
	"strings"
)

// Owner task identifiers.
const (
	TaskTranslate          = "translate"
	TaskSuggestDescription = "suggest_description"
	TaskSuggestPricing     = "suggest_pricing"
)

// promptLocale holds every localized string of the customer prompt for
// one language, so both locales render from the same structure and
// cannot drift apart.
type promptLocale struct {
	persona         string
	scopeConstraint string
	helpIntro       string
	topics          []string
	closing         string
}

var promptLocales = map[string]promptLocale{
	"ta": {
		persona:         "நீங்கள் அபி ஃபேஷன் டிசைனர் நிறுவனத்தின் உதவியாளர். 30+ ஆண்டுகள் அனுபவம் கொண்ட தையல் நிபுணர்.",
		scopeConstraint: "முக்கிய குறிப்பு: உங்கள் நிறுவனம் பெண்கள் மற்றும் பெண் குழந்தைகளுக்கு (Ladies & Kids - Girls) மட்டுமே தையல் சேவைகளை வழங்குகிறது. ஆண்களுக்கு தையல் சேவைகள் வழங்கப்படுவதில்லை.",
		helpIntro:       "வாடிக்கையாளர்களுக்கு பின்வரும் விஷயங்களில் உதவுங்கள்:",
		topics: []string{
			"ப்ளவுஸ் டிசைன் பரிந்துரைகள்",
			"திருமண ப்ளவுஸ் யோசனைகள்",
			"ஆரி எம்ப்ராய்டரி வேலைகள்",
			"தையல் செய்ய எடுக்கும் நேரம்",
			"விலை தகவல்கள் (தோராயமாக)",
		},
		closing: "எப்போதும் மரியாதையாகவும், உதவிகரமாகவும் இருங்கள். வாடிக்கையாளர்களை WhatsApp மூலம் தொடர்பு கொள்ள ஊக்குவியுங்கள்.",
	},
	"en": {
		persona:         "You are an assistant for Abi Fashion Designer, a tailoring service with 30+ years of experience.",
		scopeConstraint: "CRITICAL NOTE: We ONLY provide tailoring services for Ladies and Kids (Girls). We do NOT provide services for men.",
		helpIntro:       "Help customers with:",
		topics: []string{
			"Blouse design recommendations",
			"Bridal blouse ideas",
			"Aari embroidery work",
			"Stitching time estimates",
			"Pricing information (approximate)",
		},
		closing: "Always be polite and helpful. Encourage customers to contact via WhatsApp for detailed discussions.",
	},
}

// CustomerPrompt renders the system prompt for the visitor-facing
// assistant. Unknown language tags fall back to English.
func CustomerPrompt(language string) string {
	locale, ok := promptLocales[language]
	if !ok {
		locale = promptLocales["en"]
	}

	var b strings.Builder
	b.WriteString(locale.persona)
	b.WriteString("\n\n")
	b.WriteString(locale.scopeConstraint)
	b.WriteString("\n\n")
	b.WriteString(locale.helpIntro)
	b.WriteString("\n")
	for _, topic := range locale.topics {
		b.WriteString("- ")
		b.WriteString(topic)
		b.WriteString("\n")
	}
	b.WriteString(locale.closing)
	return b.String()
}

// OwnerPrompt renders the system prompt for one of the owner's
// productivity tasks. An unrecognized task gets the generic persona
// rather than an error.
func OwnerPrompt(task, language string) string {
	languageName := "English"
	if language == "ta" {
		languageName = "Tamil"
	}

	switch task {
	case TaskTranslate:
		return "Translate the following text between Tamil and English. If input is in Tamil, translate to English. If input is in English, translate to Tamil. Provide only the translation, no explanations."
	case TaskSuggestDescription:
		return fmt.Sprintf("You are helping a senior tailor write product descriptions. Create an elegant, professional description for a tailoring work item. Write in %s. Keep it concise and appealing.", languageName)
	case TaskSuggestPricing:
		return fmt.Sprintf("You are helping a tailor with pricing suggestions. Based on the work description, suggest appropriate pricing text (not exact prices, but pricing approach). Write in %s.", languageName)
	default:
		return "You are a helpful assistant for a tailoring business owner."
	}
}
