package configs

// LLM configures the generative text provider used for plan synthesis.
// When APIKey is empty the server still runs, but only dry-run
// generation succeeds.
type LLM struct {
	// APIKey authenticates against the Gemini API.
	APIKey string `env:"API_KEY"`
	// Model is the model identifier passed on every generation call.
	Model string `env:"MODEL" envDefault:"gemini-2.0-flash"`
	// PromptPath points at the file holding the fixed system
	// instruction. It is read once at startup.
	PromptPath string `env:"PROMPT_PATH" envDefault:"prompts/system_prompt.md"`
}
