package ai

import "time"

// Request defaults
const (
	DefaultModel       = "gpt-4o-mini"
	DefaultTimeout     = 20 * time.Second
	DefaultTemperature = 0.9

	// JSONMaxTokens bounds structured content requests
	JSONMaxTokens = 600
	// ChatMaxTokens bounds free-form chat replies
	ChatMaxTokens = 250

	// MaxLineLength bounds a single flavor line
	MaxLineLength = 200
)

// JSONFormatHint is appended to every structured request
const JSONFormatHint = "Always respond as a single JSON object with only the requested fields. Do not include code fences or extra commentary."

// ChatSystemPrompt frames free-form /chat replies
const ChatSystemPrompt = "You are a friendly Discord companion. Keep replies short and conversational."

// ProviderOpenAI labels errors and metrics
const ProviderOpenAI = "OpenAI"
