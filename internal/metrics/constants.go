package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Game metric names
const (
	MetricNameActivitiesTotal = "rpg_activities_total"
	MetricNameCoinsEarned     = "rpg_coins_earned_total"
	MetricNameCoinsSpent      = "rpg_coins_spent_total"
	MetricNameItemsBought     = "rpg_items_bought_total"
	MetricNameLevelUps        = "rpg_level_ups_total"
	MetricNameShopLookups     = "rpg_shop_lookups_total"
)

// Generator metric names
const (
	MetricNameGeneratorRequests = "ai_generator_requests_total"
	MetricNameGeneratorDuration = "ai_generator_request_duration_seconds"
)

// Discord metric names
const (
	MetricNameDiscordCommands = "discord_commands_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"

	HelpTextActivitiesTotal = "Total number of activity attempts by outcome"
	HelpTextCoinsEarned     = "Total coins paid out by activities"
	HelpTextCoinsSpent      = "Total coins spent on entry costs and purchases"
	HelpTextItemsBought     = "Total number of shop items bought"
	HelpTextLevelUps        = "Total number of level-ups"
	HelpTextShopLookups     = "Total number of daily shop lookups by source"

	HelpTextGeneratorRequests = "Total number of text generator requests by outcome"
	HelpTextGeneratorDuration = "Text generator request latency in seconds"

	HelpTextDiscordCommands = "Total number of Discord commands handled"
)

// ============================================================================
// Metric Label Names
// ============================================================================

const (
	LabelMethod   = "method"
	LabelPath     = "path"
	LabelStatus   = "status"
	LabelActivity = "activity"
	LabelOutcome  = "outcome"
	LabelSource   = "source"
	LabelKind     = "kind"
	LabelCommand  = "command"
)

// ============================================================================
// Label Values
// ============================================================================

// Outcomes
const (
	OutcomeSuccess           = "success"
	OutcomeError             = "error"
	OutcomeTimeout           = "timeout"
	OutcomeCooldown          = "cooldown"
	OutcomeInsufficientFunds = "insufficient_funds"
)

// Shop sources
const (
	SourceCache     = "cache"
	SourceStore     = "store"
	SourceGenerator = "generator"
	SourceFallback  = "fallback"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets ranges from 1ms to 10s
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// GeneratorLatencyBuckets ranges from 250ms to 30s
var GeneratorLatencyBuckets = []float64{.25, .5, 1, 2, 4, 8, 15, 30}
