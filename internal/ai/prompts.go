package ai

const (
	shopSystemPrompt = "You design balanced, whimsical RPG shop items for a mini text RPG. " +
		"Output a JSON object with key 'items' as a list. Each item has: " +
		"{name:str, description:str (<=120 chars), cost:int (20..160), " +
		"effects:[{stat:str in ['hp','atk','def','xp'], amount:int (1..5)}]}"

	shopUserPrompt = "Create %d shop items for average player level %d. " +
		"Items should be interesting but fair. No duplicates. Keep effects small. " +
		"Prefer 1-2 effects per item. Avoid pure XP items."

	encounterSystemPrompt = "You are a balanced encounter generator for a text RPG. " +
		"Respond as JSON: {enemy:{name:str, hp:int, atk:int, def:int, description:str(<=180)}, " +
		"scene:str(<=140)}"

	encounterUserPrompt = "Player stats: HP %d, ATK %d, DEF %d, LVL %d.\n"
)
