package discord

// Friendly message constants for Discord responses
const (
	MsgItemNotFound   = "❓ **Item Not Found**\nMaybe check the spelling?"
	MsgQuestNotFound  = "❓ **Quest Not Found**\nPick a quest from the suggestions."
	MsgBadInput       = "⚠️ **Invalid Input**"
	MsgAPIUnavailable = "🔌 **Companion API unavailable**\nTry again in a moment."
	MsgNoSources      = "No recycling path yields this material."
	MsgGenericError   = "❌ Something went wrong."
)

// Embed colors
const (
	ColorInfo     = 0x3498db
	ColorRecycle  = 0x2ecc71
	ColorSources  = 0xf39c12
	ColorQuest    = 0x9b59b6
	ColorNeutral  = 0x95a5a6
	FooterDefault = "RaidCompanion"
)

// Discord limits
const (
	maxChoices          = 25
	maxChoiceNameLength = 100
	maxDescriptionChars = 4000
	maxSourcesShown     = 10
)
