package telegram

// Log prefixes
const (
	LogPrefixHandleWebhook   = "internal.conversation.delivery.telegram.HandleWebhook"
	LogPrefixProcessMessage  = "internal.conversation.delivery.telegram.processMessage"
	LogPrefixProcessCallback = "internal.conversation.delivery.telegram.processCallback"
)

// Built-in commands
const (
	CommandStart = "/start"
	CommandHelp  = "/help"
	CommandClear = "/clear"
)

const (
	MsgStart         = "Hi! I'm your grocery assistant.\n\nAsk me for recipes, where to find products, this week's deals, help with your shopping list, meal plans, store info or dietary filters."
	MsgHelp          = "Try things like:\n• I need a recipe for pasta\n• Where can I find milk?\n• Are there any deals on meat?\n• Add milk to my list\n• Help me plan meals for the week\n• What are the store hours?\n• I'm vegetarian\n\nSend /clear to start a new conversation."
	MsgCleared       = "Conversation cleared."
	MsgProcessFailed = "Sorry, something went wrong. Please try again."
	MsgUnknownAction = "That button is no longer available."
	MsgActionQueued  = "%s: on it!"
)

// ButtonsPerRow lays out the inline keyboard.
const ButtonsPerRow = 2
