package chatbot

// NewDefault builds the ApnaDairy assistant with its stock FAQ table.
// Rule order matters: earlier rules win when a prompt matches several.
func NewDefault() *Bot {
	return New(defaultRules, defaultFallback)
}

const defaultFallback = "I am not fully sure, but I can help you check! " +
	"You can ask me about our milk, ghee, paneer, delivery, or orders. " +
	"How else can I help you?"

var defaultRules = []Rule{
	{
		Keywords: []string{"buffalo milk", "murrah"},
		Answer: "Our buffalo milk comes from Murrah buffaloes and has a higher fat " +
			"content, which makes it ideal for curd, paneer and sweets. " +
			"How else can I help you?",
	},
	{
		Keywords: []string{"a2", "cow milk", "sahiwal"},
		Answer: "We sell fresh A2 cow milk from Sahiwal cows, collected twice a day " +
			"and delivered without preservatives. How else can I help you?",
	},
	{
		Keywords: []string{"fat", "snf", "quality", "testing"},
		Answer: "Every batch is tested for fat and SNF before dispatch, and we share " +
			"the report on request. How else can I help you?",
	},
	{
		Keywords: []string{"price", "rate", "cost"},
		Answer: "Cow milk is 50 rupees per litre, ghee is 600 rupees per kg and " +
			"paneer is 400 rupees per kg. The full list is on the products page. " +
			"How else can I help you?",
	},
	{
		Keywords: []string{"delivery", "deliver", "shipping"},
		Answer: "We deliver every morning between 6 and 9 AM within the city. " +
			"Orders placed before 8 PM are delivered the next day. " +
			"How else can I help you?",
	},
	{
		Keywords: []string{"subscription", "daily milk"},
		Answer: "A daily milk subscription is available: pick a quantity once and " +
			"we deliver it every morning until you pause it. " +
			"How else can I help you?",
	},
	{
		Keywords: []string{"order", "track"},
		Answer: "You can place an order from the products page and track it in the " +
			"'My Orders' section. How else can I help you?",
	},
	{
		Keywords: []string{"payment", "upi", "cod", "qr"},
		Answer: "We accept cash on delivery, UPI and QR-code payments at checkout. " +
			"How else can I help you?",
	},
	{
		Keywords: []string{"cattle feed", "fodder", "silage", "tmr", "mineral"},
		Answer: "For healthy milk production we recommend a balanced TMR feed with " +
			"green fodder, dry fodder and a mineral mixture. " +
			"How else can I help you?",
	},
	{
		Keywords: []string{"seller", "sell with us", "farmer"},
		Answer: "Dairy farmers can apply on the 'Sell With Us' page; our team reviews " +
			"every application and gets back within a few days. " +
			"How else can I help you?",
	},
}
