package assistant

import "strings"

// User-facing texts. Kept as package constants so the conversational surface
// can be audited and translated in one place.
const (
	textAskForName      = "Hi! I see your id is **%s**, but I don't know your name yet. What should I call you?"
	textWelcomeBack     = "Welcome back, **%s**! How can I help you today?"
	textConnectDegraded = "Hi there! I'm having trouble accessing your information right now, but I can still help you with product questions."

	textNameInvalid   = "Please provide a valid name."
	textNameTooLong   = "Name is too long. Please provide a shorter name."
	textNameSaved     = "Thanks, **%s**! I've saved your name. How can I help you today?"
	textNameSession   = "Thanks, **%s**! I'll remember that for this session."
	textNameNotCaught = "Sorry, I didn't catch your name. What should I call you?"

	textChatApology = "I'm having trouble answering right now. Please try again."

	textSearchNoMatch = "Sorry, I couldn't find any relevant products for your search."
	textSearchFailed  = "I'm having trouble searching for products right now. Please try again."

	textFilterNoMatch    = "No products match your filter criteria."
	textCompareTooFew    = "Please provide at least 2 product names to compare."
	textCompareNotEnough = "I couldn't find enough products to compare. Please check the product names."

	textProductNotFound = "Sorry, I couldn't find a product named '%s'."
	textInStock         = "**%s** is available for $%.2f!"
	textOutOfStock      = "Sorry, **%s** is currently out of stock."

	textCartAdded       = "Added %d x **%s** to your cart (quantity now %d)."
	textCartBadQuantity = "Please choose a quantity of at least 1."
	textCartOutOfStock  = "Sorry, that product is currently out of stock."
	textCartNotFound    = "Sorry, I couldn't find that product."
	textCartRemoved     = "Removed **%s** from your cart."
	textCartNotInCart   = "That product wasn't in your cart."

	textWishlistAdded     = "Added **%s** to your wishlist."
	textWishlistDuplicate = "**%s** is already in your wishlist."
	textWishlistRemoved   = "Removed **%s** from your wishlist."
	textWishlistAbsent    = "That product wasn't in your wishlist."

	textPolicyUnknown = "I don't have specific information about that policy. Please contact customer support for more details."
)

// policies maps policy topics to their canned answers. Lookup is
// case-insensitive substring over the topic.
var policies = map[string]string{
	"return":       "**Return Policy**: You can return items within 30 days of purchase in original condition.",
	"refund":       "**Refund Policy**: Refunds are processed within 5-7 business days after we receive your return.",
	"shipping":     "**Shipping**: Standard shipping takes 3-5 days, express shipping takes 1-2 days.",
	"warranty":     "**Warranty**: Most electronics come with a 1-year manufacturer warranty.",
	"exchange":     "**Exchange**: Items can be exchanged within 15 days for size or color changes.",
	"cancellation": "**Cancellation**: Orders can be cancelled within 24 hours of placing them.",
}

// policyOrder fixes lookup precedence when a topic mentions several policies.
var policyOrder = []string{"return", "refund", "shipping", "warranty", "exchange", "cancellation"}

// lookupPolicy returns the canned policy text for the topic, or the unknown
// fallback.
func lookupPolicy(topic string) string {
	lowered := strings.ToLower(topic)
	for _, key := range policyOrder {
		if strings.Contains(lowered, key) {
			return policies[key]
		}
	}
	return textPolicyUnknown
}
