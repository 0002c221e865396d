package telegram

import (
	"math/rand"
	"strings"
)

const welcomeMessage = `Hey there! I'm your personal task buddy!

I can help you keep track of everything you need to do. Just chat with me naturally like:
• "Need to finish the project by tomorrow"
• "Remind me to study for math test next week"
• "I've completed the python assignment"

Just tell me what's on your plate, and I'll help you stay organized! 😊`

const helpMessage = `Here's what I understand:

• Adding: "I need to finish the report by tomorrow at 5pm"
• Listing: "show my tasks"
• Due dates: "what's due this week"
• Completing: "I finished the essay"
• Deleting: "delete the math homework"

When several tasks match, I'll ask which one you mean. Just answer with the number!`

var greetingPhrases = map[string]bool{
	"hi": true, "hello": true, "hey": true, "yo": true, "hola": true,
	"howdy": true, "sup": true, "greetings": true,
	"good morning": true, "good afternoon": true, "good evening": true,
	"heya": true, "hiya": true, "hi there": true, "hello there": true,
	"hey there": true, "what's up": true, "whats up": true, "wassup": true,
	"what up": true, "how are you": true, "how's it going": true,
	"how you doing": true, "how r u": true, "how are u": true,
	"how r you": true, "morning": true, "afternoon": true, "evening": true,
	"heyo": true, "heyy": true, "hii": true, "aloha": true,
	"bonjour": true, "ciao": true,
}

var farewellPhrases = map[string]bool{
	"bye": true, "goodbye": true, "see you": true, "cool": true,
	"ok": true, "okay": true, "cya": true, "later": true,
	"take care": true, "ttyl": true, "gtg": true, "got to go": true,
	"have to go": true, "catch you later": true, "peace out": true,
	"alright": true, "sounds good": true, "perfect": true, "great": true,
	"awesome": true, "nice": true, "got it": true, "understood": true,
	"roger that": true, "will do": true, "noted": true, "thanks": true,
	"thank you": true, "yeah": true, "yep": true, "yup": true,
	"yes": true, "sure": true, "k": true, "kk": true, "mhm": true,
	"right": true,
}

var greetingReplies = []string{
	"Hey there! 👋 How can I help you with your tasks today?",
	"Hello! 😊 Ready to help you stay organized!",
	"Hi! Need help managing your tasks?",
	"Hey! 🌟 What can I do for you today?",
	"Hello there! Ready to tackle some tasks?",
	"Hi! 🎯 Let me know what you need help with!",
	"Hey! Looking to add or check your tasks?",
	"Hello! 📝 How can I assist you today?",
	"Hi there! Ready to help you stay productive! ✨",
	"Hey! Let's get those tasks organized! 🚀",
}

var farewellReplies = []string{
	"Catch you later! Don't forget about those tasks! 👋",
	"Take it easy! I'll be here when you need me again! 😊",
	"Alright, catch you on the flip side! Keep crushing those tasks! ✨",
	"See ya! Remember, you've got this! 🌟",
	"Later! Don't let those deadlines sneak up on you! ⏰",
	"You're doing great! Come back anytime you need help! 🎯",
	"Peace out! Keep that productivity flowing! 🚀",
	"Take care! Your tasks will be waiting right here! 📝",
	"Until next time! Stay awesome and organized! ⭐",
	"Bye for now! Keep up the great work! 🎮",
}

// smalltalkKey normalizes a message for exact phrase lookup.
func smalltalkKey(text string) string {
	return strings.TrimRight(strings.ToLower(strings.TrimSpace(text)), "!?. ")
}

// isGreeting reports whether the whole message is a greeting. Only exact
// phrase matches count, so "hey, add buy milk" still reaches the pipeline.
func isGreeting(text string) bool {
	return greetingPhrases[smalltalkKey(text)]
}

// isFarewell reports whether the whole message is a farewell or casual
// acknowledgment.
func isFarewell(text string) bool {
	return farewellPhrases[smalltalkKey(text)]
}

func pickReply(replies []string) string {
	return replies[rand.Intn(len(replies))]
}

var completionReplies = []string{
	"🎉 Awesome job finishing '%s'! One less thing to worry about!",
	"💪 Nice work! '%s' is done and dusted!",
	"✨ You crushed it! '%s' is complete!",
	"🌟 Great going! '%s' is checked off your list!",
	"🚀 Look at you go! '%s' is finished!",
}
