package resource

import "github.com/enescakir/emoji"

const (
	ProjectName = "wordday"
	GithubURL   = "https://github.com/bloops-games/wordday"
)

var (
	TextAnnouncementHeader = emoji.Loudspeaker.String() + " Word of the day!"
	TextDefinitionPrefix   = emoji.Bookmark.String() + " Definition: "
	TextReplyToGuess       = "Reply to this note with your guess. First correct answer wins " + emoji.Trophy.String()
	TextHintPrefix         = emoji.GemStone.String() + " Hint: "
	TextRevealFmt          = emoji.PartyingFace.String() + " The word was \"%s\". Congratulations to %s for guessing it!"
	TextLeaderboardHeader  = emoji.Star.String() + " Leaderboard"

	GreetingCLI = "%s %s\n%s\n\n"
)
