package moderation

// Curated blocklist of hateful words and phrases. One flat list, no severity
// tiers. Multi-word entries are matched before single words so a phrase match
// is reported over any hateful word embedded in it. Leetspeak spellings stay
// in the list even though the normalizer already folds most of them.
var hatefulWords = []string{
	"stupid",
	"idiot",
	"dumb",
	"moron",
	"hate",
	"bigot",
	"racist",
	"sexist",
	"homophobe",
	"loser",
	"worthless",
	"trash",
	"garbage",
	"retard",
	"freak",
	"ugly",
	"fat",
	"disgusting",
	"creep",
	"kill yourself",
	"kys",
	"die",
	"nazi",
	"terrorist",
	"go away",
	"shut up",
	"pathetic",
	"ignorant",
	"clown",
	"jerk",
	"bastard",
	"asshole",
	"bitch",
	"whore",
	"slut",
	"pig",
	"animal",
	"subhuman",
	"vermin",
	"scum",
	"filth",
	"degenerate",
	"unwanted",
	"unlovable",
	"unworthy",
	"failure",
	"no one likes you",
	"nobody likes you",
	"get lost",
	"drop dead",
	"go to hell",
	"burn in hell",
	"die in a fire",
	"fool",
	"imbecile",
	"savage",
	"monster",
	"disease",
	"plague",
	"parasite",
	"cockroach",
	"rat",
	"snake",
	"worm",
	"leech",
	"bloodsucker",
	"menace",
	"threat",
	"danger",
	"evil",
	"nigger",
	"chink",
	"spic",
	"gook",
	"wetback",
	"raghead",
	"coon",
	"jigaboo",
	"porch monkey",
	"cunt",
	"skank",
	"twat",
	"fag",
	"faggot",
	"dyke",
	"tranny",
	"shemale",
	"kike",
	"hebe",
	"christkiller",
	"infidel",
	"cripple",
	"gimp",
	"spaz",
	"tard",
	"n1gger",
	"nigg3r",
	"b1tch",
	"wh0re",
	"c*nt",
	"f@g",
	"f4ggot",
	"go die",
	"i hate you",
	"you should die",
}

// Words that mark a message as uplifting. Used only for logging at post
// creation, never for acceptance decisions.
var kindWords = []string{
	"kind",
	"support",
	"encourage",
	"uplift",
	"help",
	"cheer",
	"inspire",
	"love",
	"hope",
	"joy",
	"awesome",
	"great",
	"wonderful",
	"amazing",
	"brave",
	"strong",
	"proud",
	"thank you",
	"grateful",
	"gratitude",
	"appreciate",
	"respect",
	"courage",
	"compassion",
	"generous",
	"friendly",
	"smile",
	"happy",
	"peace",
	"positive",
	"positivity",
	"good job",
	"well done",
	"you matter",
	"you are loved",
	"you are enough",
	"keep going",
	"you got this",
}
