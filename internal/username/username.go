// Package username produces random throwaway display names for anonymous
// posts. Collisions are acceptable: the name signals anonymity, not identity.
package username

import (
	"fmt"
	"math/rand"
)

var adjectives = []string{
	"Blue", "Green", "Red", "Yellow", "Purple", "Orange", "Silver", "Golden",
	"Wobbly", "Fluffy", "Sparkly", "Goofy", "Bouncy", "Sassy", "Zippy",
	"Giggly", "Dizzy", "Snazzy", "Loopy", "Squishy", "Jumpy", "Quirky",
	"Wiggly", "Cheeky", "Funky", "Snoozy", "Peppy", "Nifty", "Dorky",
	"Spooky", "Bubbly", "Nutty",
}

var animals = []string{
	"Fox", "Wolf", "Bear", "Lion", "Tiger", "Eagle", "Shark", "Otter",
	"Unicorn", "Mermaid", "Narwhal", "Penguin", "Platypus", "Llama", "Sloth",
	"Dragon", "Dinosaur", "Octopus", "Hamster", "Ferret", "Moose", "Giraffe",
	"Panda", "Chinchilla", "Goblin", "Pixie", "Troll", "Yeti", "Alien",
	"Robot", "Zombie", "Vampire", "Godzilla", "Mothra", "KingKong", "Cthulhu",
	"CookieMonster", "Sasquatch", "Kraken", "LochNess", "Gremlin",
	"Chupacabra", "Bigfoot", "Blob", "Jabberwocky", "Hydra", "SassySquid",
	"SnarkySerpent", "DramaLizard", "PartyGhoul", "WackyWorm", "BumbleBeast",
	"GiggleGolem", "PranksterPhantom",
}

// Generate returns a name of the form {Adjective}{Animal}{NN} with a two
// digit suffix in [10, 99]. Not cryptographically random and not unique.
func Generate() string {
	return fmt.Sprintf("%s%s%d",
		adjectives[rand.Intn(len(adjectives))],
		animals[rand.Intn(len(animals))],
		10+rand.Intn(90),
	)
}
