package lookup

// HomebrewSource labels content with no rulebook
const HomebrewSource = "Homebrew"

var defaultSources = map[int64]string{
	1:  "Basic Rules",
	2:  "Player's Handbook",
	3:  "Dungeon Master's Guide",
	5:  "Monster Manual",
	13: "Sword Coast Adventurer's Guide",
	27: "Xanathar's Guide to Everything",
	67: "Tasha's Cauldron of Everything",
	80: "Mordenkainen Presents: Monsters of the Multiverse",
}
