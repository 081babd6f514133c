package words

var defaultEntries = []Entry{
	{Word: "GOPHER", Hint: "A burrowing mascot"},
	{Word: "CHANNEL", Hint: "Share memory by communicating"},
	{Word: "LANTERN", Hint: "Carried to light the way"},
	{Word: "PUZZLE", Hint: "Pieces that fit together"},
	{Word: "GALAXY", Hint: "Billions of stars"},
	{Word: "OCTOPUS", Hint: "Eight arms, three hearts"},
	{Word: "VOLCANO", Hint: "A mountain with a temper"},
	{Word: "COMPASS", Hint: "Always points north"},
	{Word: "AVALANCHE", Hint: "Snow on the move"},
	{Word: "LIGHTHOUSE", Hint: "Keeps ships off the rocks"},
	{Word: "ORCHESTRA", Hint: "Many instruments, one conductor"},
	{Word: "ICE CREAM", Hint: "A frozen treat"},
	{Word: "HOT AIR BALLOON", Hint: "Flies on warm air"},
}

// Default returns the built-in catalog.
func Default() *Catalog {
	c, err := NewCatalog(defaultEntries)
	if err != nil {
		panic("words: invalid built-in catalog: " + err.Error())
	}
	return c
}
