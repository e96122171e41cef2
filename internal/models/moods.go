package models

// MoodDescriptor describes how a mood or category label is presented: the
// badge color class and the icon shown next to it.
type MoodDescriptor struct {
	Label string `json:"label"`
	Color string `json:"color"`
	Icon  string `json:"icon"`
}

// moodTable maps note/memory mood labels to their presentation descriptor.
// Unknown labels fall back to DefaultMood.
var moodTable = map[string]MoodDescriptor{
	"romantic":  {Label: "Romantic", Color: "rose", Icon: "heart"},
	"happy":     {Label: "Happy", Color: "amber", Icon: "sun"},
	"nostalgic": {Label: "Nostalgic", Color: "violet", Icon: "clock"},
	"playful":   {Label: "Playful", Color: "emerald", Icon: "sparkles"},
	"grateful":  {Label: "Grateful", Color: "sky", Icon: "gift"},
	"missing":   {Label: "Missing You", Color: "slate", Icon: "moon"},
}

// poemCategoryTable maps poem categories to their presentation descriptor.
var poemCategoryTable = map[string]MoodDescriptor{
	"love":        {Label: "Love", Color: "rose", Icon: "heart"},
	"anniversary": {Label: "Anniversary", Color: "amber", Icon: "calendar"},
	"longing":     {Label: "Longing", Color: "violet", Icon: "moon"},
	"silly":       {Label: "Silly", Color: "emerald", Icon: "smile"},
	"apology":     {Label: "Apology", Color: "sky", Icon: "flower"},
}

// DefaultMood is used for labels with no table entry.
var DefaultMood = MoodDescriptor{Label: "Note", Color: "gray", Icon: "pencil"}

// MoodFor returns the presentation descriptor for a mood label.
func MoodFor(mood string) MoodDescriptor {
	if d, ok := moodTable[mood]; ok {
		return d
	}
	return DefaultMood
}

// PoemCategoryFor returns the presentation descriptor for a poem category.
func PoemCategoryFor(category string) MoodDescriptor {
	if d, ok := poemCategoryTable[category]; ok {
		return d
	}
	return DefaultMood
}

// Moods lists the mood labels accepted at the API boundary.
func Moods() []string {
	out := make([]string, 0, len(moodTable))
	for k := range moodTable {
		out = append(out, k)
	}
	return out
}
