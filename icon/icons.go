package icon

// Icon identifies a symbol in the registry.
type Icon int

const (
	Fail Icon = iota + 1
	Success
	Progress
	Search
	Link
	Mark
	Star
	Heart
	Anime
	Manga
	Character
	News
	Warn
)

var icons = map[Icon]*iconDef{
	Fail: {
		emoji:   "💀",
		nerd:    "",
		plain:   "Error",
		kaomoji: "(×_×)",
		squares: "🟥",
	},
	Success: {
		emoji:   "🎉",
		nerd:    "",
		plain:   "Success",
		kaomoji: "(ᵔ◡ᵔ)",
		squares: "🟩",
	},
	Progress: {
		emoji:   "⏳",
		nerd:    "",
		plain:   "...",
		kaomoji: "(・_・;)",
		squares: "🟨",
	},
	Search: {
		emoji:   "🔎",
		nerd:    "",
		plain:   "?",
		kaomoji: "(・・ )?",
		squares: "🟦",
	},
	Link: {
		emoji:   "🔗",
		nerd:    "",
		plain:   "->",
		kaomoji: "(づ｡◕‿‿◕｡)づ",
		squares: "🟪",
	},
	Mark: {
		emoji:   "✔",
		nerd:    "",
		plain:   "*",
		kaomoji: "(＾▽＾)",
		squares: "🟩",
	},
	Star: {
		emoji:   "⭐",
		nerd:    "",
		plain:   "*",
		kaomoji: "☆彡",
		squares: "🟨",
	},
	Heart: {
		emoji:   "❤️",
		nerd:    "",
		plain:   "<3",
		kaomoji: "(♡˙︶˙♡)",
		squares: "🟥",
	},
	Anime: {
		emoji:   "📺",
		nerd:    "",
		plain:   "TV",
		kaomoji: "(⌐■_■)",
		squares: "🟦",
	},
	Manga: {
		emoji:   "📖",
		nerd:    "",
		plain:   "Book",
		kaomoji: "(◕‿◕✿)",
		squares: "🟫",
	},
	Character: {
		emoji:   "👤",
		nerd:    "",
		plain:   "@",
		kaomoji: "(･ω･)",
		squares: "🟧",
	},
	News: {
		emoji:   "📰",
		nerd:    "",
		plain:   "News",
		kaomoji: "(°ロ°)!",
		squares: "⬜",
	},
	Warn: {
		emoji:   "⚠️",
		nerd:    "",
		plain:   "!",
		kaomoji: "(O_O;)",
		squares: "🟧",
	},
}
