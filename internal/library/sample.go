package library

// SampleHeader is the column layout of the built-in dataset
var SampleHeader = []string{ColName, ColArtist, ColGenre, ColLanguage, ColDuration}

// SampleRows keeps the program usable when no spreadsheet is available
var SampleRows = [][]string{
	{"Unstoppable", "Sia", "Pop", "English", "03:02"},
	{"Faded", "Alan Walker", "EDM", "English", "03:32"},
	{"LoFi Nights", "Indie Cafe with a very very long name that was cutting off", "Lofi", "Instrumental", "02:45"},
	{"Melancholy Ballad", "Heartstring", "Ballad", "English", "04:10"},
	{"Dancefloor Dream", "Neon Beats", "Dance", "English", "03:21"},
}
