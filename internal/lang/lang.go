// Package lang holds the fixed catalog of guessable languages.
package lang

// Catalog lists every language the game will ask about: the top 24 from
// the Stack Overflow 2022 Developer Survey, substituting Dockerfile for VBA.
var Catalog = [25]string{
	"Assembly",
	"Shell",
	"C",
	"C#",
	"C++",
	"CSS",
	"Dart",
	"Dockerfile",
	"Go",
	"Groovy",
	"HTML",
	"Java",
	"JavaScript",
	"Kotlin",
	"Lua",
	"MATLAB",
	"PHP",
	"PowerShell",
	"Python",
	"R",
	"Ruby",
	"Rust",
	"SQL",
	"Swift",
	"TypeScript",
}

// Supported reports whether name is one of the catalog languages.
func Supported(name string) bool {
	for _, l := range Catalog {
		if l == name {
			return true
		}
	}
	return false
}
