package postgres

import "strings"

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// likePattern turns a keyword into a substring pattern for ILIKE ... ESCAPE '\'.
// Wildcards typed by the user match literally.
func likePattern(keyword string) string {
	return "%" + likeEscaper.Replace(keyword) + "%"
}
