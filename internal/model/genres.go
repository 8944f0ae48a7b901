package model

import "strings"

// GenreSeparator joins genre names in the persisted genres column.
const GenreSeparator = ", "

// EncodeGenres joins genres into the single string stored in the
// genres column.  Names containing GenreSeparator are not escaped and
// will come back split by DecodeGenres.
func EncodeGenres(genres []string) string {
	return strings.Join(genres, GenreSeparator)
}

// DecodeGenres splits a stored genres column back into its members.
// An empty column decodes to an empty, non-nil slice.
func DecodeGenres(s string) []string {
	if s == "" {
		return []string{}
	}
	return strings.Split(s, GenreSeparator)
}
