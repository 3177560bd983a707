package catalog

// Reserved tag values. The set is closed: no other tag carries special meaning.
const (
	// TagDangerous marks destructive commands.
	TagDangerous = "peligroso"
	// TagProduction marks commands relevant to production deploys.
	TagProduction = "producción"
)

// TagClass is the result of classifying a command's tags.
type TagClass struct {
	IsDangerous         bool
	IsProductionRelated bool
}

// ClassifyTags reports which reserved tags cmd carries, by exact match.
func ClassifyTags(cmd Command) TagClass {
	return TagClass{
		IsDangerous:         cmd.HasTag(TagDangerous),
		IsProductionRelated: cmd.HasTag(TagProduction),
	}
}

// IsReserved reports whether tag is one of the reserved values.
func IsReserved(tag string) bool {
	return tag == TagDangerous || tag == TagProduction
}
