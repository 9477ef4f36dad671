package classify

// Category is a named bucket grouping file extensions
type Category struct {
	// Label is the category name, used as the destination directory name
	Label string

	// Extensions are the lowercase extensions claimed by the category,
	// including the leading dot
	Extensions []string
}

// CatchAll is the label assigned when no category claims an extension
const CatchAll = "Others"

// DefaultTable is the built-in category table. Order matters: an
// extension present in more than one category resolves to whichever
// category is declared first. The table is read-only for the process
// lifetime.
//
// The .json, .xml and .sql extensions intentionally appear under both
// Code and Data; first-match order resolves them to Code. Lint reports
// such duplicates without changing classification behavior.
var DefaultTable = []Category{
	{Label: "Images", Extensions: []string{".jpg", ".jpeg", ".png", ".gif", ".bmp", ".svg", ".webp", ".ico", ".tiff"}},
	{Label: "Videos", Extensions: []string{".mp4", ".avi", ".mkv", ".mov", ".wmv", ".flv", ".webm", ".m4v", ".mpg", ".mpeg"}},
	{Label: "Documents", Extensions: []string{".pdf", ".doc", ".docx", ".txt", ".odt", ".xls", ".xlsx", ".ppt", ".pptx"}},
	{Label: "Music", Extensions: []string{".mp3", ".wav", ".flac", ".aac", ".ogg", ".wma", ".m4a", ".opus"}},
	{Label: "Archives", Extensions: []string{".zip", ".rar", ".7z", ".tar", ".gz", ".bz2", ".xz"}},
	{Label: "Code", Extensions: []string{".py", ".js", ".html", ".css", ".cpp", ".java", ".c", ".h", ".json", ".xml", ".sql"}},
	{Label: "Executables", Extensions: []string{".exe", ".msi", ".app", ".deb", ".rpm"}},
	{Label: "Data", Extensions: []string{".csv", ".json", ".xml", ".sql", ".db", ".sqlite"}},
}

// DuplicateExtension reports an extension claimed by more than one
// category. ResolvesTo is the category the extension classifies into
// under first-match order.
type DuplicateExtension struct {
	Extension  string
	Categories []string
	ResolvesTo string
}

// Lint scans the table for extensions claimed by multiple categories.
// Duplicates are a configuration smell, not an error: classification
// stays deterministic through first-match order.
func Lint(table []Category) []DuplicateExtension {
	claims := make(map[string][]string)
	for _, category := range table {
		for _, ext := range category.Extensions {
			claims[ext] = append(claims[ext], category.Label)
		}
	}

	var duplicates []DuplicateExtension
	for _, category := range table {
		for _, ext := range category.Extensions {
			owners := claims[ext]
			if len(owners) < 2 || owners[0] != category.Label {
				continue
			}
			duplicates = append(duplicates, DuplicateExtension{
				Extension:  ext,
				Categories: owners,
				ResolvesTo: owners[0],
			})
		}
	}

	return duplicates
}

// Labels returns the category labels in declared table order
func Labels(table []Category) []string {
	labels := make([]string, 0, len(table))
	for _, category := range table {
		labels = append(labels, category.Label)
	}
	return labels
}
