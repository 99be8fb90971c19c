package tableinfo

const (
	PostsTableName = "post"

	PostIDColumn         = "id"
	PostTitleColumn      = "title"
	PostBodyColumn       = "body"
	PostTagsColumn       = "tags"
	PostCreatedAtColumn  = "created_at"
	PostModifiedAtColumn = "modified_at"
)

// PostColumns is the canonical select list, in the order scanned by storage.
var PostColumns = []string{
	PostIDColumn,
	PostTitleColumn,
	PostBodyColumn,
	PostTagsColumn,
	PostCreatedAtColumn,
	PostModifiedAtColumn,
}
