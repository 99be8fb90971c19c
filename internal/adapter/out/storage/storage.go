package storage

// ListPostsParams bounds a newest-first listing of posts.
type ListPostsParams struct {
	Limit  int
	Offset int
}
