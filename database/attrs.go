package database

type UsersAttrs struct {
	Username  string
	Email     string
	FirstName string
	LastName  string
	Password  string
	Role      string
}

type CategoriesAttrs struct {
	Name string
	Slug string
}

type PostsAttrs struct {
	AuthorID   uint64
	Title      string
	Content    string
	CategoryID uint64
	Published  bool
	ImageURL   string
}

type CommentsAttrs struct {
	PostID   uint64
	AuthorID uint64
	Body     string
}
