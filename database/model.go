package database

import (
	"regexp"
	"time"

	"gorm.io/gorm"
)

const DriverName = "postgres"

const RoleAdmin = "admin"
const RoleUser = "user"

// User is a registered account. Accounts are never deleted in this system,
// removing one cascades into its profile, comments and likes at the schema
// level regardless.
type User struct {
	ID           uint64    `gorm:"primaryKey"`
	UUID         string    `gorm:"type:uuid;uniqueIndex;not null"`
	Username     string    `gorm:"size:255;uniqueIndex;not null"`
	Email        string    `gorm:"size:255;uniqueIndex;not null"`
	FirstName    string    `gorm:"size:255"`
	LastName     string    `gorm:"size:255"`
	PasswordHash string    `gorm:"size:255;not null"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime"`

	Profile  *UserProfile `gorm:"foreignKey:UserID"`
	Posts    []Post       `gorm:"foreignKey:AuthorID"`
	Comments []Comment    `gorm:"foreignKey:AuthorID"`
	Likes    []Like       `gorm:"foreignKey:UserID"`
}

// UserProfile carries the role and blog-admin flag. Exactly one per user,
// provisioned lazily with role=user when a check finds none.
type UserProfile struct {
	ID          uint64    `gorm:"primaryKey"`
	UserID      uint64    `gorm:"uniqueIndex;not null"`
	Role        string    `gorm:"size:20;not null;default:user"`
	IsBlogAdmin bool      `gorm:"not null;default:false"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

type Category struct {
	ID        uint64    `gorm:"primaryKey"`
	UUID      string    `gorm:"type:uuid;uniqueIndex;not null"`
	Name      string    `gorm:"size:100;uniqueIndex;not null"`
	Slug      string    `gorm:"size:120;uniqueIndex;not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`

	Posts []Post `gorm:"foreignKey:CategoryID"`
}

// Post slugs are allocated once on creation and never recomputed. Deleting a
// post cascades into its comments and likes; deleting a category nullifies
// the reference instead.
type Post struct {
	ID            uint64    `gorm:"primaryKey"`
	UUID          string    `gorm:"type:uuid;uniqueIndex;not null"`
	Title         string    `gorm:"size:255;not null"`
	Slug          string    `gorm:"size:255;uniqueIndex;not null"`
	AuthorID      uint64    `gorm:"index;not null"`
	CategoryID    *uint64   `gorm:"index"`
	Content       string    `gorm:"type:text;not null"`
	CoverImageURL string    `gorm:"size:500"`
	Published     bool      `gorm:"not null"`
	CreatedAt     time.Time `gorm:"autoCreateTime"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime"`

	Author   User      `gorm:"foreignKey:AuthorID"`
	Category *Category `gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL"`
	Comments []Comment `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE"`
	Likes    []Like    `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE"`
}

// Comment soft-deletes through the Active flag; inactive rows stay persisted
// but never surface in listings.
type Comment struct {
	ID        uint64    `gorm:"primaryKey"`
	UUID      string    `gorm:"type:uuid;uniqueIndex;not null"`
	PostID    uint64    `gorm:"index;not null"`
	AuthorID  uint64    `gorm:"index;not null"`
	Body      string    `gorm:"type:text;not null"`
	Active    bool      `gorm:"not null;default:true"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`

	Post   Post `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE"`
	Author User `gorm:"foreignKey:AuthorID"`
}

// Like rows are unique per (post, user); the composite index is the last line
// of defense against concurrent toggles.
type Like struct {
	ID        uint64    `gorm:"primaryKey"`
	UUID      string    `gorm:"type:uuid;uniqueIndex;not null"`
	PostID    uint64    `gorm:"uniqueIndex:idx_likes_post_user;not null"`
	UserID    uint64    `gorm:"uniqueIndex:idx_likes_post_user;not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`

	Post Post `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE"`
	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

var tableNamePattern = regexp.MustCompile(`^[a-z_][a-z0-9_]*$`)

// GetSchemaTables lists the schema tables in dependency order: parents first,
// children later. Truncation walks it backwards.
func GetSchemaTables() []string {
	return []string{
		"users",
		"user_profiles",
		"categories",
		"posts",
		"comments",
		"likes",
	}
}

func isValidTable(name string) bool {
	if len(name) == 0 || len(name) > 63 {
		return false
	}

	if !tableNamePattern.MatchString(name) {
		return false
	}

	for _, table := range GetSchemaTables() {
		if table == name {
			return true
		}
	}

	return false
}

// Migrate applies the schema for every model above.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&UserProfile{},
		&Category{},
		&Post{},
		&Comment{},
		&Like{},
	)
}
