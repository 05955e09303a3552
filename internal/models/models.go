package models

// Post is a blog entry. Comments are always loaded with the post.
type Post struct {
	ID       uint      `gorm:"primarykey" json:"id"`
	Title    string    `gorm:"not null" json:"title"`
	Content  string    `gorm:"not null" json:"content"`
	Comments []Comment `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE" json:"comments"` // Has-many relationship
}

// Comment is a piece of text attached to exactly one Post.
type Comment struct {
	ID      uint   `gorm:"primarykey" json:"id"`
	PostID  uint   `gorm:"not null;index" json:"postId"`
	Content string `gorm:"not null" json:"content"`
}

// EnsureComments replaces a nil comment slice with an empty one so the post
// serializes with "comments": [] instead of null.
func (p *Post) EnsureComments() {
	if p.Comments == nil {
		p.Comments = []Comment{}
	}
}
