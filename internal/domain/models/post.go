package models

const FieldContent = "content"

type Author struct {
	Name   string
	Avatar string
	Role   string
}

type Post struct {
	ID        string `gorm:"primaryKey"`
	Author    Author `gorm:"embedded;embeddedPrefix:author_"`
	Content   string
	Image     *string
	Likes     int
	Comments  int
	Shares    int
	Timestamp string
	IsLiked   bool
}

func (p Post) GetID() string {
	return p.ID
}

func (p Post) WithID(id string) Post {
	p.ID = id
	return p
}

func (p Post) WithField(field, value string) (Post, error) {
	if field != FieldContent {
		return p, unknownField("post", field)
	}
	p.Content = value
	return p, nil
}

// ToggledLike flips IsLiked and moves Likes by one in the same direction.
// Likes never drops below zero.
func (p Post) ToggledLike() Post {
	if p.IsLiked {
		p.IsLiked = false
		if p.Likes > 0 {
			p.Likes--
		}
		return p
	}
	p.IsLiked = true
	p.Likes++
	return p
}
