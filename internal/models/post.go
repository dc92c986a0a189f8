// Package models contains data structures for the application's domain models.
package models

import "time"

// Post represents a blog publication.
//
// CategoryID and LocationID are nullable: deleting a category or location
// nulls the reference on dependent posts instead of deleting them. Deleting
// the author cascades to the post and its comments.
type Post struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"size:256;not null" json:"title"`
	Text        string    `gorm:"type:text;not null" json:"text"`
	PubDate     time.Time `gorm:"not null;index" json:"pub_date"`
	AuthorID    uint      `gorm:"not null;index" json:"author_id"`
	Author      User      `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE" json:"author"`
	LocationID  *uint     `gorm:"index" json:"location_id,omitempty"`
	Location    *Location `gorm:"foreignKey:LocationID;constraint:OnDelete:SET NULL" json:"location,omitempty"`
	CategoryID  *uint     `gorm:"index" json:"category_id,omitempty"`
	Category    *Category `gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL" json:"category,omitempty"`
	IsPublished bool      `gorm:"not null;default:true" json:"is_published"`
	ImageURL    string    `json:"image_url,omitempty"`
	// CommentsCount is not persisted; computed at query time
	CommentsCount int       `gorm:"->" json:"comments_count"`
	CreatedAt     time.Time `gorm:"<-:create" json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// OwnerID returns the author who may edit or delete the post.
func (p *Post) OwnerID() uint {
	return p.AuthorID
}

// PostPage is one fixed-size slice of a post listing.
type PostPage struct {
	Items      []*Post `json:"items"`
	Page       int     `json:"page"`
	TotalPages int     `json:"total_pages"`
	TotalCount int64   `json:"total_count"`
	HasNext    bool    `json:"has_next"`
	HasPrev    bool    `json:"has_prev"`
}
